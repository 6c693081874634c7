package entity

// Well-known user property names.
const (
	PropertyDefaultPictureID     = "DefaultPictureId"
	PropertyDefaultCoverID       = "DefaultCoverId"
	PropertyTimeZoneID           = "TimeZoneId"
	PropertyLanguage             = "Language"
	PropertyNotificationsEnabled = "NotificationsEnabled"
	PropertyPrivateProfile       = "PrivateProfile"
	PropertySocialLinks          = "SocialLinks"
)

type EntityProperty struct {
	ID           uint   `json:"id"`
	EntityID     string `json:"entity_id"`
	EntityName   string `json:"entity_name"`
	PropertyName string `json:"property_name"`
	Value        string `json:"value"`
}
