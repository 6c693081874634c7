package entity

import "time"

type PictureSize string

const (
	PictureSizeOriginal           PictureSize = "original"
	PictureSizeMediumCover        PictureSize = "medium_cover"
	PictureSizeMediumProfileImage PictureSize = "medium_profile_image"
	PictureSizeSmallProfileImage  PictureSize = "small_profile_image"
	PictureSizeSchoolLogo         PictureSize = "school_logo"
)

type Picture struct {
	ID         int       `json:"id"`
	OwnerID    string    `json:"owner_id"`
	StorageKey string    `json:"storage_key"`
	MimeType   string    `json:"mime_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// MediaSettings holds the site-wide fallback image URLs.
type MediaSettings struct {
	DefaultPictureURL          string
	DefaultUserProfileImageURL string
	DefaultUserProfileCoverURL string
}

type Permalink struct {
	EntityName string `json:"entity_name"`
	EntityID   string `json:"entity_id"`
	Slug       string `json:"slug"`
	Active     bool   `json:"active"`
}
