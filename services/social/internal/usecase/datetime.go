package usecase

import (
	"strings"
	"time"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
)

type DateTimeHelper struct {
	defaultZone *time.Location
	logger      *logger.Logger
}

// NewDateTimeHelper falls back to UTC when defaultZone is not a known zone.
func NewDateTimeHelper(defaultZone string, logger *logger.Logger) *DateTimeHelper {
	loc, err := time.LoadLocation(defaultZone)
	if err != nil {
		logger.Warn("Unknown default time zone %q, using UTC", defaultZone)
		loc = time.UTC
	}
	return &DateTimeHelper{defaultZone: loc, logger: logger}
}

// GetDateInUserTimeZone converts utc into the user's TimeZoneId zone.
func (h *DateTimeHelper) GetDateInUserTimeZone(utc time.Time, user *entity.User) time.Time {
	return utc.In(h.location(user))
}

func (h *DateTimeHelper) location(user *entity.User) *time.Location {
	if user == nil {
		return h.defaultZone
	}
	name, ok := user.Property(entity.PropertyTimeZoneID)
	name = strings.Trim(strings.TrimSpace(name), `"`)
	if !ok || name == "" {
		return h.defaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		h.logger.Warn("User %s has unknown time zone %q", user.ID, name)
		return h.defaultZone
	}
	return loc
}
