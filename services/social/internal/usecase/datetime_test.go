package usecase

import (
	"testing"
	"time"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestDateTimeHelper_GetDateInUserTimeZone(t *testing.T) {
	helper := NewDateTimeHelper("America/New_York", logger.New())
	utc := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	user := &entity.User{ID: "u1"}
	user.SetProperty(entity.PropertyTimeZoneID, "Asia/Tokyo")
	assert.Equal(t, 21, helper.GetDateInUserTimeZone(utc, user).Hour())

	assert.Equal(t, 7, helper.GetDateInUserTimeZone(utc, &entity.User{ID: "u2"}).Hour())

	broken := &entity.User{ID: "u3"}
	broken.SetProperty(entity.PropertyTimeZoneID, "Mars/Olympus")
	assert.Equal(t, 7, helper.GetDateInUserTimeZone(utc, broken).Hour())

	assert.True(t, helper.GetDateInUserTimeZone(utc, user).Equal(utc))
}

func TestNewDateTimeHelper_UnknownDefault(t *testing.T) {
	helper := NewDateTimeHelper("Nowhere/Special", logger.New())
	utc := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.UTC, helper.GetDateInUserTimeZone(utc, nil).Location())
}
