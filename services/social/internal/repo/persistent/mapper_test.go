package persistent

import (
	"testing"
	"time"

	"mob-social/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestToUserEntity_Associations(t *testing.T) {
	login := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := &models.User{
		ID:            "u1",
		Username:      "skater",
		LastLoginDate: &login,
		Properties: []models.EntityProperty{
			{EntityID: "u1", EntityName: "user", PropertyName: "DefaultPictureId", Value: "7"},
		},
		UserRoles: []models.UserRole{
			{UserID: "u1", RoleID: 1, Role: &models.Role{ID: 1, SystemName: models.RoleSystemNameAdministrators}},
			{UserID: "u1", RoleID: 2},
		},
		Educations: []models.Education{
			{ID: "e1", UserID: "u1", Name: "BSc", School: &models.School{ID: "s1", Name: "Ridge", LogoID: 4}},
		},
	}

	user := ToUserEntity(m)

	assert.Equal(t, "skater", user.Username)
	assert.Equal(t, &login, user.LastLoginDate)
	assert.Equal(t, 7, user.PropertyInt("DefaultPictureId"))
	assert.Equal(t, []int{1, 2}, user.RoleIDs())
	assert.True(t, user.IsAdministrator())
	assert.Equal(t, 4, user.Educations[0].School.LogoID)
}

func TestMappers_NilInput(t *testing.T) {
	assert.Nil(t, ToUserEntity(nil))
	assert.Nil(t, ToUserModel(nil))
	assert.Nil(t, ToFriendEntity(nil))
	assert.Nil(t, ToFollowModel(nil))
	assert.Nil(t, ToNotificationEntity(nil))
	assert.Nil(t, ToSchoolEntity(nil))
	assert.Nil(t, ToVideoAlbumEntity(nil))
}

func TestToNotificationEntity_EventName(t *testing.T) {
	n := ToNotificationEntity(&models.Notification{
		ID:                "n1",
		NotificationEvent: &models.NotificationEvent{ID: 3, EventName: "new_follower"},
	})
	assert.Equal(t, "new_follower", n.EventName)
}
