package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsAdministrator(t *testing.T) {
	var nobody *User
	assert.False(t, nobody.IsAdministrator())

	member := &User{Roles: []Role{{ID: 2, SystemName: "Registered"}}}
	assert.False(t, member.IsAdministrator())

	admin := &User{Roles: []Role{{ID: 2, SystemName: "Registered"}, {ID: 1, SystemName: RoleAdministrators}}}
	assert.True(t, admin.IsAdministrator())
}

func TestUser_PropertyInt(t *testing.T) {
	user := &User{ID: "u1"}
	assert.Equal(t, 0, user.PropertyInt(PropertyDefaultPictureID))

	user.SetProperty(PropertyDefaultPictureID, "42")
	assert.Equal(t, 42, user.PropertyInt(PropertyDefaultPictureID))

	user.SetProperty(PropertyDefaultPictureID, `"17"`)
	assert.Equal(t, 17, user.PropertyInt(PropertyDefaultPictureID))

	user.SetProperty(PropertyDefaultCoverID, "not-a-number")
	assert.Equal(t, 0, user.PropertyInt(PropertyDefaultCoverID))

	assert.Len(t, user.Properties, 2)
	assert.Equal(t, EntityNameUser, user.Properties[0].EntityName)
}

func TestFriend_Other(t *testing.T) {
	f := &Friend{FromUserID: "a", ToUserID: "b"}
	assert.Equal(t, "b", f.Other("a"))
	assert.Equal(t, "a", f.Other("b"))
}

func TestIsFollowableType(t *testing.T) {
	assert.True(t, IsFollowableType(TargetTypeUser))
	assert.True(t, IsFollowableType(TargetTypeSkateMove))
	assert.False(t, IsFollowableType("video"))
}
