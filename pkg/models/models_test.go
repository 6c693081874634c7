package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "password",
		Active:   true,
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}

func TestUser_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-id-123"
	user := &User{ID: existingID}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, existingID, user.ID)
}

func TestSocialRows_BeforeCreateAssignsIDs(t *testing.T) {
	friend := &UserFriend{FromUserID: "a", ToUserID: "b"}
	follow := &UserFollow{FollowerID: "a", TargetType: TargetTypeUser, TargetID: "b"}
	notification := &Notification{UserID: "a", NotificationEventID: 1}
	team := &TeamPage{Name: "Rollers"}
	group := &GroupPage{Name: "Juniors"}
	move := &SkateMove{Name: "Kickflip"}
	album := &VideoAlbum{Name: "Main"}
	video := &Video{VideoURL: "https://cdn/v.mp4"}
	school := &School{Name: "Ridge High"}
	education := &Education{Name: "Diploma"}

	assert.NoError(t, friend.BeforeCreate(nil))
	assert.NoError(t, follow.BeforeCreate(nil))
	assert.NoError(t, notification.BeforeCreate(nil))
	assert.NoError(t, team.BeforeCreate(nil))
	assert.NoError(t, group.BeforeCreate(nil))
	assert.NoError(t, move.BeforeCreate(nil))
	assert.NoError(t, album.BeforeCreate(nil))
	assert.NoError(t, video.BeforeCreate(nil))
	assert.NoError(t, school.BeforeCreate(nil))
	assert.NoError(t, education.BeforeCreate(nil))

	for _, id := range []string{friend.ID, follow.ID, notification.ID, team.ID, group.ID, move.ID, album.ID, video.ID, school.ID, education.ID} {
		assert.Len(t, id, 36)
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "group_page_members", GroupPageMember{}.TableName())
	assert.Equal(t, "group_pages", GroupPage{}.TableName())
	assert.Equal(t, "team_pages", TeamPage{}.TableName())
	assert.Equal(t, "user_skate_moves", UserSkateMove{}.TableName())
	assert.Equal(t, "skate_moves", SkateMove{}.TableName())
	assert.Equal(t, "user_friends", UserFriend{}.TableName())
}
