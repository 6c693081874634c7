package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mob-social/services/social/internal/entity"
)

func TestProjectEditableView_Images(t *testing.T) {
	media := &fakeMedia{urls: map[int]string{5: "https://cdn/cover.jpg"}}
	p := newTestProjector(Collaborators{Media: media})
	user := testUser("u1")
	user.SetProperty(entity.PropertyDefaultCoverID, "5")
	user.SetProperty(entity.PropertyDefaultPictureID, "99")

	v, err := p.ProjectEditableView(user, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, v.CoverImageID)
	assert.Equal(t, "https://cdn/cover.jpg?size=medium_cover", v.CoverImageURL)
	// 99 does not resolve
	assert.Equal(t, 99, v.ProfileImageID)
	assert.Equal(t, testSettings.DefaultUserProfileImageURL, v.ProfileImageURL)

	v, err = p.ProjectEditableView(testUser("u2"), nil)
	require.NoError(t, err)
	assert.Equal(t, testSettings.DefaultUserProfileCoverURL, v.CoverImageURL)
	assert.Equal(t, testSettings.DefaultUserProfileImageURL, v.ProfileImageURL)
}

func TestProjectEditableView_RoleRoundTrip(t *testing.T) {
	p := newTestProjector(Collaborators{})
	user := testUser("u1")
	user.Roles = []entity.Role{
		{ID: 3, SystemName: "Moderators"},
		{ID: 1, SystemName: entity.RoleAdministrators},
		{ID: 2, SystemName: "Registered"},
	}

	v, err := p.ProjectEditableView(user, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, v.RoleIDs)

	target := testUser("u1")
	v.ApplyTo(target)
	assert.ElementsMatch(t, []int{1, 2, 3}, target.RoleIDs())
}

func TestEditableUserView_ApplyTo(t *testing.T) {
	v := &EditableUserView{
		FirstName:      "Rodney",
		LastName:       "Mullen",
		UserName:       "mutt",
		Email:          "rodney@example.com",
		Active:         true,
		Remarks:        "flatground",
		RoleIDs:        []int{2, 2, 4},
		ProfileImageID: 11,
	}
	user := testUser("u1")

	v.ApplyTo(user)

	assert.Equal(t, "Rodney", user.FirstName)
	assert.Equal(t, "mutt", user.Username)
	assert.Equal(t, "rodney@example.com", user.Email)
	assert.Equal(t, []int{2, 4}, user.RoleIDs())
	assert.Equal(t, 11, user.PropertyInt(entity.PropertyDefaultPictureID))
	_, hasCover := user.Property(entity.PropertyDefaultCoverID)
	assert.False(t, hasCover)
}

func TestEditableUserView_ApplyTo_ZeroPictureKeepsCurrent(t *testing.T) {
	user := testUser("u1")
	user.SetProperty(entity.PropertyDefaultCoverID, "7")
	user.SetProperty(entity.PropertyDefaultPictureID, "9")

	(&EditableUserView{UserName: "mutt", Email: "rodney@example.com"}).ApplyTo(user)

	assert.Equal(t, 7, user.PropertyInt(entity.PropertyDefaultCoverID))
	assert.Equal(t, 9, user.PropertyInt(entity.PropertyDefaultPictureID))
}

func TestProjectEditableView_LastLogin(t *testing.T) {
	p := newTestProjector(Collaborators{})
	user := testUser("u1")
	lastLogin := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	user.LastLoginDate = &lastLogin

	v, err := p.ProjectEditableView(user, testUser("u2"))
	require.NoError(t, err)
	assert.Nil(t, v.LastLoginDateUTC)

	admin := testUser("admin")
	admin.Roles = []entity.Role{{ID: 1, SystemName: entity.RoleAdministrators}}
	v, err = p.ProjectEditableView(user, admin)
	require.NoError(t, err)
	require.NotNil(t, v.LastLoginDateUTC)
	assert.Equal(t, lastLogin, *v.LastLoginDateUTC)
}

func TestProjectMinimalPublicView(t *testing.T) {
	media := &fakeMedia{urls: map[int]string{4: "https://cdn/p.jpg"}}
	p := newTestProjector(Collaborators{Media: media})
	user := testUser("u1")
	user.SetProperty(entity.PropertyDefaultPictureID, "4")

	v, err := p.ProjectMinimalPublicView(user)
	require.NoError(t, err)

	assert.Equal(t, "u1", v.ID)
	assert.Equal(t, "tony@example.com", v.Email)
	assert.Equal(t, 4, v.ProfileImageID)
	assert.Equal(t, "https://cdn/p.jpg?size=medium_profile_image", v.ProfileImageURL)
	assert.Equal(t, 0, v.CoverImageID)
	assert.Equal(t, testSettings.DefaultUserProfileCoverURL, v.CoverImageURL)

	_, err = NewProjector(Collaborators{}, testSettings, nil).ProjectMinimalPublicView(user)
	assert.ErrorIs(t, err, ErrMissingCollaborator)
}
