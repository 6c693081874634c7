package view

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mob-social/pkg/clock"
	"mob-social/services/social/internal/entity"
)

var (
	testNow      = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	testSettings = entity.MediaSettings{
		DefaultPictureURL:          "/static/default.png",
		DefaultUserProfileImageURL: "/static/profile.png",
		DefaultUserProfileCoverURL: "/static/cover.png",
	}
)

type fakeMedia struct {
	urls map[int]string
}

func (f *fakeMedia) GetPictureURL(id int, size entity.PictureSize, useDefault bool) string {
	if id <= 0 {
		return ""
	}
	if url, ok := f.urls[id]; ok {
		return fmt.Sprintf("%s?size=%s", url, size)
	}
	if useDefault {
		return testSettings.DefaultPictureURL
	}
	return ""
}

type fakeDates struct{}

func (fakeDates) GetDateInUserTimeZone(utc time.Time, _ *entity.User) time.Time {
	return utc.Add(2 * time.Hour)
}

type fakePermalinks struct {
	slugs map[string]string
	err   error
}

func (f *fakePermalinks) GetPermalink(_ string, id string) (*entity.Permalink, error) {
	if f.err != nil {
		return nil, f.err
	}
	slug, ok := f.slugs[id]
	if !ok {
		return nil, nil
	}
	return &entity.Permalink{EntityName: entity.EntityNameUser, EntityID: id, Slug: slug, Active: true}, nil
}

type fakeFollow struct {
	followers map[string]int64
	following map[string]int64
	edges     map[string]bool
}

func (f *fakeFollow) GetFollowerCount(_ string, id string) (int64, error) {
	return f.followers[id], nil
}

func (f *fakeFollow) GetFollowingCount(id string) (int64, error) {
	return f.following[id], nil
}

func (f *fakeFollow) GetFollow(followerID, targetType, targetID string) (*entity.Follow, error) {
	if !f.edges[followerID+">"+targetID] {
		return nil, nil
	}
	return &entity.Follow{FollowerID: followerID, TargetType: targetType, TargetID: targetID}, nil
}

type fakeFriend struct {
	count  int64
	status entity.FriendStatus
}

func (f *fakeFriend) CountConfirmedFriends(string) (int64, error) { return f.count, nil }

func (f *fakeFriend) GetFriendStatus(string, string) (entity.FriendStatus, error) {
	return f.status, nil
}

type fakeNotifications struct {
	items []entity.Notification
}

func (f *fakeNotifications) published(now time.Time) []entity.Notification {
	var out []entity.Notification
	for _, n := range f.items {
		if !n.PublishDateTime.After(now) {
			out = append(out, n)
		}
	}
	return out
}

func (f *fakeNotifications) GetPublished(_ string, now time.Time, limit, offset int) ([]entity.Notification, error) {
	items := f.published(now)
	if offset >= len(items) {
		return nil, nil
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (f *fakeNotifications) CountUnread(_ string, now time.Time) (int64, error) {
	var n int64
	for _, item := range f.published(now) {
		if !item.IsRead {
			n++
		}
	}
	return n, nil
}

// failingNotifications fails the test if anything asks it for data.
type failingNotifications struct {
	t *testing.T
}

func (f failingNotifications) GetPublished(string, time.Time, int, int) ([]entity.Notification, error) {
	f.t.Fatal("notifications should not be loaded")
	return nil, nil
}

func (f failingNotifications) CountUnread(string, time.Time) (int64, error) {
	f.t.Fatal("notifications should not be counted")
	return 0, nil
}

func newTestProjector(c Collaborators) *Projector {
	if c.Media == nil {
		c.Media = &fakeMedia{}
	}
	if c.Dates == nil {
		c.Dates = fakeDates{}
	}
	return NewProjector(c, testSettings, clock.Fixed(testNow))
}

func testUser(id string) *entity.User {
	return &entity.User{
		ID:        id,
		FirstName: "Tony",
		LastName:  "Hawk",
		Name:      "Tony Hawk",
		Username:  "birdman",
		Email:     "tony@example.com",
		Active:    true,
		CreatedAt: time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestProjectPublicView_DefaultImages(t *testing.T) {
	p := newTestProjector(Collaborators{})

	user := testUser("u1")

	v, err := p.ProjectPublicView(user, nil, Features{})
	require.NoError(t, err)

	assert.Equal(t, testSettings.DefaultUserProfileCoverURL, v.CoverImageURL)
	assert.Equal(t, testSettings.DefaultUserProfileImageURL, v.ProfileImageURL)
	assert.True(t, v.IsOnline)
	assert.Equal(t, user.CreatedAt.Add(2*time.Hour), v.DateCreatedLocal)
}

func TestProjectPublicView_ResolvedImages(t *testing.T) {
	media := &fakeMedia{urls: map[int]string{7: "https://cdn/cover.jpg", 8: "https://cdn/me.jpg"}}
	p := newTestProjector(Collaborators{Media: media})
	user := testUser("u1")
	user.SetProperty(entity.PropertyDefaultCoverID, "7")
	user.SetProperty(entity.PropertyDefaultPictureID, "8")

	v, err := p.ProjectPublicView(user, nil, Features{})
	require.NoError(t, err)

	assert.Equal(t, media.GetPictureURL(7, entity.PictureSizeMediumCover, true), v.CoverImageURL)
	assert.Equal(t, media.GetPictureURL(8, entity.PictureSizeMediumProfileImage, true), v.ProfileImageURL)
}

func TestProjectPublicView_Fields(t *testing.T) {
	media := &fakeMedia{urls: map[int]string{3: "https://cdn/logo.png"}}
	p := newTestProjector(Collaborators{
		Media:      media,
		Permalinks: &fakePermalinks{slugs: map[string]string{"u1": "tony-hawk"}},
	})
	user := testUser("u1")
	user.Educations = []entity.Education{{
		ID:     "e1",
		Name:   "Skate Academy",
		School: &entity.School{ID: "s1", Name: "Academy", City: "San Diego", LogoID: 3},
	}}

	v, err := p.ProjectPublicView(user, nil, Features{})
	require.NoError(t, err)

	want := &PublicUserView{
		ID:               "u1",
		FirstName:        "Tony",
		LastName:         "Hawk",
		Name:             "Tony Hawk",
		UserName:         "birdman",
		DateCreatedUTC:   user.CreatedAt,
		DateCreatedLocal: user.CreatedAt.Add(2 * time.Hour),
		CoverImageURL:    testSettings.DefaultUserProfileCoverURL,
		ProfileImageURL:  testSettings.DefaultUserProfileImageURL,
		Active:           true,
		SeName:           "tony-hawk",
		Educations: []EducationView{{
			ID:   "e1",
			Name: "Skate Academy",
			School: &SchoolView{
				ID:      "s1",
				Name:    "Academy",
				City:    "San Diego",
				LogoID:  3,
				LogoURL: "https://cdn/logo.png?size=school_logo",
			},
		}},
		IsOnline: true,
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("ProjectPublicView() mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectPublicView_FollowInfo(t *testing.T) {
	follow := &fakeFollow{
		followers: map[string]int64{"u1": 12},
		following: map[string]int64{"u1": 4},
		edges:     map[string]bool{"u2>u1": true},
	}
	p := newTestProjector(Collaborators{Follow: follow})
	user := testUser("u1")

	t.Run("disabled", func(t *testing.T) {
		v, err := p.ProjectPublicView(user, testUser("u2"), Features{})
		require.NoError(t, err)
		assert.Zero(t, v.FollowerCount)
		assert.Zero(t, v.FollowingCount)
		assert.False(t, v.CanFollow)
		assert.Zero(t, v.FollowStatus)
	})

	t.Run("other viewer", func(t *testing.T) {
		v, err := p.ProjectPublicView(user, testUser("u2"), Features{WithFollowInfo: true})
		require.NoError(t, err)
		assert.Equal(t, int64(12), v.FollowerCount)
		assert.Equal(t, int64(4), v.FollowingCount)
		assert.True(t, v.CanFollow)
		assert.Equal(t, 1, v.FollowStatus)
	})

	t.Run("self", func(t *testing.T) {
		v, err := p.ProjectPublicView(user, testUser("u1"), Features{WithFollowInfo: true})
		require.NoError(t, err)
		assert.False(t, v.CanFollow)
		assert.Zero(t, v.FollowStatus)
	})

	t.Run("anonymous", func(t *testing.T) {
		v, err := p.ProjectPublicView(user, nil, Features{WithFollowInfo: true})
		require.NoError(t, err)
		assert.False(t, v.CanFollow)
	})
}

func TestProjectPublicView_FriendInfo(t *testing.T) {
	p := newTestProjector(Collaborators{Friend: &fakeFriend{count: 3, status: entity.FriendStatusRequestSent}})

	v, err := p.ProjectPublicView(testUser("u1"), testUser("u2"), Features{WithFriendInfo: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.FriendCount)
	assert.Equal(t, entity.FriendStatusRequestSent, v.FriendStatus)

	v, err = p.ProjectPublicView(testUser("u1"), nil, Features{WithFriendInfo: true})
	require.NoError(t, err)
	assert.Equal(t, entity.FriendStatusNone, v.FriendStatus)
}

func TestProjectPublicView_LastLoginAdminOnly(t *testing.T) {
	p := newTestProjector(Collaborators{})
	user := testUser("u1")
	lastLogin := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	user.LastLoginDate = &lastLogin

	v, err := p.ProjectPublicView(user, testUser("u2"), Features{})
	require.NoError(t, err)
	assert.Nil(t, v.LastLoginDateUTC)
	assert.Nil(t, v.LastLoginDateLocal)

	admin := testUser("admin")
	admin.Roles = []entity.Role{{ID: 1, SystemName: entity.RoleAdministrators}}
	v, err = p.ProjectPublicView(user, admin, Features{})
	require.NoError(t, err)
	require.NotNil(t, v.LastLoginDateUTC)
	assert.Equal(t, lastLogin, *v.LastLoginDateUTC)
	assert.Equal(t, lastLogin.Add(2*time.Hour), *v.LastLoginDateLocal)
}

func TestProjectPublicView_SelfNotifications(t *testing.T) {
	notifications := &fakeNotifications{}
	for i := 0; i < 20; i++ {
		notifications.items = append(notifications.items, entity.Notification{
			ID:              fmt.Sprintf("n%d", i),
			EventName:       "new_follower",
			PublishDateTime: testNow.Add(-time.Duration(i) * time.Minute),
			IsRead:          i%2 == 0,
		})
	}
	for i := 0; i < 5; i++ {
		notifications.items = append(notifications.items, entity.Notification{
			ID:              fmt.Sprintf("future%d", i),
			PublishDateTime: testNow.Add(time.Hour),
		})
	}
	p := newTestProjector(Collaborators{Notification: notifications})
	user := testUser("u1")

	v, err := p.ProjectPublicView(user, user, Features{WithNotifications: true})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(v.Notifications), MaxSelfNotifications)
	assert.Len(t, v.Notifications, MaxSelfNotifications)
	for _, n := range v.Notifications {
		assert.False(t, n.PublishDateTime.After(testNow), n.ID)
	}
	assert.Equal(t, int64(10), v.UnreadNotificationCount)

	other, err := p.ProjectPublicView(user, testUser("u2"), Features{WithNotifications: true})
	require.NoError(t, err)
	assert.Empty(t, other.Notifications)
	assert.Zero(t, other.UnreadNotificationCount)
}

func TestProjectPublicView_ShortCircuitSkipsNotifications(t *testing.T) {
	media := &fakeMedia{urls: map[int]string{1: "https://cdn/c.jpg", 2: "https://cdn/p.jpg"}}
	p := newTestProjector(Collaborators{Media: media, Notification: failingNotifications{t: t}})
	user := testUser("u1")
	user.SetProperty(entity.PropertyDefaultCoverID, "1")
	user.SetProperty(entity.PropertyDefaultPictureID, "2")

	v, err := p.ProjectPublicView(user, user, Features{WithNotifications: true})
	require.NoError(t, err)
	assert.Empty(t, v.Notifications)
	assert.True(t, v.IsOnline)
}

func TestProjectPublicView_MissingCollaborators(t *testing.T) {
	p := NewProjector(Collaborators{Dates: fakeDates{}}, testSettings, nil)
	_, err := p.ProjectPublicView(testUser("u1"), nil, Features{})
	assert.ErrorIs(t, err, ErrMissingCollaborator)

	p = newTestProjector(Collaborators{})
	_, err = p.ProjectPublicView(testUser("u1"), nil, Features{WithFollowInfo: true})
	assert.ErrorIs(t, err, ErrMissingCollaborator)

	_, err = p.ProjectPublicView(nil, nil, Features{})
	assert.Error(t, err)
}

func TestProjectPublicView_PermalinkError(t *testing.T) {
	p := newTestProjector(Collaborators{Permalinks: &fakePermalinks{err: errors.New("db down")}})

	_, err := p.ProjectPublicView(testUser("u1"), nil, Features{})
	assert.ErrorContains(t, err, "db down")
}
