// Package view turns persisted social entities into API response models.
package view

import (
	"errors"
	"fmt"
	"time"

	"mob-social/pkg/clock"
	"mob-social/services/social/internal/entity"
)

// PresenceAlwaysOnline stands in for a presence lookup.
const PresenceAlwaysOnline = true

// MaxSelfNotifications caps the notifications embedded in a user's own profile.
const MaxSelfNotifications = 15

var ErrMissingCollaborator = errors.New("missing collaborator")

type MediaService interface {
	GetPictureURL(pictureID int, size entity.PictureSize, useDefault bool) string
}

type PermalinkService interface {
	// GetPermalink returns nil when the entity has no active permalink.
	GetPermalink(entityName, entityID string) (*entity.Permalink, error)
}

type DateTimeHelper interface {
	GetDateInUserTimeZone(utc time.Time, user *entity.User) time.Time
}

type FollowService interface {
	GetFollowerCount(targetType, targetID string) (int64, error)
	GetFollowingCount(followerID string) (int64, error)
	// GetFollow returns nil when followerID does not follow the target.
	GetFollow(followerID, targetType, targetID string) (*entity.Follow, error)
}

type FriendService interface {
	CountConfirmedFriends(userID string) (int64, error)
	GetFriendStatus(viewerID, targetID string) (entity.FriendStatus, error)
}

type NotificationService interface {
	// GetPublished returns notifications published at or before now, newest first.
	GetPublished(userID string, now time.Time, limit, offset int) ([]entity.Notification, error)
	CountUnread(userID string, now time.Time) (int64, error)
}

// Features selects the optional augmentations of a public profile.
type Features struct {
	WithFollowInfo    bool
	WithFriendInfo    bool
	WithNotifications bool
}

// Collaborators are the services projections read from. Follow, Friend and
// Notification may be nil as long as the matching feature is never requested.
type Collaborators struct {
	Media        MediaService
	Permalinks   PermalinkService
	Dates        DateTimeHelper
	Follow       FollowService
	Friend       FriendService
	Notification NotificationService
}

type Projector struct {
	svc      Collaborators
	settings entity.MediaSettings
	clock    clock.Clock
}

func NewProjector(svc Collaborators, settings entity.MediaSettings, clk clock.Clock) *Projector {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Projector{svc: svc, settings: settings, clock: clk}
}

func (p *Projector) checkRequired() error {
	if p.svc.Media == nil {
		return fmt.Errorf("%w: media service", ErrMissingCollaborator)
	}
	if p.svc.Dates == nil {
		return fmt.Errorf("%w: date time helper", ErrMissingCollaborator)
	}
	return nil
}

func (p *Projector) checkFeatures(f Features) error {
	if f.WithFollowInfo && p.svc.Follow == nil {
		return fmt.Errorf("%w: follow service", ErrMissingCollaborator)
	}
	if f.WithFriendInfo && p.svc.Friend == nil {
		return fmt.Errorf("%w: friend service", ErrMissingCollaborator)
	}
	if f.WithNotifications && p.svc.Notification == nil {
		return fmt.Errorf("%w: notification service", ErrMissingCollaborator)
	}
	return nil
}

// resolveOrDefault maps an unset or unresolvable picture id to fallback.
func (p *Projector) resolveOrDefault(pictureID int, size entity.PictureSize, fallback string) string {
	if pictureID == 0 {
		return fallback
	}
	if url := p.svc.Media.GetPictureURL(pictureID, size, false); url != "" {
		return url
	}
	return fallback
}

// lastLogin is only disclosed to administrators.
func (p *Projector) lastLogin(user, viewer *entity.User) (*time.Time, *time.Time) {
	if !viewer.IsAdministrator() || user.LastLoginDate == nil {
		return nil, nil
	}
	utc := user.LastLoginDate.UTC()
	local := p.svc.Dates.GetDateInUserTimeZone(utc, user)
	return &utc, &local
}
