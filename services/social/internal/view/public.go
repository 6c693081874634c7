package view

import (
	"fmt"
	"time"

	"mob-social/services/social/internal/entity"
)

type PublicUserView struct {
	ID                      string              `json:"id"`
	FirstName               string              `json:"first_name"`
	LastName                string              `json:"last_name"`
	Name                    string              `json:"name"`
	UserName                string              `json:"user_name"`
	DateCreatedUTC          time.Time           `json:"date_created_utc"`
	DateCreatedLocal        time.Time           `json:"date_created_local"`
	LastLoginDateUTC        *time.Time          `json:"last_login_date_utc,omitempty"`
	LastLoginDateLocal      *time.Time          `json:"last_login_date_local,omitempty"`
	CoverImageURL           string              `json:"cover_image_url"`
	ProfileImageURL         string              `json:"profile_image_url"`
	Active                  bool                `json:"active"`
	SeName                  string              `json:"se_name"`
	Educations              []EducationView     `json:"educations"`
	FollowerCount           int64               `json:"follower_count"`
	FollowingCount          int64               `json:"following_count"`
	CanFollow               bool                `json:"can_follow"`
	FollowStatus            int                 `json:"follow_status"`
	FriendCount             int64               `json:"friend_count"`
	FriendStatus            entity.FriendStatus `json:"friend_status,omitempty"`
	Notifications           []NotificationView  `json:"notifications,omitempty"`
	UnreadNotificationCount int64               `json:"unread_notification_count"`
	IsOnline                bool                `json:"is_online"`
}

// ProjectPublicView builds the profile of user as seen by viewer, which may be
// nil for anonymous requests.
func (p *Projector) ProjectPublicView(user, viewer *entity.User, features Features) (*PublicUserView, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required")
	}
	if err := p.checkRequired(); err != nil {
		return nil, err
	}
	if err := p.checkFeatures(features); err != nil {
		return nil, err
	}

	v := &PublicUserView{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Name:             user.Name,
		UserName:         user.Username,
		DateCreatedUTC:   user.CreatedAt.UTC(),
		DateCreatedLocal: p.svc.Dates.GetDateInUserTimeZone(user.CreatedAt.UTC(), user),
		CoverImageURL:    p.svc.Media.GetPictureURL(user.PropertyInt(entity.PropertyDefaultCoverID), entity.PictureSizeMediumCover, true),
		ProfileImageURL:  p.svc.Media.GetPictureURL(user.PropertyInt(entity.PropertyDefaultPictureID), entity.PictureSizeMediumProfileImage, true),
		Active:           user.Active,
		Educations:       make([]EducationView, 0, len(user.Educations)),
		IsOnline:         PresenceAlwaysOnline,
	}
	for _, education := range user.Educations {
		v.Educations = append(v.Educations, ProjectEducation(education, p.svc.Media))
	}

	if p.svc.Permalinks != nil {
		permalink, err := p.svc.Permalinks.GetPermalink(entity.EntityNameUser, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get permalink: %w", err)
		}
		if permalink != nil {
			v.SeName = permalink.Slug
		}
	}

	// TODO: replace the administrator role check with a capability check once permissions exist.
	v.LastLoginDateUTC, v.LastLoginDateLocal = p.lastLogin(user, viewer)

	if features.WithFollowInfo {
		if err := p.addFollowInfo(v, user, viewer); err != nil {
			return nil, err
		}
	}

	if features.WithFriendInfo {
		if err := p.addFriendInfo(v, user, viewer); err != nil {
			return nil, err
		}
	}

	if v.CoverImageURL != "" && v.ProfileImageURL != "" {
		return v, nil
	}
	if v.CoverImageURL == "" {
		v.CoverImageURL = p.settings.DefaultUserProfileCoverURL
	}
	if v.ProfileImageURL == "" {
		v.ProfileImageURL = p.settings.DefaultUserProfileImageURL
	}

	if features.WithNotifications && viewer != nil && viewer.ID == user.ID {
		if err := p.addNotifications(v, user); err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (p *Projector) addFollowInfo(v *PublicUserView, user, viewer *entity.User) error {
	followers, err := p.svc.Follow.GetFollowerCount(entity.TargetTypeUser, user.ID)
	if err != nil {
		return fmt.Errorf("failed to count followers: %w", err)
	}
	following, err := p.svc.Follow.GetFollowingCount(user.ID)
	if err != nil {
		return fmt.Errorf("failed to count following: %w", err)
	}
	v.FollowerCount = followers
	v.FollowingCount = following
	v.CanFollow = viewer != nil && viewer.ID != user.ID

	if v.CanFollow {
		follow, err := p.svc.Follow.GetFollow(viewer.ID, entity.TargetTypeUser, user.ID)
		if err != nil {
			return fmt.Errorf("failed to get follow status: %w", err)
		}
		if follow != nil {
			v.FollowStatus = 1
		}
	}
	return nil
}

func (p *Projector) addFriendInfo(v *PublicUserView, user, viewer *entity.User) error {
	count, err := p.svc.Friend.CountConfirmedFriends(user.ID)
	if err != nil {
		return fmt.Errorf("failed to count friends: %w", err)
	}
	v.FriendCount = count
	v.FriendStatus = entity.FriendStatusNone

	if viewer != nil {
		status, err := p.svc.Friend.GetFriendStatus(viewer.ID, user.ID)
		if err != nil {
			return fmt.Errorf("failed to get friend status: %w", err)
		}
		v.FriendStatus = status
	}
	return nil
}

func (p *Projector) addNotifications(v *PublicUserView, user *entity.User) error {
	now := p.clock.Now()

	unread, err := p.svc.Notification.CountUnread(user.ID, now)
	if err != nil {
		return fmt.Errorf("failed to count unread notifications: %w", err)
	}
	notifications, err := p.svc.Notification.GetPublished(user.ID, now, MaxSelfNotifications, 0)
	if err != nil {
		return fmt.Errorf("failed to get notifications: %w", err)
	}

	v.UnreadNotificationCount = unread
	v.Notifications = make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		if len(v.Notifications) == MaxSelfNotifications {
			break
		}
		v.Notifications = append(v.Notifications, ProjectNotification(n))
	}
	return nil
}
