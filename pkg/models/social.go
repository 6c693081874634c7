package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Followable target types.
const (
	TargetTypeUser      = "user"
	TargetTypeTeamPage  = "team_page"
	TargetTypeGroupPage = "group_page"
	TargetTypeSkateMove = "skate_move"
)

type UserFriend struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	FromUserID    string     `gorm:"type:uuid;not null;uniqueIndex:idx_friend_pair" json:"from_user_id"`
	ToUserID      string     `gorm:"type:uuid;not null;uniqueIndex:idx_friend_pair" json:"to_user_id"`
	Confirmed     bool       `gorm:"default:false" json:"confirmed"`
	Blocked       bool       `gorm:"default:false" json:"blocked"`
	DateRequested time.Time  `json:"date_requested"`
	DateConfirmed *time.Time `json:"date_confirmed"`
}

func (UserFriend) TableName() string {
	return "user_friends"
}

func (f *UserFriend) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

type UserFollow struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	FollowerID string    `gorm:"type:uuid;not null;uniqueIndex:idx_follow" json:"follower_id"`
	TargetType string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_follow;index:idx_follow_target" json:"target_type"`
	TargetID   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_follow;index:idx_follow_target" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}

func (f *UserFollow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
