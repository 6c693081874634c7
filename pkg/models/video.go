package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoAlbum struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsMain       bool      `gorm:"default:false" json:"is_main"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Videos []Video `gorm:"foreignKey:VideoAlbumID" json:"-"`
}

func (VideoAlbum) TableName() string {
	return "video_albums"
}

func (a *VideoAlbum) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

type Video struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	VideoAlbumID string    `gorm:"type:uuid;not null;index" json:"video_album_id"`
	VideoURL     string    `gorm:"type:varchar(500);not null" json:"video_url"`
	Caption      string    `gorm:"type:text" json:"caption"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	LikeCount    int       `gorm:"default:0" json:"like_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Video) TableName() string {
	return "videos"
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
