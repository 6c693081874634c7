package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkateMove struct {
	ID          string `gorm:"type:uuid;primary_key" json:"id"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
}

func (SkateMove) TableName() string {
	return "skate_moves"
}

func (s *SkateMove) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type UserSkateMove struct {
	UserID      string     `gorm:"type:uuid;primaryKey" json:"user_id"`
	SkateMoveID string     `gorm:"type:uuid;primaryKey" json:"skate_move_id"`
	CreatedAt   time.Time  `json:"created_at"`
	SkateMove   *SkateMove `gorm:"foreignKey:SkateMoveID" json:"-"`
}

func (UserSkateMove) TableName() string {
	return "user_skate_moves"
}
