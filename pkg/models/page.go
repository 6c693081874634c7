package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamPage struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	TeamPictureID int       `gorm:"default:0" json:"team_picture_id"`
	CreatedBy     string    `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (TeamPage) TableName() string {
	return "team_pages"
}

func (t *TeamPage) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type GroupPage struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	TeamID        string    `gorm:"type:uuid;not null;index" json:"team_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	DisplayOrder  int       `gorm:"default:0" json:"display_order"`
	PayEntryFee   bool      `gorm:"default:false" json:"pay_entry_fee"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Members []GroupPageMember `gorm:"foreignKey:GroupPageID" json:"-"`
}

func (GroupPage) TableName() string {
	return "group_pages"
}

func (g *GroupPage) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}

type GroupPageMember struct {
	GroupPageID  string    `gorm:"type:uuid;primaryKey" json:"group_page_id"`
	UserID       string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (GroupPageMember) TableName() string {
	return "group_page_members"
}
