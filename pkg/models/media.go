package models

import "time"

type Picture struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID    string    `gorm:"type:uuid;index" json:"owner_id"`
	StorageKey string    `gorm:"type:varchar(500);not null" json:"storage_key"`
	MimeType   string    `gorm:"type:varchar(100)" json:"mime_type"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Picture) TableName() string {
	return "pictures"
}

type Permalink struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityName string `gorm:"type:varchar(100);not null;index:idx_permalink_entity" json:"entity_name"`
	EntityID   string `gorm:"type:varchar(64);not null;index:idx_permalink_entity" json:"entity_id"`
	Slug       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Active     bool   `gorm:"default:true" json:"active"`
}

func (Permalink) TableName() string {
	return "permalinks"
}
