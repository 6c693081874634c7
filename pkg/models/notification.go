package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationEvent struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	EventName string `gorm:"type:varchar(100);uniqueIndex;not null" json:"event_name"`
	Enabled   bool   `gorm:"default:true" json:"enabled"`
}

func (NotificationEvent) TableName() string {
	return "notification_events"
}

type Notification struct {
	ID                  string             `gorm:"type:uuid;primary_key" json:"id"`
	UserID              string             `gorm:"type:uuid;not null;index:idx_notification_user_publish" json:"user_id"`
	NotificationEventID int                `gorm:"not null" json:"notification_event_id"`
	InitiatorID         string             `gorm:"type:uuid" json:"initiator_id"`
	EntityName          string             `gorm:"type:varchar(100)" json:"entity_name"`
	EntityID            string             `gorm:"type:varchar(64)" json:"entity_id"`
	PublishDateTime     time.Time          `gorm:"not null;index:idx_notification_user_publish" json:"publish_date_time"`
	IsRead              bool               `gorm:"default:false" json:"is_read"`
	ReadDateTime        *time.Time         `json:"read_date_time"`
	CreatedAt           time.Time          `json:"created_at"`
	NotificationEvent   *NotificationEvent `gorm:"foreignKey:NotificationEventID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
