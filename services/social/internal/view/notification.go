package view

import (
	"time"

	"mob-social/services/social/internal/entity"
)

type NotificationView struct {
	ID              string     `json:"id"`
	EventName       string     `json:"event_name"`
	InitiatorID     string     `json:"initiator_id"`
	EntityName      string     `json:"entity_name"`
	EntityID        string     `json:"entity_id"`
	PublishDateTime time.Time  `json:"publish_date_time"`
	IsRead          bool       `json:"is_read"`
	ReadDateTime    *time.Time `json:"read_date_time,omitempty"`
}

func ProjectNotification(n entity.Notification) NotificationView {
	return NotificationView{
		ID:              n.ID,
		EventName:       n.EventName,
		InitiatorID:     n.InitiatorID,
		EntityName:      n.EntityName,
		EntityID:        n.EntityID,
		PublishDateTime: n.PublishDateTime,
		IsRead:          n.IsRead,
		ReadDateTime:    n.ReadDateTime,
	}
}
