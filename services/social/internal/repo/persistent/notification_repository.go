package persistent

import (
	"time"

	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"

	"gorm.io/gorm"
)

// NotificationFilter selects a user's notifications published up to a point in time.
type NotificationFilter struct {
	UserID          string
	PublishedBefore time.Time
	UnreadOnly      bool
}

func (f NotificationFilter) apply(db *gorm.DB) *gorm.DB {
	db = db.Where("user_id = ?", f.UserID)
	if !f.PublishedBefore.IsZero() {
		db = db.Where("publish_date_time <= ?", f.PublishedBefore)
	}
	if f.UnreadOnly {
		db = db.Where("is_read = ?", false)
	}
	return db
}

type NotificationRepository interface {
	Create(notification *entity.Notification, eventID int) error
	Find(filter NotificationFilter, limit, offset int) ([]entity.Notification, error)
	Count(filter NotificationFilter) (int64, error)
	MarkRead(userID, notificationID string, at time.Time) (int64, error)
	MarkAllRead(userID string, at time.Time) (int64, error)
	GetEventByName(name string) (*entity.NotificationEvent, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *entity.Notification, eventID int) error {
	notificationModel := &models.Notification{
		UserID:              notification.UserID,
		NotificationEventID: eventID,
		InitiatorID:         notification.InitiatorID,
		EntityName:          notification.EntityName,
		EntityID:            notification.EntityID,
		PublishDateTime:     notification.PublishDateTime,
	}
	if err := r.db.Create(notificationModel).Error; err != nil {
		return err
	}
	notification.ID = notificationModel.ID
	return nil
}

// Find returns newest first.
func (r *notificationRepository) Find(filter NotificationFilter, limit, offset int) ([]entity.Notification, error) {
	var notificationModels []models.Notification
	query := filter.apply(r.db.Model(&models.Notification{})).
		Preload("NotificationEvent").
		Order("publish_date_time DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, err
	}
	notifications := make([]entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = *ToNotificationEntity(&notificationModels[i])
	}
	return notifications, nil
}

func (r *notificationRepository) Count(filter NotificationFilter) (int64, error) {
	var count int64
	err := filter.apply(r.db.Model(&models.Notification{})).Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkRead(userID, notificationID string, at time.Time) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "read_date_time": at})
	return result.RowsAffected, result.Error
}

func (r *notificationRepository) MarkAllRead(userID string, at time.Time) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND publish_date_time <= ?", userID, false, at).
		Updates(map[string]interface{}{"is_read": true, "read_date_time": at})
	return result.RowsAffected, result.Error
}

func (r *notificationRepository) GetEventByName(name string) (*entity.NotificationEvent, error) {
	var eventModel models.NotificationEvent
	if err := r.db.Where("event_name = ?", name).First(&eventModel).Error; err != nil {
		return nil, err
	}
	return ToNotificationEventEntity(&eventModel), nil
}
