package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mob-social/pkg/clock"
	"mob-social/pkg/logger"
	"mob-social/pkg/queue"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type NotificationUseCase interface {
	// GetPublished returns notifications published at or before now, newest first.
	GetPublished(userID string, now time.Time, limit, offset int) ([]entity.Notification, error)
	CountPublished(userID string, now time.Time) (int64, error)
	CountUnread(userID string, now time.Time) (int64, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) (int64, error)
	HandleTask(task queue.Task) error
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	redisClient      *redis.Client
	clock            clock.Clock
	logger           *logger.Logger
}

func NewNotificationUseCase(notificationRepo persistent.NotificationRepository, redisClient *redis.Client, clk clock.Clock, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
		clock:            clk,
		logger:           logger,
	}
}

// NotificationChannel is the Redis pub/sub channel a user's stream listens on.
func NotificationChannel(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func (uc *notificationUseCase) GetPublished(userID string, now time.Time, limit, offset int) ([]entity.Notification, error) {
	notifications, err := uc.notificationRepo.Find(persistent.NotificationFilter{UserID: userID, PublishedBefore: now}, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}

func (uc *notificationUseCase) CountPublished(userID string, now time.Time) (int64, error) {
	count, err := uc.notificationRepo.Count(persistent.NotificationFilter{UserID: userID, PublishedBefore: now})
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

func (uc *notificationUseCase) CountUnread(userID string, now time.Time) (int64, error) {
	count, err := uc.notificationRepo.Count(persistent.NotificationFilter{UserID: userID, PublishedBefore: now, UnreadOnly: true})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (uc *notificationUseCase) MarkRead(userID, notificationID string) error {
	updated, err := uc.notificationRepo.MarkRead(userID, notificationID, uc.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

func (uc *notificationUseCase) MarkAllRead(userID string) (int64, error) {
	updated, err := uc.notificationRepo.MarkAllRead(userID, uc.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return updated, nil
}

// HandleTask turns a queued social event into a stored notification and pushes
// it to any open stream of the recipient.
func (uc *notificationUseCase) HandleTask(task queue.Task) error {
	if task.UserID == "" || task.InitiatorID == "" {
		uc.logger.Error("[NOTIFICATION HANDLER] Invalid task: missing user_id or initiator_id, task=%+v", task)
		return fmt.Errorf("invalid task: missing required fields")
	}

	event, err := uc.notificationRepo.GetEventByName(task.Type)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		uc.logger.Warn("[NOTIFICATION HANDLER] Unknown notification event %q, dropping task", task.Type)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get notification event: %w", err)
	}
	if !event.Enabled {
		uc.logger.Info("[NOTIFICATION HANDLER] Event %s is disabled, skipping", task.Type)
		return nil
	}

	notification := &entity.Notification{
		UserID:          task.UserID,
		EventName:       event.EventName,
		InitiatorID:     task.InitiatorID,
		EntityName:      task.EntityName,
		EntityID:        task.EntityID,
		PublishDateTime: uc.clock.Now(),
	}
	if err := uc.notificationRepo.Create(notification, event.ID); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to save notification for user %s: %v", task.UserID, err)
		return fmt.Errorf("failed to save notification: %w", err)
	}

	uc.pushToStream(notification)
	uc.logger.Info("[NOTIFICATION HANDLER] Delivered %s notification to user %s", task.Type, task.UserID)
	return nil
}

func (uc *notificationUseCase) pushToStream(notification *entity.Notification) {
	if uc.redisClient == nil {
		return
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		uc.logger.Error("Failed to marshal notification: %v", err)
		return
	}
	if err := uc.redisClient.Publish(context.Background(), NotificationChannel(notification.UserID), payload).Err(); err != nil {
		uc.logger.Warn("Failed to publish notification to stream: %v", err)
	}
}
