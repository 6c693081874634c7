package usecase

import (
	"errors"

	"mob-social/pkg/logger"
	"mob-social/pkg/queue"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrAlreadyExists       = errors.New("already exists")
	ErrInvalidFriendAction = errors.New("invalid friend action")
	ErrInvalidFollowTarget = errors.New("invalid follow target")
	ErrInvalidInput        = errors.New("invalid input")
)

// TaskPublisher is implemented by *queue.Client.
type TaskPublisher interface {
	PublishTask(task queue.Task) error
}

// mapNotFound swaps gorm's not-found error for sentinel.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// publishTask never fails the caller; the notification is lost if the broker is down.
func publishTask(publisher TaskPublisher, log *logger.Logger, task queue.Task) {
	if publisher == nil {
		return
	}
	log.Info("[NOTIFICATION QUEUE] Publishing %s task: user_id=%s, initiator_id=%s", task.Type, task.UserID, task.InitiatorID)
	if err := publisher.PublishTask(task); err != nil {
		log.Error("[NOTIFICATION QUEUE] Failed to publish %s task: %v", task.Type, err)
	}
}
