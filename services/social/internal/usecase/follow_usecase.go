package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mob-social/pkg/logger"
	"mob-social/pkg/queue"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const followerCountTTL = 10 * time.Minute

type FollowUseCase interface {
	Follow(followerID, targetType, targetID string) (*entity.Follow, error)
	Unfollow(followerID, targetType, targetID string) error
	GetFollowerCount(targetType, targetID string) (int64, error)
	GetFollowingCount(followerID string) (int64, error)
	// GetFollow returns nil, nil when there is no follow.
	GetFollow(followerID, targetType, targetID string) (*entity.Follow, error)
}

type followUseCase struct {
	followRepo  persistent.FollowRepository
	redisClient *redis.Client
	publisher   TaskPublisher
	logger      *logger.Logger
}

func NewFollowUseCase(followRepo persistent.FollowRepository, redisClient *redis.Client, publisher TaskPublisher, logger *logger.Logger) FollowUseCase {
	return &followUseCase{
		followRepo:  followRepo,
		redisClient: redisClient,
		publisher:   publisher,
		logger:      logger,
	}
}

func followerCountKey(targetType, targetID string) string {
	return fmt.Sprintf("followers:%s:%s", targetType, targetID)
}

func (uc *followUseCase) validate(followerID, targetType, targetID string) error {
	if !entity.IsFollowableType(targetType) || targetID == "" {
		return ErrInvalidFollowTarget
	}
	if targetType == entity.TargetTypeUser && targetID == followerID {
		return ErrInvalidFollowTarget
	}
	return nil
}

func (uc *followUseCase) Follow(followerID, targetType, targetID string) (*entity.Follow, error) {
	if err := uc.validate(followerID, targetType, targetID); err != nil {
		return nil, err
	}

	existing, err := uc.GetFollow(followerID, targetType, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	follow := &entity.Follow{FollowerID: followerID, TargetType: targetType, TargetID: targetID}
	if err := uc.followRepo.Create(follow); err != nil {
		uc.logger.Error("Failed to create follow: %v", err)
		return nil, fmt.Errorf("failed to follow: %w", err)
	}
	uc.invalidateFollowerCount(targetType, targetID)

	if targetType == entity.TargetTypeUser {
		publishTask(uc.publisher, uc.logger, queue.Task{
			Type:        queue.TaskNewFollower,
			UserID:      targetID,
			InitiatorID: followerID,
			EntityName:  entity.EntityNameUser,
			EntityID:    followerID,
			Priority:    3,
		})
	}

	return follow, nil
}

func (uc *followUseCase) Unfollow(followerID, targetType, targetID string) error {
	if !entity.IsFollowableType(targetType) {
		return ErrInvalidFollowTarget
	}

	deleted, err := uc.followRepo.Delete(followerID, targetType, targetID)
	if err != nil {
		uc.logger.Error("Failed to delete follow: %v", err)
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	uc.invalidateFollowerCount(targetType, targetID)
	return nil
}

func (uc *followUseCase) GetFollowerCount(targetType, targetID string) (int64, error) {
	key := followerCountKey(targetType, targetID)

	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(context.Background(), key).Result()
		if err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		} else if err != redis.Nil {
			uc.logger.Warn("Failed to read follower count from cache: %v", err)
		}
	}

	count, err := uc.followRepo.Count(persistent.FollowFilter{TargetType: targetType, TargetID: targetID})
	if err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	if uc.redisClient != nil {
		if err := uc.redisClient.Set(context.Background(), key, count, followerCountTTL).Err(); err != nil {
			uc.logger.Warn("Failed to cache follower count: %v", err)
		}
	}
	return count, nil
}

func (uc *followUseCase) GetFollowingCount(followerID string) (int64, error) {
	count, err := uc.followRepo.Count(persistent.FollowFilter{FollowerID: followerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}
	return count, nil
}

func (uc *followUseCase) GetFollow(followerID, targetType, targetID string) (*entity.Follow, error) {
	follow, err := uc.followRepo.Get(followerID, targetType, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get follow: %w", err)
	}
	return follow, nil
}

func (uc *followUseCase) invalidateFollowerCount(targetType, targetID string) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(context.Background(), followerCountKey(targetType, targetID)).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate follower count: %v", err)
	}
}
