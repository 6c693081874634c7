package usecase

import (
	"errors"
	"fmt"

	"mob-social/pkg/clock"
	"mob-social/pkg/logger"
	"mob-social/pkg/queue"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"

	"gorm.io/gorm"
)

type FriendUseCase interface {
	SendRequest(fromID, toID string) (*entity.Friend, error)
	Confirm(userID, requesterID string) (*entity.Friend, error)
	// Remove declines a pending request, cancels one, or ends a friendship.
	Remove(userID, otherID string) error
	Block(userID, otherID string) (*entity.Friend, error)
	CountConfirmedFriends(userID string) (int64, error)
	GetFriendStatus(viewerID, targetID string) (entity.FriendStatus, error)
	ListFriends(userID string, limit, offset int) ([]*entity.User, int64, error)
}

type friendUseCase struct {
	friendRepo persistent.FriendRepository
	userRepo   persistent.UserRepository
	publisher  TaskPublisher
	clock      clock.Clock
	logger     *logger.Logger
}

func NewFriendUseCase(
	friendRepo persistent.FriendRepository,
	userRepo persistent.UserRepository,
	publisher TaskPublisher,
	clk clock.Clock,
	logger *logger.Logger,
) FriendUseCase {
	return &friendUseCase{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		clock:      clk,
		logger:     logger,
	}
}

// DeriveFriendStatus describes rel from the viewer's side. rel may be nil.
func DeriveFriendStatus(viewerID, targetID string, rel *entity.Friend) entity.FriendStatus {
	switch {
	case viewerID == targetID:
		return entity.FriendStatusSelf
	case rel == nil:
		return entity.FriendStatusNone
	case rel.Blocked:
		return entity.FriendStatusBlocked
	case rel.Confirmed:
		return entity.FriendStatusFriends
	case rel.FromUserID == viewerID:
		return entity.FriendStatusRequestSent
	default:
		return entity.FriendStatusRequestReceived
	}
}

func (uc *friendUseCase) between(a, b string) (*entity.Friend, error) {
	rel, err := uc.friendRepo.GetBetween(a, b)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friend relation: %w", err)
	}
	return rel, nil
}

func (uc *friendUseCase) SendRequest(fromID, toID string) (*entity.Friend, error) {
	if fromID == toID {
		return nil, ErrInvalidFriendAction
	}
	if _, err := uc.userRepo.GetByID(toID); err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}

	rel, err := uc.between(fromID, toID)
	if err != nil {
		return nil, err
	}
	if rel != nil {
		switch {
		case rel.Blocked:
			return nil, ErrForbidden
		case rel.Confirmed, rel.FromUserID == fromID:
			return nil, ErrAlreadyExists
		default:
			// the other side already asked
			return uc.Confirm(fromID, toID)
		}
	}

	rel = &entity.Friend{
		FromUserID:    fromID,
		ToUserID:      toID,
		DateRequested: uc.clock.Now(),
	}
	if err := uc.friendRepo.Create(rel); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent request for the same pair won
			return nil, ErrAlreadyExists
		}
		uc.logger.Error("Failed to create friend request: %v", err)
		return nil, fmt.Errorf("failed to send friend request: %w", err)
	}

	publishTask(uc.publisher, uc.logger, queue.Task{
		Type:        queue.TaskFriendRequest,
		UserID:      toID,
		InitiatorID: fromID,
		EntityName:  entity.EntityNameUser,
		EntityID:    fromID,
		Priority:    5,
	})
	return rel, nil
}

func (uc *friendUseCase) Confirm(userID, requesterID string) (*entity.Friend, error) {
	rel, err := uc.between(userID, requesterID)
	if err != nil {
		return nil, err
	}
	if rel == nil {
		return nil, ErrNotFound
	}
	if rel.Blocked || rel.Confirmed || rel.ToUserID != userID {
		return nil, ErrInvalidFriendAction
	}

	now := uc.clock.Now()
	rel.Confirmed = true
	rel.DateConfirmed = &now
	if err := uc.friendRepo.Update(rel); err != nil {
		uc.logger.Error("Failed to confirm friend request: %v", err)
		return nil, fmt.Errorf("failed to confirm friend request: %w", err)
	}

	publishTask(uc.publisher, uc.logger, queue.Task{
		Type:        queue.TaskFriendConfirmed,
		UserID:      requesterID,
		InitiatorID: userID,
		EntityName:  entity.EntityNameUser,
		EntityID:    userID,
		Priority:    5,
	})
	return rel, nil
}

func (uc *friendUseCase) Remove(userID, otherID string) error {
	rel, err := uc.between(userID, otherID)
	if err != nil {
		return err
	}
	if rel == nil {
		return ErrNotFound
	}
	if rel.Blocked && rel.FromUserID != userID {
		return ErrForbidden
	}
	if err := uc.friendRepo.Delete(rel.ID); err != nil {
		return fmt.Errorf("failed to remove friend relation: %w", err)
	}
	return nil
}

func (uc *friendUseCase) Block(userID, otherID string) (*entity.Friend, error) {
	if userID == otherID {
		return nil, ErrInvalidFriendAction
	}

	rel, err := uc.between(userID, otherID)
	if err != nil {
		return nil, err
	}
	oldID := ""
	if rel != nil {
		if rel.Blocked {
			if rel.FromUserID == userID {
				return rel, nil
			}
			// the other side's block stays until they lift it
			return nil, ErrForbidden
		}
		oldID = rel.ID
	}

	rel = &entity.Friend{
		FromUserID:    userID,
		ToUserID:      otherID,
		Blocked:       true,
		DateRequested: uc.clock.Now(),
	}
	if err := uc.friendRepo.ReplaceRelation(oldID, rel); err != nil {
		uc.logger.Error("Failed to block user %s for %s: %v", otherID, userID, err)
		return nil, fmt.Errorf("failed to block user: %w", err)
	}
	uc.logger.Info("User %s blocked %s", userID, otherID)
	return rel, nil
}

func confirmedFriends(userID string) persistent.FriendFilter {
	confirmed, blocked := true, false
	return persistent.FriendFilter{UserID: userID, Confirmed: &confirmed, Blocked: &blocked}
}

func (uc *friendUseCase) CountConfirmedFriends(userID string) (int64, error) {
	count, err := uc.friendRepo.Count(confirmedFriends(userID))
	if err != nil {
		return 0, fmt.Errorf("failed to count friends: %w", err)
	}
	return count, nil
}

func (uc *friendUseCase) GetFriendStatus(viewerID, targetID string) (entity.FriendStatus, error) {
	if viewerID == targetID {
		return entity.FriendStatusSelf, nil
	}
	rel, err := uc.between(viewerID, targetID)
	if err != nil {
		return "", err
	}
	return DeriveFriendStatus(viewerID, targetID, rel), nil
}

func (uc *friendUseCase) ListFriends(userID string, limit, offset int) ([]*entity.User, int64, error) {
	filter := confirmedFriends(userID)

	rels, err := uc.friendRepo.Find(filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list friends: %w", err)
	}
	total, err := uc.friendRepo.Count(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count friends: %w", err)
	}
	if len(rels) == 0 {
		return []*entity.User{}, total, nil
	}

	ids := make([]string, 0, len(rels))
	for _, rel := range rels {
		ids = append(ids, rel.Other(userID))
	}
	users, err := uc.userRepo.GetByIDs(ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load friends: %w", err)
	}
	return users, total, nil
}
