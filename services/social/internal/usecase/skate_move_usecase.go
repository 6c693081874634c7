package usecase

import (
	"fmt"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"
)

type SkateMoveInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// SkateMoveUseCase manages the move catalog (administrators) and the moves
// each user lists on their profile.
type SkateMoveUseCase interface {
	Create(actorID string, in SkateMoveInput) (*entity.SkateMove, error)
	Get(id string) (*entity.SkateMove, error)
	List() ([]*entity.SkateMove, error)
	Update(actorID, id string, in SkateMoveInput) (*entity.SkateMove, error)
	Delete(actorID, id string) error
	AttachToUser(actorID, userID, moveID string) error
	DetachFromUser(actorID, userID, moveID string) error
	ListForUser(userID string) ([]*entity.UserSkateMove, error)
}

type skateMoveUseCase struct {
	moveRepo persistent.SkateMoveRepository
	userRepo persistent.UserRepository
	access   access
	logger   *logger.Logger
}

func NewSkateMoveUseCase(moveRepo persistent.SkateMoveRepository, userRepo persistent.UserRepository, logger *logger.Logger) SkateMoveUseCase {
	return &skateMoveUseCase{
		moveRepo: moveRepo,
		userRepo: userRepo,
		access:   access{userRepo: userRepo},
		logger:   logger,
	}
}

func (uc *skateMoveUseCase) Create(actorID string, in SkateMoveInput) (*entity.SkateMove, error) {
	if err := uc.access.requireAdmin(actorID); err != nil {
		return nil, err
	}
	move := &entity.SkateMove{Name: in.Name, Description: in.Description, SortOrder: in.SortOrder}
	if err := uc.moveRepo.Create(move); err != nil {
		return nil, fmt.Errorf("failed to create skate move: %w", err)
	}
	return move, nil
}

func (uc *skateMoveUseCase) Get(id string) (*entity.SkateMove, error) {
	move, err := uc.moveRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	return move, nil
}

func (uc *skateMoveUseCase) List() ([]*entity.SkateMove, error) {
	return uc.moveRepo.List()
}

func (uc *skateMoveUseCase) Update(actorID, id string, in SkateMoveInput) (*entity.SkateMove, error) {
	if err := uc.access.requireAdmin(actorID); err != nil {
		return nil, err
	}
	move, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	move.Name = in.Name
	move.Description = in.Description
	move.SortOrder = in.SortOrder
	if err := uc.moveRepo.Update(move); err != nil {
		return nil, fmt.Errorf("failed to update skate move: %w", err)
	}
	return move, nil
}

func (uc *skateMoveUseCase) Delete(actorID, id string) error {
	if err := uc.access.requireAdmin(actorID); err != nil {
		return err
	}
	if _, err := uc.Get(id); err != nil {
		return err
	}
	if err := uc.moveRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete skate move: %w", err)
	}
	return nil
}

func (uc *skateMoveUseCase) AttachToUser(actorID, userID, moveID string) error {
	if err := uc.access.requireOwnerOrAdmin(actorID, userID); err != nil {
		return err
	}
	if _, err := uc.Get(moveID); err != nil {
		return err
	}
	if err := uc.moveRepo.AttachToUser(userID, moveID); err != nil {
		return fmt.Errorf("failed to add skate move: %w", err)
	}
	return nil
}

func (uc *skateMoveUseCase) DetachFromUser(actorID, userID, moveID string) error {
	if err := uc.access.requireOwnerOrAdmin(actorID, userID); err != nil {
		return err
	}
	removed, err := uc.moveRepo.DetachFromUser(userID, moveID)
	if err != nil {
		return fmt.Errorf("failed to remove skate move: %w", err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

func (uc *skateMoveUseCase) ListForUser(userID string) ([]*entity.UserSkateMove, error) {
	return uc.moveRepo.ListForUser(userID)
}
