package usecase

import (
	"errors"
	"fmt"

	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"

	"gorm.io/gorm"
)

type PermalinkUseCase interface {
	// GetPermalink returns nil, nil when the entity has no active permalink.
	GetPermalink(entityName, entityID string) (*entity.Permalink, error)
}

type permalinkUseCase struct {
	permalinkRepo persistent.PermalinkRepository
}

func NewPermalinkUseCase(permalinkRepo persistent.PermalinkRepository) PermalinkUseCase {
	return &permalinkUseCase{permalinkRepo: permalinkRepo}
}

func (uc *permalinkUseCase) GetPermalink(entityName, entityID string) (*entity.Permalink, error) {
	permalink, err := uc.permalinkRepo.GetActive(entityName, entityID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get permalink: %w", err)
	}
	return permalink, nil
}
