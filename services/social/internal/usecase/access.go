package usecase

import (
	"errors"
	"fmt"

	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"

	"gorm.io/gorm"
)

// access answers ownership questions against the stored role set rather
// than the role claim carried in the token.
type access struct {
	userRepo persistent.UserRepository
}

// viewer loads the acting user. An empty id or an unknown user is anonymous.
func (a access) viewer(userID string) (*entity.User, error) {
	if userID == "" {
		return nil, nil
	}
	user, err := a.userRepo.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer: %w", err)
	}
	return user, nil
}

func (a access) requireAdmin(actorID string) error {
	actor, err := a.viewer(actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdministrator() {
		return ErrForbidden
	}
	return nil
}

func (a access) requireOwnerOrAdmin(actorID, ownerID string) error {
	if actorID != "" && actorID == ownerID {
		return nil
	}
	return a.requireAdmin(actorID)
}
