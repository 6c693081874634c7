package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"
	"mob-social/services/social/internal/view"
)

type UserUseCase interface {
	GetUser(userID string) (*entity.User, error)
	GetPublicProfile(userID, viewerID string) (*view.PublicUserView, error)
	GetMinimalProfile(userID string) (*view.MinimalPublicView, error)
	GetEditableProfile(userID, viewerID string) (*view.EditableUserView, error)
	UpdateEditableProfile(userID, viewerID string, form *view.EditableUserView) (*view.EditableUserView, error)
	ListSettings(userID string) ([]view.SettingView, error)
	UpsertSetting(userID, viewerID, name string, value json.RawMessage) (*view.SettingView, error)
}

type userUseCase struct {
	userRepo  persistent.UserRepository
	projector *view.Projector
	access    access
	logger    *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, projector *view.Projector, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo:  userRepo,
		projector: projector,
		access:    access{userRepo: userRepo},
		logger:    logger,
	}
}

func (uc *userUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (uc *userUseCase) GetPublicProfile(userID, viewerID string) (*view.PublicUserView, error) {
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}
	viewer, err := uc.access.viewer(viewerID)
	if err != nil {
		return nil, err
	}

	features := view.Features{
		WithFollowInfo:    true,
		WithFriendInfo:    true,
		WithNotifications: viewer != nil && viewer.ID == user.ID,
	}
	profile, err := uc.projector.ProjectPublicView(user, viewer, features)
	if err != nil {
		uc.logger.Error("Failed to project profile of user %s: %v", userID, err)
		return nil, err
	}
	return profile, nil
}

func (uc *userUseCase) GetMinimalProfile(userID string) (*view.MinimalPublicView, error) {
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return uc.projector.ProjectMinimalPublicView(user)
}

func (uc *userUseCase) GetEditableProfile(userID, viewerID string) (*view.EditableUserView, error) {
	viewer, err := uc.access.viewer(viewerID)
	if err != nil {
		return nil, err
	}
	if !viewer.IsAdministrator() {
		return nil, ErrForbidden
	}
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return uc.projector.ProjectEditableView(user, viewer)
}

func (uc *userUseCase) UpdateEditableProfile(userID, viewerID string, form *view.EditableUserView) (*view.EditableUserView, error) {
	viewer, err := uc.access.viewer(viewerID)
	if err != nil {
		return nil, err
	}
	if !viewer.IsAdministrator() {
		return nil, ErrForbidden
	}
	user, err := uc.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if err := uc.checkRoles(form.RoleIDs); err != nil {
		return nil, err
	}

	form.ApplyTo(user)
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	pictures := map[string]int{
		entity.PropertyDefaultCoverID:   form.CoverImageID,
		entity.PropertyDefaultPictureID: form.ProfileImageID,
	}
	for name, id := range pictures {
		// 0 keeps the stored picture
		if id <= 0 {
			continue
		}
		prop := &entity.EntityProperty{
			EntityID:     user.ID,
			EntityName:   entity.EntityNameUser,
			PropertyName: name,
			Value:        strconv.Itoa(id),
		}
		if err := uc.userRepo.UpsertProperty(prop); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", name, err)
		}
	}

	uc.logger.Info("User %s updated by administrator %s", userID, viewerID)
	return uc.GetEditableProfile(userID, viewerID)
}

func (uc *userUseCase) checkRoles(roleIDs []int) error {
	roles, err := uc.userRepo.ListRoles()
	if err != nil {
		return fmt.Errorf("failed to list roles: %w", err)
	}
	known := make(map[int]bool, len(roles))
	for _, role := range roles {
		known[role.ID] = true
	}
	for _, id := range roleIDs {
		if !known[id] {
			return fmt.Errorf("%w: unknown role %d", ErrInvalidInput, id)
		}
	}
	return nil
}

func (uc *userUseCase) ListSettings(userID string) ([]view.SettingView, error) {
	if _, err := uc.GetUser(userID); err != nil {
		return nil, err
	}
	props, err := uc.userRepo.GetProperties(entity.EntityNameUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings := make([]view.SettingView, 0, len(props))
	for _, prop := range props {
		setting, err := view.ProjectSetting(prop)
		if err != nil {
			uc.logger.Warn("Skipping setting %s of user %s: %v", prop.PropertyName, userID, err)
			continue
		}
		settings = append(settings, setting)
	}
	return settings, nil
}

func (uc *userUseCase) UpsertSetting(userID, viewerID, name string, value json.RawMessage) (*view.SettingView, error) {
	if viewerID == "" || viewerID != userID {
		return nil, ErrForbidden
	}
	if name == "" {
		return nil, fmt.Errorf("%w: setting name is required", ErrInvalidInput)
	}
	if _, err := uc.GetUser(userID); err != nil {
		return nil, err
	}

	decoded, err := view.DecodeSetting(name, string(value))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	prop := &entity.EntityProperty{
		EntityID:     userID,
		EntityName:   entity.EntityNameUser,
		PropertyName: name,
		Value:        view.EncodeSetting(name, decoded),
	}
	if err := uc.userRepo.UpsertProperty(prop); err != nil {
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}
	return &view.SettingView{Name: name, Kind: decoded.Kind, Value: decoded}, nil
}
