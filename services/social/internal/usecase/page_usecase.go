package usecase

import (
	"fmt"
	"strings"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"
)

type TeamPageInput struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	TeamPictureID int    `json:"team_picture_id"`
}

type GroupPageInput struct {
	TeamID       string `json:"team_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	PayEntryFee  bool   `json:"pay_entry_fee"`
}

type PageUseCase interface {
	CreateTeamPage(actorID string, in TeamPageInput) (*entity.TeamPage, error)
	GetTeamPage(id string) (*entity.TeamPage, error)
	ListTeamPages(limit, offset int) ([]*entity.TeamPage, error)
	UpdateTeamPage(actorID, id string, in TeamPageInput) (*entity.TeamPage, error)
	DeleteTeamPage(actorID, id string) error

	CreateGroupPage(actorID string, in GroupPageInput) (*entity.GroupPage, error)
	GetGroupPage(id string) (*entity.GroupPage, error)
	ListGroupPages(teamID string) ([]*entity.GroupPage, error)
	UpdateGroupPage(actorID, id string, in GroupPageInput) (*entity.GroupPage, error)
	DeleteGroupPage(actorID, id string) error

	AddGroupMember(actorID, groupID, userID string, displayOrder int) (*entity.GroupPageMember, error)
	// RemoveGroupMember lets team managers remove anyone and members leave.
	RemoveGroupMember(actorID, groupID, userID string) error
	ListGroupMembers(groupID string) ([]*entity.GroupPageMember, error)
}

type pageUseCase struct {
	teamRepo  persistent.TeamPageRepository
	groupRepo persistent.GroupPageRepository
	userRepo  persistent.UserRepository
	access    access
	logger    *logger.Logger
}

func NewPageUseCase(
	teamRepo persistent.TeamPageRepository,
	groupRepo persistent.GroupPageRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) PageUseCase {
	return &pageUseCase{
		teamRepo:  teamRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		access:    access{userRepo: userRepo},
		logger:    logger,
	}
}

func (uc *pageUseCase) CreateTeamPage(actorID string, in TeamPageInput) (*entity.TeamPage, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	team := &entity.TeamPage{
		Name:          in.Name,
		Description:   in.Description,
		TeamPictureID: in.TeamPictureID,
		CreatedBy:     actorID,
	}
	if err := uc.teamRepo.Create(team); err != nil {
		uc.logger.Error("Failed to create team page: %v", err)
		return nil, fmt.Errorf("failed to create team page: %w", err)
	}
	uc.logger.Info("Team page %s created by %s", team.ID, actorID)
	return team, nil
}

func (uc *pageUseCase) GetTeamPage(id string) (*entity.TeamPage, error) {
	team, err := uc.teamRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	return team, nil
}

func (uc *pageUseCase) ListTeamPages(limit, offset int) ([]*entity.TeamPage, error) {
	return uc.teamRepo.List(limit, offset)
}

func (uc *pageUseCase) manageTeam(actorID, teamID string) (*entity.TeamPage, error) {
	team, err := uc.GetTeamPage(teamID)
	if err != nil {
		return nil, err
	}
	if err := uc.access.requireOwnerOrAdmin(actorID, team.CreatedBy); err != nil {
		return nil, err
	}
	return team, nil
}

func (uc *pageUseCase) UpdateTeamPage(actorID, id string, in TeamPageInput) (*entity.TeamPage, error) {
	team, err := uc.manageTeam(actorID, id)
	if err != nil {
		return nil, err
	}
	team.Name = in.Name
	team.Description = in.Description
	team.TeamPictureID = in.TeamPictureID
	if err := uc.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team page: %w", err)
	}
	return team, nil
}

func (uc *pageUseCase) DeleteTeamPage(actorID, id string) error {
	if _, err := uc.manageTeam(actorID, id); err != nil {
		return err
	}
	if err := uc.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team page: %w", err)
	}
	uc.logger.Info("Team page %s deleted by %s", id, actorID)
	return nil
}

func (uc *pageUseCase) CreateGroupPage(actorID string, in GroupPageInput) (*entity.GroupPage, error) {
	if _, err := uc.manageTeam(actorID, in.TeamID); err != nil {
		return nil, err
	}
	group := &entity.GroupPage{
		TeamID:       in.TeamID,
		Name:         in.Name,
		Description:  in.Description,
		DisplayOrder: in.DisplayOrder,
		PayEntryFee:  in.PayEntryFee,
	}
	if err := uc.groupRepo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group page: %w", err)
	}
	return group, nil
}

func (uc *pageUseCase) GetGroupPage(id string) (*entity.GroupPage, error) {
	group, err := uc.groupRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	return group, nil
}

func (uc *pageUseCase) ListGroupPages(teamID string) ([]*entity.GroupPage, error) {
	return uc.groupRepo.ListByTeam(teamID)
}

func (uc *pageUseCase) manageGroup(actorID, groupID string) (*entity.GroupPage, error) {
	group, err := uc.GetGroupPage(groupID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.manageTeam(actorID, group.TeamID); err != nil {
		return nil, err
	}
	return group, nil
}

func (uc *pageUseCase) UpdateGroupPage(actorID, id string, in GroupPageInput) (*entity.GroupPage, error) {
	group, err := uc.manageGroup(actorID, id)
	if err != nil {
		return nil, err
	}
	// moving a group between teams is not supported
	group.Name = in.Name
	group.Description = in.Description
	group.DisplayOrder = in.DisplayOrder
	group.PayEntryFee = in.PayEntryFee
	if err := uc.groupRepo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update group page: %w", err)
	}
	return group, nil
}

func (uc *pageUseCase) DeleteGroupPage(actorID, id string) error {
	if _, err := uc.manageGroup(actorID, id); err != nil {
		return err
	}
	if err := uc.groupRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete group page: %w", err)
	}
	return nil
}

func (uc *pageUseCase) AddGroupMember(actorID, groupID, userID string, displayOrder int) (*entity.GroupPageMember, error) {
	if _, err := uc.manageGroup(actorID, groupID); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetByID(userID); err != nil {
		return nil, mapNotFound(err, ErrUserNotFound)
	}
	member := &entity.GroupPageMember{GroupPageID: groupID, UserID: userID, DisplayOrder: displayOrder}
	if err := uc.groupRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add group member: %w", err)
	}
	return member, nil
}

func (uc *pageUseCase) RemoveGroupMember(actorID, groupID, userID string) error {
	if actorID != userID {
		if _, err := uc.manageGroup(actorID, groupID); err != nil {
			return err
		}
	}
	removed, err := uc.groupRepo.RemoveMember(groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

func (uc *pageUseCase) ListGroupMembers(groupID string) ([]*entity.GroupPageMember, error) {
	if _, err := uc.GetGroupPage(groupID); err != nil {
		return nil, err
	}
	return uc.groupRepo.ListMembers(groupID)
}
