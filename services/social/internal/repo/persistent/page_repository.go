package persistent

import (
	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"

	"gorm.io/gorm"
)

type TeamPageRepository interface {
	Create(team *entity.TeamPage) error
	GetByID(id string) (*entity.TeamPage, error)
	List(limit, offset int) ([]*entity.TeamPage, error)
	Update(team *entity.TeamPage) error
	Delete(id string) error
}

type teamPageRepository struct {
	db *gorm.DB
}

func NewTeamPageRepository(db *gorm.DB) TeamPageRepository {
	return &teamPageRepository{db: db}
}

func (r *teamPageRepository) Create(team *entity.TeamPage) error {
	teamModel := ToTeamPageModel(team)
	if err := r.db.Create(teamModel).Error; err != nil {
		return err
	}
	*team = *ToTeamPageEntity(teamModel)
	return nil
}

func (r *teamPageRepository) GetByID(id string) (*entity.TeamPage, error) {
	var teamModel models.TeamPage
	if err := r.db.Where("id = ?", id).First(&teamModel).Error; err != nil {
		return nil, err
	}
	return ToTeamPageEntity(&teamModel), nil
}

func (r *teamPageRepository) List(limit, offset int) ([]*entity.TeamPage, error) {
	var teamModels []models.TeamPage
	if err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&teamModels).Error; err != nil {
		return nil, err
	}
	teams := make([]*entity.TeamPage, len(teamModels))
	for i := range teamModels {
		teams[i] = ToTeamPageEntity(&teamModels[i])
	}
	return teams, nil
}

func (r *teamPageRepository) Update(team *entity.TeamPage) error {
	return r.db.Model(&models.TeamPage{ID: team.ID}).
		Select("name", "description", "team_picture_id", "updated_at").
		Updates(ToTeamPageModel(team)).Error
}

// Delete removes the team together with its group pages and their members.
func (r *teamPageRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		groupIDs := tx.Model(&models.GroupPage{}).Select("id").Where("team_id = ?", id)
		if err := tx.Where("group_page_id IN (?)", groupIDs).Delete(&models.GroupPageMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.GroupPage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.TeamPage{}).Error
	})
}

type GroupPageRepository interface {
	Create(group *entity.GroupPage) error
	GetByID(id string) (*entity.GroupPage, error)
	ListByTeam(teamID string) ([]*entity.GroupPage, error)
	Update(group *entity.GroupPage) error
	Delete(id string) error
	AddMember(member *entity.GroupPageMember) error
	RemoveMember(groupPageID, userID string) (int64, error)
	ListMembers(groupPageID string) ([]*entity.GroupPageMember, error)
}

type groupPageRepository struct {
	db *gorm.DB
}

func NewGroupPageRepository(db *gorm.DB) GroupPageRepository {
	return &groupPageRepository{db: db}
}

func (r *groupPageRepository) Create(group *entity.GroupPage) error {
	groupModel := ToGroupPageModel(group)
	if err := r.db.Create(groupModel).Error; err != nil {
		return err
	}
	*group = *ToGroupPageEntity(groupModel)
	return nil
}

func (r *groupPageRepository) GetByID(id string) (*entity.GroupPage, error) {
	var groupModel models.GroupPage
	if err := r.db.Where("id = ?", id).First(&groupModel).Error; err != nil {
		return nil, err
	}
	return ToGroupPageEntity(&groupModel), nil
}

func (r *groupPageRepository) ListByTeam(teamID string) ([]*entity.GroupPage, error) {
	var groupModels []models.GroupPage
	if err := r.db.Where("team_id = ?", teamID).Order("display_order, name").Find(&groupModels).Error; err != nil {
		return nil, err
	}
	groups := make([]*entity.GroupPage, len(groupModels))
	for i := range groupModels {
		groups[i] = ToGroupPageEntity(&groupModels[i])
	}
	return groups, nil
}

func (r *groupPageRepository) Update(group *entity.GroupPage) error {
	return r.db.Model(&models.GroupPage{ID: group.ID}).
		Select("name", "description", "display_order", "pay_entry_fee", "updated_at").
		Updates(ToGroupPageModel(group)).Error
}

func (r *groupPageRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_page_id = ?", id).Delete(&models.GroupPageMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.GroupPage{}).Error
	})
}

func (r *groupPageRepository) AddMember(member *entity.GroupPageMember) error {
	memberModel := &models.GroupPageMember{
		GroupPageID:  member.GroupPageID,
		UserID:       member.UserID,
		DisplayOrder: member.DisplayOrder,
	}
	if err := r.db.Create(memberModel).Error; err != nil {
		return err
	}
	member.CreatedAt = memberModel.CreatedAt
	return nil
}

func (r *groupPageRepository) RemoveMember(groupPageID, userID string) (int64, error) {
	result := r.db.Where("group_page_id = ? AND user_id = ?", groupPageID, userID).Delete(&models.GroupPageMember{})
	return result.RowsAffected, result.Error
}

func (r *groupPageRepository) ListMembers(groupPageID string) ([]*entity.GroupPageMember, error) {
	var memberModels []models.GroupPageMember
	if err := r.db.Where("group_page_id = ?", groupPageID).Order("display_order, created_at").Find(&memberModels).Error; err != nil {
		return nil, err
	}
	members := make([]*entity.GroupPageMember, len(memberModels))
	for i := range memberModels {
		members[i] = ToGroupPageMemberEntity(&memberModels[i])
	}
	return members, nil
}
