package persistent

import (
	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"

	"gorm.io/gorm"
)

// FollowFilter narrows follow queries. Empty fields are ignored.
type FollowFilter struct {
	FollowerID string
	TargetType string
	TargetID   string
}

func (f FollowFilter) apply(db *gorm.DB) *gorm.DB {
	if f.FollowerID != "" {
		db = db.Where("follower_id = ?", f.FollowerID)
	}
	if f.TargetType != "" {
		db = db.Where("target_type = ?", f.TargetType)
	}
	if f.TargetID != "" {
		db = db.Where("target_id = ?", f.TargetID)
	}
	return db
}

type FollowRepository interface {
	Create(follow *entity.Follow) error
	Delete(followerID, targetType, targetID string) (int64, error)
	Get(followerID, targetType, targetID string) (*entity.Follow, error)
	Count(filter FollowFilter) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(follow *entity.Follow) error {
	followModel := ToFollowModel(follow)
	if err := r.db.Create(followModel).Error; err != nil {
		return err
	}
	follow.ID = followModel.ID
	follow.CreatedAt = followModel.CreatedAt
	return nil
}

func (r *followRepository) Delete(followerID, targetType, targetID string) (int64, error) {
	result := r.db.Where("follower_id = ? AND target_type = ? AND target_id = ?", followerID, targetType, targetID).
		Delete(&models.UserFollow{})
	return result.RowsAffected, result.Error
}

func (r *followRepository) Get(followerID, targetType, targetID string) (*entity.Follow, error) {
	var followModel models.UserFollow
	err := r.db.Where("follower_id = ? AND target_type = ? AND target_id = ?", followerID, targetType, targetID).
		First(&followModel).Error
	if err != nil {
		return nil, err
	}
	return ToFollowEntity(&followModel), nil
}

func (r *followRepository) Count(filter FollowFilter) (int64, error) {
	var count int64
	err := filter.apply(r.db.Model(&models.UserFollow{})).Count(&count).Error
	return count, err
}
