package persistent

import (
	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"

	"gorm.io/gorm"
)

// FriendFilter narrows friend relation queries. Zero fields are ignored.
type FriendFilter struct {
	UserID    string // either endpoint
	Confirmed *bool
	Blocked   *bool
}

func (f FriendFilter) apply(db *gorm.DB) *gorm.DB {
	if f.UserID != "" {
		db = db.Where("(from_user_id = ? OR to_user_id = ?)", f.UserID, f.UserID)
	}
	if f.Confirmed != nil {
		db = db.Where("confirmed = ?", *f.Confirmed)
	}
	if f.Blocked != nil {
		db = db.Where("blocked = ?", *f.Blocked)
	}
	return db
}

type FriendRepository interface {
	Create(friend *entity.Friend) error
	Update(friend *entity.Friend) error
	Delete(id string) error
	// ReplaceRelation deletes oldID, when set, and creates friend in one transaction.
	ReplaceRelation(oldID string, friend *entity.Friend) error
	GetBetween(userA, userB string) (*entity.Friend, error)
	Find(filter FriendFilter, limit, offset int) ([]*entity.Friend, error)
	Count(filter FriendFilter) (int64, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(friend *entity.Friend) error {
	friendModel := ToFriendModel(friend)
	if err := r.db.Create(friendModel).Error; err != nil {
		return err
	}
	friend.ID = friendModel.ID
	return nil
}

func (r *friendRepository) Update(friend *entity.Friend) error {
	return r.db.Model(&models.UserFriend{ID: friend.ID}).
		Select("from_user_id", "to_user_id", "confirmed", "blocked", "date_confirmed").
		Updates(ToFriendModel(friend)).Error
}

func (r *friendRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.UserFriend{}).Error
}

func (r *friendRepository) ReplaceRelation(oldID string, friend *entity.Friend) error {
	friendModel := ToFriendModel(friend)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if oldID != "" {
			if err := tx.Where("id = ?", oldID).Delete(&models.UserFriend{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(friendModel).Error
	})
	if err != nil {
		return err
	}
	friend.ID = friendModel.ID
	return nil
}

// GetBetween returns the relation in either direction.
func (r *friendRepository) GetBetween(userA, userB string) (*entity.Friend, error) {
	var friendModel models.UserFriend
	err := r.db.Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
		userA, userB, userB, userA).
		First(&friendModel).Error
	if err != nil {
		return nil, err
	}
	return ToFriendEntity(&friendModel), nil
}

func (r *friendRepository) Find(filter FriendFilter, limit, offset int) ([]*entity.Friend, error) {
	var friendModels []models.UserFriend
	query := filter.apply(r.db.Model(&models.UserFriend{})).Order("date_requested DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&friendModels).Error; err != nil {
		return nil, err
	}
	friends := make([]*entity.Friend, len(friendModels))
	for i := range friendModels {
		friends[i] = ToFriendEntity(&friendModels[i])
	}
	return friends, nil
}

func (r *friendRepository) Count(filter FriendFilter) (int64, error) {
	var count int64
	err := filter.apply(r.db.Model(&models.UserFriend{})).Count(&count).Error
	return count, err
}
