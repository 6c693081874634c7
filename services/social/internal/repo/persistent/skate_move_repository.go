package persistent

import (
	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkateMoveRepository interface {
	Create(move *entity.SkateMove) error
	GetByID(id string) (*entity.SkateMove, error)
	List() ([]*entity.SkateMove, error)
	Update(move *entity.SkateMove) error
	Delete(id string) error
	AttachToUser(userID, skateMoveID string) error
	DetachFromUser(userID, skateMoveID string) (int64, error)
	ListForUser(userID string) ([]*entity.UserSkateMove, error)
}

type skateMoveRepository struct {
	db *gorm.DB
}

func NewSkateMoveRepository(db *gorm.DB) SkateMoveRepository {
	return &skateMoveRepository{db: db}
}

func (r *skateMoveRepository) Create(move *entity.SkateMove) error {
	moveModel := ToSkateMoveModel(move)
	if err := r.db.Create(moveModel).Error; err != nil {
		return err
	}
	move.ID = moveModel.ID
	return nil
}

func (r *skateMoveRepository) GetByID(id string) (*entity.SkateMove, error) {
	var moveModel models.SkateMove
	if err := r.db.Where("id = ?", id).First(&moveModel).Error; err != nil {
		return nil, err
	}
	return ToSkateMoveEntity(&moveModel), nil
}

func (r *skateMoveRepository) List() ([]*entity.SkateMove, error) {
	var moveModels []models.SkateMove
	if err := r.db.Order("sort_order, name").Find(&moveModels).Error; err != nil {
		return nil, err
	}
	moves := make([]*entity.SkateMove, len(moveModels))
	for i := range moveModels {
		moves[i] = ToSkateMoveEntity(&moveModels[i])
	}
	return moves, nil
}

func (r *skateMoveRepository) Update(move *entity.SkateMove) error {
	return r.db.Model(&models.SkateMove{ID: move.ID}).
		Select("name", "description", "sort_order").
		Updates(ToSkateMoveModel(move)).Error
}

func (r *skateMoveRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skate_move_id = ?", id).Delete(&models.UserSkateMove{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.SkateMove{}).Error
	})
}

// AttachToUser is idempotent.
func (r *skateMoveRepository) AttachToUser(userID, skateMoveID string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserSkateMove{UserID: userID, SkateMoveID: skateMoveID}).Error
}

func (r *skateMoveRepository) DetachFromUser(userID, skateMoveID string) (int64, error) {
	result := r.db.Where("user_id = ? AND skate_move_id = ?", userID, skateMoveID).Delete(&models.UserSkateMove{})
	return result.RowsAffected, result.Error
}

func (r *skateMoveRepository) ListForUser(userID string) ([]*entity.UserSkateMove, error) {
	var userMoveModels []models.UserSkateMove
	if err := r.db.Preload("SkateMove").Where("user_id = ?", userID).Order("created_at").Find(&userMoveModels).Error; err != nil {
		return nil, err
	}
	moves := make([]*entity.UserSkateMove, len(userMoveModels))
	for i := range userMoveModels {
		moves[i] = ToUserSkateMoveEntity(&userMoveModels[i])
	}
	return moves, nil
}
