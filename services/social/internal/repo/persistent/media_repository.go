package persistent

import (
	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"

	"gorm.io/gorm"
)

type PictureRepository interface {
	Create(picture *entity.Picture) error
	GetByID(id int) (*entity.Picture, error)
}

type pictureRepository struct {
	db *gorm.DB
}

func NewPictureRepository(db *gorm.DB) PictureRepository {
	return &pictureRepository{db: db}
}

func (r *pictureRepository) Create(picture *entity.Picture) error {
	pictureModel := ToPictureModel(picture)
	if err := r.db.Create(pictureModel).Error; err != nil {
		return err
	}
	picture.ID = pictureModel.ID
	picture.CreatedAt = pictureModel.CreatedAt
	return nil
}

func (r *pictureRepository) GetByID(id int) (*entity.Picture, error) {
	var pictureModel models.Picture
	if err := r.db.Where("id = ?", id).First(&pictureModel).Error; err != nil {
		return nil, err
	}
	return ToPictureEntity(&pictureModel), nil
}

type PermalinkRepository interface {
	GetActive(entityName, entityID string) (*entity.Permalink, error)
}

type permalinkRepository struct {
	db *gorm.DB
}

func NewPermalinkRepository(db *gorm.DB) PermalinkRepository {
	return &permalinkRepository{db: db}
}

func (r *permalinkRepository) GetActive(entityName, entityID string) (*entity.Permalink, error) {
	var permalinkModel models.Permalink
	err := r.db.Where("entity_name = ? AND entity_id = ? AND active = ?", entityName, entityID, true).
		Order("id DESC").
		First(&permalinkModel).Error
	if err != nil {
		return nil, err
	}
	return ToPermalinkEntity(&permalinkModel), nil
}
