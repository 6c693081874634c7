package persistent

import (
	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"

	"gorm.io/gorm"
)

type VideoRepository interface {
	CreateAlbum(album *entity.VideoAlbum) error
	GetAlbum(id string) (*entity.VideoAlbum, error)
	ListAlbums(userID string) ([]*entity.VideoAlbum, error)
	UpdateAlbum(album *entity.VideoAlbum) error
	DeleteAlbum(id string) error
	CreateVideo(video *entity.Video) error
	GetVideo(id string) (*entity.Video, error)
	UpdateVideo(video *entity.Video) error
	DeleteVideo(id string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) CreateAlbum(album *entity.VideoAlbum) error {
	albumModel := ToVideoAlbumModel(album)
	if err := r.db.Create(albumModel).Error; err != nil {
		return err
	}
	*album = *ToVideoAlbumEntity(albumModel)
	return nil
}

func (r *videoRepository) GetAlbum(id string) (*entity.VideoAlbum, error) {
	var albumModel models.VideoAlbum
	err := r.db.Preload("Videos", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order, created_at")
	}).Where("id = ?", id).First(&albumModel).Error
	if err != nil {
		return nil, err
	}
	return ToVideoAlbumEntity(&albumModel), nil
}

func (r *videoRepository) ListAlbums(userID string) ([]*entity.VideoAlbum, error) {
	var albumModels []models.VideoAlbum
	if err := r.db.Where("user_id = ?", userID).Order("is_main DESC, display_order").Find(&albumModels).Error; err != nil {
		return nil, err
	}
	albums := make([]*entity.VideoAlbum, len(albumModels))
	for i := range albumModels {
		albums[i] = ToVideoAlbumEntity(&albumModels[i])
	}
	return albums, nil
}

func (r *videoRepository) UpdateAlbum(album *entity.VideoAlbum) error {
	return r.db.Model(&models.VideoAlbum{ID: album.ID}).
		Select("name", "display_order", "is_main", "updated_at").
		Updates(ToVideoAlbumModel(album)).Error
}

func (r *videoRepository) DeleteAlbum(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_album_id = ?", id).Delete(&models.Video{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.VideoAlbum{}).Error
	})
}

func (r *videoRepository) CreateVideo(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetVideo(id string) (*entity.Video, error) {
	var videoModel models.Video
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) UpdateVideo(video *entity.Video) error {
	return r.db.Model(&models.Video{ID: video.ID}).
		Select("caption", "display_order", "video_url", "updated_at").
		Updates(ToVideoModel(video)).Error
}

func (r *videoRepository) DeleteVideo(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Video{}).Error
}
