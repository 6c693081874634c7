package usecase

import (
	"fmt"
	"net/url"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"
)

type VideoAlbumInput struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	IsMain       bool   `json:"is_main"`
}

type VideoInput struct {
	VideoAlbumID string `json:"video_album_id" binding:"required"`
	VideoURL     string `json:"video_url" binding:"required"`
	Caption      string `json:"caption"`
	DisplayOrder int    `json:"display_order"`
}

type VideoUseCase interface {
	CreateAlbum(actorID string, in VideoAlbumInput) (*entity.VideoAlbum, error)
	GetAlbum(id string) (*entity.VideoAlbum, error)
	ListAlbums(userID string) ([]*entity.VideoAlbum, error)
	UpdateAlbum(actorID, id string, in VideoAlbumInput) (*entity.VideoAlbum, error)
	DeleteAlbum(actorID, id string) error

	CreateVideo(actorID string, in VideoInput) (*entity.Video, error)
	GetVideo(id string) (*entity.Video, error)
	UpdateVideo(actorID, id string, in VideoInput) (*entity.Video, error)
	DeleteVideo(actorID, id string) error
}

type videoUseCase struct {
	videoRepo persistent.VideoRepository
	access    access
	logger    *logger.Logger
}

func NewVideoUseCase(videoRepo persistent.VideoRepository, userRepo persistent.UserRepository, logger *logger.Logger) VideoUseCase {
	return &videoUseCase{
		videoRepo: videoRepo,
		access:    access{userRepo: userRepo},
		logger:    logger,
	}
}

func validVideoURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: video_url must be an http(s) URL", ErrInvalidInput)
	}
	return nil
}

func (uc *videoUseCase) CreateAlbum(actorID string, in VideoAlbumInput) (*entity.VideoAlbum, error) {
	album := &entity.VideoAlbum{
		UserID:       actorID,
		Name:         in.Name,
		DisplayOrder: in.DisplayOrder,
		IsMain:       in.IsMain,
	}
	if err := uc.videoRepo.CreateAlbum(album); err != nil {
		return nil, fmt.Errorf("failed to create video album: %w", err)
	}
	return album, nil
}

func (uc *videoUseCase) GetAlbum(id string) (*entity.VideoAlbum, error) {
	album, err := uc.videoRepo.GetAlbum(id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	return album, nil
}

func (uc *videoUseCase) ListAlbums(userID string) ([]*entity.VideoAlbum, error) {
	return uc.videoRepo.ListAlbums(userID)
}

func (uc *videoUseCase) ownedAlbum(actorID, id string) (*entity.VideoAlbum, error) {
	album, err := uc.GetAlbum(id)
	if err != nil {
		return nil, err
	}
	if err := uc.access.requireOwnerOrAdmin(actorID, album.UserID); err != nil {
		return nil, err
	}
	return album, nil
}

func (uc *videoUseCase) UpdateAlbum(actorID, id string, in VideoAlbumInput) (*entity.VideoAlbum, error) {
	album, err := uc.ownedAlbum(actorID, id)
	if err != nil {
		return nil, err
	}
	album.Name = in.Name
	album.DisplayOrder = in.DisplayOrder
	album.IsMain = in.IsMain
	if err := uc.videoRepo.UpdateAlbum(album); err != nil {
		return nil, fmt.Errorf("failed to update video album: %w", err)
	}
	return album, nil
}

func (uc *videoUseCase) DeleteAlbum(actorID, id string) error {
	if _, err := uc.ownedAlbum(actorID, id); err != nil {
		return err
	}
	if err := uc.videoRepo.DeleteAlbum(id); err != nil {
		return fmt.Errorf("failed to delete video album: %w", err)
	}
	return nil
}

func (uc *videoUseCase) CreateVideo(actorID string, in VideoInput) (*entity.Video, error) {
	if err := validVideoURL(in.VideoURL); err != nil {
		return nil, err
	}
	if _, err := uc.ownedAlbum(actorID, in.VideoAlbumID); err != nil {
		return nil, err
	}
	video := &entity.Video{
		VideoAlbumID: in.VideoAlbumID,
		VideoURL:     in.VideoURL,
		Caption:      in.Caption,
		DisplayOrder: in.DisplayOrder,
	}
	if err := uc.videoRepo.CreateVideo(video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return video, nil
}

func (uc *videoUseCase) GetVideo(id string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetVideo(id)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	return video, nil
}

func (uc *videoUseCase) UpdateVideo(actorID, id string, in VideoInput) (*entity.Video, error) {
	if err := validVideoURL(in.VideoURL); err != nil {
		return nil, err
	}
	video, err := uc.GetVideo(id)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedAlbum(actorID, video.VideoAlbumID); err != nil {
		return nil, err
	}
	video.VideoURL = in.VideoURL
	video.Caption = in.Caption
	video.DisplayOrder = in.DisplayOrder
	if err := uc.videoRepo.UpdateVideo(video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return video, nil
}

func (uc *videoUseCase) DeleteVideo(actorID, id string) error {
	video, err := uc.GetVideo(id)
	if err != nil {
		return err
	}
	if _, err := uc.ownedAlbum(actorID, video.VideoAlbumID); err != nil {
		return err
	}
	if err := uc.videoRepo.DeleteVideo(id); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}
