package usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"mob-social/pkg/clock"
	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObjectStorage is implemented by *s3.Client.
type ObjectStorage interface {
	UploadFile(key string, body io.Reader, contentType string) (string, error)
	ObjectURL(key string) string
	DeleteFile(key string) error
}

type MediaUseCase interface {
	GetPictureURL(pictureID int, size entity.PictureSize, useDefault bool) string
	// UploadPicture stores a picture owned by ownerID. When setAs names a
	// picture property the owner's profile is pointed at the new picture.
	UploadPicture(ownerID string, body io.Reader, filename, contentType, setAs string) (*entity.Picture, string, error)
}

type mediaUseCase struct {
	pictureRepo persistent.PictureRepository
	userRepo    persistent.UserRepository
	storage     ObjectStorage
	baseURL     string
	settings    entity.MediaSettings
	clock       clock.Clock
	logger      *logger.Logger
}

func NewMediaUseCase(
	pictureRepo persistent.PictureRepository,
	userRepo persistent.UserRepository,
	storage ObjectStorage,
	baseURL string,
	settings entity.MediaSettings,
	clk clock.Clock,
	logger *logger.Logger,
) MediaUseCase {
	return &mediaUseCase{
		pictureRepo: pictureRepo,
		userRepo:    userRepo,
		storage:     storage,
		baseURL:     strings.TrimRight(baseURL, "/"),
		settings:    settings,
		clock:       clk,
		logger:      logger,
	}
}

func (uc *mediaUseCase) GetPictureURL(pictureID int, size entity.PictureSize, useDefault bool) string {
	if pictureID <= 0 {
		return ""
	}

	picture, err := uc.pictureRepo.GetByID(pictureID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			uc.logger.Warn("Failed to load picture %d: %v", pictureID, err)
		}
		if useDefault {
			return uc.settings.DefaultPictureURL
		}
		return ""
	}

	url := uc.objectURL(picture.StorageKey)
	if size != "" && size != entity.PictureSizeOriginal {
		url += "?size=" + string(size)
	}
	return url
}

func (uc *mediaUseCase) objectURL(key string) string {
	switch {
	case uc.baseURL != "":
		return uc.baseURL + "/" + key
	case uc.storage != nil:
		return uc.storage.ObjectURL(key)
	default:
		return "/" + key
	}
}

func (uc *mediaUseCase) UploadPicture(ownerID string, body io.Reader, filename, contentType, setAs string) (*entity.Picture, string, error) {
	if uc.storage == nil {
		return nil, "", fmt.Errorf("object storage is not configured")
	}
	if setAs != "" && setAs != entity.PropertyDefaultPictureID && setAs != entity.PropertyDefaultCoverID {
		return nil, "", fmt.Errorf("cannot set picture as %q", setAs)
	}

	key := fmt.Sprintf("pictures/%s/%s%s", ownerID, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
	if _, err := uc.storage.UploadFile(key, body, contentType); err != nil {
		uc.logger.Error("Failed to upload picture for user %s: %v", ownerID, err)
		return nil, "", fmt.Errorf("failed to upload picture: %w", err)
	}

	picture := &entity.Picture{
		OwnerID:    ownerID,
		StorageKey: key,
		MimeType:   contentType,
		CreatedAt:  uc.clock.Now(),
	}
	if err := uc.pictureRepo.Create(picture); err != nil {
		if delErr := uc.storage.DeleteFile(key); delErr != nil {
			uc.logger.Warn("Failed to remove orphaned object %s: %v", key, delErr)
		}
		return nil, "", fmt.Errorf("failed to save picture: %w", err)
	}

	if setAs != "" {
		prop := &entity.EntityProperty{
			EntityID:     ownerID,
			EntityName:   entity.EntityNameUser,
			PropertyName: setAs,
			Value:        strconv.Itoa(picture.ID),
		}
		if err := uc.userRepo.UpsertProperty(prop); err != nil {
			return nil, "", fmt.Errorf("failed to set %s: %w", setAs, err)
		}
	}

	uc.logger.Info("Picture %d uploaded for user %s", picture.ID, ownerID)
	return picture, uc.GetPictureURL(picture.ID, entity.PictureSizeOriginal, false), nil
}
