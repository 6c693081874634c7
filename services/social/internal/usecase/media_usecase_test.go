package usecase

import (
	"errors"
	"strings"
	"testing"

	"mob-social/pkg/clock"
	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var mediaSettings = entity.MediaSettings{DefaultPictureURL: "/static/default.png"}

func TestMediaUseCase_GetPictureURL(t *testing.T) {
	pictureRepo := new(MockPictureRepository)
	uc := NewMediaUseCase(pictureRepo, nil, nil, "https://cdn.example.com/", mediaSettings, clock.Fixed(fixedNow), logger.New())

	pictureRepo.On("GetByID", 5).Return(&entity.Picture{ID: 5, StorageKey: "pictures/u1/a.jpg"}, nil)
	pictureRepo.On("GetByID", 6).Return(nil, gorm.ErrRecordNotFound)

	assert.Equal(t, "", uc.GetPictureURL(0, entity.PictureSizeOriginal, true))
	assert.Equal(t, "https://cdn.example.com/pictures/u1/a.jpg", uc.GetPictureURL(5, entity.PictureSizeOriginal, false))
	assert.Equal(t, "https://cdn.example.com/pictures/u1/a.jpg?size=medium_cover", uc.GetPictureURL(5, entity.PictureSizeMediumCover, false))
	assert.Equal(t, "/static/default.png", uc.GetPictureURL(6, entity.PictureSizeMediumCover, true))
	assert.Equal(t, "", uc.GetPictureURL(6, entity.PictureSizeMediumCover, false))
}

func TestMediaUseCase_GetPictureURL_StorageURL(t *testing.T) {
	pictureRepo := new(MockPictureRepository)
	storage := new(MockObjectStorage)
	uc := NewMediaUseCase(pictureRepo, nil, storage, "", mediaSettings, clock.Fixed(fixedNow), logger.New())
	pictureRepo.On("GetByID", 5).Return(&entity.Picture{ID: 5, StorageKey: "pictures/u1/a.jpg"}, nil)

	assert.Equal(t, "https://bucket.s3.amazonaws.com/pictures/u1/a.jpg", uc.GetPictureURL(5, entity.PictureSizeOriginal, true))
}

func TestMediaUseCase_UploadPicture(t *testing.T) {
	pictureRepo := new(MockPictureRepository)
	userRepo := new(MockUserRepository)
	storage := new(MockObjectStorage)
	uc := NewMediaUseCase(pictureRepo, userRepo, storage, "", mediaSettings, clock.Fixed(fixedNow), logger.New())

	storage.On("UploadFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "pictures/u1/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, "image/png").Return("https://bucket/x.png", nil)
	pictureRepo.On("Create", mock.AnythingOfType("*entity.Picture")).Return(nil)
	pictureRepo.On("GetByID", 42).Return(&entity.Picture{ID: 42, StorageKey: "pictures/u1/x.png"}, nil)
	userRepo.On("UpsertProperty", &entity.EntityProperty{
		EntityID:     "u1",
		EntityName:   entity.EntityNameUser,
		PropertyName: entity.PropertyDefaultPictureID,
		Value:        "42",
	}).Return(nil)

	picture, url, err := uc.UploadPicture("u1", strings.NewReader("png"), "Me.PNG", "image/png", entity.PropertyDefaultPictureID)
	require.NoError(t, err)
	assert.Equal(t, 42, picture.ID)
	assert.Equal(t, fixedNow, picture.CreatedAt)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/pictures/u1/x.png", url)
	userRepo.AssertExpectations(t)
}

func TestMediaUseCase_UploadPicture_RemovesOrphan(t *testing.T) {
	pictureRepo := new(MockPictureRepository)
	storage := new(MockObjectStorage)
	uc := NewMediaUseCase(pictureRepo, nil, storage, "", mediaSettings, clock.Fixed(fixedNow), logger.New())

	storage.On("UploadFile", mock.Anything, mock.Anything, "image/jpeg").Return("", nil)
	storage.On("DeleteFile", mock.Anything).Return(nil)
	pictureRepo.On("Create", mock.Anything).Return(errors.New("insert failed"))

	_, _, err := uc.UploadPicture("u1", strings.NewReader("jpg"), "a.jpg", "image/jpeg", "")
	assert.Error(t, err)
	storage.AssertCalled(t, "DeleteFile", mock.Anything)
}

func TestMediaUseCase_UploadPicture_NoStorage(t *testing.T) {
	uc := NewMediaUseCase(new(MockPictureRepository), nil, nil, "", mediaSettings, clock.Fixed(fixedNow), logger.New())

	_, _, err := uc.UploadPicture("u1", strings.NewReader("x"), "a.jpg", "image/jpeg", "")
	assert.Error(t, err)
}
