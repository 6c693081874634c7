package usecase

import (
	"testing"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockTeamPageRepository struct {
	mock.Mock
	persistent.TeamPageRepository
}

func (m *MockTeamPageRepository) GetByID(id string) (*entity.TeamPage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TeamPage), args.Error(1)
}

func (m *MockTeamPageRepository) Update(team *entity.TeamPage) error {
	return m.Called(team).Error(0)
}

func (m *MockTeamPageRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

type MockSkateMoveRepository struct {
	mock.Mock
	persistent.SkateMoveRepository
}

func (m *MockSkateMoveRepository) GetByID(id string) (*entity.SkateMove, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SkateMove), args.Error(1)
}

func (m *MockSkateMoveRepository) Create(move *entity.SkateMove) error {
	return m.Called(move).Error(0)
}

func (m *MockSkateMoveRepository) AttachToUser(userID, moveID string) error {
	return m.Called(userID, moveID).Error(0)
}

type MockVideoRepository struct {
	mock.Mock
	persistent.VideoRepository
}

func (m *MockVideoRepository) GetAlbum(id string) (*entity.VideoAlbum, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoAlbum), args.Error(1)
}

func (m *MockVideoRepository) CreateVideo(video *entity.Video) error {
	return m.Called(video).Error(0)
}

func TestPageUseCase_UpdateTeamPage_OwnerOrAdmin(t *testing.T) {
	teamRepo := new(MockTeamPageRepository)
	userRepo := new(MockUserRepository)
	uc := NewPageUseCase(teamRepo, nil, userRepo, logger.New())

	teamRepo.On("GetByID", "team-1").Return(&entity.TeamPage{ID: "team-1", CreatedBy: "alice"}, nil)
	teamRepo.On("Update", mock.Anything).Return(nil)
	userRepo.On("GetByID", "mallory").Return(&entity.User{ID: "mallory"}, nil)
	userRepo.On("GetByID", "root").Return(adminUser("root"), nil)

	_, err := uc.UpdateTeamPage("mallory", "team-1", TeamPageInput{Name: "Hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	team, err := uc.UpdateTeamPage("alice", "team-1", TeamPageInput{Name: "Bones Brigade"})
	require.NoError(t, err)
	assert.Equal(t, "Bones Brigade", team.Name)

	_, err = uc.UpdateTeamPage("root", "team-1", TeamPageInput{Name: "Powell Peralta"})
	assert.NoError(t, err)
}

func TestPageUseCase_DeleteTeamPage_NotFound(t *testing.T) {
	teamRepo := new(MockTeamPageRepository)
	uc := NewPageUseCase(teamRepo, nil, new(MockUserRepository), logger.New())
	teamRepo.On("GetByID", "gone").Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, uc.DeleteTeamPage("alice", "gone"), ErrNotFound)
}

func TestSkateMoveUseCase_CreateRequiresAdmin(t *testing.T) {
	moveRepo := new(MockSkateMoveRepository)
	userRepo := new(MockUserRepository)
	uc := NewSkateMoveUseCase(moveRepo, userRepo, logger.New())

	userRepo.On("GetByID", "alice").Return(&entity.User{ID: "alice"}, nil)
	userRepo.On("GetByID", "root").Return(adminUser("root"), nil)
	moveRepo.On("Create", mock.Anything).Return(nil)

	_, err := uc.Create("alice", SkateMoveInput{Name: "Kickflip"})
	assert.ErrorIs(t, err, ErrForbidden)

	move, err := uc.Create("root", SkateMoveInput{Name: "Kickflip"})
	require.NoError(t, err)
	assert.Equal(t, "Kickflip", move.Name)
}

func TestSkateMoveUseCase_AttachToUser(t *testing.T) {
	moveRepo := new(MockSkateMoveRepository)
	userRepo := new(MockUserRepository)
	uc := NewSkateMoveUseCase(moveRepo, userRepo, logger.New())

	moveRepo.On("GetByID", "ollie").Return(&entity.SkateMove{ID: "ollie"}, nil)
	moveRepo.On("GetByID", "nope").Return(nil, gorm.ErrRecordNotFound)
	moveRepo.On("AttachToUser", "alice", "ollie").Return(nil)
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob"}, nil)

	assert.NoError(t, uc.AttachToUser("alice", "alice", "ollie"))
	assert.ErrorIs(t, uc.AttachToUser("alice", "alice", "nope"), ErrNotFound)
	assert.ErrorIs(t, uc.AttachToUser("bob", "alice", "ollie"), ErrForbidden)
}

func TestVideoUseCase_CreateVideo(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	userRepo := new(MockUserRepository)
	uc := NewVideoUseCase(videoRepo, userRepo, logger.New())

	videoRepo.On("GetAlbum", "album-1").Return(&entity.VideoAlbum{ID: "album-1", UserID: "alice"}, nil)
	videoRepo.On("CreateVideo", mock.Anything).Return(nil)
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob"}, nil)

	_, err := uc.CreateVideo("alice", VideoInput{VideoAlbumID: "album-1", VideoURL: "javascript:alert(1)"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.CreateVideo("bob", VideoInput{VideoAlbumID: "album-1", VideoURL: "https://videos.example.com/line.mp4"})
	assert.ErrorIs(t, err, ErrForbidden)

	video, err := uc.CreateVideo("alice", VideoInput{VideoAlbumID: "album-1", VideoURL: "https://videos.example.com/line.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "album-1", video.VideoAlbumID)
}
