package usecase

import (
	"io"
	"time"

	"mob-social/pkg/queue"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ids []string) ([]*entity.User, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) GetProperties(entityName, entityID string) ([]entity.EntityProperty, error) {
	args := m.Called(entityName, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EntityProperty), args.Error(1)
}

func (m *MockUserRepository) UpsertProperty(prop *entity.EntityProperty) error {
	return m.Called(prop).Error(0)
}

func (m *MockUserRepository) ListRoles() ([]entity.Role, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Role), args.Error(1)
}

type MockFriendRepository struct {
	mock.Mock
}

var _ persistent.FriendRepository = (*MockFriendRepository)(nil)

func (m *MockFriendRepository) Create(friend *entity.Friend) error {
	return m.Called(friend).Error(0)
}

func (m *MockFriendRepository) Update(friend *entity.Friend) error {
	return m.Called(friend).Error(0)
}

func (m *MockFriendRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockFriendRepository) ReplaceRelation(oldID string, friend *entity.Friend) error {
	return m.Called(oldID, friend).Error(0)
}

func (m *MockFriendRepository) GetBetween(userA, userB string) (*entity.Friend, error) {
	args := m.Called(userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Friend), args.Error(1)
}

func (m *MockFriendRepository) Find(filter persistent.FriendFilter, limit, offset int) ([]*entity.Friend, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Friend), args.Error(1)
}

func (m *MockFriendRepository) Count(filter persistent.FriendFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockFollowRepository struct {
	mock.Mock
}

var _ persistent.FollowRepository = (*MockFollowRepository)(nil)

func (m *MockFollowRepository) Create(follow *entity.Follow) error {
	return m.Called(follow).Error(0)
}

func (m *MockFollowRepository) Delete(followerID, targetType, targetID string) (int64, error) {
	args := m.Called(followerID, targetType, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowRepository) Get(followerID, targetType, targetID string) (*entity.Follow, error) {
	args := m.Called(followerID, targetType, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Follow), args.Error(1)
}

func (m *MockFollowRepository) Count(filter persistent.FollowFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

var _ persistent.NotificationRepository = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) Create(notification *entity.Notification, eventID int) error {
	return m.Called(notification, eventID).Error(0)
}

func (m *MockNotificationRepository) Find(filter persistent.NotificationFilter, limit, offset int) ([]entity.Notification, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Count(filter persistent.NotificationFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(userID, notificationID string, at time.Time) (int64, error) {
	args := m.Called(userID, notificationID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(userID string, at time.Time) (int64, error) {
	args := m.Called(userID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) GetEventByName(name string) (*entity.NotificationEvent, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NotificationEvent), args.Error(1)
}

type MockPictureRepository struct {
	mock.Mock
}

var _ persistent.PictureRepository = (*MockPictureRepository)(nil)

func (m *MockPictureRepository) Create(picture *entity.Picture) error {
	args := m.Called(picture)
	if args.Error(0) == nil {
		picture.ID = 42
	}
	return args.Error(0)
}

func (m *MockPictureRepository) GetByID(id int) (*entity.Picture, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Picture), args.Error(1)
}

type MockTaskPublisher struct {
	mock.Mock
}

func (m *MockTaskPublisher) PublishTask(task queue.Task) error {
	return m.Called(task).Error(0)
}

type MockObjectStorage struct {
	mock.Mock
}

var _ ObjectStorage = (*MockObjectStorage)(nil)

func (m *MockObjectStorage) UploadFile(key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) ObjectURL(key string) string {
	return "https://bucket.s3.amazonaws.com/" + key
}

func (m *MockObjectStorage) DeleteFile(key string) error {
	return m.Called(key).Error(0)
}
