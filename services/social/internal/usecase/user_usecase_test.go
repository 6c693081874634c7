package usecase

import (
	"encoding/json"
	"testing"

	"mob-social/pkg/clock"
	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type staticMedia struct{}

func (staticMedia) GetPictureURL(int, entity.PictureSize, bool) string { return "" }

func newUserUseCase() (UserUseCase, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	projector := view.NewProjector(view.Collaborators{
		Media: staticMedia{},
		Dates: NewDateTimeHelper("UTC", logger.New()),
	}, entity.MediaSettings{
		DefaultUserProfileImageURL: "/profile.png",
		DefaultUserProfileCoverURL: "/cover.png",
	}, clock.Fixed(fixedNow))
	return NewUserUseCase(userRepo, projector, logger.New()), userRepo
}

func adminUser(id string) *entity.User {
	return &entity.User{ID: id, Roles: []entity.Role{{ID: 1, SystemName: entity.RoleAdministrators}}}
}

func TestUserUseCase_GetUser_NotFound(t *testing.T) {
	uc, userRepo := newUserUseCase()
	userRepo.On("GetByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetUser("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUseCase_GetEditableProfile_AdminOnly(t *testing.T) {
	uc, userRepo := newUserUseCase()
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob"}, nil)
	userRepo.On("GetByID", "root").Return(adminUser("root"), nil)

	_, err := uc.GetEditableProfile("bob", "bob")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.GetEditableProfile("bob", "")
	assert.ErrorIs(t, err, ErrForbidden)

	form, err := uc.GetEditableProfile("bob", "root")
	require.NoError(t, err)
	assert.Equal(t, "/cover.png", form.CoverImageURL)
}

func TestUserUseCase_UpdateEditableProfile_UnknownRole(t *testing.T) {
	uc, userRepo := newUserUseCase()
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob"}, nil)
	userRepo.On("GetByID", "root").Return(adminUser("root"), nil)
	userRepo.On("ListRoles").Return([]entity.Role{{ID: 1}, {ID: 2}}, nil)

	_, err := uc.UpdateEditableProfile("bob", "root", &view.EditableUserView{UserName: "bob", RoleIDs: []int{2, 9}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUserUseCase_UpdateEditableProfile(t *testing.T) {
	uc, userRepo := newUserUseCase()
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob", Username: "bob"}, nil)
	userRepo.On("GetByID", "root").Return(adminUser("root"), nil)
	userRepo.On("ListRoles").Return([]entity.Role{{ID: 1}, {ID: 2}}, nil)
	userRepo.On("Update", mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "bobby" && len(u.Roles) == 1 && u.Roles[0].ID == 2
	})).Return(nil)
	userRepo.On("UpsertProperty", mock.MatchedBy(func(p *entity.EntityProperty) bool {
		return p.PropertyName == entity.PropertyDefaultCoverID && p.Value == "8"
	})).Return(nil)

	_, err := uc.UpdateEditableProfile("bob", "root", &view.EditableUserView{UserName: "bobby", RoleIDs: []int{2}, CoverImageID: 8})
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	// ProfileImageID 0 leaves the stored picture alone
	userRepo.AssertNotCalled(t, "UpsertProperty", mock.MatchedBy(func(p *entity.EntityProperty) bool {
		return p.PropertyName == entity.PropertyDefaultPictureID
	}))
}

func TestUserUseCase_GetPublicProfile_Anonymous(t *testing.T) {
	userRepo := new(MockUserRepository)
	projector := view.NewProjector(view.Collaborators{
		Media: staticMedia{},
		Dates: NewDateTimeHelper("UTC", logger.New()),
	}, entity.MediaSettings{}, clock.Fixed(fixedNow))
	uc := NewUserUseCase(userRepo, projector, logger.New())
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob"}, nil)

	// follow and friend services are not wired in this projector
	_, err := uc.GetPublicProfile("bob", "")
	assert.ErrorIs(t, err, view.ErrMissingCollaborator)
}

func TestUserUseCase_UpsertSetting(t *testing.T) {
	uc, userRepo := newUserUseCase()
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob"}, nil)
	userRepo.On("UpsertProperty", &entity.EntityProperty{
		EntityID:     "bob",
		EntityName:   entity.EntityNameUser,
		PropertyName: entity.PropertyTimeZoneID,
		Value:        "Europe/Lisbon",
	}).Return(nil)

	setting, err := uc.UpsertSetting("bob", "bob", entity.PropertyTimeZoneID, json.RawMessage(`"Europe/Lisbon"`))
	require.NoError(t, err)
	assert.Equal(t, view.KindString, setting.Kind)
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_UpsertSetting_Rejections(t *testing.T) {
	uc, userRepo := newUserUseCase()
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob"}, nil)

	_, err := uc.UpsertSetting("bob", "alice", entity.PropertyLanguage, json.RawMessage(`"en"`))
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = uc.UpsertSetting("bob", "bob", entity.PropertyPrivateProfile, json.RawMessage(`"sometimes"`))
	assert.ErrorIs(t, err, ErrInvalidInput)
	userRepo.AssertNotCalled(t, "UpsertProperty", mock.Anything)
}

func TestUserUseCase_ListSettings_SkipsUndecodable(t *testing.T) {
	uc, userRepo := newUserUseCase()
	userRepo.On("GetByID", "bob").Return(&entity.User{ID: "bob"}, nil)
	userRepo.On("GetProperties", entity.EntityNameUser, "bob").Return([]entity.EntityProperty{
		{PropertyName: entity.PropertyLanguage, Value: "en"},
		{PropertyName: entity.PropertyPrivateProfile, Value: "maybe"},
	}, nil)

	settings, err := uc.ListSettings("bob")
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, entity.PropertyLanguage, settings[0].Name)
}
