package persistent

import (
	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByIDs(ids []string) ([]*entity.User, error)
	Update(user *entity.User) error
	GetProperties(entityName, entityID string) ([]entity.EntityProperty, error)
	UpsertProperty(prop *entity.EntityProperty) error
	ListRoles() ([]entity.Role, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) withAssociations() *gorm.DB {
	return r.db.
		Preload("Properties", "entity_name = ?", entity.EntityNameUser).
		Preload("UserRoles.Role").
		Preload("Educations", func(db *gorm.DB) *gorm.DB {
			return db.Order("from_date DESC NULLS LAST")
		}).
		Preload("Educations.School")
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel models.User
	if err := r.withAssociations().Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByIDs(ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}
	var userModels []models.User
	if err := r.withAssociations().Where("id IN ?", ids).Order("username").Find(&userModels).Error; err != nil {
		return nil, err
	}
	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

// Update saves the editable columns and replaces the role set.
func (r *userRepository) Update(user *entity.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		userModel := ToUserModel(user)
		err := tx.Model(&models.User{ID: user.ID}).
			Select("first_name", "last_name", "name", "email", "username", "active", "remarks").
			Updates(userModel).Error
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		if len(user.Roles) == 0 {
			return nil
		}
		userRoles := make([]models.UserRole, 0, len(user.Roles))
		for _, role := range user.Roles {
			userRoles = append(userRoles, models.UserRole{UserID: user.ID, RoleID: role.ID})
		}
		return tx.Create(&userRoles).Error
	})
}

func (r *userRepository) GetProperties(entityName, entityID string) ([]entity.EntityProperty, error) {
	var propertyModels []models.EntityProperty
	err := r.db.Where("entity_name = ? AND entity_id = ?", entityName, entityID).
		Order("property_name").
		Find(&propertyModels).Error
	if err != nil {
		return nil, err
	}
	props := make([]entity.EntityProperty, len(propertyModels))
	for i := range propertyModels {
		props[i] = *ToEntityPropertyEntity(&propertyModels[i])
	}
	return props, nil
}

func (r *userRepository) UpsertProperty(prop *entity.EntityProperty) error {
	propertyModel := ToEntityPropertyModel(prop)
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entity_id"}, {Name: "entity_name"}, {Name: "property_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(propertyModel).Error
	if err != nil {
		return err
	}
	prop.ID = propertyModel.ID
	return nil
}

func (r *userRepository) ListRoles() ([]entity.Role, error) {
	var roleModels []models.Role
	if err := r.db.Order("id").Find(&roleModels).Error; err != nil {
		return nil, err
	}
	roles := make([]entity.Role, len(roleModels))
	for i := range roleModels {
		roles[i] = *ToRoleEntity(&roleModels[i])
	}
	return roles, nil
}
