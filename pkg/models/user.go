package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleSystemNameAdministrators = "Administrators"
	RoleSystemNameRegistered     = "Registered"
)

type User struct {
	ID            string     `gorm:"type:uuid;primary_key" json:"id"`
	FirstName     string     `gorm:"type:varchar(100)" json:"first_name"`
	LastName      string     `gorm:"type:varchar(100)" json:"last_name"`
	Name          string     `gorm:"type:varchar(200)" json:"name"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	Username      string     `gorm:"uniqueIndex;not null" json:"username"`
	Password      string     `gorm:"not null" json:"-"`
	Active        bool       `gorm:"default:true" json:"active"`
	Remarks       string     `gorm:"type:text" json:"remarks"`
	LastLoginDate *time.Time `json:"last_login_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Properties []EntityProperty `gorm:"foreignKey:EntityID;references:ID" json:"-"`
	UserRoles  []UserRole       `gorm:"foreignKey:UserID" json:"-"`
	Educations []Education      `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type Role struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	SystemName   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"system_name"`
	IsSystemRole bool   `gorm:"default:false" json:"is_system_role"`
}

func (Role) TableName() string {
	return "roles"
}

type UserRole struct {
	UserID string `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID int    `gorm:"primaryKey" json:"role_id"`
	Role   *Role  `gorm:"foreignKey:RoleID" json:"-"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// EntityProperty is a free-form key/value attribute attached to any entity.
type EntityProperty struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EntityID     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_entity_property" json:"entity_id"`
	EntityName   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_entity_property" json:"entity_name"`
	PropertyName string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_entity_property" json:"property_name"`
	Value        string    `gorm:"type:text" json:"value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (EntityProperty) TableName() string {
	return "entity_properties"
}
