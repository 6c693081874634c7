package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EducationType int

const (
	EducationTypeHighSchool EducationType = iota + 1
	EducationTypeGraduation
	EducationTypePostGraduation
)

type School struct {
	ID     string `gorm:"type:uuid;primary_key" json:"id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	City   string `gorm:"type:varchar(255)" json:"city"`
	LogoID int    `gorm:"default:0" json:"logo_id"`
}

func (School) TableName() string {
	return "schools"
}

func (s *School) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type Education struct {
	ID            string        `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string        `gorm:"type:uuid;not null;index" json:"user_id"`
	SchoolID      *string       `gorm:"type:uuid" json:"school_id"`
	Name          string        `gorm:"type:varchar(255);not null" json:"name"`
	Description   string        `gorm:"type:text" json:"description"`
	FromDate      *time.Time    `json:"from_date"`
	ToDate        *time.Time    `json:"to_date"`
	EducationType EducationType `gorm:"default:1" json:"education_type"`
	School        *School       `gorm:"foreignKey:SchoolID" json:"-"`
}

func (Education) TableName() string {
	return "educations"
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
