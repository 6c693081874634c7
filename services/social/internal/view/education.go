package view

import (
	"time"

	"mob-social/services/social/internal/entity"
)

type SchoolView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	LogoID  int    `json:"logo_id"`
	LogoURL string `json:"logo_url"`
}

type EducationView struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	FromDate      *time.Time  `json:"from_date,omitempty"`
	ToDate        *time.Time  `json:"to_date,omitempty"`
	EducationType int         `json:"education_type"`
	School        *SchoolView `json:"school,omitempty"`
}

func ProjectEducation(e entity.Education, media MediaService) EducationView {
	v := EducationView{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		FromDate:      e.FromDate,
		ToDate:        e.ToDate,
		EducationType: e.EducationType,
	}
	if e.School != nil {
		v.School = &SchoolView{
			ID:      e.School.ID,
			Name:    e.School.Name,
			City:    e.School.City,
			LogoID:  e.School.LogoID,
			LogoURL: media.GetPictureURL(e.School.LogoID, entity.PictureSizeSchoolLogo, true),
		}
	}
	return v
}
