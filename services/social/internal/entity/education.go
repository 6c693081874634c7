package entity

import "time"

type School struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	LogoID int    `json:"logo_id"`
}

type Education struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	FromDate      *time.Time `json:"from_date,omitempty"`
	ToDate        *time.Time `json:"to_date,omitempty"`
	EducationType int        `json:"education_type"`
	School        *School    `json:"school,omitempty"`
}
