package entity

import "time"

type TeamPage struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	TeamPictureID int       `json:"team_picture_id"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type GroupPage struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"team_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	PayEntryFee  bool      `json:"pay_entry_fee"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GroupPageMember struct {
	GroupPageID  string    `json:"group_page_id"`
	UserID       string    `json:"user_id"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type SkateMove struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type UserSkateMove struct {
	UserID    string     `json:"user_id"`
	SkateMove *SkateMove `json:"skate_move"`
	CreatedAt time.Time  `json:"created_at"`
}

type VideoAlbum struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	IsMain       bool      `json:"is_main"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Videos       []Video   `json:"videos,omitempty"`
}

type Video struct {
	ID           string    `json:"id"`
	VideoAlbumID string    `json:"video_album_id"`
	VideoURL     string    `json:"video_url"`
	Caption      string    `json:"caption"`
	DisplayOrder int       `json:"display_order"`
	LikeCount    int       `json:"like_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
