package view

import (
	"fmt"

	"mob-social/services/social/internal/entity"
)

type MinimalPublicView struct {
	ID              string `json:"id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Name            string `json:"name"`
	UserName        string `json:"user_name"`
	Email           string `json:"email"`
	CoverImageID    int    `json:"cover_image_id"`
	ProfileImageID  int    `json:"profile_image_id"`
	CoverImageURL   string `json:"cover_image_url"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (p *Projector) ProjectMinimalPublicView(user *entity.User) (*MinimalPublicView, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required")
	}
	if p.svc.Media == nil {
		return nil, fmt.Errorf("%w: media service", ErrMissingCollaborator)
	}

	coverID := user.PropertyInt(entity.PropertyDefaultCoverID)
	profileID := user.PropertyInt(entity.PropertyDefaultPictureID)

	return &MinimalPublicView{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Name:            user.Name,
		UserName:        user.Username,
		Email:           user.Email,
		CoverImageID:    coverID,
		ProfileImageID:  profileID,
		CoverImageURL:   p.resolveOrDefault(coverID, entity.PictureSizeMediumCover, p.settings.DefaultUserProfileCoverURL),
		ProfileImageURL: p.resolveOrDefault(profileID, entity.PictureSizeMediumProfileImage, p.settings.DefaultUserProfileImageURL),
	}, nil
}
