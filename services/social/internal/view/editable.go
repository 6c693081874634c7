package view

import (
	"fmt"
	"strconv"
	"time"

	"mob-social/services/social/internal/entity"
)

// EditableUserView is the administrator's edit form for a user.
type EditableUserView struct {
	ID                 string     `json:"id"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Name               string     `json:"name"`
	UserName           string     `json:"user_name" binding:"required"`
	Email              string     `json:"email" binding:"required,email"`
	Active             bool       `json:"active"`
	Remarks            string     `json:"remarks"`
	RoleIDs            []int      `json:"role_ids"`
	// 0 keeps the current picture; there is no way to clear one here.
	CoverImageID       int        `json:"cover_image_id"`
	ProfileImageID     int        `json:"profile_image_id"`
	CoverImageURL      string     `json:"cover_image_url"`
	ProfileImageURL    string     `json:"profile_image_url"`
	LastLoginDateUTC   *time.Time `json:"last_login_date_utc,omitempty"`
	LastLoginDateLocal *time.Time `json:"last_login_date_local,omitempty"`
}

func (p *Projector) ProjectEditableView(user, viewer *entity.User) (*EditableUserView, error) {
	if user == nil {
		return nil, fmt.Errorf("user is required")
	}
	if err := p.checkRequired(); err != nil {
		return nil, err
	}

	coverID := user.PropertyInt(entity.PropertyDefaultCoverID)
	profileID := user.PropertyInt(entity.PropertyDefaultPictureID)

	v := &EditableUserView{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Name:            user.Name,
		UserName:        user.Username,
		Email:           user.Email,
		Active:          user.Active,
		Remarks:         user.Remarks,
		RoleIDs:         user.RoleIDs(),
		CoverImageID:    coverID,
		ProfileImageID:  profileID,
		CoverImageURL:   p.resolveOrDefault(coverID, entity.PictureSizeMediumCover, p.settings.DefaultUserProfileCoverURL),
		ProfileImageURL: p.resolveOrDefault(profileID, entity.PictureSizeMediumProfileImage, p.settings.DefaultUserProfileImageURL),
	}
	v.LastLoginDateUTC, v.LastLoginDateLocal = p.lastLogin(user, viewer)

	return v, nil
}

// ApplyTo copies the editable fields onto user. The role set is replaced by
// RoleIDs with duplicates removed. Picture ids are only written when
// positive, so a form that omits them leaves the user's pictures as they are.
func (v *EditableUserView) ApplyTo(user *entity.User) {
	user.FirstName = v.FirstName
	user.LastName = v.LastName
	user.Name = v.Name
	user.Username = v.UserName
	user.Email = v.Email
	user.Active = v.Active
	user.Remarks = v.Remarks

	seen := make(map[int]bool, len(v.RoleIDs))
	roles := make([]entity.Role, 0, len(v.RoleIDs))
	for _, id := range v.RoleIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		roles = append(roles, entity.Role{ID: id})
	}
	user.Roles = roles

	if v.CoverImageID > 0 {
		user.SetProperty(entity.PropertyDefaultCoverID, strconv.Itoa(v.CoverImageID))
	}
	if v.ProfileImageID > 0 {
		user.SetProperty(entity.PropertyDefaultPictureID, strconv.Itoa(v.ProfileImageID))
	}
}
