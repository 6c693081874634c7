package persistent

import (
	"mob-social/pkg/models"
	"mob-social/services/social/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Name:          m.Name,
		Email:         m.Email,
		Username:      m.Username,
		Active:        m.Active,
		Remarks:       m.Remarks,
		LastLoginDate: m.LastLoginDate,
		CreatedAt:     m.CreatedAt,
	}
	for i := range m.Properties {
		user.Properties = append(user.Properties, *ToEntityPropertyEntity(&m.Properties[i]))
	}
	for _, ur := range m.UserRoles {
		if ur.Role != nil {
			user.Roles = append(user.Roles, *ToRoleEntity(ur.Role))
		} else {
			user.Roles = append(user.Roles, entity.Role{ID: ur.RoleID})
		}
	}
	for i := range m.Educations {
		user.Educations = append(user.Educations, *ToEducationEntity(&m.Educations[i]))
	}
	return user
}

// ToUserModel maps the user row only; properties and roles are saved separately.
func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Name:          e.Name,
		Email:         e.Email,
		Username:      e.Username,
		Active:        e.Active,
		Remarks:       e.Remarks,
		LastLoginDate: e.LastLoginDate,
		CreatedAt:     e.CreatedAt,
	}
}

func ToRoleEntity(m *models.Role) *entity.Role {
	if m == nil {
		return nil
	}
	return &entity.Role{
		ID:           m.ID,
		Name:         m.Name,
		SystemName:   m.SystemName,
		IsSystemRole: m.IsSystemRole,
	}
}

func ToEntityPropertyEntity(m *models.EntityProperty) *entity.EntityProperty {
	if m == nil {
		return nil
	}
	return &entity.EntityProperty{
		ID:           m.ID,
		EntityID:     m.EntityID,
		EntityName:   m.EntityName,
		PropertyName: m.PropertyName,
		Value:        m.Value,
	}
}

func ToEntityPropertyModel(e *entity.EntityProperty) *models.EntityProperty {
	if e == nil {
		return nil
	}
	return &models.EntityProperty{
		ID:           e.ID,
		EntityID:     e.EntityID,
		EntityName:   e.EntityName,
		PropertyName: e.PropertyName,
		Value:        e.Value,
	}
}

func ToEducationEntity(m *models.Education) *entity.Education {
	if m == nil {
		return nil
	}
	return &entity.Education{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Description:   m.Description,
		FromDate:      m.FromDate,
		ToDate:        m.ToDate,
		EducationType: int(m.EducationType),
		School:        ToSchoolEntity(m.School),
	}
}

func ToSchoolEntity(m *models.School) *entity.School {
	if m == nil {
		return nil
	}
	return &entity.School{
		ID:     m.ID,
		Name:   m.Name,
		City:   m.City,
		LogoID: m.LogoID,
	}
}

func ToPictureEntity(m *models.Picture) *entity.Picture {
	if m == nil {
		return nil
	}
	return &entity.Picture{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		StorageKey: m.StorageKey,
		MimeType:   m.MimeType,
		CreatedAt:  m.CreatedAt,
	}
}

func ToPictureModel(e *entity.Picture) *models.Picture {
	if e == nil {
		return nil
	}
	return &models.Picture{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		StorageKey: e.StorageKey,
		MimeType:   e.MimeType,
		CreatedAt:  e.CreatedAt,
	}
}

func ToPermalinkEntity(m *models.Permalink) *entity.Permalink {
	if m == nil {
		return nil
	}
	return &entity.Permalink{
		EntityName: m.EntityName,
		EntityID:   m.EntityID,
		Slug:       m.Slug,
		Active:     m.Active,
	}
}

func ToFriendEntity(m *models.UserFriend) *entity.Friend {
	if m == nil {
		return nil
	}
	return &entity.Friend{
		ID:            m.ID,
		FromUserID:    m.FromUserID,
		ToUserID:      m.ToUserID,
		Confirmed:     m.Confirmed,
		Blocked:       m.Blocked,
		DateRequested: m.DateRequested,
		DateConfirmed: m.DateConfirmed,
	}
}

func ToFriendModel(e *entity.Friend) *models.UserFriend {
	if e == nil {
		return nil
	}
	return &models.UserFriend{
		ID:            e.ID,
		FromUserID:    e.FromUserID,
		ToUserID:      e.ToUserID,
		Confirmed:     e.Confirmed,
		Blocked:       e.Blocked,
		DateRequested: e.DateRequested,
		DateConfirmed: e.DateConfirmed,
	}
}

func ToFollowEntity(m *models.UserFollow) *entity.Follow {
	if m == nil {
		return nil
	}
	return &entity.Follow{
		ID:         m.ID,
		FollowerID: m.FollowerID,
		TargetType: m.TargetType,
		TargetID:   m.TargetID,
		CreatedAt:  m.CreatedAt,
	}
}

func ToFollowModel(e *entity.Follow) *models.UserFollow {
	if e == nil {
		return nil
	}
	return &models.UserFollow{
		ID:         e.ID,
		FollowerID: e.FollowerID,
		TargetType: e.TargetType,
		TargetID:   e.TargetID,
		CreatedAt:  e.CreatedAt,
	}
}

func ToNotificationEntity(m *models.Notification) *entity.Notification {
	if m == nil {
		return nil
	}
	n := &entity.Notification{
		ID:              m.ID,
		UserID:          m.UserID,
		InitiatorID:     m.InitiatorID,
		EntityName:      m.EntityName,
		EntityID:        m.EntityID,
		PublishDateTime: m.PublishDateTime,
		IsRead:          m.IsRead,
		ReadDateTime:    m.ReadDateTime,
	}
	if m.NotificationEvent != nil {
		n.EventName = m.NotificationEvent.EventName
	}
	return n
}

func ToNotificationEventEntity(m *models.NotificationEvent) *entity.NotificationEvent {
	if m == nil {
		return nil
	}
	return &entity.NotificationEvent{
		ID:        m.ID,
		EventName: m.EventName,
		Enabled:   m.Enabled,
	}
}

func ToTeamPageEntity(m *models.TeamPage) *entity.TeamPage {
	if m == nil {
		return nil
	}
	return &entity.TeamPage{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		TeamPictureID: m.TeamPictureID,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToTeamPageModel(e *entity.TeamPage) *models.TeamPage {
	if e == nil {
		return nil
	}
	return &models.TeamPage{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		TeamPictureID: e.TeamPictureID,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToGroupPageEntity(m *models.GroupPage) *entity.GroupPage {
	if m == nil {
		return nil
	}
	return &entity.GroupPage{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Name:         m.Name,
		Description:  m.Description,
		DisplayOrder: m.DisplayOrder,
		PayEntryFee:  m.PayEntryFee,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToGroupPageModel(e *entity.GroupPage) *models.GroupPage {
	if e == nil {
		return nil
	}
	return &models.GroupPage{
		ID:           e.ID,
		TeamID:       e.TeamID,
		Name:         e.Name,
		Description:  e.Description,
		DisplayOrder: e.DisplayOrder,
		PayEntryFee:  e.PayEntryFee,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToGroupPageMemberEntity(m *models.GroupPageMember) *entity.GroupPageMember {
	if m == nil {
		return nil
	}
	return &entity.GroupPageMember{
		GroupPageID:  m.GroupPageID,
		UserID:       m.UserID,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
	}
}

func ToSkateMoveEntity(m *models.SkateMove) *entity.SkateMove {
	if m == nil {
		return nil
	}
	return &entity.SkateMove{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
	}
}

func ToSkateMoveModel(e *entity.SkateMove) *models.SkateMove {
	if e == nil {
		return nil
	}
	return &models.SkateMove{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		SortOrder:   e.SortOrder,
	}
}

func ToUserSkateMoveEntity(m *models.UserSkateMove) *entity.UserSkateMove {
	if m == nil {
		return nil
	}
	return &entity.UserSkateMove{
		UserID:    m.UserID,
		SkateMove: ToSkateMoveEntity(m.SkateMove),
		CreatedAt: m.CreatedAt,
	}
}

func ToVideoAlbumEntity(m *models.VideoAlbum) *entity.VideoAlbum {
	if m == nil {
		return nil
	}
	album := &entity.VideoAlbum{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		DisplayOrder: m.DisplayOrder,
		IsMain:       m.IsMain,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for i := range m.Videos {
		album.Videos = append(album.Videos, *ToVideoEntity(&m.Videos[i]))
	}
	return album
}

func ToVideoAlbumModel(e *entity.VideoAlbum) *models.VideoAlbum {
	if e == nil {
		return nil
	}
	return &models.VideoAlbum{
		ID:           e.ID,
		UserID:       e.UserID,
		Name:         e.Name,
		DisplayOrder: e.DisplayOrder,
		IsMain:       e.IsMain,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToVideoEntity(m *models.Video) *entity.Video {
	if m == nil {
		return nil
	}
	return &entity.Video{
		ID:           m.ID,
		VideoAlbumID: m.VideoAlbumID,
		VideoURL:     m.VideoURL,
		Caption:      m.Caption,
		DisplayOrder: m.DisplayOrder,
		LikeCount:    m.LikeCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *models.Video {
	if e == nil {
		return nil
	}
	return &models.Video{
		ID:           e.ID,
		VideoAlbumID: e.VideoAlbumID,
		VideoURL:     e.VideoURL,
		Caption:      e.Caption,
		DisplayOrder: e.DisplayOrder,
		LikeCount:    e.LikeCount,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
