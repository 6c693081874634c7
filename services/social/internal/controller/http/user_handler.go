package http

import (
	"encoding/json"
	"net/http"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/usecase"
	"mob-social/services/social/internal/view"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type UpsertSettingRequest struct {
	Value json.RawMessage `json:"value" swaggertype:"object"`
}

// GetProfile godoc
// @Summary      Get user profile
// @Description  Public profile with follow and friend info. Includes recent notifications when viewing your own profile.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  view.PublicUserView
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userUseCase.GetPublicProfile(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetMinimalProfile godoc
// @Summary      Get minimal user profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  view.MinimalPublicView
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/public [get]
func (h *UserHandler) GetMinimalProfile(c *gin.Context) {
	profile, err := h.userUseCase.GetMinimalProfile(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetEditableProfile godoc
// @Summary      Get user edit form
// @Description  Administrators only
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  view.EditableUserView
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/entity [get]
func (h *UserHandler) GetEditableProfile(c *gin.Context) {
	viewerID, ok := requireUser(c)
	if !ok {
		return
	}
	form, err := h.userUseCase.GetEditableProfile(c.Param("id"), viewerID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get user")
		return
	}
	c.JSON(http.StatusOK, form)
}

// UpdateEditableProfile godoc
// @Summary      Update user
// @Description  Administrators only. Replaces the user's role set with role_ids.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "User ID"
// @Param        request  body      view.EditableUserView  true  "User"
// @Success      200  {object}  view.EditableUserView
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id}/entity [put]
func (h *UserHandler) UpdateEditableProfile(c *gin.Context) {
	viewerID, ok := requireUser(c)
	if !ok {
		return
	}

	var form view.EditableUserView
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.userUseCase.UpdateEditableProfile(c.Param("id"), viewerID, &form)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListSettings godoc
// @Summary      List user settings
// @Tags         settings
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/settings [get]
func (h *UserHandler) ListSettings(c *gin.Context) {
	settings, err := h.userUseCase.ListSettings(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings, "count": len(settings)})
}

// UpsertSetting godoc
// @Summary      Save a setting
// @Description  Value is validated against the setting's declared kind
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                true  "User ID"
// @Param        name     path      string                true  "Setting name"
// @Param        request  body      UpsertSettingRequest  true  "Value"
// @Success      200  {object}  view.SettingView
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id}/settings/{name} [put]
func (h *UserHandler) UpsertSetting(c *gin.Context) {
	viewerID, ok := requireUser(c)
	if !ok {
		return
	}

	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.userUseCase.UpsertSetting(c.Param("id"), viewerID, c.Param("name"), req.Value)
	if err != nil {
		respondError(c, h.logger, err, "Failed to save setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}
