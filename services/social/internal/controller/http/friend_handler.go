package http

import (
	"net/http"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/entity"
	"mob-social/services/social/internal/usecase"
	"mob-social/services/social/internal/view"

	"github.com/gin-gonic/gin"
)

// MinimalProjector is implemented by *view.Projector.
type MinimalProjector interface {
	ProjectMinimalPublicView(user *entity.User) (*view.MinimalPublicView, error)
}

type FriendHandler struct {
	friendUseCase usecase.FriendUseCase
	projector     MinimalProjector
	logger        *logger.Logger
}

func NewFriendHandler(friendUseCase usecase.FriendUseCase, projector MinimalProjector, logger *logger.Logger) *FriendHandler {
	return &FriendHandler{
		friendUseCase: friendUseCase,
		projector:     projector,
		logger:        logger,
	}
}

// ListFriends godoc
// @Summary      List confirmed friends
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Page size (max 100)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /friends [get]
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	limit, offset := pagination(c, 20)

	users, total, err := h.friendUseCase.ListFriends(userID, limit, offset)
	if err != nil {
		respondError(c, h.logger, err, "Failed to list friends")
		return
	}

	friends := make([]*view.MinimalPublicView, 0, len(users))
	for _, user := range users {
		friend, err := h.projector.ProjectMinimalPublicView(user)
		if err != nil {
			respondError(c, h.logger, err, "Failed to list friends")
			return
		}
		friends = append(friends, friend)
	}

	c.JSON(http.StatusOK, gin.H{
		"friends": friends,
		"count":   len(friends),
		"total":   total,
		"offset":  offset,
	})
}

// SendRequest godoc
// @Summary      Send a friend request
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /friends/{user_id} [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	rel, err := h.friendUseCase.SendRequest(userID, c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to send friend request")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"friend": rel,
		"status": usecase.DeriveFriendStatus(userID, c.Param("user_id"), rel),
	})
}

// Confirm godoc
// @Summary      Confirm a friend request
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "Requester ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /friends/{user_id}/confirm [put]
func (h *FriendHandler) Confirm(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	rel, err := h.friendUseCase.Confirm(userID, c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to confirm friend request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"friend": rel, "status": entity.FriendStatusFriends})
}

// Block godoc
// @Summary      Block a user
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /friends/{user_id}/block [put]
func (h *FriendHandler) Block(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	rel, err := h.friendUseCase.Block(userID, c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to block user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"friend": rel, "status": entity.FriendStatusBlocked})
}

// Remove godoc
// @Summary      Decline, cancel, unfriend or unblock
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /friends/{user_id} [delete]
func (h *FriendHandler) Remove(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.friendUseCase.Remove(userID, c.Param("user_id")); err != nil {
		respondError(c, h.logger, err, "Failed to remove friend")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed"})
}
