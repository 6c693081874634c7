package http

import (
	"net/http"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followUseCase usecase.FollowUseCase
	logger        *logger.Logger
}

func NewFollowHandler(followUseCase usecase.FollowUseCase, logger *logger.Logger) *FollowHandler {
	return &FollowHandler{
		followUseCase: followUseCase,
		logger:        logger,
	}
}

// Follow godoc
// @Summary      Follow a user, page or skate move
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        target_type  path  string  true  "user, team_page, group_page or skate_move"
// @Param        target_id    path  string  true  "Target ID"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /follows/{target_type}/{target_id} [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	follow, err := h.followUseCase.Follow(userID, c.Param("target_type"), c.Param("target_id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to follow")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Followed", "follow": follow})
}

// Unfollow godoc
// @Summary      Unfollow
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        target_type  path  string  true  "Target type"
// @Param        target_id    path  string  true  "Target ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /follows/{target_type}/{target_id} [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.followUseCase.Unfollow(userID, c.Param("target_type"), c.Param("target_id")); err != nil {
		respondError(c, h.logger, err, "Failed to unfollow")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

// GetFollowers godoc
// @Summary      Follower count of a target
// @Tags         follows
// @Produce      json
// @Param        target_type  path  string  true  "Target type"
// @Param        target_id    path  string  true  "Target ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /follows/{target_type}/{target_id} [get]
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	targetType, targetID := c.Param("target_type"), c.Param("target_id")

	count, err := h.followUseCase.GetFollowerCount(targetType, targetID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to count followers")
		return
	}

	following := false
	if userID := c.GetString("user_id"); userID != "" {
		follow, err := h.followUseCase.GetFollow(userID, targetType, targetID)
		if err != nil {
			respondError(c, h.logger, err, "Failed to get follow status")
			return
		}
		following = follow != nil
	}

	c.JSON(http.StatusOK, gin.H{"follower_count": count, "following": following})
}
