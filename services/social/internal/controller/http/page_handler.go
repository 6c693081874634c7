package http

import (
	"net/http"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageUseCase usecase.PageUseCase
	logger      *logger.Logger
}

func NewPageHandler(pageUseCase usecase.PageUseCase, logger *logger.Logger) *PageHandler {
	return &PageHandler{
		pageUseCase: pageUseCase,
		logger:      logger,
	}
}

type AddMemberRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

// CreateTeamPage godoc
// @Summary      Create a team page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  usecase.TeamPageInput  true  "Team page"
// @Success      201  {object}  entity.TeamPage
// @Failure      400  {object}  map[string]string
// @Router       /team-pages [post]
func (h *PageHandler) CreateTeamPage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.TeamPageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.pageUseCase.CreateTeamPage(userID, req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create team page")
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeamPages godoc
// @Summary      List team pages
// @Tags         pages
// @Produce      json
// @Param        limit   query  int  false  "Page size (max 100)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /team-pages [get]
func (h *PageHandler) ListTeamPages(c *gin.Context) {
	limit, offset := pagination(c, 20)

	teams, err := h.pageUseCase.ListTeamPages(limit, offset)
	if err != nil {
		respondError(c, h.logger, err, "Failed to list team pages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_pages": teams, "count": len(teams), "offset": offset})
}

// GetTeamPage godoc
// @Summary      Get a team page with its groups
// @Tags         pages
// @Produce      json
// @Param        id   path  string  true  "Team page ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /team-pages/{id} [get]
func (h *PageHandler) GetTeamPage(c *gin.Context) {
	team, err := h.pageUseCase.GetTeamPage(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get team page")
		return
	}
	groups, err := h.pageUseCase.ListGroupPages(team.ID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get team page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_page": team, "group_pages": groups})
}

// UpdateTeamPage godoc
// @Summary      Update a team page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                 true  "Team page ID"
// @Param        request  body  usecase.TeamPageInput  true  "Team page"
// @Success      200  {object}  entity.TeamPage
// @Failure      403  {object}  map[string]string
// @Router       /team-pages/{id} [put]
func (h *PageHandler) UpdateTeamPage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.TeamPageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.pageUseCase.UpdateTeamPage(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update team page")
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeamPage godoc
// @Summary      Delete a team page and its groups
// @Tags         pages
// @Security     BearerAuth
// @Param        id   path  string  true  "Team page ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /team-pages/{id} [delete]
func (h *PageHandler) DeleteTeamPage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.pageUseCase.DeleteTeamPage(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete team page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team page deleted"})
}

// CreateGroupPage godoc
// @Summary      Create a group page in a team
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  usecase.GroupPageInput  true  "Group page"
// @Success      201  {object}  entity.GroupPage
// @Failure      403  {object}  map[string]string
// @Router       /group-pages [post]
func (h *PageHandler) CreateGroupPage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.GroupPageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.pageUseCase.CreateGroupPage(userID, req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create group page")
		return
	}
	c.JSON(http.StatusCreated, group)
}

// GetGroupPage godoc
// @Summary      Get a group page
// @Tags         pages
// @Produce      json
// @Param        id   path  string  true  "Group page ID"
// @Success      200  {object}  entity.GroupPage
// @Failure      404  {object}  map[string]string
// @Router       /group-pages/{id} [get]
func (h *PageHandler) GetGroupPage(c *gin.Context) {
	group, err := h.pageUseCase.GetGroupPage(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get group page")
		return
	}
	c.JSON(http.StatusOK, group)
}

// UpdateGroupPage godoc
// @Summary      Update a group page
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                  true  "Group page ID"
// @Param        request  body  usecase.GroupPageInput  true  "Group page"
// @Success      200  {object}  entity.GroupPage
// @Router       /group-pages/{id} [put]
func (h *PageHandler) UpdateGroupPage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.GroupPageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.pageUseCase.UpdateGroupPage(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update group page")
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroupPage godoc
// @Summary      Delete a group page
// @Tags         pages
// @Security     BearerAuth
// @Param        id   path  string  true  "Group page ID"
// @Success      200  {object}  map[string]string
// @Router       /group-pages/{id} [delete]
func (h *PageHandler) DeleteGroupPage(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.pageUseCase.DeleteGroupPage(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete group page")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group page deleted"})
}

// ListMembers godoc
// @Summary      List group members
// @Tags         pages
// @Produce      json
// @Param        id   path  string  true  "Group page ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /group-pages/{id}/members [get]
func (h *PageHandler) ListMembers(c *gin.Context) {
	members, err := h.pageUseCase.ListGroupMembers(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members, "count": len(members)})
}

// AddMember godoc
// @Summary      Add a group member
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string            true  "Group page ID"
// @Param        request  body  AddMemberRequest  true  "Member"
// @Success      201  {object}  entity.GroupPageMember
// @Router       /group-pages/{id}/members [post]
func (h *PageHandler) AddMember(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.pageUseCase.AddGroupMember(userID, c.Param("id"), req.UserID, req.DisplayOrder)
	if err != nil {
		respondError(c, h.logger, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// RemoveMember godoc
// @Summary      Remove a group member
// @Tags         pages
// @Security     BearerAuth
// @Param        id       path  string  true  "Group page ID"
// @Param        user_id  path  string  true  "Member user ID"
// @Success      200  {object}  map[string]string
// @Router       /group-pages/{id}/members/{user_id} [delete]
func (h *PageHandler) RemoveMember(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.pageUseCase.RemoveGroupMember(userID, c.Param("id"), c.Param("user_id")); err != nil {
		respondError(c, h.logger, err, "Failed to remove member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
