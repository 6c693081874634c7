package http

import (
	"net/http"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SkateMoveHandler struct {
	skateMoveUseCase usecase.SkateMoveUseCase
	logger           *logger.Logger
}

func NewSkateMoveHandler(skateMoveUseCase usecase.SkateMoveUseCase, logger *logger.Logger) *SkateMoveHandler {
	return &SkateMoveHandler{
		skateMoveUseCase: skateMoveUseCase,
		logger:           logger,
	}
}

// List godoc
// @Summary      List skate moves
// @Tags         skate-moves
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /skate-moves [get]
func (h *SkateMoveHandler) List(c *gin.Context) {
	moves, err := h.skateMoveUseCase.List()
	if err != nil {
		respondError(c, h.logger, err, "Failed to list skate moves")
		return
	}
	c.JSON(http.StatusOK, gin.H{"skate_moves": moves, "count": len(moves)})
}

// Get godoc
// @Summary      Get a skate move
// @Tags         skate-moves
// @Produce      json
// @Param        id   path  string  true  "Skate move ID"
// @Success      200  {object}  entity.SkateMove
// @Failure      404  {object}  map[string]string
// @Router       /skate-moves/{id} [get]
func (h *SkateMoveHandler) Get(c *gin.Context) {
	move, err := h.skateMoveUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get skate move")
		return
	}
	c.JSON(http.StatusOK, move)
}

// Create godoc
// @Summary      Create a skate move
// @Description  Administrators only
// @Tags         skate-moves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  usecase.SkateMoveInput  true  "Skate move"
// @Success      201  {object}  entity.SkateMove
// @Failure      403  {object}  map[string]string
// @Router       /skate-moves [post]
func (h *SkateMoveHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.SkateMoveInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	move, err := h.skateMoveUseCase.Create(userID, req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create skate move")
		return
	}
	c.JSON(http.StatusCreated, move)
}

// Update godoc
// @Summary      Update a skate move
// @Description  Administrators only
// @Tags         skate-moves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                  true  "Skate move ID"
// @Param        request  body  usecase.SkateMoveInput  true  "Skate move"
// @Success      200  {object}  entity.SkateMove
// @Router       /skate-moves/{id} [put]
func (h *SkateMoveHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.SkateMoveInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	move, err := h.skateMoveUseCase.Update(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update skate move")
		return
	}
	c.JSON(http.StatusOK, move)
}

// Delete godoc
// @Summary      Delete a skate move
// @Description  Administrators only
// @Tags         skate-moves
// @Security     BearerAuth
// @Param        id   path  string  true  "Skate move ID"
// @Success      200  {object}  map[string]string
// @Router       /skate-moves/{id} [delete]
func (h *SkateMoveHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.skateMoveUseCase.Delete(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete skate move")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skate move deleted"})
}

// ListForUser godoc
// @Summary      List a user's skate moves
// @Tags         skate-moves
// @Produce      json
// @Param        id   path  string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /users/{id}/skate-moves [get]
func (h *SkateMoveHandler) ListForUser(c *gin.Context) {
	moves, err := h.skateMoveUseCase.ListForUser(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to list skate moves")
		return
	}
	c.JSON(http.StatusOK, gin.H{"skate_moves": moves, "count": len(moves)})
}

// AttachToUser godoc
// @Summary      Add a skate move to a user's profile
// @Tags         skate-moves
// @Security     BearerAuth
// @Param        id       path  string  true  "User ID"
// @Param        move_id  path  string  true  "Skate move ID"
// @Success      200  {object}  map[string]string
// @Router       /users/{id}/skate-moves/{move_id} [put]
func (h *SkateMoveHandler) AttachToUser(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.skateMoveUseCase.AttachToUser(userID, c.Param("id"), c.Param("move_id")); err != nil {
		respondError(c, h.logger, err, "Failed to add skate move")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skate move added"})
}

// DetachFromUser godoc
// @Summary      Remove a skate move from a user's profile
// @Tags         skate-moves
// @Security     BearerAuth
// @Param        id       path  string  true  "User ID"
// @Param        move_id  path  string  true  "Skate move ID"
// @Success      200  {object}  map[string]string
// @Router       /users/{id}/skate-moves/{move_id} [delete]
func (h *SkateMoveHandler) DetachFromUser(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.skateMoveUseCase.DetachFromUser(userID, c.Param("id"), c.Param("move_id")); err != nil {
		respondError(c, h.logger, err, "Failed to remove skate move")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skate move removed"})
}
