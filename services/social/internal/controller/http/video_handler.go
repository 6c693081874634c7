package http

import (
	"net/http"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

// ListAlbums godoc
// @Summary      List a user's video albums
// @Tags         videos
// @Produce      json
// @Param        user_id  query  string  true  "Owner user ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /video-albums [get]
func (h *VideoHandler) ListAlbums(c *gin.Context) {
	ownerID := c.Query("user_id")
	if ownerID == "" {
		ownerID = c.GetString("user_id")
	}
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	albums, err := h.videoUseCase.ListAlbums(ownerID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to list video albums")
		return
	}
	c.JSON(http.StatusOK, gin.H{"video_albums": albums, "count": len(albums)})
}

// GetAlbum godoc
// @Summary      Get a video album with its videos
// @Tags         videos
// @Produce      json
// @Param        id   path  string  true  "Album ID"
// @Success      200  {object}  entity.VideoAlbum
// @Failure      404  {object}  map[string]string
// @Router       /video-albums/{id} [get]
func (h *VideoHandler) GetAlbum(c *gin.Context) {
	album, err := h.videoUseCase.GetAlbum(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get video album")
		return
	}
	c.JSON(http.StatusOK, album)
}

// CreateAlbum godoc
// @Summary      Create a video album
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  usecase.VideoAlbumInput  true  "Album"
// @Success      201  {object}  entity.VideoAlbum
// @Router       /video-albums [post]
func (h *VideoHandler) CreateAlbum(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.VideoAlbumInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album, err := h.videoUseCase.CreateAlbum(userID, req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create video album")
		return
	}
	c.JSON(http.StatusCreated, album)
}

// UpdateAlbum godoc
// @Summary      Update a video album
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                   true  "Album ID"
// @Param        request  body  usecase.VideoAlbumInput  true  "Album"
// @Success      200  {object}  entity.VideoAlbum
// @Router       /video-albums/{id} [put]
func (h *VideoHandler) UpdateAlbum(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.VideoAlbumInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album, err := h.videoUseCase.UpdateAlbum(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update video album")
		return
	}
	c.JSON(http.StatusOK, album)
}

// DeleteAlbum godoc
// @Summary      Delete a video album
// @Tags         videos
// @Security     BearerAuth
// @Param        id   path  string  true  "Album ID"
// @Success      200  {object}  map[string]string
// @Router       /video-albums/{id} [delete]
func (h *VideoHandler) DeleteAlbum(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.videoUseCase.DeleteAlbum(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete video album")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video album deleted"})
}

// CreateVideo godoc
// @Summary      Add a video to an album
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  usecase.VideoInput  true  "Video"
// @Success      201  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Router       /videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.VideoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoUseCase.CreateVideo(userID, req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create video")
		return
	}
	c.JSON(http.StatusCreated, video)
}

// GetVideo godoc
// @Summary      Get a video
// @Tags         videos
// @Produce      json
// @Param        id   path  string  true  "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUseCase.GetVideo(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get video")
		return
	}
	c.JSON(http.StatusOK, video)
}

// UpdateVideo godoc
// @Summary      Update a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string              true  "Video ID"
// @Param        request  body  usecase.VideoInput  true  "Video"
// @Success      200  {object}  entity.Video
// @Router       /videos/{id} [put]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req usecase.VideoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoUseCase.UpdateVideo(userID, c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update video")
		return
	}
	c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Tags         videos
// @Security     BearerAuth
// @Param        id   path  string  true  "Video ID"
// @Success      200  {object}  map[string]string
// @Router       /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.videoUseCase.DeleteVideo(userID, c.Param("id")); err != nil {
		respondError(c, h.logger, err, "Failed to delete video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}
