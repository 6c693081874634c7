package http

import (
	"net/http"
	"strings"

	"mob-social/pkg/logger"
	"mob-social/services/social/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxPictureSize = 10 << 20

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

// UploadPicture godoc
// @Summary      Upload a picture
// @Description  Stores an image. set_as=DefaultPictureId or DefaultCoverId also makes it the profile or cover image.
// @Tags         pictures
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file    formData  file    true   "Image file"
// @Param        set_as  formData  string  false  "DefaultPictureId or DefaultCoverId"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /pictures [post]
func (h *MediaHandler) UploadPicture(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if fileHeader.Size > maxPictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is too large"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are allowed"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	picture, url, err := h.mediaUseCase.UploadPicture(userID, file, fileHeader.Filename, contentType, c.PostForm("set_as"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to upload picture")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"picture": picture,
		"url":     url,
	})
}
