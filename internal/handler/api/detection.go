package api

import (
	"errors"
	"net/http"

	resdto "banana-farm-api/internal/handler/dto/response"
	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DetectionHandler struct {
	detectionCommands commands.DetectionCommands
	cfg               config.DetectConfig
}

func NewDetectionHandler(detectionCommands commands.DetectionCommands, cfg config.DetectConfig) *DetectionHandler {
	return &DetectionHandler{
		detectionCommands: detectionCommands,
		cfg:               cfg,
	}
}

// @Summary Detect banana variety
// @Description Classify a banana image via the variety detection service
// @Tags detection
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Banana image"
// @Success 200 {object} resdto.DetectionResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /detect [post]
func (h *DetectionHandler) Detect(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}
	if fileHeader.Size > h.cfg.MaxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image exceeds the maximum size",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Could not read the uploaded image",
		})
		return
	}
	defer file.Close()

	result, err := h.detectionCommands.Detect(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoImage):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Image file is required",
			})
		case errors.Is(err, commands.ErrDetectorUnavailable), errors.Is(err, commands.ErrDetectionFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Detection service is unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDetectionResult(result))
}
