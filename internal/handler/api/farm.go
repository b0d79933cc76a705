package api

import (
	"errors"
	"net/http"

	"banana-farm-api/internal/domain/farm"
	reqdto "banana-farm-api/internal/handler/dto/request"
	resdto "banana-farm-api/internal/handler/dto/response"
	"banana-farm-api/internal/handler/middleware"
	"banana-farm-api/internal/usecase/commands"
	"banana-farm-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxFarmImageBytes = 5 << 20

type FarmHandler struct {
	farmCommands commands.FarmCommands
	farmQueries  queries.FarmQueries
}

func NewFarmHandler(farmCommands commands.FarmCommands, farmQueries queries.FarmQueries) *FarmHandler {
	return &FarmHandler{
		farmCommands: farmCommands,
		farmQueries:  farmQueries,
	}
}

// @Summary List farms
// @Description List all farms available for booking, most recent first
// @Tags farms
// @Produce json
// @Success 200 {array} resdto.FarmResponse
// @Router /farms [get]
func (h *FarmHandler) ListFarms(c *gin.Context) {
	views, err := h.farmQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromFarmViews(views))
}

// @Summary Get farm
// @Tags farms
// @Produce json
// @Param id path string true "Farm ID"
// @Success 200 {object} resdto.FarmResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /farms/{id} [get]
func (h *FarmHandler) GetFarm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid farm ID format",
		})
		return
	}

	view, err := h.farmQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrFarmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Farm not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFarmView(view))
}

// @Summary List my farms
// @Description List farms owned by the caller
// @Tags farms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FarmResponse
// @Failure 401 {object} map[string]string
// @Router /farms/mine [get]
func (h *FarmHandler) ListMyFarms(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.farmQueries.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromFarmViews(views))
}

// @Summary Create farm
// @Description Register a new farm owned by the caller
// @Tags farms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFarmRequest true "Farm request"
// @Success 201 {object} resdto.FarmResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /farms [post]
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	var req reqdto.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.farmCommands.Create(c.Request.Context(), req.ToParams(), userID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrFarmRoleRequired):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only farm owners can register farms",
			})
		case errors.Is(err, farm.ErrEmptyName), errors.Is(err, farm.ErrNameTooLong), errors.Is(err, farm.ErrIncompleteGeoPoint):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFarmView(view))
}

// @Summary Update farm
// @Description Replace the farm's editable fields
// @Tags farms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Farm ID"
// @Param request body reqdto.CreateFarmRequest true "Farm request"
// @Success 200 {object} resdto.FarmResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /farms/{id} [put]
func (h *FarmHandler) UpdateFarm(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid farm ID format",
		})
		return
	}

	var req reqdto.CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.farmCommands.Update(c.Request.Context(), id, req.ToParams(), userID, role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrFarmNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Farm not found",
			})
		case errors.Is(err, commands.ErrNotFarmOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, farm.ErrEmptyName), errors.Is(err, farm.ErrNameTooLong), errors.Is(err, farm.ErrIncompleteGeoPoint):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFarmView(view))
}

// @Summary Upload farm image
// @Description Store a farm image and record its public URL
// @Tags farms
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Farm ID"
// @Param image formData file true "Farm image"
// @Success 200 {object} resdto.FarmImageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /farms/{id}/image [post]
func (h *FarmHandler) UploadFarmImage(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid farm ID format",
		})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Image file is required",
		})
		return
	}
	if fileHeader.Size > maxFarmImageBytes {
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

	url, err := h.farmCommands.AttachImage(c.Request.Context(), id, userID, role, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrImageStoreDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Image storage is not available",
			})
		case errors.Is(err, commands.ErrFarmNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Farm not found",
			})
		case errors.Is(err, commands.ErrNotFarmOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FarmImageResponse{ImageURL: url})
}
