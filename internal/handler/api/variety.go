package api

import (
	"errors"
	"net/http"

	resdto "banana-farm-api/internal/handler/dto/response"
	"banana-farm-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VarietyHandler struct {
	varietyQueries queries.VarietyQueries
}

func NewVarietyHandler(varietyQueries queries.VarietyQueries) *VarietyHandler {
	return &VarietyHandler{varietyQueries: varietyQueries}
}

// @Summary List varieties
// @Description List the banana variety knowledge base
// @Tags varieties
// @Produce json
// @Success 200 {array} resdto.VarietyResponse
// @Router /varieties [get]
func (h *VarietyHandler) ListVarieties(c *gin.Context) {
	views, err := h.varietyQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromVarietyViews(views))
}

// @Summary Get variety
// @Tags varieties
// @Produce json
// @Param id path string true "Variety ID"
// @Success 200 {object} resdto.VarietyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /varieties/{id} [get]
func (h *VarietyHandler) GetVariety(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid variety ID format",
		})
		return
	}

	view, err := h.varietyQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrVarietyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Variety not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVarietyView(view))
}
