package api

import (
	"errors"
	"net/http"

	"banana-farm-api/internal/domain/review"
	reqdto "banana-farm-api/internal/handler/dto/request"
	resdto "banana-farm-api/internal/handler/dto/response"
	"banana-farm-api/internal/handler/middleware"
	"banana-farm-api/internal/usecase/commands"
	"banana-farm-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary List farm reviews
// @Description List reviews for a farm, most recent first
// @Tags reviews
// @Produce json
// @Param id path string true "Farm ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /farms/{id}/reviews [get]
func (h *ReviewHandler) ListFarmReviews(c *gin.Context) {
	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid farm ID format",
		})
		return
	}

	views, err := h.reviewQueries.ListByFarm(c.Request.Context(), farmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

// @Summary Create review
// @Description Review a delivered reservation; one review per reservation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.CreatedReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reviewCommands.Create(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrReviewNotOwned):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Reservation does not belong to the caller",
			})
		case errors.Is(err, commands.ErrReviewNotEligible):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Only delivered reservations can be reviewed",
			})
		case errors.Is(err, commands.ErrDuplicateReview):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation already has a review",
			})
		case errors.Is(err, review.ErrInvalidRating), errors.Is(err, review.ErrCommentTooLong):
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

	c.JSON(http.StatusCreated, resdto.CreatedReviewResponse{ID: result.ReviewID})
}
