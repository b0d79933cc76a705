package api

import (
	"context"
	"errors"
	"net/http"

	"banana-farm-api/internal/domain/reservation"
	"banana-farm-api/internal/domain/user"
	reqdto "banana-farm-api/internal/handler/dto/request"
	resdto "banana-farm-api/internal/handler/dto/response"
	"banana-farm-api/internal/handler/middleware"
	"banana-farm-api/internal/usecase/commands"
	"banana-farm-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book produce from a farm; the reservation starts out pending
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.Submit(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrFarmNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Farm not found",
			})
		case errors.Is(err, commands.ErrInvalidSelection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "A farm must be selected",
			})
		case errors.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Quantity must be a positive integer",
			})
		case errors.Is(err, commands.ErrInvalidNotes):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Notes are too long",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, queries.ErrReservationDenied):
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

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my reservations
// @Description List the caller's reservations, most recent first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListMyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListByFarmer(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List incoming reservations
// @Description List reservations placed against the caller's farms
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/incoming [get]
func (h *ReservationHandler) ListIncomingReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListByFarmOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Confirm reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	h.transition(c, h.reservationCommands.Confirm)
}

// @Summary Ship reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/ship [post]
func (h *ReservationHandler) ShipReservation(c *gin.Context) {
	h.transition(c, h.reservationCommands.Ship)
}

// @Summary Deliver reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/deliver [post]
func (h *ReservationHandler) DeliverReservation(c *gin.Context) {
	h.transition(c, h.reservationCommands.Deliver)
}

// @Summary Cancel reservation
// @Description Cancel a pending or confirmed reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.transition(c, h.reservationCommands.Cancel)
}

type transitionFunc func(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error

func (h *ReservationHandler) transition(c *gin.Context, apply transitionFunc) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := apply(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotFarmOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, commands.ErrIllegalTransition), errors.Is(err, reservation.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation cannot change to the requested status",
			})
		case errors.Is(err, commands.ErrTransitionConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation was modified concurrently",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, "", false
	}
	return userID, role, true
}
