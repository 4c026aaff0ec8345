package api

import (
	"errors"
	"net/http"

	reqdto "parklot/internal/handler/dto/request"
	resdto "parklot/internal/handler/dto/response"
	"parklot/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create reservation
// @Description Reserve a stall for a registered vehicle over a time window
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.reservationUseCase.CreateReservation(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidReservationWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation window",
			})
		case errors.Is(err, usecase.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errors.Is(err, usecase.ErrReservationConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Stall already reserved for that window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(created))
}

// @Summary Cancel reservation
// @Description Cancel an active reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationUseCase.CancelReservation(c.Request.Context(), id); err != nil {
		h.renderTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark reservation used
// @Description Consume an active reservation inside its window
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/use [post]
func (h *ReservationHandler) MarkReservationUsed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.reservationUseCase.MarkReservationUsed(c.Request.Context(), id); err != nil {
		h.renderTransitionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	r, err := h.reservationUseCase.GetReservation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(r))
}

// @Summary List active reservations
// @Description List all ACTIVE reservations, optionally filtered by plate
// @Tags reservations
// @Produce json
// @Param plate query string false "Vehicle plate"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/active [get]
func (h *ReservationHandler) ListActiveReservations(c *gin.Context) {
	var (
		rs  []*reservationList
		err error
	)
	if plate := c.Query("plate"); plate != "" {
		rs, err = h.listForPlate(c, plate)
	} else {
		rs, err = h.listAll(c)
	}
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, rs)
}

type reservationList = resdto.ReservationResponse

func (h *ReservationHandler) listAll(c *gin.Context) ([]*reservationList, error) {
	rs, err := h.reservationUseCase.ListActiveReservations(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return resdto.FromReservations(rs), nil
}

func (h *ReservationHandler) listForPlate(c *gin.Context, plate string) ([]*reservationList, error) {
	rs, err := h.reservationUseCase.ListReservationsForPlate(c.Request.Context(), plate)
	if err != nil {
		return nil, err
	}
	return resdto.FromReservations(rs), nil
}

func (h *ReservationHandler) renderTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, usecase.ErrReservationNotActive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is not active",
		})
	case errors.Is(err, usecase.ErrOutOfReservationWindow):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Outside the reservation window",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
