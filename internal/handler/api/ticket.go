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

type TicketHandler struct {
	ticketUseCase usecase.TicketUseCase
}

func NewTicketHandler(ticketUseCase usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{
		ticketUseCase: ticketUseCase,
	}
}

// @Summary Check in a vehicle
// @Description Admit a vehicle and open a parking ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /tickets/check-in [post]
func (h *TicketHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.ticketUseCase.CheckIn(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrConfigurationMissing):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "No active lot configuration",
			})
		case errors.Is(err, usecase.ErrLotFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Lot is full",
			})
		case errors.Is(err, usecase.ErrDuplicateOpenTicket):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Vehicle already has an open ticket",
			})
		case errors.Is(err, usecase.ErrInvalidTariffKind):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid tariff kind",
			})
		case errors.Is(err, usecase.ErrVehicleNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid vehicle data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTicket(created))
}

// @Summary Check out a vehicle
// @Description Close an open ticket and compute the charge
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tickets/{id}/check-out [post]
func (h *TicketHandler) CheckOut(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID format",
		})
		return
	}

	closed, err := h.ticketUseCase.CheckOut(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		case errors.Is(err, usecase.ErrTicketAlreadyClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Ticket is already closed",
			})
		case errors.Is(err, usecase.ErrConfigurationMissing):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "No active lot configuration",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicket(closed))
}

// @Summary Get ticket
// @Description Get ticket by ID
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID format",
		})
		return
	}

	t, err := h.ticketUseCase.GetTicket(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicket(t))
}

// @Summary List open tickets
// @Description List all currently open tickets
// @Tags tickets
// @Produce json
// @Success 200 {array} resdto.TicketResponse
// @Router /tickets/open [get]
func (h *TicketHandler) ListOpenTickets(c *gin.Context) {
	open, err := h.ticketUseCase.ListOpenTickets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTickets(open))
}
