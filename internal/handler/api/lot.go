package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"parklot/internal/domain/billing"
	reqdto "parklot/internal/handler/dto/request"
	resdto "parklot/internal/handler/dto/response"
	"parklot/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	lotUseCase usecase.LotUseCase
}

func NewLotHandler(lotUseCase usecase.LotUseCase) *LotHandler {
	return &LotHandler{
		lotUseCase: lotUseCase,
	}
}

// @Summary Get occupancy
// @Description Current occupied/free stall counts
// @Tags lot
// @Produce json
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 503 {object} map[string]string
// @Router /lot/occupancy [get]
func (h *LotHandler) GetOccupancy(c *gin.Context) {
	occ, err := h.lotUseCase.GetOccupancy(c.Request.Context())
	if err != nil {
		switch {
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

	c.JSON(http.StatusOK, resdto.FromOccupancy(occ))
}

// @Summary Get active configuration
// @Description Current capacity and tariff rates
// @Tags lot
// @Produce json
// @Success 200 {object} resdto.ConfigurationResponse
// @Failure 503 {object} map[string]string
// @Router /lot/config [get]
func (h *LotHandler) GetConfiguration(c *gin.Context) {
	cfg, err := h.lotUseCase.GetActiveConfiguration(c.Request.Context())
	if err != nil {
		switch {
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

	c.JSON(http.StatusOK, resdto.FromConfiguration(cfg))
}

// @Summary Save configuration
// @Description Replace the active capacity/tariff configuration
// @Tags lot
// @Accept json
// @Produce json
// @Param request body reqdto.SaveConfigurationRequest true "Configuration"
// @Success 201 {object} resdto.ConfigurationResponse
// @Failure 400 {object} map[string]string
// @Router /lot/config [put]
func (h *LotHandler) SaveConfiguration(c *gin.Context) {
	var req reqdto.SaveConfigurationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cfg, err := h.lotUseCase.SaveConfiguration(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidConfiguration):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid lot configuration",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConfiguration(cfg))
}

// @Summary Calculate tariff
// @Description Price a stay under a tariff kind using the active rates
// @Tags tariffs
// @Accept json
// @Produce json
// @Param request body reqdto.CalculateTariffRequest true "Stay to price"
// @Success 200 {object} resdto.TariffChargeResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /tariffs/calculate [post]
func (h *LotHandler) CalculateTariff(c *gin.Context) {
	var req reqdto.CalculateTariffRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	kind := billing.TariffKind(req.TariffKind)
	charge, err := h.lotUseCase.CalculateTariff(c.Request.Context(), req.EntryAt, req.ExitAt, kind)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTariffKind):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid tariff kind",
			})
		case errors.Is(err, usecase.ErrInvalidStayPeriod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Exit must be after entry",
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

	c.JSON(http.StatusOK, resdto.FromCharge(kind, charge))
}

// @Summary Suggest tariff
// @Description Suggest the cheapest tariff kind for an estimated stay
// @Tags tariffs
// @Produce json
// @Param minutes query int true "Estimated stay in minutes"
// @Success 200 {object} resdto.TariffSuggestionResponse
// @Failure 400 {object} map[string]string
// @Router /tariffs/suggest [get]
func (h *LotHandler) SuggestTariff(c *gin.Context) {
	minutes, err := strconv.ParseInt(c.Query("minutes"), 10, 64)
	if err != nil || minutes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'minutes' must be a positive integer",
		})
		return
	}

	kind := h.lotUseCase.SuggestTariff(time.Duration(minutes) * time.Minute)
	c.JSON(http.StatusOK, resdto.TariffSuggestionResponse{
		EstimatedMinutes: minutes,
		TariffKind:       kind.String(),
	})
}
