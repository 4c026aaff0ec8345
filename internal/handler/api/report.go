package api

import (
	"errors"
	"net/http"
	"time"

	resdto "parklot/internal/handler/dto/response"
	"parklot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{
		reportQueries: reportQueries,
	}
}

// @Summary Revenue report
// @Description Revenue from closed tickets over a period
// @Tags reports
// @Produce json
// @Param from query string true "Period start (RFC3339)"
// @Param to query string true "Period end (RFC3339)"
// @Success 200 {object} resdto.RevenueReportResponse
// @Failure 400 {object} map[string]string
// @Router /reports/revenue [get]
func (h *ReportHandler) GetRevenueReport(c *gin.Context) {
	from, to, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.reportQueries.GetRevenueReport(c.Request.Context(), from, to)
	if err != nil {
		h.renderReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRevenueReport(report))
}

// @Summary Stall usage report
// @Description Ticket counts per stall over a period
// @Tags reports
// @Produce json
// @Param from query string true "Period start (RFC3339)"
// @Param to query string true "Period end (RFC3339)"
// @Success 200 {array} resdto.StallUsageResponse
// @Failure 400 {object} map[string]string
// @Router /reports/stalls [get]
func (h *ReportHandler) GetStallUsageReport(c *gin.Context) {
	from, to, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	usage, err := h.reportQueries.GetStallUsageReport(c.Request.Context(), from, to)
	if err != nil {
		h.renderReportError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStallUsage(usage))
}

func (h *ReportHandler) parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'from' must be RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter 'to' must be RFC3339",
		})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *ReportHandler) renderReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrInvalidReportPeriod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Report period end must be after start",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
