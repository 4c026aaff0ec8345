//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"parklot/internal/handler/api"
	resdto "parklot/internal/handler/dto/response"
	"parklot/internal/usecase/queries"
	"parklot/tests/common/httptest"
	queriesmock "parklot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
	handler     *api.ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.handler = api.NewReportHandler(s.mockQueries)

	s.router.GET("/reports/revenue", s.handler.GetRevenueReport)
	s.router.GET("/reports/stalls", s.handler.GetStallUsageReport)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func periodQuery(from, to time.Time) string {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))
	return "?" + q.Encode()
}

// ================================================================================
// TestGetRevenueReport
// ================================================================================

func (s *ReportHandlerTestSuite) TestGetRevenueReport() {
	baseURL := "/reports/revenue"

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns 200 OK with RevenueReportResponse", func() {
		report := &queries.RevenueReport{
			From:          from,
			To:            to,
			TicketCount:   12,
			RevenueCents:  48000,
			AverageCharge: 40.0,
		}
		s.mockQueries.EXPECT().GetRevenueReport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+periodQuery(from, to), nil)

		var response resdto.RevenueReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(12), response.TicketCount)
		s.Equal(int64(48000), response.RevenueCents)
		s.InDelta(40.0, response.AverageCharge, 0.001)
	})

	s.Run("error: 400 Bad Request on malformed period", func() {
		testCases := []struct {
			name  string
			query string
			msg   string
		}{
			{name: "missing from", query: "?to=" + url.QueryEscape(to.Format(time.RFC3339)), msg: "'from' must be RFC3339"},
			{name: "missing to", query: "?from=" + url.QueryEscape(from.Format(time.RFC3339)), msg: "'to' must be RFC3339"},
			{name: "garbage from", query: "?from=yesterday&to=" + url.QueryEscape(to.Format(time.RFC3339)), msg: "'from' must be RFC3339"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+tc.query, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: 400 Bad Request on inverted period", func() {
		s.mockQueries.EXPECT().GetRevenueReport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidReportPeriod).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+periodQuery(to, from), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "end must be after start")
	})

	s.Run("error: returns 500 Internal Server Error on failure", func() {
		s.mockQueries.EXPECT().GetRevenueReport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+periodQuery(from, to), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetStallUsageReport
// ================================================================================

func (s *ReportHandlerTestSuite) TestGetStallUsageReport() {
	baseURL := "/reports/stalls"

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns usage ranked by ticket count", func() {
		usage := []*queries.StallUsage{
			{Stall: "A-01", TicketCount: 9},
			{Stall: "B-07", TicketCount: 4},
		}
		s.mockQueries.EXPECT().GetStallUsageReport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usage, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+periodQuery(from, to), nil)

		var response []resdto.StallUsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		if s.Len(response, 2) {
			s.Equal("A-01", response[0].Stall)
			s.Equal(int64(9), response[0].TicketCount)
		}
	})

	s.Run("error: 400 Bad Request on inverted period", func() {
		s.mockQueries.EXPECT().GetStallUsageReport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidReportPeriod).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+periodQuery(to, from), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "end must be after start")
	})
}
