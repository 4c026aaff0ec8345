package response

import (
	"time"

	"parklot/internal/usecase/queries"
)

type RevenueReportResponse struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	TicketCount   int64     `json:"ticket_count"`
	RevenueCents  int64     `json:"revenue_cents"`
	AverageCharge float64   `json:"average_charge"`
}

func FromRevenueReport(r *queries.RevenueReport) *RevenueReportResponse {
	return &RevenueReportResponse{
		From:          r.From,
		To:            r.To,
		TicketCount:   r.TicketCount,
		RevenueCents:  r.RevenueCents,
		AverageCharge: r.AverageCharge,
	}
}

type StallUsageResponse struct {
	Stall       string `json:"stall"`
	TicketCount int64  `json:"ticket_count"`
}

func FromStallUsage(us []*queries.StallUsage) []*StallUsageResponse {
	resp := make([]*StallUsageResponse, len(us))
	for i, u := range us {
		resp[i] = &StallUsageResponse{
			Stall:       u.Stall,
			TicketCount: u.TicketCount,
		}
	}
	return resp
}
