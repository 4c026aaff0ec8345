package response

import (
	"time"

	"parklot/internal/domain/billing"
	"parklot/internal/domain/lot"

	"github.com/google/uuid"
)

type OccupancyResponse struct {
	Occupied   int32   `json:"occupied"`
	Total      int32   `json:"total"`
	Free       int32   `json:"free"`
	Percentage float64 `json:"percentage"`
	Full       bool    `json:"full"`
}

func FromOccupancy(o lot.Occupancy) *OccupancyResponse {
	return &OccupancyResponse{
		Occupied:   o.Occupied(),
		Total:      o.Total(),
		Free:       o.Free(),
		Percentage: o.Percentage(),
		Full:       o.IsFull(),
	}
}

type ConfigurationResponse struct {
	ID                  uuid.UUID `json:"id"`
	TotalStalls         int32     `json:"total_stalls"`
	RateFraction30Cents int64     `json:"rate_fraction30_cents"`
	RateHourlyCents     int64     `json:"rate_hourly_cents"`
	RateDailyCents      int64     `json:"rate_daily_cents"`
	RateMonthlyCents    int64     `json:"rate_monthly_cents"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromConfiguration(c *lot.Config) *ConfigurationResponse {
	rates := c.Rates()
	return &ConfigurationResponse{
		ID:                  c.ID(),
		TotalStalls:         c.TotalStalls(),
		RateFraction30Cents: rates.Fraction30.Cents(),
		RateHourlyCents:     rates.Hourly.Cents(),
		RateDailyCents:      rates.Daily.Cents(),
		RateMonthlyCents:    rates.Monthly.Cents(),
		Active:              c.IsActive(),
		CreatedAt:           c.CreatedAt(),
	}
}

type TariffChargeResponse struct {
	TariffKind  string `json:"tariff_kind"`
	ChargeCents int64  `json:"charge_cents"`
}

func FromCharge(kind billing.TariffKind, charge billing.Money) *TariffChargeResponse {
	return &TariffChargeResponse{
		TariffKind:  kind.String(),
		ChargeCents: charge.Cents(),
	}
}

type TariffSuggestionResponse struct {
	EstimatedMinutes int64  `json:"estimated_minutes"`
	TariffKind       string `json:"tariff_kind"`
}
