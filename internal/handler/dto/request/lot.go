package request

import (
	"time"

	"parklot/internal/usecase"
)

type SaveConfigurationRequest struct {
	TotalStalls         int32 `json:"total_stalls" binding:"required"`
	RateFraction30Cents int64 `json:"rate_fraction30_cents"`
	RateHourlyCents     int64 `json:"rate_hourly_cents"`
	RateDailyCents      int64 `json:"rate_daily_cents"`
	RateMonthlyCents    int64 `json:"rate_monthly_cents"`
}

func (r SaveConfigurationRequest) ToParams() usecase.SaveConfigurationParams {
	return usecase.SaveConfigurationParams{
		TotalStalls:    r.TotalStalls,
		Fraction30Rate: r.RateFraction30Cents,
		HourlyRate:     r.RateHourlyCents,
		DailyRate:      r.RateDailyCents,
		MonthlyRate:    r.RateMonthlyCents,
	}
}

type CalculateTariffRequest struct {
	EntryAt    time.Time `json:"entry_at" binding:"required"`
	ExitAt     time.Time `json:"exit_at" binding:"required"`
	TariffKind string    `json:"tariff_kind" binding:"required"`
}
