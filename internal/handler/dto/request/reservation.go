package request

import (
	"strings"
	"time"

	"parklot/internal/usecase"
)

type CreateReservationRequest struct {
	Plate    string    `json:"plate" binding:"required"`
	Stall    string    `json:"stall" binding:"required"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
}

func (r CreateReservationRequest) ToParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		Plate: r.Plate,
		Stall: strings.TrimSpace(r.Stall),
		Start: r.StartsAt,
		End:   r.EndsAt,
	}
}
