package response

import (
	"time"

	"parklot/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	Stall      string    `json:"stall"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Status     string    `json:"status"`
	ReservedAt time.Time `json:"reserved_at"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		VehicleID:  r.VehicleID(),
		Stall:      r.Stall(),
		StartsAt:   r.Window().Start(),
		EndsAt:     r.Window().End(),
		Status:     r.Status().String(),
		ReservedAt: r.ReservedAt(),
	}
}

func FromReservations(rs []*reservation.Reservation) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(rs))
	for i, r := range rs {
		resp[i] = FromReservation(r)
	}
	return resp
}
