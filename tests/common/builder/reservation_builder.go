//go:build unit || integration

package builder

import (
	"time"

	domreservation "parklot/internal/domain/reservation"
	reqdto "parklot/internal/handler/dto/request"
	"parklot/internal/usecase"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	VehicleID uuid.UUID
	Plate     string
	Stall     string
	StartsAt  time.Time
	EndsAt    time.Time
	Status    domreservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        uuid.New(),
		VehicleID: uuid.New(),
		Plate:     "ABC1D23",
		Stall:     "A-01",
		StartsAt:  base,
		EndsAt:    base.Add(2 * time.Hour),
		Status:    domreservation.StatusActive,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() *domreservation.Reservation {
	return domreservation.ReconstructReservation(
		b.ID, b.VehicleID, b.Stall,
		domreservation.ReconstructWindow(b.StartsAt, b.EndsAt),
		b.Status,
		b.StartsAt.Add(-time.Hour), b.StartsAt.Add(-time.Hour),
	)
}

func (b *ReservationBuilder) BuildCreateParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		Plate: b.Plate,
		Stall: b.Stall,
		Start: b.StartsAt,
		End:   b.EndsAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Plate:    b.Plate,
		Stall:    b.Stall,
		StartsAt: b.StartsAt,
		EndsAt:   b.EndsAt,
	}
}
