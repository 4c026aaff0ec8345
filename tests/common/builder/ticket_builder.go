//go:build unit || integration

package builder

import (
	"time"

	"parklot/internal/domain/billing"
	domticket "parklot/internal/domain/ticket"
	reqdto "parklot/internal/handler/dto/request"
	"parklot/internal/usecase"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	Plate         string
	Model         string
	Color         string
	Stall         string
	EntryAt       time.Time
	Status        domticket.Status
	TariffKind    billing.TariffKind
	ReservationID *uuid.UUID
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		ID:         uuid.New(),
		VehicleID:  uuid.New(),
		Plate:      "ABC1D23",
		Model:      "Corolla",
		Color:      "silver",
		Stall:      "A-01",
		EntryAt:    time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		Status:     domticket.StatusOpen,
		TariffKind: billing.KindHourly,
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

func (b *TicketBuilder) BuildDomain() *domticket.Ticket {
	return domticket.ReconstructTicket(
		b.ID, b.VehicleID, b.Stall, b.EntryAt, nil,
		b.Status, b.TariffKind, b.ReservationID, nil, b.EntryAt,
	)
}

func (b *TicketBuilder) BuildClosedDomain(exitAt time.Time, chargeCents int64) *domticket.Ticket {
	charge := billing.MustMoney(chargeCents)
	return domticket.ReconstructTicket(
		b.ID, b.VehicleID, b.Stall, b.EntryAt, &exitAt,
		domticket.StatusClosed, b.TariffKind, b.ReservationID, &charge, exitAt,
	)
}

func (b *TicketBuilder) BuildCheckInParams() usecase.CheckInParams {
	kind := b.TariffKind
	return usecase.CheckInParams{
		Plate:      b.Plate,
		Model:      b.Model,
		Color:      b.Color,
		Stall:      b.Stall,
		TariffKind: &kind,
	}
}

func (b *TicketBuilder) BuildCheckInRequestDTO() reqdto.CheckInRequest {
	kind := b.TariffKind.String()
	return reqdto.CheckInRequest{
		Plate:      b.Plate,
		Model:      b.Model,
		Color:      b.Color,
		Stall:      b.Stall,
		TariffKind: &kind,
	}
}
