package response

import (
	"time"

	"parklot/internal/domain/ticket"

	"github.com/google/uuid"
)

type TicketResponse struct {
	ID            uuid.UUID  `json:"id"`
	VehicleID     uuid.UUID  `json:"vehicle_id"`
	Stall         string     `json:"stall"`
	EntryAt       time.Time  `json:"entry_at"`
	ExitAt        *time.Time `json:"exit_at,omitempty"`
	Status        string     `json:"status"`
	TariffKind    string     `json:"tariff_kind"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	ChargeCents   *int64     `json:"charge_cents,omitempty"`
}

func FromTicket(t *ticket.Ticket) *TicketResponse {
	resp := &TicketResponse{
		ID:            t.ID(),
		VehicleID:     t.VehicleID(),
		Stall:         t.Stall(),
		EntryAt:       t.EntryAt(),
		ExitAt:        t.ExitAt(),
		Status:        t.Status().String(),
		TariffKind:    t.TariffKind().String(),
		ReservationID: t.ReservationID(),
	}
	if charge := t.Charge(); charge != nil {
		cents := charge.Cents()
		resp.ChargeCents = &cents
	}
	return resp
}

func FromTickets(ts []*ticket.Ticket) []*TicketResponse {
	resp := make([]*TicketResponse, len(ts))
	for i, t := range ts {
		resp[i] = FromTicket(t)
	}
	return resp
}
