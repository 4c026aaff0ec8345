package ticket

import (
	"errors"
	"time"

	"parklot/internal/domain/billing"

	"github.com/google/uuid"
)

var ErrAlreadyClosed = errors.New("ticket is already closed")

// Ticket tracks one vehicle's occupancy of a stall from check-in to
// check-out. Exactly one OPEN ticket may exist per vehicle; closing is
// one-way and sets exit and charge together.
type Ticket struct {
	id            uuid.UUID
	vehicleID     uuid.UUID
	stall         string
	entryAt       time.Time
	exitAt        *time.Time
	status        Status
	tariffKind    billing.TariffKind
	reservationID *uuid.UUID
	charge        *billing.Money
	updatedAt     time.Time
}

func NewTicket(
	vehicleID uuid.UUID,
	stall string,
	kind billing.TariffKind,
	reservationID *uuid.UUID,
	now time.Time,
) *Ticket {
	if !kind.IsValid() {
		kind = billing.KindHourly
	}
	return &Ticket{
		id:            uuid.New(),
		vehicleID:     vehicleID,
		stall:         stall,
		entryAt:       now,
		status:        StatusOpen,
		tariffKind:    kind,
		reservationID: reservationID,
	}
}

func ReconstructTicket(
	id, vehicleID uuid.UUID,
	stall string,
	entryAt time.Time,
	exitAt *time.Time,
	status Status,
	kind billing.TariffKind,
	reservationID *uuid.UUID,
	charge *billing.Money,
	updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:            id,
		vehicleID:     vehicleID,
		stall:         stall,
		entryAt:       entryAt,
		exitAt:        exitAt,
		status:        status,
		tariffKind:    kind,
		reservationID: reservationID,
		charge:        charge,
		updatedAt:     updatedAt,
	}
}

func (t *Ticket) ID() uuid.UUID                  { return t.id }
func (t *Ticket) VehicleID() uuid.UUID           { return t.vehicleID }
func (t *Ticket) Stall() string                  { return t.stall }
func (t *Ticket) EntryAt() time.Time             { return t.entryAt }
func (t *Ticket) ExitAt() *time.Time             { return t.exitAt }
func (t *Ticket) Status() Status                 { return t.status }
func (t *Ticket) TariffKind() billing.TariffKind { return t.tariffKind }
func (t *Ticket) ReservationID() *uuid.UUID      { return t.reservationID }
func (t *Ticket) Charge() *billing.Money         { return t.charge }
func (t *Ticket) UpdatedAt() time.Time           { return t.updatedAt }

func (t *Ticket) IsOpen() bool {
	return t.status == StatusOpen
}

// Close records the exit and the computed charge. A second call fails rather
// than recomputing.
func (t *Ticket) Close(exitAt time.Time, charge billing.Money) error {
	if t.status == StatusClosed {
		return ErrAlreadyClosed
	}
	t.exitAt = &exitAt
	t.charge = &charge
	t.status = StatusClosed
	return nil
}
