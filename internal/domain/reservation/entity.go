package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotActive   = errors.New("reservation is not active")
	ErrOutOfWindow = errors.New("reservation is outside its valid window")
	ErrNotElapsed  = errors.New("reservation window has not elapsed")
)

// Reservation books one stall for one vehicle over a Window. Created ACTIVE;
// USED, CANCELLED and EXPIRED are terminal.
type Reservation struct {
	id         uuid.UUID
	vehicleID  uuid.UUID
	stall      string
	window     Window
	status     Status
	reservedAt time.Time
	updatedAt  time.Time
}

func NewReservation(vehicleID uuid.UUID, stall string, window Window, now time.Time) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		vehicleID:  vehicleID,
		stall:      stall,
		window:     window,
		status:     StatusActive,
		reservedAt: now,
	}
}

func ReconstructReservation(
	id, vehicleID uuid.UUID,
	stall string,
	window Window,
	status Status,
	reservedAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		vehicleID:  vehicleID,
		stall:      stall,
		window:     window,
		status:     status,
		reservedAt: reservedAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) VehicleID() uuid.UUID  { return r.vehicleID }
func (r *Reservation) Stall() string         { return r.stall }
func (r *Reservation) Window() Window        { return r.window }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) ReservedAt() time.Time { return r.reservedAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// MatchesCheckIn reports whether this reservation should be consumed by a
// check-in of the given vehicle at the given stall right now. The window test
// is boundary-inclusive, unlike conflict detection.
func (r *Reservation) MatchesCheckIn(vehicleID uuid.UUID, stall string, now time.Time) bool {
	return r.status == StatusActive &&
		r.vehicleID == vehicleID &&
		r.stall == stall &&
		r.window.Covers(now)
}

func (r *Reservation) Cancel() error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCancelled
	return nil
}

// MarkUsed consumes the reservation. The window rule is the same inclusive
// one check-in applies implicitly.
func (r *Reservation) MarkUsed(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if !r.window.Covers(now) {
		return ErrOutOfWindow
	}
	r.status = StatusUsed
	return nil
}

// Consume is the implicit check-in path: the caller has already matched the
// window, so only the status transition is enforced here.
func (r *Reservation) Consume() error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusUsed
	return nil
}

// Expire transitions a stale reservation. A window ending exactly at now has
// not yet elapsed.
func (r *Reservation) Expire(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if !r.window.EndedBefore(now) {
		return ErrNotElapsed
	}
	r.status = StatusExpired
	return nil
}
