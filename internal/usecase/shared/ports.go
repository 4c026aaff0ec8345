package shared

import (
	"context"
	"time"

	"parklot/internal/domain/lot"
	"parklot/internal/domain/reservation"
	"parklot/internal/domain/ticket"
	"parklot/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Storage ports the core depends on. Implementations map storage failures to
// infra.RepositoryError kinds; usecases translate those into sentinel errors.

type ConfigRepository interface {
	// FindActive returns the single active configuration or KindNotFound.
	FindActive(ctx context.Context) (*lot.Config, error)
	Create(ctx context.Context, cfg *lot.Config) error
	// DeactivateActive clears the active flag on the current active row, if
	// any. Zero affected rows is not an error.
	DeactivateActive(ctx context.Context) error
}

type VehicleRepository interface {
	FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	Create(ctx context.Context, v *vehicle.Vehicle) error
}

type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	CountOpen(ctx context.Context) (int32, error)
	ExistsOpenForVehicle(ctx context.Context, vehicleID uuid.UUID) (bool, error)
	ListOpen(ctx context.Context) ([]*ticket.Ticket, error)
	Create(ctx context.Context, t *ticket.Ticket) error
	Update(ctx context.Context, t *ticket.Ticket) error
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindActiveForVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*reservation.Reservation, error)
	// ExistsActiveOverlap applies the half-open overlap test against ACTIVE
	// reservations for the stall.
	ExistsActiveOverlap(ctx context.Context, stall string, window reservation.Window) (bool, error)
	// FindActiveEndedBefore selects sweep candidates: ACTIVE with end < t.
	FindActiveEndedBefore(ctx context.Context, t time.Time) ([]*reservation.Reservation, error)
	ListActive(ctx context.Context) ([]*reservation.Reservation, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
}
