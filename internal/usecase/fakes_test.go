//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"parklot/internal/domain/lot"
	"parklot/internal/domain/reservation"
	"parklot/internal/domain/ticket"
	"parklot/internal/domain/vehicle"
	"parklot/internal/infra"
	"parklot/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory UnitOfWork. The fakes enforce the same storage invariants the
// schema does (one open ticket per vehicle, no ACTIVE overlap) so usecase
// behavior around constraint violations is exercised without a database.

type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		tx: &fakeTx{
			configs:      &fakeConfigRepo{},
			vehicles:     &fakeVehicleRepo{byPlate: map[string]*vehicle.Vehicle{}},
			tickets:      &fakeTicketRepo{byID: map[uuid.UUID]*ticket.Ticket{}},
			reservations: &fakeReservationRepo{byID: map[uuid.UUID]*reservation.Reservation{}},
		},
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeTx struct {
	configs      *fakeConfigRepo
	vehicles     *fakeVehicleRepo
	tickets      *fakeTicketRepo
	reservations *fakeReservationRepo
}

func (t *fakeTx) Configs() shared.ConfigRepository           { return t.configs }
func (t *fakeTx) Vehicles() shared.VehicleRepository         { return t.vehicles }
func (t *fakeTx) Tickets() shared.TicketRepository           { return t.tickets }
func (t *fakeTx) Reservations() shared.ReservationRepository { return t.reservations }

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

type fakeConfigRepo struct {
	active *lot.Config
}

func (r *fakeConfigRepo) FindActive(_ context.Context) (*lot.Config, error) {
	if r.active == nil {
		return nil, notFoundErr("active configuration not found")
	}
	return r.active, nil
}

func (r *fakeConfigRepo) Create(_ context.Context, cfg *lot.Config) error {
	r.active = cfg
	return nil
}

func (r *fakeConfigRepo) DeactivateActive(_ context.Context) error {
	if r.active != nil {
		r.active.Deactivate()
		r.active = nil
	}
	return nil
}

type fakeVehicleRepo struct {
	byPlate map[string]*vehicle.Vehicle
}

func (r *fakeVehicleRepo) FindByPlate(_ context.Context, plate string) (*vehicle.Vehicle, error) {
	v, ok := r.byPlate[strings.ToUpper(strings.TrimSpace(plate))]
	if !ok {
		return nil, notFoundErr("vehicle not found")
	}
	return v, nil
}

func (r *fakeVehicleRepo) Create(_ context.Context, v *vehicle.Vehicle) error {
	r.byPlate[v.Plate()] = v
	return nil
}

type fakeTicketRepo struct {
	byID map[uuid.UUID]*ticket.Ticket

	// IDs whose row a concurrent writer already closed; Update matches nothing.
	conflictUpdate map[uuid.UUID]bool
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, notFoundErr("ticket not found")
	}
	return t, nil
}

func (r *fakeTicketRepo) CountOpen(_ context.Context) (int32, error) {
	var count int32
	for _, t := range r.byID {
		if t.IsOpen() {
			count++
		}
	}
	return count, nil
}

func (r *fakeTicketRepo) ExistsOpenForVehicle(_ context.Context, vehicleID uuid.UUID) (bool, error) {
	for _, t := range r.byID {
		if t.IsOpen() && t.VehicleID() == vehicleID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTicketRepo) ListOpen(_ context.Context) ([]*ticket.Ticket, error) {
	var open []*ticket.Ticket
	for _, t := range r.byID {
		if t.IsOpen() {
			open = append(open, t)
		}
	}
	return open, nil
}

func (r *fakeTicketRepo) Create(_ context.Context, t *ticket.Ticket) error {
	if t.IsOpen() {
		for _, existing := range r.byID {
			if existing.IsOpen() && existing.VehicleID() == t.VehicleID() {
				return infra.WrapRepoErr("failed to create ticket",
					errors.New("duplicate key value"), infra.KindDuplicateKey)
			}
		}
	}
	r.byID[t.ID()] = t
	return nil
}

func (r *fakeTicketRepo) Update(_ context.Context, t *ticket.Ticket) error {
	if r.conflictUpdate[t.ID()] {
		return infra.WrapRepoErr("ticket is no longer open", nil, infra.KindConflict)
	}
	r.byID[t.ID()] = t
	return nil
}

type fakeReservationRepo struct {
	byID map[uuid.UUID]*reservation.Reservation

	// IDs whose Update should fail, for partial-failure tests.
	failUpdate map[uuid.UUID]bool

	// IDs whose row a concurrent writer already transitioned; Update matches nothing.
	conflictUpdate map[uuid.UUID]bool
}

func (r *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, notFoundErr("reservation not found")
	}
	return res, nil
}

func (r *fakeReservationRepo) FindActiveForVehicle(_ context.Context, vehicleID uuid.UUID) ([]*reservation.Reservation, error) {
	var active []*reservation.Reservation
	for _, res := range r.byID {
		if res.IsActive() && res.VehicleID() == vehicleID {
			active = append(active, res)
		}
	}
	return active, nil
}

func (r *fakeReservationRepo) ExistsActiveOverlap(_ context.Context, stall string, window reservation.Window) (bool, error) {
	for _, res := range r.byID {
		if res.IsActive() && res.Stall() == stall && res.Window().Overlaps(window) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepo) FindActiveEndedBefore(_ context.Context, t time.Time) ([]*reservation.Reservation, error) {
	var stale []*reservation.Reservation
	for _, res := range r.byID {
		if res.IsActive() && res.Window().EndedBefore(t) {
			stale = append(stale, res)
		}
	}
	return stale, nil
}

func (r *fakeReservationRepo) ListActive(_ context.Context) ([]*reservation.Reservation, error) {
	var active []*reservation.Reservation
	for _, res := range r.byID {
		if res.IsActive() {
			active = append(active, res)
		}
	}
	return active, nil
}

func (r *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	for _, existing := range r.byID {
		if existing.IsActive() && existing.Stall() == res.Stall() &&
			existing.Window().Overlaps(res.Window()) {
			return infra.WrapRepoErr("failed to create reservation",
				errors.New("conflicting key value violates exclusion constraint"), infra.KindConflict)
		}
	}
	r.byID[res.ID()] = res
	return nil
}

func (r *fakeReservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	if r.failUpdate[res.ID()] {
		return infra.WrapRepoErr("failed to update reservation", errors.New("connection reset"))
	}
	if r.conflictUpdate[res.ID()] {
		return infra.WrapRepoErr("reservation is no longer active", nil, infra.KindConflict)
	}
	r.byID[res.ID()] = res
	return nil
}
