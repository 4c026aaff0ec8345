package usecase

import (
	"context"
	"errors"
	"time"

	"parklot/internal/domain/reservation"
	"parklot/internal/infra"
	"parklot/internal/pkg/clock"
	"parklot/internal/pkg/errs"
	"parklot/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationParams struct {
	Plate string
	Stall string
	Start time.Time
	End   time.Time
}

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
	MarkReservationUsed(ctx context.Context, id uuid.UUID) error
	GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ListActiveReservations(ctx context.Context) ([]*reservation.Reservation, error)
	ListReservationsForPlate(ctx context.Context, plate string) ([]*reservation.Reservation, error)
}

type reservationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationUseCase {
	return &reservationUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

// CreateReservation validates the window, requires a registered vehicle
// (reservations do not auto-create vehicles, unlike check-in) and rejects any
// half-open overlap with an ACTIVE reservation for the stall. The conflict
// check and the insert share one transaction; the exclusion constraint
// backstops concurrent writers.
func (u *reservationUseCaseImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error) {
	now := u.clock.Now()

	window, err := reservation.NewWindow(params.Start, params.End, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservationWindow)
	}

	var created *reservation.Reservation
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		veh, err := tx.Vehicles().FindByPlate(ctx, params.Plate)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		conflict, err := tx.Reservations().ExistsActiveOverlap(ctx, params.Stall, window)
		if err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		if conflict {
			return ErrReservationConflict
		}

		created = reservation.NewReservation(veh.ID(), params.Stall, window, now)
		if err := tx.Reservations().Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrReservationConflict
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID) error {
	return u.transition(ctx, id, func(r *reservation.Reservation) error {
		return r.Cancel()
	})
}

func (u *reservationUseCaseImpl) MarkReservationUsed(ctx context.Context, id uuid.UUID) error {
	now := u.clock.Now()
	return u.transition(ctx, id, func(r *reservation.Reservation) error {
		return r.MarkUsed(now)
	})
}

func (u *reservationUseCaseImpl) transition(ctx context.Context, id uuid.UUID, apply func(*reservation.Reservation) error) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		if err := apply(r); err != nil {
			switch {
			case errors.Is(err, reservation.ErrNotActive):
				return ErrReservationNotActive
			case errors.Is(err, reservation.ErrOutOfWindow):
				return ErrOutOfReservationWindow
			default:
				return errs.Mark(err, ErrReservationNotActive)
			}
		}

		if err := tx.Reservations().Update(ctx, r); err != nil {
			// A concurrent writer moved the row out of ACTIVE first.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrReservationNotActive
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		return nil
	})
}

func (u *reservationUseCaseImpl) GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var found *reservation.Reservation
	err := u.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		found = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (u *reservationUseCaseImpl) ListActiveReservations(ctx context.Context) ([]*reservation.Reservation, error) {
	var active []*reservation.Reservation
	err := u.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		rs, err := tx.Reservations().ListActive(ctx)
		if err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		active = rs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return active, nil
}

func (u *reservationUseCaseImpl) ListReservationsForPlate(ctx context.Context, plate string) ([]*reservation.Reservation, error) {
	var result []*reservation.Reservation
	err := u.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		veh, err := tx.Vehicles().FindByPlate(ctx, plate)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVehicleNotFound
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		rs, err := tx.Reservations().FindActiveForVehicle(ctx, veh.ID())
		if err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		result = rs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
