package usecase

import (
	"context"

	"parklot/internal/domain/billing"
	"parklot/internal/domain/lot"
	"parklot/internal/domain/reservation"
	"parklot/internal/domain/ticket"
	"parklot/internal/domain/vehicle"
	"parklot/internal/infra"
	"parklot/internal/pkg/clock"
	"parklot/internal/pkg/errs"
	"parklot/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckInParams struct {
	Plate      string
	Model      string
	Color      string
	Stall      string
	TariffKind *billing.TariffKind
}

type TicketUseCase interface {
	CheckIn(ctx context.Context, params CheckInParams) (*ticket.Ticket, error)
	CheckOut(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, error)
	GetTicket(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, error)
	ListOpenTickets(ctx context.Context) ([]*ticket.Ticket, error)
}

type ticketUseCaseImpl struct {
	uow        shared.UnitOfWork
	calculator *billing.Calculator
	clock      clock.Clock
}

func NewTicketUseCase(uow shared.UnitOfWork, calculator *billing.Calculator, clk clock.Clock) TicketUseCase {
	return &ticketUseCaseImpl{
		uow:        uow,
		calculator: calculator,
		clock:      clk,
	}
}

// CheckIn admits a vehicle: capacity check, find-or-create vehicle, duplicate
// open-ticket check, reservation match, ticket creation. Consuming a matched
// reservation commits in the same transaction as the ticket so both changes
// are observed together.
func (u *ticketUseCaseImpl) CheckIn(ctx context.Context, params CheckInParams) (*ticket.Ticket, error) {
	now := u.clock.Now()

	var created *ticket.Ticket
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.Configs().FindActive(ctx)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrConfigurationMissing
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		openCount, err := tx.Tickets().CountOpen(ctx)
		if err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		if lot.NewOccupancy(openCount, cfg.TotalStalls()).IsFull() {
			return ErrLotFull
		}

		veh, err := u.resolveOrRegisterVehicle(ctx, tx, params)
		if err != nil {
			return err
		}

		hasOpen, err := tx.Tickets().ExistsOpenForVehicle(ctx, veh.ID())
		if err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		if hasOpen {
			return ErrDuplicateOpenTicket
		}

		matched, err := u.findMatchingReservation(ctx, tx, veh.ID(), params.Stall)
		if err != nil {
			return err
		}

		kind := billing.KindHourly
		if params.TariffKind != nil {
			if !params.TariffKind.IsValid() {
				return ErrInvalidTariffKind
			}
			kind = *params.TariffKind
		}

		var reservationID *uuid.UUID
		if matched != nil {
			id := matched.ID()
			reservationID = &id
		}

		created = ticket.NewTicket(veh.ID(), params.Stall, kind, reservationID, now)
		if err := tx.Tickets().Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateOpenTicket
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		if matched != nil {
			if err := matched.Consume(); err != nil {
				return errs.Mark(err, ErrReservationNotActive)
			}
			if err := tx.Reservations().Update(ctx, matched); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrReservationNotActive
				}
				return errs.Mark(err, ErrStorageOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CheckOut closes the ticket, pricing the elapsed stay under the tariff kind
// recorded at check-in. A second call fails rather than recomputing.
func (u *ticketUseCaseImpl) CheckOut(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, error) {
	now := u.clock.Now()

	var closed *ticket.Ticket
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tickets().FindByID(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		if !t.IsOpen() {
			return ErrTicketAlreadyClosed
		}

		cfg, err := tx.Configs().FindActive(ctx)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrConfigurationMissing
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		charge, err := u.calculator.Calculate(t.EntryAt(), now, t.TariffKind(), cfg.Rates())
		if err != nil {
			return errs.Mark(err, ErrInvalidTariffKind)
		}
		if err := t.Close(now, charge); err != nil {
			return ErrTicketAlreadyClosed
		}
		if err := tx.Tickets().Update(ctx, t); err != nil {
			// A concurrent check-out closed the ticket first.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrTicketAlreadyClosed
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		closed = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

func (u *ticketUseCaseImpl) GetTicket(ctx context.Context, ticketID uuid.UUID) (*ticket.Ticket, error) {
	var found *ticket.Ticket
	err := u.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tickets().FindByID(ctx, ticketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		found = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (u *ticketUseCaseImpl) ListOpenTickets(ctx context.Context) ([]*ticket.Ticket, error) {
	var open []*ticket.Ticket
	err := u.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		ts, err := tx.Tickets().ListOpen(ctx)
		if err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		open = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return open, nil
}

func (u *ticketUseCaseImpl) resolveOrRegisterVehicle(ctx context.Context, tx shared.Tx, params CheckInParams) (*vehicle.Vehicle, error) {
	veh, err := tx.Vehicles().FindByPlate(ctx, params.Plate)
	if err == nil {
		return veh, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	veh, err = vehicle.NewVehicle(params.Plate, params.Model, params.Color)
	if err != nil {
		return nil, errs.Mark(err, ErrVehicleNotFound)
	}
	if err := tx.Vehicles().Create(ctx, veh); err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}
	return veh, nil
}

// findMatchingReservation scans the vehicle's ACTIVE reservations for one on
// this stall whose window covers the current instant (boundary-inclusive).
func (u *ticketUseCaseImpl) findMatchingReservation(ctx context.Context, tx shared.Tx, vehicleID uuid.UUID, stall string) (*reservation.Reservation, error) {
	active, err := tx.Reservations().FindActiveForVehicle(ctx, vehicleID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	now := u.clock.Now()
	for _, r := range active {
		if r.MatchesCheckIn(vehicleID, stall, now) {
			return r, nil
		}
	}
	return nil, nil
}
