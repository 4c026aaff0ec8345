package usecase

import (
	"context"
	"log/slog"

	"parklot/internal/infra"
	"parklot/internal/pkg/clock"
	"parklot/internal/pkg/errs"
	"parklot/internal/usecase/shared"
)

type SweepResult struct {
	Expired int
	Failed  int
}

// Sweeper expires ACTIVE reservations whose window has elapsed. It runs on a
// timer alongside request handling; the batch never holds a transaction open —
// every transition is its own atomic statement and a failed row does not
// abort the rest.
type Sweeper interface {
	RunExpirationSweep(ctx context.Context) (SweepResult, error)
}

type sweeperImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewSweeper(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) Sweeper {
	return &sweeperImpl{
		uow:    uow,
		clock:  clk,
		logger: logger,
	}
}

func (s *sweeperImpl) RunExpirationSweep(ctx context.Context) (SweepResult, error) {
	now := s.clock.Now()

	var result SweepResult
	err := s.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		stale, err := tx.Reservations().FindActiveEndedBefore(ctx, now)
		if err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		for _, r := range stale {
			if err := r.Expire(now); err != nil {
				// Raced with a concurrent cancel/use; nothing to do.
				continue
			}
			if err := tx.Reservations().Update(ctx, r); err != nil {
				// The row left ACTIVE between the scan and this write;
				// a concurrent cancel or use won and there is nothing to expire.
				if infra.IsKind(err, infra.KindConflict) {
					continue
				}
				result.Failed++
				s.logger.Error("failed to expire reservation",
					"reservation_id", r.ID().String(),
					"error", err.Error())
				continue
			}
			result.Expired++
		}
		return nil
	})
	if err != nil {
		return SweepResult{}, err
	}

	if result.Expired > 0 || result.Failed > 0 {
		s.logger.Info("reservation sweep finished",
			"expired", result.Expired,
			"failed", result.Failed)
	}
	return result, nil
}
