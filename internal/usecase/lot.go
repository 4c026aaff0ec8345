package usecase

import (
	"context"
	"time"

	"parklot/internal/domain/billing"
	"parklot/internal/domain/lot"
	"parklot/internal/infra"
	"parklot/internal/pkg/errs"
	"parklot/internal/usecase/shared"
)

type SaveConfigurationParams struct {
	TotalStalls    int32
	Fraction30Rate int64
	HourlyRate     int64
	DailyRate      int64
	MonthlyRate    int64
}

type LotUseCase interface {
	GetOccupancy(ctx context.Context) (lot.Occupancy, error)
	GetActiveConfiguration(ctx context.Context) (*lot.Config, error)
	SaveConfiguration(ctx context.Context, params SaveConfigurationParams) (*lot.Config, error)
	CalculateTariff(ctx context.Context, entry, exit time.Time, kind billing.TariffKind) (billing.Money, error)
	SuggestTariff(estimated time.Duration) billing.TariffKind
}

type lotUseCaseImpl struct {
	uow        shared.UnitOfWork
	calculator *billing.Calculator
}

func NewLotUseCase(uow shared.UnitOfWork, calculator *billing.Calculator) LotUseCase {
	return &lotUseCaseImpl{
		uow:        uow,
		calculator: calculator,
	}
}

// GetOccupancy reads the open-ticket count and the configured total inside
// one read-only transaction so both come from the same configuration.
func (u *lotUseCaseImpl) GetOccupancy(ctx context.Context) (lot.Occupancy, error) {
	var occ lot.Occupancy
	err := u.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
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

		occ = lot.NewOccupancy(openCount, cfg.TotalStalls())
		return nil
	})
	if err != nil {
		return lot.Occupancy{}, err
	}
	return occ, nil
}

func (u *lotUseCaseImpl) GetActiveConfiguration(ctx context.Context) (*lot.Config, error) {
	var cfg *lot.Config
	err := u.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Configs().FindActive(ctx)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrConfigurationMissing
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		cfg = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfiguration replaces the active configuration: deactivate-then-insert
// runs as one atomic unit so readers observe either the old or the new
// snapshot, never a mix.
func (u *lotUseCaseImpl) SaveConfiguration(ctx context.Context, params SaveConfigurationParams) (*lot.Config, error) {
	rates, err := buildRates(params)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidConfiguration)
	}

	cfg, err := lot.NewConfig(params.TotalStalls, rates)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidConfiguration)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Configs().DeactivateActive(ctx); err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		if err := tx.Configs().Create(ctx, cfg); err != nil {
			return errs.Mark(err, ErrStorageOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (u *lotUseCaseImpl) CalculateTariff(ctx context.Context, entry, exit time.Time, kind billing.TariffKind) (billing.Money, error) {
	if !kind.IsValid() {
		return billing.Money{}, ErrInvalidTariffKind
	}
	if !exit.After(entry) {
		return billing.Money{}, ErrInvalidStayPeriod
	}

	var charge billing.Money
	err := u.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.Configs().FindActive(ctx)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrConfigurationMissing
			}
			return errs.Mark(err, ErrStorageOperationFailed)
		}

		charge, err = u.calculator.Calculate(entry, exit, kind, cfg.Rates())
		if err != nil {
			return errs.Mark(err, ErrInvalidTariffKind)
		}
		return nil
	})
	if err != nil {
		return billing.Money{}, err
	}
	return charge, nil
}

func (u *lotUseCaseImpl) SuggestTariff(estimated time.Duration) billing.TariffKind {
	return u.calculator.SuggestTariff(estimated)
}

func buildRates(params SaveConfigurationParams) (billing.Rates, error) {
	fraction30, err := billing.NewMoney(params.Fraction30Rate)
	if err != nil {
		return billing.Rates{}, err
	}
	hourly, err := billing.NewMoney(params.HourlyRate)
	if err != nil {
		return billing.Rates{}, err
	}
	daily, err := billing.NewMoney(params.DailyRate)
	if err != nil {
		return billing.Rates{}, err
	}
	monthly, err := billing.NewMoney(params.MonthlyRate)
	if err != nil {
		return billing.Rates{}, err
	}
	return billing.Rates{
		Fraction30: fraction30,
		Hourly:     hourly,
		Daily:      daily,
		Monthly:    monthly,
	}, nil
}
