package repository

import (
	"context"
	"time"

	"parklot/internal/domain/billing"
	"parklot/internal/domain/lot"
	"parklot/internal/infra/db"

	"github.com/google/uuid"
)

type ConfigRepository struct {
	db db.DBTX
}

func NewConfigRepository(dbtx db.DBTX) *ConfigRepository {
	return &ConfigRepository{db: dbtx}
}

func (r *ConfigRepository) FindActive(ctx context.Context) (*lot.Config, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, total_stalls, rate_fraction30_cents, rate_hourly_cents,
		        rate_daily_cents, rate_monthly_cents, active, created_at
		 FROM lot_configs
		 WHERE active
		 ORDER BY created_at DESC
		 LIMIT 1`,
	)

	var (
		id                                 uuid.UUID
		totalStalls                        int32
		fraction30, hourly, daily, monthly int64
		active                             bool
		createdAt                          time.Time
	)
	if err := row.Scan(&id, &totalStalls, &fraction30, &hourly, &daily, &monthly, &active, &createdAt); err != nil {
		return nil, wrapReadErr("active configuration not found", err)
	}

	return lot.ReconstructConfig(id, totalStalls, billing.Rates{
		Fraction30: billing.MustMoney(fraction30),
		Hourly:     billing.MustMoney(hourly),
		Daily:      billing.MustMoney(daily),
		Monthly:    billing.MustMoney(monthly),
	}, active, createdAt), nil
}

func (r *ConfigRepository) Create(ctx context.Context, cfg *lot.Config) error {
	rates := cfg.Rates()
	_, err := r.db.Exec(ctx,
		`INSERT INTO lot_configs
		   (id, total_stalls, rate_fraction30_cents, rate_hourly_cents,
		    rate_daily_cents, rate_monthly_cents, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		cfg.ID(), cfg.TotalStalls(),
		rates.Fraction30.Cents(), rates.Hourly.Cents(),
		rates.Daily.Cents(), rates.Monthly.Cents(),
		cfg.IsActive(),
	)
	if err != nil {
		return wrapWriteErr("failed to create configuration", err)
	}
	return nil
}

func (r *ConfigRepository) DeactivateActive(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `UPDATE lot_configs SET active = false WHERE active`)
	if err != nil {
		return wrapWriteErr("failed to deactivate configuration", err)
	}
	return nil
}
