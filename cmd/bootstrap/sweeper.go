package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"parklot/internal/pkg/config"
	"parklot/internal/usecase"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(startSweeper),
)

// startSweeper runs the reservation-expiry job on a fixed ticker for the
// lifetime of the app. One immediate sweep runs at startup so restarts do not
// leave stale rows waiting a full interval.
func startSweeper(lc fx.Lifecycle, cfg config.Config, sweeper usecase.Sweeper, logger *slog.Logger) {
	if !cfg.Sweeper.Enabled {
		logger.Info("reservation sweeper disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting reservation sweeper", "interval", cfg.Sweeper.Interval.String())
			go runSweepLoop(ctx, cfg.Sweeper.Interval, sweeper, logger, done)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func runSweepLoop(ctx context.Context, interval time.Duration, sweeper usecase.Sweeper, logger *slog.Logger, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sweepOnce(ctx, sweeper, logger)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepOnce(ctx, sweeper, logger)
		}
	}
}

func sweepOnce(ctx context.Context, sweeper usecase.Sweeper, logger *slog.Logger) {
	if _, err := sweeper.RunExpirationSweep(ctx); err != nil {
		logger.Error("reservation sweep failed", "error", err.Error())
	}
}
