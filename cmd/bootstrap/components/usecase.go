package components

import (
	"parklot/internal/domain/billing"
	"parklot/internal/pkg/clock"
	"parklot/internal/usecase"
	"parklot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		billing.NewCalculator,
		usecase.NewTicketUseCase,
		usecase.NewReservationUseCase,
		usecase.NewLotUseCase,
		usecase.NewSweeper,
		queries.NewReportQueries,
	),
)
