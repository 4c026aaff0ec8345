package components

import (
	"parklot/internal/handler"
	"parklot/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTicketHandler,
		api.NewReservationHandler,
		api.NewLotHandler,
		api.NewReportHandler,
	),
	fx.Invoke(handler.NewRouter),
)
