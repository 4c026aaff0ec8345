package components

import (
	"parklot/internal/infra/readstore"
	"parklot/internal/infra/uow"
	"parklot/internal/usecase/queries"
	"parklot/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)
