package bootstrap

import (
	"parklot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	SweeperModule,
)
