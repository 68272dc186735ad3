package bootstrap

import (
	"quinta-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	AssistantModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
