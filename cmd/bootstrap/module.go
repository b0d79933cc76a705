package bootstrap

import (
	"banana-farm-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	DetectorModule,
	StorageModule,
	RedisModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
