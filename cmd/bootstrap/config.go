package bootstrap

import (
	"banana-farm-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.DetectConfig { return cfg.Detect },
		func(cfg config.Config) config.WorkerConfig { return cfg.Worker },
	),
)
