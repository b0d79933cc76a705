package bootstrap

import (
	"banana-farm-api/internal/infra/detect"
	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var DetectorModule = fx.Module("detector",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *detect.Client {
				return detect.NewClient(cfg.Detect)
			},
			fx.As(new(commands.Detector)),
		),
	),
)
