package bootstrap

import (
	"context"

	"banana-farm-api/internal/infra/writerepo"
	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewAutoCancelWorker,
	),
	fx.Invoke(registerWorker),
)

func NewAutoCancelWorker(repo *writerepo.ReservationRepository, clk clock.Clock, cfg config.Config) *worker.AutoCancelWorker {
	return worker.NewAutoCancelWorker(repo, clk, cfg.Worker)
}

func registerWorker(lc fx.Lifecycle, w *worker.AutoCancelWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return w.Start()
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
