package worker

import (
	"context"
	"log/slog"
	"time"

	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// StaleReservationCanceller cancels reservations that stayed pending past
// the cutoff and reports which ones were affected.
type StaleReservationCanceller interface {
	CancelStalePending(ctx context.Context, now, cutoff time.Time) ([]uuid.UUID, error)
}

// AutoCancelWorker periodically cancels reservations that no farm owner
// confirmed within the configured window. Cancellations made here are
// marked as system triggered.
type AutoCancelWorker struct {
	repo  StaleReservationCanceller
	clock clock.Clock
	cfg   config.WorkerConfig
	cron  *cron.Cron
}

func NewAutoCancelWorker(repo StaleReservationCanceller, clk clock.Clock, cfg config.WorkerConfig) *AutoCancelWorker {
	return &AutoCancelWorker{
		repo:  repo,
		clock: clk,
		cfg:   cfg,
		cron:  cron.New(),
	}
}

func (w *AutoCancelWorker) Start() error {
	_, err := w.cron.AddFunc(w.cfg.AutoCancelCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := w.RunOnce(ctx); err != nil {
			slog.Error("auto-cancel sweep failed", "error", err)
		}
	})
	if err != nil {
		return errs.Wrap(err, "failed to schedule auto-cancel sweep")
	}
	w.cron.Start()
	slog.Info("auto-cancel worker started",
		"schedule", w.cfg.AutoCancelCron,
		"window", w.cfg.AutoCancelAfter.String(),
	)
	return nil
}

// Stop waits for an in-flight sweep to finish.
func (w *AutoCancelWorker) Stop() {
	<-w.cron.Stop().Done()
}

// RunOnce performs a single sweep. Exposed for scheduling and tests.
func (w *AutoCancelWorker) RunOnce(ctx context.Context) error {
	now := w.clock.Now()
	cutoff := now.Add(-w.cfg.AutoCancelAfter)

	ids, err := w.repo.CancelStalePending(ctx, now, cutoff)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		slog.Info("auto-cancelled stale reservations", "count", len(ids))
	}
	return nil
}
