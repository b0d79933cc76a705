//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cancellerStub struct {
	gotNow    time.Time
	gotCutoff time.Time
	ids       []uuid.UUID
	err       error
}

func (s *cancellerStub) CancelStalePending(_ context.Context, now, cutoff time.Time) ([]uuid.UUID, error) {
	s.gotNow = now
	s.gotCutoff = cutoff
	return s.ids, s.err
}

func TestAutoCancelWorker_RunOnce(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := config.WorkerConfig{
		AutoCancelAfter: 48 * time.Hour,
		AutoCancelCron:  "*/10 * * * *",
	}

	t.Run("sweeps with a cutoff derived from the window", func(t *testing.T) {
		mockClock := clock.NewMockClock(base)
		stub := &cancellerStub{ids: []uuid.UUID{uuid.New(), uuid.New()}}
		w := worker.NewAutoCancelWorker(stub, mockClock, cfg)

		err := w.RunOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, base, stub.gotNow)
		assert.Equal(t, base.Add(-48*time.Hour), stub.gotCutoff)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		mockClock := clock.NewMockClock(base)
		stub := &cancellerStub{err: errors.New("database connection lost")}
		w := worker.NewAutoCancelWorker(stub, mockClock, cfg)

		err := w.RunOnce(context.Background())
		require.Error(t, err)
	})
}
