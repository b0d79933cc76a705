//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"banana-farm-api/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T, now time.Time) *reservation.Reservation {
	t.Helper()
	qty, err := reservation.NewQuantity(3)
	require.NoError(t, err)
	notes, err := reservation.NewNotes("ripe please")
	require.NoError(t, err)

	res, err := reservation.NewReservation(uuid.New(), uuid.New(), qty, notes, now)
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creates a pending reservation with created_at set", func(t *testing.T) {
		res := newPending(t, now)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, now, res.CreatedAt())
		assert.Equal(t, 3, res.Quantity().Value())
		assert.Equal(t, "ripe please", res.Notes().String())
		assert.False(t, res.AutoCancelled())
		assert.Nil(t, res.ConfirmedAt())
		assert.Nil(t, res.ShippedAt())
		assert.Nil(t, res.DeliveredAt())
		assert.Nil(t, res.CancelledAt())
		assert.True(t, res.IsActive())
	})

	t.Run("rejects the nil farm id", func(t *testing.T) {
		qty, err := reservation.NewQuantity(1)
		require.NoError(t, err)
		notes, err := reservation.NewNotes("")
		require.NoError(t, err)

		_, err = reservation.NewReservation(uuid.New(), uuid.Nil, qty, notes, now)
		assert.ErrorIs(t, err, reservation.ErrNoFarmSelected)
	})
}

func TestQuantityValidation(t *testing.T) {
	cases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum valid quantity", value: 1},
		{name: "larger quantity", value: 250},
		{name: "zero quantity", value: 0, errIs: reservation.ErrInvalidQuantity},
		{name: "negative quantity", value: -5, errIs: reservation.ErrInvalidQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := reservation.NewQuantity(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, q.Value())
		})
	}
}

func TestNotesValidation(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := reservation.NewNotes("  ripe please  ")
		require.NoError(t, err)
		assert.Equal(t, "ripe please", n.String())
	})

	t.Run("empty notes are allowed", func(t *testing.T) {
		n, err := reservation.NewNotes("")
		require.NoError(t, err)
		assert.True(t, n.IsEmpty())
	})

	t.Run("rejects notes above the maximum length", func(t *testing.T) {
		long := make([]byte, reservation.MaxNotesLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := reservation.NewNotes(string(long))
		assert.ErrorIs(t, err, reservation.ErrNotesTooLong)
	})
}

func TestLifecycleTransitions(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("forward path sets each timestamp exactly once", func(t *testing.T) {
		res := newPending(t, start)

		confirmAt := start.Add(1 * time.Hour)
		require.NoError(t, res.Confirm(confirmAt))
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.NotNil(t, res.ConfirmedAt())
		assert.Equal(t, confirmAt, *res.ConfirmedAt())

		shipAt := start.Add(24 * time.Hour)
		require.NoError(t, res.Ship(shipAt))
		assert.Equal(t, reservation.StatusShipped, res.Status())
		require.NotNil(t, res.ShippedAt())
		assert.Equal(t, shipAt, *res.ShippedAt())

		deliverAt := start.Add(48 * time.Hour)
		require.NoError(t, res.Deliver(deliverAt))
		assert.Equal(t, reservation.StatusDelivered, res.Status())
		require.NotNil(t, res.DeliveredAt())
		assert.Equal(t, deliverAt, *res.DeliveredAt())
		assert.False(t, res.IsActive())
		assert.Nil(t, res.CancelledAt())
	})

	t.Run("forward path cannot skip states", func(t *testing.T) {
		res := newPending(t, start)
		assert.ErrorIs(t, res.Ship(start), reservation.ErrIllegalTransition)
		assert.ErrorIs(t, res.Deliver(start), reservation.ErrIllegalTransition)
	})

	t.Run("cancel from pending", func(t *testing.T) {
		res := newPending(t, start)
		cancelAt := start.Add(time.Hour)
		require.NoError(t, res.Cancel(cancelAt, false))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		require.NotNil(t, res.CancelledAt())
		assert.Equal(t, cancelAt, *res.CancelledAt())
		assert.False(t, res.AutoCancelled())
	})

	t.Run("cancel from confirmed", func(t *testing.T) {
		res := newPending(t, start)
		require.NoError(t, res.Confirm(start.Add(time.Hour)))
		require.NoError(t, res.Cancel(start.Add(2*time.Hour), false))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("auto cancellation marks the system origin", func(t *testing.T) {
		res := newPending(t, start)
		require.NoError(t, res.Cancel(start.Add(48*time.Hour), true))
		assert.True(t, res.AutoCancelled())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("cancel is not reachable after shipping", func(t *testing.T) {
		res := newPending(t, start)
		require.NoError(t, res.Confirm(start))
		require.NoError(t, res.Ship(start))
		assert.ErrorIs(t, res.Cancel(start, false), reservation.ErrIllegalTransition)
	})

	t.Run("terminal states accept no further transitions", func(t *testing.T) {
		delivered := newPending(t, start)
		require.NoError(t, delivered.Confirm(start))
		require.NoError(t, delivered.Ship(start))
		require.NoError(t, delivered.Deliver(start))
		assert.ErrorIs(t, delivered.Confirm(start), reservation.ErrIllegalTransition)
		assert.ErrorIs(t, delivered.Cancel(start, false), reservation.ErrIllegalTransition)

		cancelled := newPending(t, start)
		require.NoError(t, cancelled.Cancel(start, false))
		assert.ErrorIs(t, cancelled.Confirm(start), reservation.ErrIllegalTransition)
		assert.ErrorIs(t, cancelled.Deliver(start), reservation.ErrIllegalTransition)
	})
}
