//go:build unit

package reservation_test

import (
	"testing"

	"banana-farm-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestDisplayCategoryOf(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want reservation.DisplayCategory
	}{
		{name: "pending", raw: "pending", want: reservation.CategoryAwaitingConfirmation},
		{name: "confirmed", raw: "confirmed", want: reservation.CategoryConfirmed},
		{name: "shipped", raw: "shipped", want: reservation.CategoryInTransit},
		{name: "delivered", raw: "delivered", want: reservation.CategoryCompleted},
		{name: "cancelled", raw: "cancelled", want: reservation.CategoryCancelled},
		// The mapping must be total; unknown values fall back to pending's
		// category instead of breaking the dashboard.
		{name: "unknown value", raw: "exploded", want: reservation.CategoryAwaitingConfirmation},
		{name: "empty value", raw: "", want: reservation.CategoryAwaitingConfirmation},
		{name: "case sensitive", raw: "Pending", want: reservation.CategoryAwaitingConfirmation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reservation.DisplayCategoryOf(tc.raw))
		})
	}
}

func TestStatusTransitionTable(t *testing.T) {
	all := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusShipped,
		reservation.StatusDelivered,
		reservation.StatusCancelled,
	}

	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:   {reservation.StatusConfirmed, reservation.StatusCancelled},
		reservation.StatusConfirmed: {reservation.StatusShipped, reservation.StatusCancelled},
		reservation.StatusShipped:   {reservation.StatusDelivered},
		reservation.StatusDelivered: {},
		reservation.StatusCancelled: {},
	}

	for from, nexts := range allowed {
		ok := map[reservation.Status]bool{}
		for _, n := range nexts {
			ok[n] = true
		}
		for _, to := range all {
			assert.Equalf(t, ok[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, reservation.StatusPending.IsValid())
	assert.True(t, reservation.StatusCancelled.IsValid())
	assert.False(t, reservation.Status("unknown").IsValid())

	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.False(t, reservation.StatusShipped.IsTerminal())
	assert.True(t, reservation.StatusDelivered.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())
}
