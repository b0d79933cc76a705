//go:build unit

package commands_test

import (
	"context"
	"testing"

	"banana-farm-api/internal/domain/reservation"
	domreview "banana-farm-api/internal/domain/review"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewRepoStub struct {
	created *domreview.Review
	id      uuid.UUID
	err     error
}

func (s *reviewRepoStub) Create(_ context.Context, rev *domreview.Review) (uuid.UUID, error) {
	s.created = rev
	if s.err != nil {
		return uuid.Nil, s.err
	}
	return s.id, nil
}

func deliveredReservation(t *testing.T, farmerID, farmID uuid.UUID) *reservation.Reservation {
	t.Helper()
	res := newPendingReservation(t, farmerID, farmID)
	require.NoError(t, res.Confirm(testTime))
	require.NoError(t, res.Ship(testTime))
	require.NoError(t, res.Deliver(testTime))
	return res
}

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()
	farmerID := uuid.New()
	farmID := uuid.New()
	reviewID := uuid.New()

	validParams := func(reservationID uuid.UUID) commands.CreateReviewParams {
		return commands.CreateReviewParams{
			ReservationID: reservationID,
			Rating:        5,
			Comment:       "Sweet and perfectly ripe.",
		}
	}

	t.Run("posts a review for a delivered reservation", func(t *testing.T) {
		res := deliveredReservation(t, farmerID, farmID)
		reviewRepo := &reviewRepoStub{id: reviewID}
		uc := commands.NewReviewCommands(reviewRepo, &reservationRepoStub{findResult: res}, clock.NewMockClock(testTime))

		result, err := uc.Create(ctx, validParams(res.ID()), farmerID)
		require.NoError(t, err)
		assert.Equal(t, reviewID, result.ReviewID)

		require.NotNil(t, reviewRepo.created)
		assert.Equal(t, farmID, reviewRepo.created.FarmID())
		assert.Equal(t, res.ID(), reviewRepo.created.ReservationID())
		assert.Equal(t, farmerID, reviewRepo.created.ReviewerID())
		assert.Equal(t, 5, reviewRepo.created.Rating().Value())
	})

	t.Run("rejects a rating outside 1 to 5", func(t *testing.T) {
		res := deliveredReservation(t, farmerID, farmID)
		uc := commands.NewReviewCommands(&reviewRepoStub{}, &reservationRepoStub{findResult: res}, clock.NewMockClock(testTime))

		params := validParams(res.ID())
		params.Rating = 6
		_, err := uc.Create(ctx, params, farmerID)
		assert.Error(t, err)
	})

	t.Run("returns not found for a missing reservation", func(t *testing.T) {
		repo := &reservationRepoStub{findErr: infra.NewRepoErr(infra.KindNotFound, "missing", nil)}
		uc := commands.NewReviewCommands(&reviewRepoStub{}, repo, clock.NewMockClock(testTime))

		_, err := uc.Create(ctx, validParams(uuid.New()), farmerID)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("rejects a reviewer who did not place the reservation", func(t *testing.T) {
		res := deliveredReservation(t, farmerID, farmID)
		uc := commands.NewReviewCommands(&reviewRepoStub{}, &reservationRepoStub{findResult: res}, clock.NewMockClock(testTime))

		_, err := uc.Create(ctx, validParams(res.ID()), uuid.New())
		assert.ErrorIs(t, err, commands.ErrReviewNotOwned)
	})

	t.Run("rejects a reservation that has not been delivered", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		require.NoError(t, res.Confirm(testTime))
		uc := commands.NewReviewCommands(&reviewRepoStub{}, &reservationRepoStub{findResult: res}, clock.NewMockClock(testTime))

		_, err := uc.Create(ctx, validParams(res.ID()), farmerID)
		assert.ErrorIs(t, err, commands.ErrReviewNotEligible)
	})

	t.Run("rejects a second review for the same reservation", func(t *testing.T) {
		res := deliveredReservation(t, farmerID, farmID)
		reviewRepo := &reviewRepoStub{err: infra.NewRepoErr(infra.KindDuplicateKey, "duplicate review", nil)}
		uc := commands.NewReviewCommands(reviewRepo, &reservationRepoStub{findResult: res}, clock.NewMockClock(testTime))

		_, err := uc.Create(ctx, validParams(res.ID()), farmerID)
		assert.ErrorIs(t, err, commands.ErrDuplicateReview)
	})
}
