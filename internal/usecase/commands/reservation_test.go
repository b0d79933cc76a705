//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"banana-farm-api/internal/domain/reservation"
	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/usecase/commands"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationRepoStub struct {
	created     *reservation.Reservation
	createView  *queries.ReservationView
	createErr   error
	findResult  *reservation.Reservation
	findErr     error
	applied     *reservation.Reservation
	appliedFrom reservation.Status
	applyErr    error
}

func (s *reservationRepoStub) Create(_ context.Context, res *reservation.Reservation) (*queries.ReservationView, error) {
	s.created = res
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.createView != nil {
		return s.createView, nil
	}
	return &queries.ReservationView{ID: res.ID(), Status: res.Status().String()}, nil
}

func (s *reservationRepoStub) FindByID(_ context.Context, _ uuid.UUID) (*reservation.Reservation, error) {
	return s.findResult, s.findErr
}

func (s *reservationRepoStub) ApplyTransition(_ context.Context, res *reservation.Reservation, from reservation.Status) error {
	s.applied = res
	s.appliedFrom = from
	return s.applyErr
}

type farmReaderStub struct {
	snapshot *commands.FarmSnapshot
	err      error
}

func (s *farmReaderStub) FindSnapshot(_ context.Context, _ uuid.UUID) (*commands.FarmSnapshot, error) {
	return s.snapshot, s.err
}

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newPendingReservation(t *testing.T, farmerID, farmID uuid.UUID) *reservation.Reservation {
	t.Helper()
	quantity, err := reservation.NewQuantity(2)
	require.NoError(t, err)
	notes, err := reservation.NewNotes("")
	require.NoError(t, err)
	res, err := reservation.NewReservation(farmerID, farmID, quantity, notes, testTime)
	require.NoError(t, err)
	return res
}

func TestReservationCommands_Submit(t *testing.T) {
	ctx := context.Background()
	farmerID := uuid.New()
	farmID := uuid.New()
	ownerID := uuid.New()

	validParams := commands.SubmitReservationParams{
		FarmID:   farmID,
		Quantity: 2,
		Notes:    "morning delivery please",
	}

	testCases := []struct {
		name          string
		params        commands.SubmitReservationParams
		farmReader    *farmReaderStub
		repo          *reservationRepoStub
		expectedError error
	}{
		{
			name:       "creates a pending reservation",
			params:     validParams,
			farmReader: &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID, Name: "Golden Banana Farm"}},
			repo:       &reservationRepoStub{},
		},
		{
			name:          "rejects a non-positive quantity",
			params:        commands.SubmitReservationParams{FarmID: farmID, Quantity: 0},
			farmReader:    &farmReaderStub{},
			repo:          &reservationRepoStub{},
			expectedError: commands.ErrInvalidQuantity,
		},
		{
			name:          "rejects a missing farm selection",
			params:        commands.SubmitReservationParams{FarmID: uuid.Nil, Quantity: 2},
			farmReader:    &farmReaderStub{},
			repo:          &reservationRepoStub{},
			expectedError: commands.ErrInvalidSelection,
		},
		{
			name:          "rejects an unknown farm",
			params:        validParams,
			farmReader:    &farmReaderStub{err: infra.NewRepoErr(infra.KindNotFound, "farm not found", nil)},
			repo:          &reservationRepoStub{},
			expectedError: commands.ErrFarmNotFound,
		},
		{
			name:          "wraps store failures",
			params:        validParams,
			farmReader:    &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}},
			repo:          &reservationRepoStub{createErr: infra.NewRepoErr(infra.KindDBFailure, "insert failed", nil)},
			expectedError: commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := commands.NewReservationCommands(tc.repo, tc.farmReader, clock.NewMockClock(testTime))

			view, err := uc.Submit(ctx, tc.params, farmerID)
			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, view)
			require.NotNil(t, tc.repo.created)
			assert.Equal(t, reservation.StatusPending, tc.repo.created.Status())
			assert.Equal(t, farmerID, tc.repo.created.FarmerID())
			assert.Equal(t, testTime, tc.repo.created.CreatedAt())
		})
	}
}

func TestReservationCommands_Confirm(t *testing.T) {
	ctx := context.Background()
	farmerID := uuid.New()
	farmID := uuid.New()
	ownerID := uuid.New()

	t.Run("farm owner confirms a pending reservation", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		repo := &reservationRepoStub{findResult: res}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Confirm(ctx, res.ID(), ownerID, user.RoleFarmOwner)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, repo.appliedFrom)
		assert.Equal(t, reservation.StatusConfirmed, repo.applied.Status())
		require.NotNil(t, repo.applied.ConfirmedAt())
		assert.Equal(t, testTime, *repo.applied.ConfirmedAt())
	})

	t.Run("admin bypasses the ownership check", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		repo := &reservationRepoStub{findResult: res}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Confirm(ctx, res.ID(), uuid.New(), user.RoleAdmin)
		require.NoError(t, err)
	})

	t.Run("rejects a caller who does not own the farm", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		repo := &reservationRepoStub{findResult: res}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Confirm(ctx, res.ID(), uuid.New(), user.RoleFarmOwner)
		assert.ErrorIs(t, err, commands.ErrNotFarmOwner)
	})

	t.Run("rejects confirming a delivered reservation", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		require.NoError(t, res.Confirm(testTime))
		require.NoError(t, res.Ship(testTime))
		require.NoError(t, res.Deliver(testTime))

		repo := &reservationRepoStub{findResult: res}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Confirm(ctx, res.ID(), ownerID, user.RoleFarmOwner)
		assert.ErrorIs(t, err, commands.ErrIllegalTransition)
	})

	t.Run("reports a concurrent status change", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		repo := &reservationRepoStub{
			findResult: res,
			applyErr:   infra.NewRepoErr(infra.KindConflict, "status changed", nil),
		}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Confirm(ctx, res.ID(), ownerID, user.RoleFarmOwner)
		assert.ErrorIs(t, err, commands.ErrTransitionConflict)
	})

	t.Run("returns not found for a missing reservation", func(t *testing.T) {
		repo := &reservationRepoStub{findErr: infra.NewRepoErr(infra.KindNotFound, "missing", nil)}
		uc := commands.NewReservationCommands(repo, &farmReaderStub{}, clock.NewMockClock(testTime))

		err := uc.Confirm(ctx, uuid.New(), ownerID, user.RoleFarmOwner)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	farmerID := uuid.New()
	farmID := uuid.New()
	ownerID := uuid.New()

	t.Run("the farmer cancels their own pending reservation", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		repo := &reservationRepoStub{findResult: res}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Cancel(ctx, res.ID(), farmerID, user.RoleNewFarmer)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusCancelled, repo.applied.Status())
		assert.False(t, repo.applied.AutoCancelled())
	})

	t.Run("the farm owner cancels a confirmed reservation", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		require.NoError(t, res.Confirm(testTime))

		repo := &reservationRepoStub{findResult: res}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Cancel(ctx, res.ID(), ownerID, user.RoleFarmOwner)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, repo.appliedFrom)
	})

	t.Run("a stranger cannot cancel", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		repo := &reservationRepoStub{findResult: res}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Cancel(ctx, res.ID(), uuid.New(), user.RoleNewFarmer)
		assert.ErrorIs(t, err, commands.ErrNotFarmOwner)
	})

	t.Run("rejects cancelling a shipped reservation", func(t *testing.T) {
		res := newPendingReservation(t, farmerID, farmID)
		require.NoError(t, res.Confirm(testTime))
		require.NoError(t, res.Ship(testTime))

		repo := &reservationRepoStub{findResult: res}
		reader := &farmReaderStub{snapshot: &commands.FarmSnapshot{ID: farmID, OwnerID: ownerID}}
		uc := commands.NewReservationCommands(repo, reader, clock.NewMockClock(testTime))

		err := uc.Cancel(ctx, res.ID(), farmerID, user.RoleNewFarmer)
		assert.ErrorIs(t, err, commands.ErrIllegalTransition)
	})
}
