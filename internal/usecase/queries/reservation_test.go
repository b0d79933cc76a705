//go:build unit

package queries_test

import (
	"context"
	"testing"

	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationStoreStub struct {
	view       *queries.ReservationView
	findErr    error
	ownerID    uuid.UUID
	ownerErr   error
	ownerCalls int
}

func (s *reservationStoreStub) FindByID(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.view, s.findErr
}

func (s *reservationStoreStub) FindFarmOwnerID(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
	s.ownerCalls++
	return s.ownerID, s.ownerErr
}

func (s *reservationStoreStub) FindByFarmerID(_ context.Context, _ uuid.UUID) ([]*queries.ReservationView, error) {
	return nil, nil
}

func (s *reservationStoreStub) FindByFarmOwnerID(_ context.Context, _ uuid.UUID) ([]*queries.ReservationView, error) {
	return nil, nil
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	farmerID := uuid.New()
	ownerID := uuid.New()
	farmID := uuid.New()
	reservationID := uuid.New()

	view := &queries.ReservationView{
		ID:       reservationID,
		FarmerID: farmerID,
		FarmID:   farmID,
		Status:   "pending",
	}

	t.Run("the booking farmer reads their own reservation", func(t *testing.T) {
		store := &reservationStoreStub{view: view, ownerID: ownerID}
		q := queries.NewReservationQueries(store)

		got, err := q.GetByID(ctx, farmerID, user.RoleNewFarmer, reservationID)
		require.NoError(t, err)
		assert.Equal(t, reservationID, got.ID)
		assert.Zero(t, store.ownerCalls, "ownership lookup should be skipped for the booking farmer")
	})

	t.Run("the farm owner reads an incoming reservation", func(t *testing.T) {
		store := &reservationStoreStub{view: view, ownerID: ownerID}
		q := queries.NewReservationQueries(store)

		got, err := q.GetByID(ctx, ownerID, user.RoleFarmOwner, reservationID)
		require.NoError(t, err)
		assert.Equal(t, reservationID, got.ID)
	})

	t.Run("an admin reads any reservation", func(t *testing.T) {
		store := &reservationStoreStub{view: view, ownerID: ownerID}
		q := queries.NewReservationQueries(store)

		_, err := q.GetByID(ctx, uuid.New(), user.RoleAdmin, reservationID)
		require.NoError(t, err)
		assert.Zero(t, store.ownerCalls)
	})

	t.Run("an unrelated user is denied", func(t *testing.T) {
		store := &reservationStoreStub{view: view, ownerID: ownerID}
		q := queries.NewReservationQueries(store)

		_, err := q.GetByID(ctx, uuid.New(), user.RoleFarmOwner, reservationID)
		assert.ErrorIs(t, err, queries.ErrReservationDenied)
	})

	t.Run("a missing reservation maps to not found", func(t *testing.T) {
		store := &reservationStoreStub{findErr: infra.NewRepoErr(infra.KindNotFound, "missing", nil)}
		q := queries.NewReservationQueries(store)

		_, err := q.GetByID(ctx, farmerID, user.RoleNewFarmer, reservationID)
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}
