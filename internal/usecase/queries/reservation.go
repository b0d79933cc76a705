package queries

import (
	"context"

	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationDenied   = errs.New("reservation does not belong to caller")
)

type ReservationQueries interface {
	// GetByID returns the reservation if the actor is the booking farmer,
	// the owner of the target farm, or an admin.
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error)
	// ListByFarmer returns the actor's reservations joined with each farm's
	// name and location, most recent first. An empty list is a valid result.
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*ReservationView, error)
	// ListByFarmOwner returns reservations targeting farms the actor owns.
	ListByFarmOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindFarmOwnerID(ctx context.Context, farmID uuid.UUID) (uuid.UUID, error)
	FindByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*ReservationView, error)
	FindByFarmOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if view.FarmerID == actorID || actorRole == user.RoleAdmin {
		return view, nil
	}

	ownerID, err := q.store.FindFarmOwnerID(ctx, view.FarmID)
	if err != nil {
		return nil, err
	}
	if ownerID != actorID {
		return nil, ErrReservationDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByFarmerID(ctx, farmerID)
}

func (q *reservationQueriesImpl) ListByFarmOwner(ctx context.Context, ownerID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByFarmOwnerID(ctx, ownerID)
}
