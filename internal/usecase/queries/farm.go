package queries

import (
	"context"

	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFarmNotFound = errs.New("farm not found")

type FarmQueries interface {
	// List returns all farms available for booking, most recent first.
	List(ctx context.Context) ([]*FarmView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*FarmView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*FarmView, error)
}

type FarmReadStore interface {
	FindAll(ctx context.Context) ([]*FarmView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*FarmView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*FarmView, error)
}

type farmQueriesImpl struct {
	store FarmReadStore
}

func NewFarmQueries(store FarmReadStore) FarmQueries {
	return &farmQueriesImpl{store: store}
}

func (q *farmQueriesImpl) List(ctx context.Context) ([]*FarmView, error) {
	return q.store.FindAll(ctx)
}

func (q *farmQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FarmView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFarmNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *farmQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*FarmView, error) {
	return q.store.FindByOwnerID(ctx, ownerID)
}
