package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByFarm(ctx context.Context, farmID uuid.UUID) ([]*ReviewView, error)
}

type ReviewReadStore interface {
	FindByFarmID(ctx context.Context, farmID uuid.UUID) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByFarm(ctx context.Context, farmID uuid.UUID) ([]*ReviewView, error) {
	return q.store.FindByFarmID(ctx, farmID)
}
