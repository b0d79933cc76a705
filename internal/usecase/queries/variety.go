package queries

import (
	"context"

	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVarietyNotFound = errs.New("variety not found")

// VarietyQueries serves the knowledge base. Variety records are read-only
// reference data from this service's perspective.
type VarietyQueries interface {
	List(ctx context.Context) ([]*VarietyView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VarietyView, error)
}

type VarietyReadStore interface {
	FindAll(ctx context.Context) ([]*VarietyView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VarietyView, error)
}

type varietyQueriesImpl struct {
	store VarietyReadStore
}

func NewVarietyQueries(store VarietyReadStore) VarietyQueries {
	return &varietyQueriesImpl{store: store}
}

func (q *varietyQueriesImpl) List(ctx context.Context) ([]*VarietyView, error) {
	return q.store.FindAll(ctx)
}

func (q *varietyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VarietyView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVarietyNotFound
		}
		return nil, err
	}
	return view, nil
}
