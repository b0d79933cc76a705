package readstore

import (
	"context"

	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FarmReadStore struct {
	pool *pgxpool.Pool
}

func NewFarmReadStore(pool *pgxpool.Pool) *FarmReadStore {
	return &FarmReadStore{pool: pool}
}

const farmViewColumns = `
	id, owner_id, name, description, location, latitude, longitude, image_url,
	created_at, updated_at
`

const listFarmsSQL = `
SELECT` + farmViewColumns + `
FROM farms
ORDER BY created_at DESC
`

const findFarmSQL = `
SELECT` + farmViewColumns + `
FROM farms
WHERE id = $1
`

const listFarmsByOwnerSQL = `
SELECT` + farmViewColumns + `
FROM farms
WHERE owner_id = $1
ORDER BY created_at DESC
`

func scanFarmRow(row pgx.Row) (*queries.FarmView, error) {
	var v queries.FarmView
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Location,
		&v.Latitude, &v.Longitude, &v.ImageURL, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *FarmReadStore) FindAll(ctx context.Context) ([]*queries.FarmView, error) {
	return s.list(ctx, listFarmsSQL)
}

func (s *FarmReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.FarmView, error) {
	view, err := scanFarmRow(s.pool.QueryRow(ctx, findFarmSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find farm", err)
	}
	return view, nil
}

func (s *FarmReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.FarmView, error) {
	return s.list(ctx, listFarmsByOwnerSQL, ownerID)
}

func (s *FarmReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.FarmView, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list farms", err)
	}
	defer rows.Close()

	views := []*queries.FarmView{}
	for rows.Next() {
		view, err := scanFarmRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan farm row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate farm rows", err)
	}
	return views, nil
}
