package readstore

import (
	"context"

	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VarietyReadStore struct {
	pool *pgxpool.Pool
}

func NewVarietyReadStore(pool *pgxpool.Pool) *VarietyReadStore {
	return &VarietyReadStore{pool: pool}
}

const varietyViewColumns = `
	id, name_th, name_en, description, cultivation_tips, benefits, image_url, created_at
`

const listVarietiesSQL = `
SELECT` + varietyViewColumns + `
FROM banana_varieties
ORDER BY name_en
`

const findVarietySQL = `
SELECT` + varietyViewColumns + `
FROM banana_varieties
WHERE id = $1
`

func scanVarietyRow(row pgx.Row) (*queries.VarietyView, error) {
	var v queries.VarietyView
	err := row.Scan(
		&v.ID, &v.NameTH, &v.NameEN, &v.Description, &v.CultivationTips,
		&v.Benefits, &v.ImageURL, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VarietyReadStore) FindAll(ctx context.Context) ([]*queries.VarietyView, error) {
	rows, err := s.pool.Query(ctx, listVarietiesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list varieties", err)
	}
	defer rows.Close()

	views := []*queries.VarietyView{}
	for rows.Next() {
		view, err := scanVarietyRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan variety row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate variety rows", err)
	}
	return views, nil
}

func (s *VarietyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VarietyView, error) {
	view, err := scanVarietyRow(s.pool.QueryRow(ctx, findVarietySQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find variety", err)
	}
	return view, nil
}
