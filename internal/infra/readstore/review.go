package readstore

import (
	"context"

	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewReadStore struct {
	pool *pgxpool.Pool
}

func NewReviewReadStore(pool *pgxpool.Pool) *ReviewReadStore {
	return &ReviewReadStore{pool: pool}
}

const listReviewsByFarmSQL = `
SELECT rv.id, rv.farm_id, rv.reservation_id, rv.reviewer_id, u.full_name,
       rv.rating, rv.comment, rv.created_at
FROM reviews rv
JOIN users u ON u.id = rv.reviewer_id
WHERE rv.farm_id = $1
ORDER BY rv.created_at DESC
`

func (s *ReviewReadStore) FindByFarmID(ctx context.Context, farmID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := s.pool.Query(ctx, listReviewsByFarmSQL, farmID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	views := []*queries.ReviewView{}
	for rows.Next() {
		var v queries.ReviewView
		err := rows.Scan(
			&v.ID, &v.FarmID, &v.ReservationID, &v.ReviewerID, &v.ReviewerName,
			&v.Rating, &v.Comment, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return views, nil
}
