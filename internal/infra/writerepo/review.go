package writerepo

import (
	"context"

	"banana-farm-api/internal/domain/review"
	"banana-farm-api/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

const insertReviewSQL = `
INSERT INTO reviews (id, farm_id, reservation_id, reviewer_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	var comment *string
	if !rev.Comment().IsEmpty() {
		v := rev.Comment().String()
		comment = &v
	}

	_, err := r.pool.Exec(ctx, insertReviewSQL,
		rev.ID(), rev.FarmID(), rev.ReservationID(), rev.ReviewerID(),
		int32(rev.Rating().Value()), comment, rev.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return rev.ID(), nil
}
