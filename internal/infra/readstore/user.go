package readstore

import (
	"context"

	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

const findUserSQL = `
SELECT id, email, full_name, phone, role, is_active
FROM users
WHERE id = $1
`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var v queries.AuthorizedUserView
	err := s.pool.QueryRow(ctx, findUserSQL, id).Scan(
		&v.ID, &v.Email, &v.FullName, &v.Phone, &v.Role, &v.IsActive,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &v, nil
}
