package writerepo

import (
	"context"

	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, full_name, phone, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().String(), u.PasswordHash(), u.FullName().String(),
		u.Phone(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, full_name, phone, role, is_active
FROM users
WHERE email = $1
`

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.pool.QueryRow(ctx, findUserByEmailSQL, email.String()).Scan(
		&view.ID, &view.Email, &hash, &view.FullName, &view.Phone, &view.Role, &view.IsActive,
	)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}
