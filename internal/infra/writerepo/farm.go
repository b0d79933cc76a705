package writerepo

import (
	"context"
	"time"

	"banana-farm-api/internal/domain/farm"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/usecase/commands"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FarmRepository struct {
	pool *pgxpool.Pool
}

func NewFarmRepository(pool *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{pool: pool}
}

const insertFarmSQL = `
INSERT INTO farms (id, owner_id, name, description, location, latitude, longitude)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at
`

func (r *FarmRepository) Create(ctx context.Context, f *farm.Farm) (*queries.FarmView, error) {
	var createdAt, updatedAt time.Time
	err := r.pool.QueryRow(ctx, insertFarmSQL,
		f.ID(), f.OwnerID(), f.Name(), f.Description(), f.Location(),
		f.Latitude(), f.Longitude(),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create farm", err)
	}

	return &queries.FarmView{
		ID:          f.ID(),
		OwnerID:     f.OwnerID(),
		Name:        f.Name(),
		Description: f.Description(),
		Location:    f.Location(),
		Latitude:    f.Latitude(),
		Longitude:   f.Longitude(),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

const findFarmSQL = `
SELECT id, owner_id, name, description, location, latitude, longitude, image_url, created_at, updated_at
FROM farms
WHERE id = $1
`

func (r *FarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Farm, error) {
	var (
		farmID, ownerID             uuid.UUID
		name, description, location string
		latitude, longitude         *float64
		imageURL                    *string
		createdAt, updatedAt        time.Time
	)
	err := r.pool.QueryRow(ctx, findFarmSQL, id).Scan(
		&farmID, &ownerID, &name, &description, &location,
		&latitude, &longitude, &imageURL, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find farm", err)
	}
	return farm.ReconstructFarm(farmID, ownerID, name, description, location,
		latitude, longitude, imageURL, createdAt, updatedAt), nil
}

const updateFarmSQL = `
UPDATE farms
SET name = $1, description = $2, location = $3, latitude = $4, longitude = $5, updated_at = now()
WHERE id = $6
RETURNING created_at, updated_at
`

func (r *FarmRepository) Update(ctx context.Context, f *farm.Farm) (*queries.FarmView, error) {
	var createdAt, updatedAt time.Time
	err := r.pool.QueryRow(ctx, updateFarmSQL,
		f.Name(), f.Description(), f.Location(), f.Latitude(), f.Longitude(), f.ID(),
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update farm", err)
	}

	return &queries.FarmView{
		ID:          f.ID(),
		OwnerID:     f.OwnerID(),
		Name:        f.Name(),
		Description: f.Description(),
		Location:    f.Location(),
		Latitude:    f.Latitude(),
		Longitude:   f.Longitude(),
		ImageURL:    f.ImageURL(),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

const updateFarmImageSQL = `
UPDATE farms SET image_url = $1, updated_at = now() WHERE id = $2
`

func (r *FarmRepository) UpdateImageURL(ctx context.Context, farmID uuid.UUID, imageURL string) error {
	tag, err := r.pool.Exec(ctx, updateFarmImageSQL, imageURL, farmID)
	if err != nil {
		return infra.WrapRepoErr("failed to update farm image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "farm not found", nil)
	}
	return nil
}

const findFarmSnapshotSQL = `SELECT id, owner_id, name FROM farms WHERE id = $1`

// FindSnapshot serves the command side's ownership and existence checks.
func (r *FarmRepository) FindSnapshot(ctx context.Context, id uuid.UUID) (*commands.FarmSnapshot, error) {
	var snap commands.FarmSnapshot
	if err := r.pool.QueryRow(ctx, findFarmSnapshotSQL, id).Scan(&snap.ID, &snap.OwnerID, &snap.Name); err != nil {
		return nil, infra.WrapRepoErr("failed to find farm", err)
	}
	return &snap, nil
}
