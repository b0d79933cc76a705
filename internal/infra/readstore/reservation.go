package readstore

import (
	"context"

	"banana-farm-api/internal/domain/reservation"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationReadStore struct {
	pool *pgxpool.Pool
}

func NewReservationReadStore(pool *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationViewColumns = `
	r.id, r.farm_id, f.name, f.location, r.farmer_id, r.quantity, r.notes,
	r.status, r.auto_cancelled, r.created_at, r.updated_at,
	r.confirmed_at, r.shipped_at, r.delivered_at, r.cancelled_at
`

const findReservationViewSQL = `
SELECT` + reservationViewColumns + `
FROM reservations r
JOIN farms f ON f.id = r.farm_id
WHERE r.id = $1
`

const listByFarmerSQL = `
SELECT` + reservationViewColumns + `
FROM reservations r
JOIN farms f ON f.id = r.farm_id
WHERE r.farmer_id = $1
ORDER BY r.created_at DESC
`

const listByFarmOwnerSQL = `
SELECT` + reservationViewColumns + `
FROM reservations r
JOIN farms f ON f.id = r.farm_id
WHERE f.owner_id = $1
ORDER BY r.created_at DESC
`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ScanReservationView reads a single joined reservation view. It is shared
// with the write side, which reads the view back after an insert.
func ScanReservationView(ctx context.Context, q rowQuerier, id uuid.UUID) (*queries.ReservationView, error) {
	return scanReservationRow(q.QueryRow(ctx, findReservationViewSQL, id))
}

func scanReservationRow(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.FarmID, &v.FarmName, &v.FarmLocation, &v.FarmerID, &v.Quantity, &v.Notes,
		&v.Status, &v.AutoCancelled, &v.CreatedAt, &v.UpdatedAt,
		&v.ConfirmedAt, &v.ShippedAt, &v.DeliveredAt, &v.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	v.StatusLabel = reservation.DisplayCategoryOf(v.Status).String()
	return &v, nil
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := ScanReservationView(ctx, s.pool, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return view, nil
}

const findFarmOwnerSQL = `SELECT owner_id FROM farms WHERE id = $1`

func (s *ReservationReadStore) FindFarmOwnerID(ctx context.Context, farmID uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	if err := s.pool.QueryRow(ctx, findFarmOwnerSQL, farmID).Scan(&ownerID); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find farm owner", err)
	}
	return ownerID, nil
}

func (s *ReservationReadStore) FindByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*queries.ReservationView, error) {
	return s.list(ctx, listByFarmerSQL, farmerID)
}

func (s *ReservationReadStore) FindByFarmOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.ReservationView, error) {
	return s.list(ctx, listByFarmOwnerSQL, ownerID)
}

func (s *ReservationReadStore) list(ctx context.Context, sql string, arg any) ([]*queries.ReservationView, error) {
	rows, err := s.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := []*queries.ReservationView{}
	for rows.Next() {
		view, err := scanReservationRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return views, nil
}
