package writerepo

import (
	"context"
	"time"

	"banana-farm-api/internal/domain/reservation"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/infra/readstore"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const insertReservationSQL = `
INSERT INTO reservations (
	id, farmer_id, farm_id, quantity, notes, status, auto_cancelled,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*queries.ReservationView, error) {
	var notes *string
	if !res.Notes().IsEmpty() {
		v := res.Notes().String()
		notes = &v
	}

	_, err := r.pool.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.FarmerID(),
		res.FarmID(),
		int32(res.Quantity().Value()),
		notes,
		res.Status().String(),
		res.AutoCancelled(),
		res.CreatedAt(),
		res.UpdatedAt(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	view, err := readstore.ScanReservationView(ctx, r.pool, res.ID())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read back created reservation", err)
	}
	return view, nil
}

const findReservationSQL = `
SELECT id, farmer_id, farm_id, quantity, notes, status, auto_cancelled,
       created_at, updated_at, confirmed_at, shipped_at, delivered_at, cancelled_at
FROM reservations
WHERE id = $1
`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, farmerID, farmID                            uuid.UUID
		quantity                                           int32
		notes                                              *string
		status                                             string
		autoCancelled                                      bool
		createdAt, updatedAt                               time.Time
		confirmedAt, shippedAt, deliveredAt, cancelledAt   *time.Time
	)

	err := r.pool.QueryRow(ctx, findReservationSQL, id).Scan(
		&resID, &farmerID, &farmID, &quantity, &notes, &status, &autoCancelled,
		&createdAt, &updatedAt, &confirmedAt, &shippedAt, &deliveredAt, &cancelledAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	q, err := reservation.NewQuantity(int(quantity))
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored quantity is invalid", err)
	}
	noteText := ""
	if notes != nil {
		noteText = *notes
	}
	n, err := reservation.NewNotes(noteText)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored notes are invalid", err)
	}
	st := reservation.Status(status)
	if !st.IsValid() {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "stored status is invalid", reservation.ErrInvalidStatus)
	}

	return reservation.ReconstructReservation(
		resID, farmerID, farmID, q, n, st, autoCancelled,
		createdAt, updatedAt, confirmedAt, shippedAt, deliveredAt, cancelledAt,
	), nil
}

const applyTransitionSQL = `
UPDATE reservations
SET status = $1,
    auto_cancelled = $2,
    updated_at = $3,
    confirmed_at = $4,
    shipped_at = $5,
    delivered_at = $6,
    cancelled_at = $7
WHERE id = $8 AND status = $9
`

// ApplyTransition persists a status change guarded by the status the entity
// was loaded with. Zero rows affected means either the reservation vanished
// or another writer moved it first.
func (r *ReservationRepository) ApplyTransition(ctx context.Context, res *reservation.Reservation, from reservation.Status) error {
	tag, err := r.pool.Exec(ctx, applyTransitionSQL,
		res.Status().String(),
		res.AutoCancelled(),
		res.UpdatedAt(),
		res.ConfirmedAt(),
		res.ShippedAt(),
		res.DeliveredAt(),
		res.CancelledAt(),
		res.ID(),
		from.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "reservation status changed concurrently", nil)
	}
	return nil
}

const cancelStalePendingSQL = `
UPDATE reservations
SET status = 'cancelled',
    auto_cancelled = TRUE,
    cancelled_at = $1,
    updated_at = $1
WHERE status = 'pending' AND created_at < $2
RETURNING id
`

// CancelStalePending cancels every reservation still pending since before
// the cutoff and returns the affected IDs.
func (r *ReservationRepository) CancelStalePending(ctx context.Context, now, cutoff time.Time) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, cancelStalePendingSQL, now, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to cancel stale reservations", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cancelled reservation id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cancelled reservations", err)
	}
	return ids, nil
}
