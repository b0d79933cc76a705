package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrNotesTooLong      = errors.New("notes exceed maximum length")
	ErrNoFarmSelected    = errors.New("no farm selected")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrInvalidStatus     = errors.New("invalid reservation status")
)

// Reservation tracks a produce booking from creation through delivery or
// cancellation. Transition timestamps are set exactly once, when the
// corresponding transition happens; status and the timestamp set must agree.
type Reservation struct {
	id            uuid.UUID
	farmerID      uuid.UUID
	farmID        uuid.UUID
	quantity      Quantity
	notes         Notes
	status        Status
	autoCancelled bool
	createdAt     time.Time
	updatedAt     time.Time
	confirmedAt   *time.Time
	shippedAt     *time.Time
	deliveredAt   *time.Time
	cancelledAt   *time.Time
}

func NewReservation(farmerID, farmID uuid.UUID, quantity Quantity, notes Notes, now time.Time) (*Reservation, error) {
	if farmID == uuid.Nil {
		return nil, ErrNoFarmSelected
	}

	return &Reservation{
		id:        uuid.New(),
		farmerID:  farmerID,
		farmID:    farmID,
		quantity:  quantity,
		notes:     notes,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id, farmerID, farmID uuid.UUID,
	quantity Quantity,
	notes Notes,
	status Status,
	autoCancelled bool,
	createdAt, updatedAt time.Time,
	confirmedAt, shippedAt, deliveredAt, cancelledAt *time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		farmerID:      farmerID,
		farmID:        farmID,
		quantity:      quantity,
		notes:         notes,
		status:        status,
		autoCancelled: autoCancelled,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		confirmedAt:   confirmedAt,
		shippedAt:     shippedAt,
		deliveredAt:   deliveredAt,
		cancelledAt:   cancelledAt,
	}
}

func (r *Reservation) Confirm(now time.Time) error {
	if err := r.transition(StatusConfirmed); err != nil {
		return err
	}
	r.confirmedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Reservation) Ship(now time.Time) error {
	if err := r.transition(StatusShipped); err != nil {
		return err
	}
	r.shippedAt = &now
	r.updatedAt = now
	return nil
}

func (r *Reservation) Deliver(now time.Time) error {
	if err := r.transition(StatusDelivered); err != nil {
		return err
	}
	r.deliveredAt = &now
	r.updatedAt = now
	return nil
}

// Cancel ends the reservation. auto marks a system-triggered timeout
// cancellation as opposed to a farm owner action.
func (r *Reservation) Cancel(now time.Time, auto bool) error {
	if err := r.transition(StatusCancelled); err != nil {
		return err
	}
	r.cancelledAt = &now
	r.autoCancelled = auto
	r.updatedAt = now
	return nil
}

func (r *Reservation) transition(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) IsActive() bool {
	return !r.status.IsTerminal()
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) FarmerID() uuid.UUID     { return r.farmerID }
func (r *Reservation) FarmID() uuid.UUID       { return r.farmID }
func (r *Reservation) Quantity() Quantity      { return r.quantity }
func (r *Reservation) Notes() Notes            { return r.notes }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) AutoCancelled() bool     { return r.autoCancelled }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
func (r *Reservation) ConfirmedAt() *time.Time { return r.confirmedAt }
func (r *Reservation) ShippedAt() *time.Time   { return r.shippedAt }
func (r *Reservation) DeliveredAt() *time.Time { return r.deliveredAt }
func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }
