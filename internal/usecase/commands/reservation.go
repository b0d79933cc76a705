package commands

import (
	"context"

	"banana-farm-api/internal/domain/reservation"
	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/pkg/errs"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrFarmNotFound            = errs.New("farm not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrNotFarmOwner            = errs.New("caller does not own the target farm")
	ErrInvalidSelection        = errs.New("no farm selected")
	ErrInvalidQuantity         = errs.New("quantity must be a positive integer")
	ErrInvalidNotes            = errs.New("notes are invalid")
	ErrIllegalTransition       = errs.New("illegal status transition")
	ErrTransitionConflict      = errs.New("reservation was modified concurrently")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SubmitReservationParams struct {
	FarmID   uuid.UUID
	Quantity int
	Notes    string
}

// FarmSnapshot is the minimal farm read needed to validate a command.
type FarmSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
}

type ReservationRepository interface {
	// Create inserts the reservation and returns the joined view read back
	// from the store.
	Create(ctx context.Context, res *reservation.Reservation) (*queries.ReservationView, error)
	// FindByID reconstructs the domain entity for a transition.
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// ApplyTransition persists the entity's new status and timestamps. The
	// update is guarded by the previous status; a concurrent change surfaces
	// as a conflict.
	ApplyTransition(ctx context.Context, res *reservation.Reservation, from reservation.Status) error
}

type FarmReader interface {
	FindSnapshot(ctx context.Context, id uuid.UUID) (*FarmSnapshot, error)
}

type ReservationCommands interface {
	// Submit creates exactly one new reservation in the pending state. No
	// existing reservation is touched.
	Submit(ctx context.Context, params SubmitReservationParams, farmerID uuid.UUID) (*queries.ReservationView, error)
	Confirm(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
	Ship(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
	Deliver(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) error
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	farmReader      FarmReader
	clock           clock.Clock
}

func NewReservationCommands(reservationRepo ReservationRepository, farmReader FarmReader, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		farmReader:      farmReader,
		clock:           clk,
	}
}

func (c *reservationCommandsImpl) Submit(ctx context.Context, params SubmitReservationParams, farmerID uuid.UUID) (*queries.ReservationView, error) {
	quantity, err := reservation.NewQuantity(params.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuantity)
	}
	notes, err := reservation.NewNotes(params.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidNotes)
	}
	if params.FarmID == uuid.Nil {
		return nil, ErrInvalidSelection
	}

	if _, err := c.farmReader.FindSnapshot(ctx, params.FarmID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFarmNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	res, err := reservation.NewReservation(farmerID, params.FarmID, quantity, notes, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSelection)
	}

	view, err := c.reservationRepo.Create(ctx, res)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) Confirm(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error {
	return c.applyOwnerTransition(ctx, id, actorID, actorRole, func(res *reservation.Reservation) error {
		return res.Confirm(c.clock.Now())
	})
}

func (c *reservationCommandsImpl) Ship(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error {
	return c.applyOwnerTransition(ctx, id, actorID, actorRole, func(res *reservation.Reservation) error {
		return res.Ship(c.clock.Now())
	})
}

func (c *reservationCommandsImpl) Deliver(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error {
	return c.applyOwnerTransition(ctx, id, actorID, actorRole, func(res *reservation.Reservation) error {
		return res.Deliver(c.clock.Now())
	})
}

// Cancel is allowed for the farmer who placed the reservation, the owner of
// the target farm, or an admin.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) error {
	res, err := c.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if actorRole != user.RoleAdmin && res.FarmerID() != actorID {
		snap, ferr := c.farmReader.FindSnapshot(ctx, res.FarmID())
		if ferr != nil {
			return errs.Mark(ferr, ErrDatabaseOperationFailed)
		}
		if snap.OwnerID != actorID {
			return ErrNotFarmOwner
		}
	}

	from := res.Status()
	if err := res.Cancel(c.clock.Now(), false); err != nil {
		return errs.Mark(err, ErrIllegalTransition)
	}

	if err := c.reservationRepo.ApplyTransition(ctx, res, from); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrTransitionConflict
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// applyOwnerTransition loads the reservation, checks that the actor owns the
// target farm (admins may act on any farm), applies the domain transition and
// persists it guarded by the previous status.
func (c *reservationCommandsImpl) applyOwnerTransition(
	ctx context.Context,
	id, actorID uuid.UUID,
	actorRole user.Role,
	apply func(*reservation.Reservation) error,
) error {
	res, err := c.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if actorRole != user.RoleAdmin {
		snap, ferr := c.farmReader.FindSnapshot(ctx, res.FarmID())
		if ferr != nil {
			return errs.Mark(ferr, ErrDatabaseOperationFailed)
		}
		if snap.OwnerID != actorID {
			return ErrNotFarmOwner
		}
	}

	from := res.Status()
	if err := apply(res); err != nil {
		return errs.Mark(err, ErrIllegalTransition)
	}

	if err := c.reservationRepo.ApplyTransition(ctx, res, from); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return ErrTransitionConflict
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
