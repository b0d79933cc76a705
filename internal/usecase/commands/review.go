package commands

import (
	"context"

	domreview "banana-farm-api/internal/domain/review"
	"banana-farm-api/internal/domain/reservation"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/clock"
	"banana-farm-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReviewNotEligible = errs.New("reservation is not eligible for review")
	ErrDuplicateReview   = errs.New("review already exists for this reservation")
	ErrReviewNotOwned    = errs.New("reservation does not belong to reviewer")
)

type CreateReviewParams struct {
	ReservationID uuid.UUID
	Rating        int
	Comment       string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *domreview.Review) (uuid.UUID, error)
}

type ReviewCommands interface {
	// Create posts a review for a delivered reservation owned by the caller.
	// At most one review per reservation; duplicates are rejected by the
	// store's unique constraint.
	Create(ctx context.Context, params CreateReviewParams, reviewerID uuid.UUID) (*CreateReviewResult, error)
}

type reviewCommandsImpl struct {
	reviewRepo      ReviewRepository
	reservationRepo ReservationRepository
	clock           clock.Clock
}

func NewReviewCommands(reviewRepo ReviewRepository, reservationRepo ReservationRepository, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		reviewRepo:      reviewRepo,
		reservationRepo: reservationRepo,
		clock:           clk,
	}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, params CreateReviewParams, reviewerID uuid.UUID) (*CreateReviewResult, error) {
	rating, err := domreview.NewRating(params.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(params.Comment)
	if err != nil {
		return nil, err
	}

	res, err := c.reservationRepo.FindByID(ctx, params.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if res.FarmerID() != reviewerID {
		return nil, ErrReviewNotOwned
	}
	if res.Status() != reservation.StatusDelivered {
		return nil, ErrReviewNotEligible
	}

	rev := domreview.NewReview(res.FarmID(), res.ID(), reviewerID, rating, comment, c.clock.Now())
	id, err := c.reviewRepo.Create(ctx, rev)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateReview
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateReviewResult{ReviewID: id}, nil
}
