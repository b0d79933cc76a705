package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong         = errors.New("comment exceeds maximum length")
	ErrReservationNotEligible = errors.New("reservation is not eligible for review")
	ErrReviewAlreadyExists    = errors.New("review already exists for this reservation")
)

const MaxCommentLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment is optional; a review may carry a rating alone.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
func (c Comment) IsEmpty() bool  { return c.text == "" }

// Review is attached to exactly one delivered reservation.
type Review struct {
	id            uuid.UUID
	farmID        uuid.UUID
	reservationID uuid.UUID
	reviewerID    uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
}

func NewReview(farmID, reservationID, reviewerID uuid.UUID, rating Rating, comment Comment, now time.Time) *Review {
	return &Review{
		id:            uuid.New(),
		farmID:        farmID,
		reservationID: reservationID,
		reviewerID:    reviewerID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
	}
}

func ReconstructReview(id, farmID, reservationID, reviewerID uuid.UUID, rating Rating, comment Comment, createdAt time.Time) *Review {
	return &Review{
		id:            id,
		farmID:        farmID,
		reservationID: reservationID,
		reviewerID:    reviewerID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
	}
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) FarmID() uuid.UUID        { return r.farmID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) ReviewerID() uuid.UUID    { return r.reviewerID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
