package response

import (
	"time"

	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	FarmID        uuid.UUID `json:"farm_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	ReviewerID    uuid.UUID `json:"reviewer_id"`
	ReviewerName  string    `json:"reviewer_name"`
	Rating        int32     `json:"rating"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:            rm.ID,
		FarmID:        rm.FarmID,
		ReservationID: rm.ReservationID,
		ReviewerID:    rm.ReviewerID,
		ReviewerName:  rm.ReviewerName,
		Rating:        rm.Rating,
		Comment:       rm.Comment,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromReviewViews(rms []*queries.ReviewView) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromReviewView(rm))
	}
	return out
}

type CreatedReviewResponse struct {
	ID uuid.UUID `json:"id"`
}
