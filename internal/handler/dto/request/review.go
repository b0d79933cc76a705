package request

import (
	"banana-farm-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Comment       string    `json:"comment,omitempty"`
}

func (r *CreateReviewRequest) ToParams() commands.CreateReviewParams {
	return commands.CreateReviewParams{
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}
