package request

import (
	"banana-farm-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	FarmID   uuid.UUID `json:"farm_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
	Notes    string    `json:"notes,omitempty"`
}

func (r *CreateReservationRequest) ToParams() commands.SubmitReservationParams {
	return commands.SubmitReservationParams{
		FarmID:   r.FarmID,
		Quantity: r.Quantity,
		Notes:    r.Notes,
	}
}
