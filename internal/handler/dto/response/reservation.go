package response

import (
	"time"

	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID  `json:"id"`
	FarmID        uuid.UUID  `json:"farm_id"`
	FarmName      string     `json:"farm_name"`
	FarmLocation  string     `json:"farm_location"`
	FarmerID      uuid.UUID  `json:"farmer_id"`
	Quantity      int32      `json:"quantity"`
	Notes         *string    `json:"notes,omitempty"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	AutoCancelled bool       `json:"auto_cancelled"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	ShippedAt     *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		FarmID:        rm.FarmID,
		FarmName:      rm.FarmName,
		FarmLocation:  rm.FarmLocation,
		FarmerID:      rm.FarmerID,
		Quantity:      rm.Quantity,
		Notes:         rm.Notes,
		Status:        rm.Status,
		StatusLabel:   rm.StatusLabel,
		AutoCancelled: rm.AutoCancelled,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
		ConfirmedAt:   rm.ConfirmedAt,
		ShippedAt:     rm.ShippedAt,
		DeliveredAt:   rm.DeliveredAt,
		CancelledAt:   rm.CancelledAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromReservationView(rm))
	}
	return out
}
