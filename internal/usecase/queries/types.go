package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ReservationView struct {
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

type FarmView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VarietyView struct {
	ID              uuid.UUID `json:"id"`
	NameTH          string    `json:"name_th"`
	NameEN          string    `json:"name_en"`
	Description     *string   `json:"description,omitempty"`
	CultivationTips *string   `json:"cultivation_tips,omitempty"`
	Benefits        *string   `json:"benefits,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewView struct {
	ID            uuid.UUID `json:"id"`
	FarmID        uuid.UUID `json:"farm_id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	ReviewerID    uuid.UUID `json:"reviewer_id"`
	ReviewerName  string    `json:"reviewer_name"`
	Rating        int32     `json:"rating"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    *string   `json:"phone,omitempty"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
