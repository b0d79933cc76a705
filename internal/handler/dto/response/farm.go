package response

import (
	"time"

	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type FarmResponse struct {
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

func FromFarmView(fm *queries.FarmView) *FarmResponse {
	return &FarmResponse{
		ID:          fm.ID,
		OwnerID:     fm.OwnerID,
		Name:        fm.Name,
		Description: fm.Description,
		Location:    fm.Location,
		Latitude:    fm.Latitude,
		Longitude:   fm.Longitude,
		ImageURL:    fm.ImageURL,
		CreatedAt:   fm.CreatedAt,
		UpdatedAt:   fm.UpdatedAt,
	}
}

func FromFarmViews(fms []*queries.FarmView) []*FarmResponse {
	out := make([]*FarmResponse, 0, len(fms))
	for _, fm := range fms {
		out = append(out, FromFarmView(fm))
	}
	return out
}

type FarmImageResponse struct {
	ImageURL string `json:"image_url"`
}
