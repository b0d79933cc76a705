package request

import (
	"banana-farm-api/internal/usecase/commands"
)

type CreateFarmRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func (r *CreateFarmRequest) ToParams() commands.CreateFarmParams {
	return commands.CreateFarmParams{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
}
