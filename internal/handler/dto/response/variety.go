package response

import (
	"time"

	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type VarietyResponse struct {
	ID              uuid.UUID `json:"id"`
	NameTH          string    `json:"name_th"`
	NameEN          string    `json:"name_en"`
	Description     *string   `json:"description,omitempty"`
	CultivationTips *string   `json:"cultivation_tips,omitempty"`
	Benefits        *string   `json:"benefits,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromVarietyView(vm *queries.VarietyView) *VarietyResponse {
	return &VarietyResponse{
		ID:              vm.ID,
		NameTH:          vm.NameTH,
		NameEN:          vm.NameEN,
		Description:     vm.Description,
		CultivationTips: vm.CultivationTips,
		Benefits:        vm.Benefits,
		ImageURL:        vm.ImageURL,
		CreatedAt:       vm.CreatedAt,
	}
}

func FromVarietyViews(vms []*queries.VarietyView) []*VarietyResponse {
	out := make([]*VarietyResponse, 0, len(vms))
	for _, vm := range vms {
		out = append(out, FromVarietyView(vm))
	}
	return out
}
