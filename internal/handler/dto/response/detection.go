package response

import "banana-farm-api/internal/usecase/commands"

type DetectionResponse struct {
	Variety         string `json:"variety"`
	Confidence      string `json:"confidence"`
	Description     string `json:"description"`
	CultivationTips string `json:"cultivation_tips"`
	Benefits        string `json:"benefits"`
}

func FromDetectionResult(r *commands.DetectionResult) *DetectionResponse {
	return &DetectionResponse{
		Variety:         r.Variety,
		Confidence:      r.Confidence,
		Description:     r.Description,
		CultivationTips: r.CultivationTips,
		Benefits:        r.Benefits,
	}
}
