package commands

import (
	"context"
	"fmt"
	"io"

	"banana-farm-api/internal/pkg/errs"
)

var (
	ErrNoImage             = errs.New("no image provided")
	ErrImageTooLarge       = errs.New("image exceeds maximum size")
	ErrDetectorUnavailable = errs.New("detection service is unavailable")
	ErrDetectionFailed     = errs.New("detection failed")
)

// DetectionResponse is the raw payload returned by the classification
// service. Optional fields come back as nulls.
type DetectionResponse struct {
	ClassName       string  `json:"class_name"`
	Confidence      float64 `json:"confidence"`
	Description     *string `json:"description"`
	CultivationTips *string `json:"tips"`
	Benefits        *string `json:"benefits"`
}

// DetectionResult is the normalized shape handed back to callers.
// Confidence is rendered as a percentage string and missing optional
// fields collapse to an em-dash placeholder.
type DetectionResult struct {
	Variety         string `json:"variety"`
	Confidence      string `json:"confidence"`
	Description     string `json:"description"`
	CultivationTips string `json:"cultivation_tips"`
	Benefits        string `json:"benefits"`
}

type Detector interface {
	Detect(ctx context.Context, filename string, image io.Reader) (*DetectionResponse, error)
}

type DetectionCommands interface {
	Detect(ctx context.Context, filename string, image io.Reader) (*DetectionResult, error)
}

type detectionCommandsImpl struct {
	detector Detector
}

func NewDetectionCommands(detector Detector) DetectionCommands {
	return &detectionCommandsImpl{detector: detector}
}

const missingFieldPlaceholder = "—"

func (c *detectionCommandsImpl) Detect(ctx context.Context, filename string, image io.Reader) (*DetectionResult, error) {
	if image == nil {
		return nil, ErrNoImage
	}
	resp, err := c.detector.Detect(ctx, filename, image)
	if err != nil {
		return nil, err
	}
	return NormalizeDetection(resp), nil
}

// NormalizeDetection maps the service payload into display-ready values.
// Confidence 0.953 becomes "95.3%".
func NormalizeDetection(resp *DetectionResponse) *DetectionResult {
	return &DetectionResult{
		Variety:         resp.ClassName,
		Confidence:      fmt.Sprintf("%.1f%%", resp.Confidence*100),
		Description:     orPlaceholder(resp.Description),
		CultivationTips: orPlaceholder(resp.CultivationTips),
		Benefits:        orPlaceholder(resp.Benefits),
	}
}

func orPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return missingFieldPlaceholder
	}
	return *s
}
