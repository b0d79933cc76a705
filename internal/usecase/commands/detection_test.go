//go:build unit

package commands_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"banana-farm-api/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalizeDetection(t *testing.T) {
	testCases := []struct {
		name     string
		resp     *commands.DetectionResponse
		expected *commands.DetectionResult
	}{
		{
			name: "fully populated response",
			resp: &commands.DetectionResponse{
				ClassName:       "Hom Thong",
				Confidence:      0.953,
				Description:     strPtr("A sweet dessert banana."),
				CultivationTips: strPtr("Prefers well-drained soil."),
				Benefits:        strPtr("High in potassium."),
			},
			expected: &commands.DetectionResult{
				Variety:         "Hom Thong",
				Confidence:      "95.3%",
				Description:     "A sweet dessert banana.",
				CultivationTips: "Prefers well-drained soil.",
				Benefits:        "High in potassium.",
			},
		},
		{
			name: "null optional fields collapse to the placeholder",
			resp: &commands.DetectionResponse{
				ClassName:  "Namwa",
				Confidence: 0.5,
			},
			expected: &commands.DetectionResult{
				Variety:         "Namwa",
				Confidence:      "50.0%",
				Description:     "—",
				CultivationTips: "—",
				Benefits:        "—",
			},
		},
		{
			name: "empty strings are treated the same as nulls",
			resp: &commands.DetectionResponse{
				ClassName:       "Khai",
				Confidence:      1,
				Description:     strPtr(""),
				CultivationTips: strPtr(""),
				Benefits:        strPtr("Small and fragrant."),
			},
			expected: &commands.DetectionResult{
				Variety:         "Khai",
				Confidence:      "100.0%",
				Description:     "—",
				CultivationTips: "—",
				Benefits:        "Small and fragrant.",
			},
		},
		{
			name: "confidence rounds to one decimal place",
			resp: &commands.DetectionResponse{
				ClassName:  "Leb Mue Nang",
				Confidence: 0.87654,
			},
			expected: &commands.DetectionResult{
				Variety:         "Leb Mue Nang",
				Confidence:      "87.7%",
				Description:     "—",
				CultivationTips: "—",
				Benefits:        "—",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := commands.NormalizeDetection(tc.resp)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("normalized result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type detectorStub struct {
	resp     *commands.DetectionResponse
	err      error
	filename string
}

func (s *detectorStub) Detect(_ context.Context, filename string, _ io.Reader) (*commands.DetectionResponse, error) {
	s.filename = filename
	return s.resp, s.err
}

func TestDetectionCommands_Detect(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes the detector response", func(t *testing.T) {
		stub := &detectorStub{resp: &commands.DetectionResponse{ClassName: "Namwa", Confidence: 0.91}}
		uc := commands.NewDetectionCommands(stub)

		result, err := uc.Detect(ctx, "banana.jpg", strings.NewReader("fake-image-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "Namwa", result.Variety)
		assert.Equal(t, "91.0%", result.Confidence)
		assert.Equal(t, "banana.jpg", stub.filename)
	})

	t.Run("rejects a nil image", func(t *testing.T) {
		uc := commands.NewDetectionCommands(&detectorStub{})

		_, err := uc.Detect(ctx, "banana.jpg", nil)
		assert.ErrorIs(t, err, commands.ErrNoImage)
	})

	t.Run("passes detector errors through", func(t *testing.T) {
		stub := &detectorStub{err: commands.ErrDetectorUnavailable}
		uc := commands.NewDetectionCommands(stub)

		_, err := uc.Detect(ctx, "banana.jpg", strings.NewReader("x"))
		assert.ErrorIs(t, err, commands.ErrDetectorUnavailable)
	})
}
