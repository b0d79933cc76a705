//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"banana-farm-api/internal/handler/api"
	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/usecase/commands"
	commandsmock "banana-farm-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DetectionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDetectionCommands
}

func (s *DetectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDetectionCommands(s.mockCtrl)
	handler := api.NewDetectionHandler(s.mockCommands, config.DetectConfig{
		MaxImageBytes: 1 << 20,
	})

	s.router.POST("/detect", handler.Detect)
}

func (s *DetectionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDetectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DetectionHandlerTestSuite))
}

func (s *DetectionHandlerTestSuite) multipartRequest(field, filename string, content []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/detect", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *DetectionHandlerTestSuite) TestDetect() {
	s.Run("returns the normalized detection", func() {
		s.mockCommands.EXPECT().
			Detect(gomock.Any(), "banana.jpg", gomock.Any()).
			Return(&commands.DetectionResult{
				Variety:         "Namwa",
				Confidence:      "95.3%",
				Description:     "A common Thai cultivar",
				CultivationTips: "—",
				Benefits:        "—",
			}, nil)

		rec := s.multipartRequest("file", "banana.jpg", []byte("fake-image"))
		s.Equal(http.StatusOK, rec.Code)

		var got map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		s.Equal("Namwa", got["variety"])
		s.Equal("95.3%", got["confidence"])
		s.Equal("—", got["cultivation_tips"])
	})

	s.Run("rejects a request without an image", func() {
		req := httptest.NewRequest(http.MethodPost, "/detect", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects the wrong form field", func() {
		rec := s.multipartRequest("image", "banana.jpg", []byte("fake-image"))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects an oversized image", func() {
		rec := s.multipartRequest("file", "banana.jpg", bytes.Repeat([]byte("x"), (1<<20)+1))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("maps a down detector to 503", func() {
		s.mockCommands.EXPECT().
			Detect(gomock.Any(), "banana.jpg", gomock.Any()).
			Return(nil, commands.ErrDetectorUnavailable)

		rec := s.multipartRequest("file", "banana.jpg", []byte("fake-image"))
		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})

	s.Run("maps an unusable detector response to 503", func() {
		s.mockCommands.EXPECT().
			Detect(gomock.Any(), "banana.jpg", gomock.Any()).
			Return(nil, commands.ErrDetectionFailed)

		rec := s.multipartRequest("file", "banana.jpg", []byte("fake-image"))
		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}
