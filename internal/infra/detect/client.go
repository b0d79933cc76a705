package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/pkg/errs"
	"banana-farm-api/internal/usecase/commands"
)

// Client calls the external banana variety classification service. The
// service accepts a single image as multipart form data on POST /detect.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.DetectConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) Detect(ctx context.Context, filename string, image io.Reader) (*commands.DetectionResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build multipart body")
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, errs.Wrap(err, "failed to copy image into request")
	}
	if err := writer.Close(); err != nil {
		return nil, errs.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/detect", &body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build detection request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "detection request failed"), commands.ErrDetectorUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, errs.Mark(errs.New("detection service returned status "+resp.Status), commands.ErrDetectorUnavailable)
	}

	var result commands.DetectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode detection response"), commands.ErrDetectionFailed)
	}
	// A 2xx body without the required fields is as unusable as a transport
	// failure; never hand back a partial result.
	if result.ClassName == "" || result.Confidence < 0 || result.Confidence > 1 {
		return nil, errs.Mark(errs.New("detection response is missing class name or has an out-of-range confidence"), commands.ErrDetectionFailed)
	}
	return &result, nil
}
