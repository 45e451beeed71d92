package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrAPITimeout     = errors.New("request timed out")
	ErrAPIUnreachable = errors.New("could not connect to API server")
)

// APIError is a non-200 answer from the analyze endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error %d: %s", e.StatusCode, e.Body)
}

type APIResponse struct {
	StatusCode int
	Body       []byte
}

// AnalyzerAPIClient submits resumes to a running analyze endpoint.
type AnalyzerAPIClient struct {
	client *resty.Client
	url    string
}

func NewAnalyzerAPIClient(url string, timeout time.Duration) *AnalyzerAPIClient {
	return &AnalyzerAPIClient{
		client: resty.New().SetTimeout(timeout),
		url:    url,
	}
}

// Submit posts the resume and job description as a multipart form. The
// response is returned for any status so callers can inspect it; non-200
// answers also come back as *APIError.
func (c *AnalyzerAPIClient) Submit(ctx context.Context, filename string, resume []byte, jobDescription string) (*APIResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetMultipartField("file", filename, "application/pdf", bytes.NewReader(resume)).
		SetFormData(map[string]string{"description": jobDescription}).
		Post(c.url)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, fmt.Errorf("%w: %w", ErrAPITimeout, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrAPIUnreachable, err)
	}

	out := &APIResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}
	if resp.StatusCode() != http.StatusOK {
		return out, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return out, nil
}
