package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/scouthub/pkg/logger"
)

// RequestIDHeader carries the probe run id on every request.
const RequestIDHeader = "X-Request-ID"

// httpClient wraps http.Client with a timeout and a fixed request id.
type httpClient struct {
	client  *http.Client
	baseURL string
	runID   string
}

func newHTTPClient(baseURL, runID string, timeout time.Duration) *httpClient {
	return &httpClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		runID:   runID,
	}
}

// get performs a GET and returns the body of a 200 response.
func (c *httpClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(RequestIDHeader, c.runID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Warn(ctx, "failed to close response body", logger.Error(err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return body, fmt.Errorf("GET %s: %w: %d", path, ErrUnexpectedStatus, resp.StatusCode)
	}
	return body, nil
}

// getJSON performs a GET and decodes the body into v.
func (c *httpClient) getJSON(ctx context.Context, path string, v any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}
