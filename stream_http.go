package tagtext

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultFetchLimit caps the body size Fetch reads when FetchRequest.MaxBytes
// is zero.
const DefaultFetchLimit = 32 << 20

// FetchRequest configures Fetch.
type FetchRequest struct {
	URL      string
	Client   *http.Client
	MaxBytes int64
}

// Fetch downloads tagged text over HTTP(S) and checks it with ValidateInput.
func Fetch(ctx context.Context, req FetchRequest) ([]byte, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	limit := req.MaxBytes
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch: status %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("fetch: body exceeds %d bytes", limit)
	}
	if err := ValidateInput(body); err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	return body, nil
}
