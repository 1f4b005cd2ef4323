package enka

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultBaseURL is the host every endpoint path is appended to
const DefaultBaseURL = "https://enka.network"

// newRequest builds the GET request for endpoint. The path is appended to
// baseURL as is; identifiers interpolated into it must already be escaped.
func newRequest(ctx context.Context, baseURL, endpoint, userAgent string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if userAgent == "" {
		userAgent = DefaultUserAgent()
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}
