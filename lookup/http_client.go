// Package lookup holds the adapters of the external information providers.
// Every adapter answers with user-facing text: provider failures are logged
// and degraded to a message, they never reach the caller as errors.
package lookup

import (
	"chatty/errors"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const DefaultHTTPTimeout = 30 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes a 200 response into out.
// Any other status is returned as ErrUnexpectedStatus along with the status code.
func getJSON(ctx context.Context, client *http.Client, baseURL string, query url.Values, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("requesting %s: %w", baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("%w: %d", errors.ErrUnexpectedStatus, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", errors.ErrMalformedPayload, err)
	}
	return resp.StatusCode, nil
}
