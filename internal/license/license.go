// Package license validates license keys against the remote endpoint.
// Network failure falls back to the offline dev-bypass pattern and
// otherwise fails closed: an unverifiable key is an invalid key.
package license

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"
)

// DefaultEndpoint is the validation service URL, overridable via the
// LEDGERLINE_LICENSE_URL environment variable.
const DefaultEndpoint = "https://api.ledgerline.dev/v1/licenses/validate"

// ErrInvalidKey is returned when the endpoint (or the offline fallback)
// rejects the key.
var ErrInvalidKey = errors.New("invalid license key")

// devBypassRe matches offline development keys, e.g. "DEV-1A2B-3C4D".
var devBypassRe = regexp.MustCompile(`^DEV-[0-9A-F]{4}-[0-9A-F]{4}$`)

// Result is the endpoint's response for a key.
type Result struct {
	Valid        bool   `json:"valid"`
	Email        string `json:"email,omitempty"`
	PurchaseDate string `json:"purchase_date,omitempty"`
}

// Client talks to the license validation endpoint.
type Client struct {
	endpoint string
	httpc    *http.Client
}

// NewClient creates a Client. An empty endpoint selects DefaultEndpoint or
// the environment override.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = os.Getenv("LEDGERLINE_LICENSE_URL")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Validate checks a license key. A reachable endpoint is authoritative.
// When the endpoint cannot be reached, only a dev-bypass key validates;
// everything else returns ErrInvalidKey wrapped around the network error.
func (c *Client) Validate(ctx context.Context, key string) (Result, error) {
	body, err := json.Marshal(map[string]string{"license_key": key})
	if err != nil {
		return Result{}, fmt.Errorf("encoding license request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("building license request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if devBypassRe.MatchString(key) {
			return Result{Valid: true, Email: "dev@localhost"}, nil
		}
		return Result{}, fmt.Errorf("%w: validation unreachable: %v", ErrInvalidKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: validation returned %s", ErrInvalidKey, resp.Status)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decoding license response: %w", err)
	}
	if !result.Valid {
		return result, ErrInvalidKey
	}
	return result, nil
}
