// Package geo resolves client IP addresses to a coarse "region city" label.
// Lookups are best effort: callers use RegionOrUnknown, which never fails.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Unknown is the region recorded when a lookup fails or has no answer.
const Unknown = "unknown"

// ErrNoAnswer is returned when the lookup succeeded but named no place.
var ErrNoAnswer = errors.New("geo: empty answer")

// Locator resolves an IP address to a region label.
type Locator interface {
	Locate(ctx context.Context, ip string) (string, error)
}

// Client queries an ip-api.com compatible JSON endpoint: GET <base><ip>.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL, e.g. "http://ip-api.com/json/".
// A zero timeout leaves the per-request context as the only limit.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type lookupResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
}

// Locate returns "<region> <city>", or whichever of the two is known.
func (c *Client) Locate(ctx context.Context, ip string) (string, error) {
	if ip == "" {
		return "", ErrNoAnswer
	}

	endpoint := c.baseURL + url.PathEscape(ip) + "?fields=status,message,regionName,city"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("geo: cannot build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("geo: lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo: unexpected status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("geo: cannot decode response: %w", err)
	}
	if body.Status != "" && body.Status != "success" {
		return "", fmt.Errorf("geo: lookup %s: %s", body.Status, body.Message)
	}

	return joinPlace(body.RegionName, body.City)
}

func joinPlace(parts ...string) (string, error) {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return "", ErrNoAnswer
	}
	return strings.Join(kept, " "), nil
}

// Static resolves from a fixed IP to region table. Used for offline play
// and tests.
type Static map[string]string

// Locate implements Locator.
func (s Static) Locate(_ context.Context, ip string) (string, error) {
	if region, ok := s[ip]; ok && region != "" {
		return region, nil
	}
	return "", ErrNoAnswer
}

// Disabled never resolves anything.
type Disabled struct{}

// Locate implements Locator.
func (Disabled) Locate(context.Context, string) (string, error) {
	return "", ErrNoAnswer
}

// RegionOrUnknown resolves ip with loc, bounded by timeout when positive.
// Any failure is logged at debug level and yields Unknown.
func RegionOrUnknown(ctx context.Context, loc Locator, ip string, timeout time.Duration, logger *log.Logger) string {
	if loc == nil {
		return Unknown
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	region, err := loc.Locate(ctx, ip)
	if err != nil || strings.TrimSpace(region) == "" {
		if logger != nil {
			logger.Debug("geolocation failed", "ip", ip, "err", err)
		}
		return Unknown
	}
	return region
}
