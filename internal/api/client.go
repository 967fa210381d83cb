// Package api provides the SpaceX REST API client.
//
// This package handles retrieving the rocket catalog from the public
// SpaceX v4 API and converting it to rocket.Rocket structs. It does NOT
// cache - the caller decides what to do with the results.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"
)

// isoDateLayout is the first-flight format the API returns.
const isoDateLayout = "2006-01-02"

// displayDateLayout is the locale-fixed day.month.year form the rest of the
// application works with.
const displayDateLayout = "02.01.2006"

// Client retrieves rockets from the SpaceX API.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Client for the given API base URL (e.g.
// "https://api.spacexdata.com/v4") with the given HTTP timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		// The catalog rarely changes; one request per second is plenty
		// and keeps manual-refresh spamming polite.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// rocketJSON mirrors the API wire format for a rocket.
type rocketJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FirstFlight string `json:"first_flight"` // ISO, e.g. "2006-03-24"
	Height      struct {
		Meters *float64 `json:"meters"`
	} `json:"height"`
	Diameter struct {
		Meters *float64 `json:"meters"`
	} `json:"diameter"`
	Mass struct {
		Kg *float64 `json:"kg"`
	} `json:"mass"`
	Country     string `json:"country"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// Rockets fetches the full rocket catalog.
//
// The function respects context cancellation and will return early if the
// context is cancelled, including while waiting on the rate limiter.
func (c *Client) Rockets(ctx context.Context) ([]rocket.Rocket, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rockets", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Rockets/1.0 (https://github.com/VladimirMikulas/ExampleSpaceXapp)")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rockets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	var payload []rocketJSON
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rockets: %w", err)
	}

	rockets := make([]rocket.Rocket, 0, len(payload))
	for _, rj := range payload {
		rockets = append(rockets, convertRocket(rj))
	}
	return rockets, nil
}

// convertRocket converts a wire rocket to the domain form.
func convertRocket(rj rocketJSON) rocket.Rocket {
	return rocket.Rocket{
		ID:          rj.ID,
		Name:        rj.Name,
		FirstFlight: toDisplayDate(rj.FirstFlight),
		HeightM:     deref(rj.Height.Meters),
		DiameterM:   deref(rj.Diameter.Meters),
		MassKg:      deref(rj.Mass.Kg),
		Country:     rj.Country,
		Description: rj.Description,
		Active:      rj.Active,
	}
}

// toDisplayDate converts an ISO date to the day.month.year display form.
// Anything unparsable passes through unchanged; downstream year extraction
// degrades to "no match" on its own.
func toDisplayDate(iso string) string {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(displayDateLayout)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
