// Package geocode resolves free-text places to coordinates using the Google
// Geocoding API.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// DefaultBaseURL is the Google Maps API host.
const DefaultBaseURL = "https://maps.googleapis.com"

// ErrNoResults is returned when the address matches no location. It wraps
// domain.ErrValidation: the input, not the upstream, is at fault.
var ErrNoResults = fmt.Errorf("%w: location matched no place", domain.ErrValidation)

// Client calls the Geocoding API.
type Client struct {
	client *resty.Client
	apiKey string
}

// NewClient creates a Client for baseURL (normally DefaultBaseURL) that
// authenticates with apiKey.
func NewClient(baseURL, apiKey string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &Client{client: c, apiKey: apiKey}
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns the coordinates of the first match for address.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	if address == "" {
		return domain.Coordinates{}, errors.New("geocode: empty address")
	}

	var body geocodeResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"address": address, "key": c.apiKey}).
		SetResult(&body).
		Get("/maps/api/geocode/json")
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return domain.Coordinates{}, fmt.Errorf("geocode status %d: %s", resp.StatusCode(), resp.String())
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return domain.Coordinates{}, ErrNoResults
	default:
		return domain.Coordinates{}, fmt.Errorf("geocode status %s: %s", body.Status, body.ErrorMessage)
	}
	if len(body.Results) == 0 {
		return domain.Coordinates{}, ErrNoResults
	}

	loc := body.Results[0].Geometry.Location
	return domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
