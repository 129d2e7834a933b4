// Package geocode is a client for a Nominatim-compatible geocoding API.
//
// Lookups are best effort: Search returns an empty slice and Reverse returns
// the raw coordinates whenever the provider fails. Failures are logged, never
// returned, so callers always get something they can display.
package geocode

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/upstream"
)

// MinQueryLength is the shortest trimmed query Search sends upstream.
const MinQueryLength = 3

// MaxResults caps the number of candidates Search returns.
const MaxResults = 5

// Client queries the geocoding provider.
type Client struct {
	http      *upstream.Client
	baseURL   string
	userAgent string
}

// New constructs a Client. userAgent is sent on every request; public
// Nominatim instances require an identifying header instead of an API key.
func New(uc *upstream.Client, baseURL, userAgent string) *Client {
	return &Client{
		http:      uc,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// searchResult is one element of the /search response array.
type searchResult struct {
	PlaceID     int64   `json:"place_id"`
	DisplayName string  `json:"display_name"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

// reverseResult is the /reverse response.
type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Search returns up to MaxResults places matching query.
// Queries shorter than MinQueryLength after trimming return an empty slice
// without a network call. The result is never nil.
func (c *Client) Search(ctx context.Context, query string) []domain.Place {
	q := strings.TrimSpace(query)
	if len([]rune(q)) < MinQueryLength {
		return []domain.Place{}
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(MaxResults))

	var results []searchResult
	if err := c.get(ctx, "/search", params, &results); err != nil {
		slog.WarnContext(ctx, "geocode search failed", "query", q, "error", err)
		return []domain.Place{}
	}

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	places := make([]domain.Place, 0, len(results))
	for _, r := range results {
		places = append(places, domain.Place{
			PlaceID:     r.PlaceID,
			DisplayName: r.DisplayName,
			Lat:         r.Lat,
			Lon:         r.Lon,
			Type:        r.Type,
			Importance:  r.Importance,
		})
	}
	return places
}

// Reverse returns a human-readable address for the coordinates.
// On any failure it returns FormatCoordinates(lat, lng).
func (c *Client) Reverse(ctx context.Context, lat, lng float64) string {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "json")

	var result reverseResult
	err := c.get(ctx, "/reverse", params, &result)
	if err == nil && result.Error != "" {
		err = fmt.Errorf("provider error: %s", result.Error)
	}
	if err == nil && result.DisplayName == "" {
		err = fmt.Errorf("provider returned no address")
	}
	if err != nil {
		slog.WarnContext(ctx, "geocode reverse failed, using coordinates",
			"lat", lat,
			"lng", lng,
			"error", err,
		)
		return FormatCoordinates(lat, lng)
	}
	return result.DisplayName
}

// Resolve returns the first search result for query. ok is false when the
// search found nothing (or failed).
func (c *Client) Resolve(ctx context.Context, query string) (place domain.Place, ok bool) {
	places := c.Search(ctx, query)
	if len(places) == 0 {
		return domain.Place{}, false
	}
	return places[0], true
}

// FormatCoordinates renders coordinates as the fallback address "{lat}, {lng}".
func FormatCoordinates(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ", " + strconv.FormatFloat(lng, 'f', -1, 64)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	body, err := c.http.Do(req)
	if err != nil {
		return err
	}
	return upstream.DecodeJSON(c.http.Service(), body, out)
}
