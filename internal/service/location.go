package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
)

// Geocoder is the subset of geocode.Client the location service needs.
type Geocoder interface {
	Search(ctx context.Context, query string) []domain.Place
	Reverse(ctx context.Context, lat, lng float64) string
	Resolve(ctx context.Context, query string) (domain.Place, bool)
}

// Forecaster is the subset of weather.Client the location service needs.
type Forecaster interface {
	Current(ctx context.Context, lat, lng float64) (domain.Weather, error)
}

// LocationService fronts the geocoding and weather providers.
type LocationService struct {
	geocoder   Geocoder
	forecaster Forecaster
}

// NewLocationService constructs a LocationService.
func NewLocationService(g Geocoder, f Forecaster) *LocationService {
	return &LocationService{geocoder: g, forecaster: f}
}

// coordsQuery validates raw query-string coordinates before parsing.
type coordsQuery struct {
	Lat string `json:"lat" validate:"required,latitude"`
	Lng string `json:"lng" validate:"required,longitude"`
}

// Search returns up to five places for query. It never fails; a short query
// or a provider failure yields an empty slice.
func (s *LocationService) Search(ctx context.Context, query string) []domain.Place {
	return s.geocoder.Search(ctx, query)
}

// Reverse returns an address for the coordinates, or "{lat}, {lng}" when the
// provider fails.
// Returns domain.ErrValidation if either coordinate is missing or out of range.
func (s *LocationService) Reverse(ctx context.Context, lat, lng string) (string, error) {
	la, ln, err := ParseCoordinates(lat, lng)
	if err != nil {
		return "", fmt.Errorf("service.LocationService.Reverse: %w", err)
	}
	return s.geocoder.Reverse(ctx, la, ln), nil
}

// Resolve returns the best match for query.
// Returns domain.ErrNotFound when nothing matches.
func (s *LocationService) Resolve(ctx context.Context, query string) (domain.Place, error) {
	place, ok := s.geocoder.Resolve(ctx, query)
	if !ok {
		return domain.Place{}, fmt.Errorf("service.LocationService.Resolve: %w: no place matches %q", domain.ErrNotFound, strings.TrimSpace(query))
	}
	return place, nil
}

// Weather returns current conditions at the coordinates.
// Returns domain.ErrValidation before any network call if a coordinate is
// missing or invalid, and domain.ErrUpstream if the provider fails.
func (s *LocationService) Weather(ctx context.Context, lat, lng string) (domain.Weather, error) {
	la, ln, err := ParseCoordinates(lat, lng)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("service.LocationService.Weather: %w", err)
	}
	w, err := s.forecaster.Current(ctx, la, ln)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("service.LocationService.Weather: %w", err)
	}
	return w, nil
}

// ParseCoordinates validates and parses query-string coordinates.
// Returns domain.ErrValidation if either is missing, malformed, or out of range.
func ParseCoordinates(lat, lng string) (float64, float64, error) {
	q := coordsQuery{Lat: strings.TrimSpace(lat), Lng: strings.TrimSpace(lng)}
	if err := validateStruct(q); err != nil {
		return 0, 0, err
	}
	la, err := strconv.ParseFloat(q.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: lat: %v", domain.ErrValidation, err)
	}
	ln, err := strconv.ParseFloat(q.Lng, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: lng: %v", domain.ErrValidation, err)
	}
	return la, ln, nil
}
