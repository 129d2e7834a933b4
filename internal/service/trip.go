// Package service contains the business logic for the Trip Logbook API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// lookup-client calls. Storage details live behind repo interfaces.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
	now  func() time.Time
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r, now: time.Now}
}

// tripRules is the validated view of a Trip.
type tripRules struct {
	Origin          string       `json:"origin" validate:"required"`
	ModeOfTransport string       `json:"modeOfTransport" validate:"oneof=Car Bike Train Cycle Walk Other"`
	TripNumber      int          `json:"tripNumber" validate:"gte=0"`
	LocationCoords  *coordsRules `json:"locationCoords" validate:"omitempty"`
}

type filterRules struct {
	Mode string `json:"mode" validate:"omitempty,oneof=Car Bike Train Cycle Walk Other"`
}

type coordsRules struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// Create validates trip, assigns its id and createdAt, numbers it when the
// client left tripNumber at zero, and appends it to the collection.
// Travelers with blank names are dropped.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.Travelers = cleanTravelers(trip.Travelers)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: generate id: %w", err)
	}
	trip.ID = id.String()
	trip.CreatedAt = s.now().UTC()

	if trip.TripNumber == 0 {
		trip.TripNumber = s.nextTripNumber(ctx)
	}

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// nextTripNumber is count+1. When the count cannot be read the trip is
// numbered 1; the save itself decides whether the failure is fatal.
func (s *TripService) nextTripNumber(ctx context.Context) int {
	n, err := s.repo.Count(ctx)
	if err != nil {
		slog.WarnContext(ctx, "trip count failed, numbering new trip as 1", "error", err)
		return 1
	}
	return n + 1
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip has that id.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns the trips matching filter, newest first.
// Always returns a non-nil slice so callers can safely range over it, even
// alongside an error. Returns domain.ErrValidation for an unknown mode.
func (s *TripService) List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	if err := validateStruct(filterRules{Mode: string(filter.Mode)}); err != nil {
		return []domain.Trip{}, fmt.Errorf("service.TripService.List: %w", err)
	}

	trips, err := s.repo.List(ctx)
	if err != nil {
		return []domain.Trip{}, fmt.Errorf("service.TripService.List: %w", err)
	}

	out := make([]domain.Trip, 0, len(trips))
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	for _, t := range trips {
		if filter.Mode != "" && t.ModeOfTransport != filter.Mode {
			continue
		}
		if q != "" && !matchesQuery(t, q) {
			continue
		}
		out = append(out, t)
	}

	slices.SortStableFunc(out, func(a, b domain.Trip) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if filter.Page != nil {
		start, end := filter.Page.Window(len(out))
		out = out[start:end]
	}
	return out, nil
}

// Count returns the collection size and the tripNumber the next trip gets.
func (s *TripService) Count(ctx context.Context) (domain.TripCount, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return domain.TripCount{}, fmt.Errorf("service.TripService.Count: %w", err)
	}
	return domain.TripCount{Count: n, NextTripNumber: n + 1}, nil
}

// Update validates trip and replaces the stored trip with the same id.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if no
// trip has that id.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if strings.TrimSpace(trip.ID) == "" {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w: id is required", domain.ErrValidation)
	}
	trip.Travelers = cleanTravelers(trip.Travelers)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip by ID.
// Returns domain.ErrNotFound if no trip has that id.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("service.TripService.Delete: %w: id is required", domain.ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func validateTrip(trip domain.Trip) error {
	rules := tripRules{
		Origin:          strings.TrimSpace(trip.Origin),
		ModeOfTransport: string(trip.ModeOfTransport),
		TripNumber:      trip.TripNumber,
	}
	if c := trip.LocationCoords; c != nil {
		rules.LocationCoords = &coordsRules{Lat: c.Lat, Lng: c.Lng}
	}
	return validateStruct(rules)
}

// cleanTravelers drops travelers whose name is blank. The result is never nil.
func cleanTravelers(in []domain.Traveler) []domain.Traveler {
	out := make([]domain.Traveler, 0, len(in))
	for _, tr := range in {
		if strings.TrimSpace(tr.Name) == "" {
			continue
		}
		out = append(out, tr)
	}
	return out
}

// matchesQuery reports whether the lowercased query q appears in the trip's
// origin, destination, notes, or any traveler name.
func matchesQuery(t domain.Trip, q string) bool {
	for _, field := range []string{t.Origin, t.Destination, t.Notes} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, tr := range t.Travelers {
		if strings.Contains(strings.ToLower(tr.Name), q) {
			return true
		}
	}
	return false
}
