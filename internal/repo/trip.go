package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/metrics"
	"github.com/pkordes/trip-logbook/backend/internal/upstream"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the document-backed
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// List returns every trip in stored order. On failure it returns an
	// empty, non-nil slice together with the error.
	List(ctx context.Context) ([]domain.Trip, error)

	// GetByID returns the trip with the given id.
	// Returns domain.ErrNotFound if no trip has that id.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// Count returns the number of stored trips.
	Count(ctx context.Context) (int, error)

	// Create appends trip to the collection and rewrites the document.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Update replaces the trip with the same id and rewrites the document.
	// Returns domain.ErrNotFound, without writing, if no trip has that id.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes the trip with the given id and rewrites the document.
	// Returns domain.ErrNotFound, without writing, if no trip has that id.
	Delete(ctx context.Context, id string) error
}

// docTripRepo implements TripRepo as a read-modify-write over a DocumentStore.
//
// There is no locking and no version token. Two concurrent writers both read
// the same document and the later Replace silently discards the earlier one.
type docTripRepo struct {
	store DocumentStore
}

// NewTripRepo constructs a TripRepo backed by the provided DocumentStore.
func NewTripRepo(store DocumentStore) TripRepo {
	return &docTripRepo{store: store}
}

// List fetches the document and returns its trips.
func (r *docTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	doc, err := r.fetch(ctx)
	if err != nil {
		return []domain.Trip{}, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return doc.Trips, nil
}

// GetByID scans the collection for id.
func (r *docTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	doc, err := r.fetch(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	i := indexOf(doc.Trips, id)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return doc.Trips[i], nil
}

// Count returns the collection size.
func (r *docTripRepo) Count(ctx context.Context) (int, error) {
	doc, err := r.fetch(ctx)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.Count: %w", err)
	}
	return len(doc.Trips), nil
}

// Create appends trip and rewrites the document.
//
// If the fetch fails in transport or the body cannot be parsed, Create starts
// from an empty collection. That overwrites whatever was stored, so it is
// logged. A configuration error, a non-success status, an oversized document
// or a breaker rejection fails the save.
func (r *docTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	doc, err := r.fetch(ctx)
	if err != nil {
		if !canStartEmpty(err) {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
		}
		slog.WarnContext(ctx, "trip document fetch failed, starting from an empty collection",
			"error", err,
		)
		doc = Document{Trips: []domain.Trip{}}
	}

	doc.Trips = append(doc.Trips, trip)
	if err := r.replace(ctx, "create", doc); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return trip, nil
}

// Update replaces the trip in place and rewrites the document.
// A zero CreatedAt on the replacement keeps the stored value.
func (r *docTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	doc, err := r.fetch(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	i := indexOf(doc.Trips, trip.ID)
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = doc.Trips[i].CreatedAt
		trip.CreatedAtText = doc.Trips[i].CreatedAtText
	}
	doc.Trips[i] = trip

	if err := r.replace(ctx, "update", doc); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return trip, nil
}

// Delete filters the trip out and rewrites the document.
func (r *docTripRepo) Delete(ctx context.Context, id string) error {
	doc, err := r.fetch(ctx)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}

	kept := make([]domain.Trip, 0, len(doc.Trips))
	for _, t := range doc.Trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(doc.Trips) {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}

	if err := r.replace(ctx, "delete", Document{Trips: kept}); err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}

func (r *docTripRepo) fetch(ctx context.Context) (Document, error) {
	doc, err := r.store.Fetch(ctx)
	if err != nil {
		return Document{}, err
	}
	if doc.Trips == nil {
		doc.Trips = []domain.Trip{}
	}
	metrics.TripsStored.Set(float64(len(doc.Trips)))
	return doc, nil
}

func (r *docTripRepo) replace(ctx context.Context, op string, doc Document) error {
	if err := r.store.Replace(ctx, doc); err != nil {
		return err
	}
	metrics.DocumentWrites.WithLabelValues(op).Inc()
	metrics.TripsStored.Set(float64(len(doc.Trips)))
	return nil
}

// canStartEmpty reports whether a failed fetch may be treated as an empty
// collection: an unreachable store or an unparseable body. Every other
// failure is returned to the caller.
func canStartEmpty(err error) bool {
	if !errors.Is(err, domain.ErrUpstream) {
		return false
	}
	if errors.Is(err, upstream.ErrBodyTooLarge) || errors.Is(err, upstream.ErrRejected) {
		return false
	}
	var se *upstream.StatusError
	return !errors.As(err, &se)
}

// indexOf returns the position of the trip with id, or -1.
func indexOf(trips []domain.Trip, id string) int {
	for i, t := range trips {
		if t.ID == id {
			return i
		}
	}
	return -1
}
