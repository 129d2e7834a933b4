// Package repo contains all persistence logic for the Trip Logbook API.
//
// The whole trip collection is one JSON document. DocumentStore reads and
// rewrites that document; TripRepo layers the per-trip operations on top by
// fetching the document, changing the trips array in memory, and writing the
// whole document back. No business logic lives here.
package repo

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
)

// Envelope constants written with every document rewrite. Only the trips
// array ever changes.
const (
	documentFileName   = "trips_data"
	documentRegionName = "api"
	documentIsPublic   = false
)

// Document is the normalized content of the stored trip document.
type Document struct {
	Trips []domain.Trip
}

// DocumentStore fetches and replaces the single trip document.
// Implementations must return domain.ErrConfig (wrapped) without touching the
// network when they are not configured.
type DocumentStore interface {
	// Fetch returns the current document. A store that has never been
	// written returns an empty Document, not an error.
	Fetch(ctx context.Context) (Document, error)

	// Replace overwrites the whole document. There is no version check:
	// the last writer wins.
	Replace(ctx context.Context, doc Document) error
}

// fileData is the part of the envelope that holds the trips.
type fileData struct {
	Trips []storedTrip `json:"trips"`
}

// envelope is the body sent on every rewrite.
type envelope struct {
	FileName   string   `json:"file_name"`
	FileData   fileData `json:"file_data"`
	RegionName string   `json:"region_name"`
	IsPublic   bool     `json:"is_public"`
}

// decodeDocument normalizes the two response shapes the store is known to
// return, {"file_data":{"trips":[...]}} and a bare {"trips":[...]}, into a
// Document. The returned Trips slice is never nil.
func decodeDocument(body []byte) (Document, error) {
	var raw struct {
		FileData *fileData    `json:"file_data"`
		Trips    []storedTrip `json:"trips"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Document{}, fmt.Errorf("decode document: %w: %w", domain.ErrUpstream, err)
	}

	stored := raw.Trips
	if raw.FileData != nil {
		stored = raw.FileData.Trips
	}
	trips := make([]domain.Trip, len(stored))
	for i, st := range stored {
		trips[i] = st.trip()
	}
	return Document{Trips: trips}, nil
}

// encodeEnvelope builds the full rewrite body for doc.
func encodeEnvelope(doc Document) ([]byte, error) {
	return json.Marshal(envelope{
		FileName:   documentFileName,
		FileData:   fileData{Trips: tripsOf(doc)},
		RegionName: documentRegionName,
		IsPublic:   documentIsPublic,
	})
}

// tripsOf converts doc.Trips to their stored form. The result is never nil so
// the array is written as [] rather than null.
func tripsOf(doc Document) []storedTrip {
	out := make([]storedTrip, len(doc.Trips))
	for i, t := range doc.Trips {
		out[i] = toStored(t)
	}
	return out
}

// storedTrip is the storage form of domain.Trip. It differs only in how
// createdAt is read: older writers left values that are not RFC3339.
type storedTrip struct {
	ID              string                 `json:"id"`
	TripNumber      int                    `json:"tripNumber,omitempty"`
	Origin          string                 `json:"origin"`
	Destination     string                 `json:"destination"`
	ModeOfTransport domain.TransportMode   `json:"modeOfTransport"`
	Departure       string                 `json:"departure"`
	Arrival         string                 `json:"arrival"`
	Travelers       []domain.Traveler      `json:"travelers"`
	Notes           string                 `json:"notes"`
	LocationCoords  *domain.Coordinates    `json:"locationCoords,omitempty"`
	WeatherData     *domain.WeatherSummary `json:"weatherData,omitempty"`
	CreatedAt       storedTime             `json:"createdAt"`
}

func toStored(t domain.Trip) storedTrip {
	return storedTrip{
		ID:              t.ID,
		TripNumber:      t.TripNumber,
		Origin:          t.Origin,
		Destination:     t.Destination,
		ModeOfTransport: t.ModeOfTransport,
		Departure:       t.Departure,
		Arrival:         t.Arrival,
		Travelers:       t.Travelers,
		Notes:           t.Notes,
		LocationCoords:  t.LocationCoords,
		WeatherData:     t.WeatherData,
		CreatedAt:       storedTime{t: t.CreatedAt, raw: t.CreatedAtText},
	}
}

func (st storedTrip) trip() domain.Trip {
	return domain.Trip{
		ID:              st.ID,
		TripNumber:      st.TripNumber,
		Origin:          st.Origin,
		Destination:     st.Destination,
		ModeOfTransport: st.ModeOfTransport,
		Departure:       st.Departure,
		Arrival:         st.Arrival,
		Travelers:       st.Travelers,
		Notes:           st.Notes,
		LocationCoords:  st.LocationCoords,
		WeatherData:     st.WeatherData,
		CreatedAt:       st.CreatedAt.t,
		CreatedAtText:   st.CreatedAt.raw,
	}
}

// storedTime reads an RFC3339 timestamp into t. Any other value, including
// "" and non-strings, is kept verbatim in raw and written back unchanged.
type storedTime struct {
	t   time.Time
	raw string
}

func (st *storedTime) UnmarshalJSON(b []byte) error {
	*st = storedTime{}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			st.t = t
			return nil
		}
	}
	st.raw = string(b)
	return nil
}

func (st storedTime) MarshalJSON() ([]byte, error) {
	if st.t.IsZero() && st.raw != "" {
		return []byte(st.raw), nil
	}
	return json.Marshal(st.t)
}
