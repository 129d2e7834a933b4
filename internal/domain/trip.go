// Package domain contains the core data types for the Trip Logbook application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// TransportMode is how a trip is travelled. The set of valid values is closed.
type TransportMode string

const (
	ModeCar   TransportMode = "Car"
	ModeBike  TransportMode = "Bike"
	ModeTrain TransportMode = "Train"
	ModeCycle TransportMode = "Cycle"
	ModeWalk  TransportMode = "Walk"
	ModeOther TransportMode = "Other"
)

// TransportModes lists every valid TransportMode in display order.
var TransportModes = []TransportMode{ModeCar, ModeBike, ModeTrain, ModeCycle, ModeWalk, ModeOther}

// Trip is the sole record of the logbook. The whole collection of trips is
// stored as one JSON document, so the json tags here are the storage format.
//
// ID is the only identity. TripNumber is a display ordinal and may repeat.
//
// CreatedAtText holds a stored createdAt that is not an RFC3339 timestamp,
// verbatim as JSON. CreatedAt is zero when it is set, so such trips sort last.
type Trip struct {
	ID              string          `json:"id"`
	TripNumber      int             `json:"tripNumber,omitempty"`
	Origin          string          `json:"origin"`
	Destination     string          `json:"destination"`
	ModeOfTransport TransportMode   `json:"modeOfTransport"`
	Departure       string          `json:"departure"`
	Arrival         string          `json:"arrival"`
	Travelers       []Traveler      `json:"travelers"`
	Notes           string          `json:"notes"`
	LocationCoords  *Coordinates    `json:"locationCoords,omitempty"`
	WeatherData     *WeatherSummary `json:"weatherData,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedAtText   string          `json:"-"`
}

// Traveler is a person on a trip. ID is client-assigned and only needs to be
// unique within the trip.
type Traveler struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// WeatherSummary is the weather snapshot attached to a trip when its location
// was picked. It is never refreshed after the trip is saved.
type WeatherSummary struct {
	Temperature     float64 `json:"temperature"`
	TemperatureUnit string  `json:"temperatureUnit"`
	WindSpeed       float64 `json:"windSpeed"`
	WindSpeedUnit   string  `json:"windSpeedUnit"`
	Time            string  `json:"time"`
}

// TripCount is the collection size plus the tripNumber a new trip would get.
type TripCount struct {
	Count          int
	NextTripNumber int
}

// TripFilter narrows a trip listing. Zero values match everything.
type TripFilter struct {
	// Query is matched case-insensitively against origin, destination,
	// notes, and traveler names.
	Query string
	Mode  TransportMode

	// Page is nil when the caller wants the whole listing.
	Page *PaginationParams
}
