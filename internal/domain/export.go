package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per traveler, with trip fields
// repeated for every traveler on that trip. Trips with no travelers yield one
// row with an empty TravelerName.
type ExportRow struct {
	// Trip fields, repeated for every traveler on the trip.
	TripID          string
	TripNumber      int
	Origin          string
	Destination     string
	ModeOfTransport string
	Departure       string
	Arrival         string
	Notes           string
	CreatedAt       string // RFC3339, UTC

	// Optional location and weather. Empty strings when absent.
	Lat         string
	Lng         string
	Temperature string

	// TravelerName is empty when the trip has no travelers.
	TravelerName string
}
