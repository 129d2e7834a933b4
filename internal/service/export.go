package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/repo"
)

// ExportService assembles a flat export of every trip and its travelers.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per traveler across all trips, in stored order.
// Trips with no travelers contribute one row with an empty TravelerName.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(trips))
	for _, t := range trips {
		base := tripToExportRow(t)
		if len(t.Travelers) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, tr := range t.Travelers {
			row := base
			row.TravelerName = tr.Name
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func tripToExportRow(t domain.Trip) domain.ExportRow {
	row := domain.ExportRow{
		TripID:          t.ID,
		TripNumber:      t.TripNumber,
		Origin:          t.Origin,
		Destination:     t.Destination,
		ModeOfTransport: string(t.ModeOfTransport),
		Departure:       t.Departure,
		Arrival:         t.Arrival,
		Notes:           t.Notes,
	}
	if !t.CreatedAt.IsZero() {
		row.CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
	}
	if c := t.LocationCoords; c != nil {
		row.Lat = strconv.FormatFloat(c.Lat, 'f', -1, 64)
		row.Lng = strconv.FormatFloat(c.Lng, 'f', -1, 64)
	}
	if w := t.WeatherData; w != nil {
		row.Temperature = strconv.FormatFloat(w.Temperature, 'f', -1, 64) + w.TemperatureUnit
	}
	return row
}
