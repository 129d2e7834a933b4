package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/handler/gen"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	if req.Body == nil {
		return gen.CreateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.trips.Create(ctx, inputToTrip(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse(tripToResponse(created)), nil
}

// ListTrips handles GET /trips.
// ?q= and ?mode= filter the listing. Pagination applies only when ?page= or
// ?limit= is present (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	filter := domain.TripFilter{}
	if req.Params.Q != nil {
		filter.Query = *req.Params.Q
	}
	if req.Params.Mode != nil {
		filter.Mode = domain.TransportMode(*req.Params.Mode)
	}
	if req.Params.Page != nil || req.Params.Limit != nil {
		p := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
		filter.Page = &p
	}

	trips, err := s.trips.List(ctx, filter)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListTrips422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	out := make(gen.ListTrips200JSONResponse, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out, nil
}

// CountTrips handles GET /trips/count.
func (s *Server) CountTrips(ctx context.Context, _ gen.CountTripsRequestObject) (gen.CountTripsResponseObject, error) {
	c, err := s.trips.Count(ctx)
	if err != nil {
		return nil, err
	}
	return gen.CountTrips200JSONResponse{Count: c.Count, NextTripNumber: c.NextTripNumber}, nil
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// UpdateTrip handles PUT /trips. The trip id travels in the body.
func (s *Server) UpdateTrip(ctx context.Context, req gen.UpdateTripRequestObject) (gen.UpdateTripResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.trips.Update(ctx, updateToTrip(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateTrip200JSONResponse(tripToResponse(updated)), nil
}

// DeleteTrip handles DELETE /trips?id=.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	err := s.trips.Delete(ctx, req.Params.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.DeleteTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.DeleteTrip204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

// inputToTrip converts a TripInput body into a domain.Trip. Absent optional
// fields become zero values.
func inputToTrip(in gen.TripInput) domain.Trip {
	t := domain.Trip{
		Origin:          in.Origin,
		ModeOfTransport: domain.TransportMode(in.ModeOfTransport),
		Destination:     deref(in.Destination),
		Departure:       deref(in.Departure),
		Arrival:         deref(in.Arrival),
		Notes:           deref(in.Notes),
		LocationCoords:  coordsFromGen(in.LocationCoords),
		WeatherData:     weatherFromGen(in.WeatherData),
	}
	if in.TripNumber != nil {
		t.TripNumber = *in.TripNumber
	}
	if in.Travelers != nil {
		t.Travelers = travelersFromGen(*in.Travelers)
	}
	return t
}

// updateToTrip converts a TripUpdate body into a domain.Trip. A missing
// createdAt stays zero so the store keeps the original.
func updateToTrip(in gen.TripUpdate) domain.Trip {
	t := inputToTrip(gen.TripInput{
		Origin:          in.Origin,
		ModeOfTransport: in.ModeOfTransport,
		Destination:     in.Destination,
		Departure:       in.Departure,
		Arrival:         in.Arrival,
		Notes:           in.Notes,
		LocationCoords:  in.LocationCoords,
		WeatherData:     in.WeatherData,
		TripNumber:      in.TripNumber,
		Travelers:       in.Travelers,
	})
	t.ID = in.Id
	if in.CreatedAt != nil {
		t.CreatedAt = in.CreatedAt.UTC()
	}
	return t
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	resp := gen.Trip{
		Id:              t.ID,
		TripNumber:      t.TripNumber,
		Origin:          t.Origin,
		Destination:     t.Destination,
		ModeOfTransport: gen.TransportMode(t.ModeOfTransport),
		Departure:       t.Departure,
		Arrival:         t.Arrival,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		Travelers:       make([]gen.Traveler, len(t.Travelers)),
	}
	for i, tr := range t.Travelers {
		resp.Travelers[i] = gen.Traveler{Id: tr.ID, Name: tr.Name}
	}
	if t.LocationCoords != nil {
		resp.LocationCoords = &gen.Coordinates{Lat: t.LocationCoords.Lat, Lng: t.LocationCoords.Lng}
	}
	if w := t.WeatherData; w != nil {
		resp.WeatherData = &gen.WeatherSummary{
			Temperature:     w.Temperature,
			TemperatureUnit: w.TemperatureUnit,
			WindSpeed:       w.WindSpeed,
			WindSpeedUnit:   w.WindSpeedUnit,
			Time:            w.Time,
		}
	}
	return resp
}

func travelersFromGen(in []gen.Traveler) []domain.Traveler {
	out := make([]domain.Traveler, len(in))
	for i, tr := range in {
		out[i] = domain.Traveler{ID: tr.Id, Name: tr.Name}
	}
	return out
}

func coordsFromGen(c *gen.Coordinates) *domain.Coordinates {
	if c == nil {
		return nil
	}
	return &domain.Coordinates{Lat: c.Lat, Lng: c.Lng}
}

func weatherFromGen(w *gen.WeatherSummary) *domain.WeatherSummary {
	if w == nil {
		return nil
	}
	return &domain.WeatherSummary{
		Temperature:     w.Temperature,
		TemperatureUnit: w.TemperatureUnit,
		WindSpeed:       w.WindSpeed,
		WindSpeedUnit:   w.WindSpeedUnit,
		Time:            w.Time,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
