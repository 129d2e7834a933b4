package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/handler/gen"
)

// SearchLocations handles GET /locations/search. It always answers 200; short
// queries and provider failures produce an empty array.
func (s *Server) SearchLocations(ctx context.Context, req gen.SearchLocationsRequestObject) (gen.SearchLocationsResponseObject, error) {
	places := s.locations.Search(ctx, deref(req.Params.Q))

	out := make(gen.SearchLocations200JSONResponse, len(places))
	for i, p := range places {
		out[i] = placeToResponse(p)
	}
	return out, nil
}

// ReverseGeocode handles GET /locations/reverse.
func (s *Server) ReverseGeocode(ctx context.Context, req gen.ReverseGeocodeRequestObject) (gen.ReverseGeocodeResponseObject, error) {
	addr, err := s.locations.Reverse(ctx, deref(req.Params.Lat), deref(req.Params.Lng))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ReverseGeocode422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.ReverseGeocode200JSONResponse{Address: addr}, nil
}

// ResolveLocation handles GET /locations/resolve.
func (s *Server) ResolveLocation(ctx context.Context, req gen.ResolveLocationRequestObject) (gen.ResolveLocationResponseObject, error) {
	place, err := s.locations.Resolve(ctx, req.Params.Q)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ResolveLocation404JSONResponse(errorBody(codeNoMatch, "no place matches the query")), nil
		}
		return nil, err
	}
	return gen.ResolveLocation200JSONResponse(placeToResponse(place)), nil
}

// GetWeather handles GET /weather.
func (s *Server) GetWeather(ctx context.Context, req gen.GetWeatherRequestObject) (gen.GetWeatherResponseObject, error) {
	w, err := s.locations.Weather(ctx, deref(req.Params.Lat), deref(req.Params.Lng))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return gen.GetWeather422JSONResponse(validationBody(err)), nil
		case errors.Is(err, domain.ErrUpstream):
			return gen.GetWeather502JSONResponse(upstreamBody(err)), nil
		}
		return nil, err
	}

	return gen.GetWeather200JSONResponse{
		Temperature:     w.Temperature,
		TemperatureUnit: w.TemperatureUnit,
		WindSpeed:       w.WindSpeed,
		WindSpeedUnit:   w.WindSpeedUnit,
		Time:            w.Time,
		Coordinates:     gen.Coordinates{Lat: w.Coordinates.Lat, Lng: w.Coordinates.Lng},
	}, nil
}

func placeToResponse(p domain.Place) gen.Place {
	return gen.Place{
		PlaceId:     p.PlaceID,
		DisplayName: p.DisplayName,
		Lat:         p.Lat,
		Lon:         p.Lon,
		Type:        p.Type,
		Importance:  p.Importance,
	}
}
