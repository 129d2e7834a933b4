// Package handler implements the HTTP handlers for the Trip Logbook API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/handler/gen"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the document store or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	List(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)
	Count(ctx context.Context) (domain.TripCount, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// LocationServicer fronts the geocoding and weather lookups.
type LocationServicer interface {
	Search(ctx context.Context, query string) []domain.Place
	Reverse(ctx context.Context, lat, lng string) (string, error)
	Resolve(ctx context.Context, query string) (domain.Place, error)
	Weather(ctx context.Context, lat, lng string) (domain.Weather, error)
}

// PreferenceServicer reads and replaces the UI preferences.
type PreferenceServicer interface {
	Get(ctx context.Context) domain.Preferences
	Update(ctx context.Context, p domain.Preferences) (domain.Preferences, error)
}

// ExportServicer defines what the export handler needs from the service layer.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via NewHTTPHandler.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips     TripServicer
	locations LocationServicer
	prefs     PreferenceServicer
	export    ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, locations LocationServicer, prefs PreferenceServicer, export ExportServicer) *Server {
	return &Server{trips: trips, locations: locations, prefs: prefs, export: export}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// NewHTTPHandler mounts srv's routes on r using the generated strict handler
// and this package's error handlers, so every failure leaves the server as
// an ErrorResponse body.
func NewHTTPHandler(srv *Server, r chi.Router, middlewares ...gen.StrictMiddlewareFunc) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(srv, middlewares, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  RequestErrorHandler,
		ResponseErrorHandlerFunc: ResponseErrorHandler,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: ParamErrorHandler,
	})
}
