package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the trip collection.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank origin, unknown transport mode, bad coordinates).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConfig is returned when an operation needs configuration that was not
// provided (e.g. the document store URL or API key). No network call is made.
// Handlers should map this to HTTP 503 Service Unavailable.
var ErrConfig = errors.New("configuration error")

// ErrUpstream is returned when a third-party API responds with a non-success
// status, cannot be reached, or returns a body that cannot be parsed.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrUpstream = errors.New("upstream error")
