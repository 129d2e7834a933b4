package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/handler/gen"
	"github.com/pkordes/trip-logbook/backend/internal/upstream"
)

// Error codes carried in ErrorResponse.error.code.
const (
	codeNotFound      = "not_found"
	codeNoMatch       = "no_match"
	codeValidation    = "validation_error"
	codeConfiguration = "configuration_error"
	codeUpstream      = "upstream_error"
	codeInternal      = "internal_error"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return errorBody(codeNotFound, message)
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return errorBody(codeValidation, unwrapMessage(err, domain.ErrValidation))
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing body).
func requestBody(message string) gen.ErrorResponse {
	return errorBody(codeValidation, message)
}

// upstreamBody describes a provider failure without leaking its response body.
func upstreamBody(err error) gen.ErrorResponse {
	var se *upstream.StatusError
	if errors.As(err, &se) {
		return errorBody(codeUpstream, se.Error())
	}
	return errorBody(codeUpstream, "upstream service unavailable")
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: origin is required" → "origin is required"
func unwrapMessage(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// ResponseErrorHandler maps an error returned by a strict handler to an
// ErrorResponse. Handlers return typed responses for the statuses they
// document; everything else (store misconfiguration, store failures,
// bugs) lands here.
func ResponseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status int
		body   gen.ErrorResponse
	)
	switch {
	case errors.Is(err, domain.ErrValidation):
		status, body = http.StatusUnprocessableEntity, validationBody(err)
	case errors.Is(err, domain.ErrNotFound):
		status, body = http.StatusNotFound, errorBody(codeNotFound, unwrapMessage(err, domain.ErrNotFound))
	case errors.Is(err, domain.ErrConfig):
		status, body = http.StatusServiceUnavailable, errorBody(codeConfiguration, unwrapMessage(err, domain.ErrConfig))
	case errors.Is(err, domain.ErrUpstream):
		status, body = http.StatusBadGateway, upstreamBody(err)
	default:
		status, body = http.StatusInternalServerError, errorBody(codeInternal, "internal server error")
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	writeJSON(w, status, body)
}

// RequestErrorHandler handles request bodies the strict handler could not
// decode. Oversized bodies get 413; anything else is a validation failure.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
}

// ParamErrorHandler handles query and path parameters that failed to bind.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
