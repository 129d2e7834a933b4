package middleware

import (
	"net/http"

	"github.com/goccy/go-json"
)

// errorResponse mirrors the gen.ErrorResponse wire shape.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes the API's standard {"error":{"code","message"}} body.
// Middleware rejects requests before the generated handlers run, so it cannot
// use the gen response types.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorDetail{Code: code, Message: message},
	})
}
