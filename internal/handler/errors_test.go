package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
)

func TestUnwrapMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"bare sentinel prefix", fmt.Errorf("%w: origin is required", domain.ErrValidation), "origin is required"},
		{"nested wrap", fmt.Errorf("service.TripService.Update: %w", fmt.Errorf("%w: id is required", domain.ErrValidation)), "id is required"},
		{"no sentinel text", errors.New("plain"), "plain"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, unwrapMessage(tc.err, domain.ErrValidation))
		})
	}
}

func TestRequestErrorHandler_BodyTooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("can't decode JSON body: %w", &http.MaxBytesError{Limit: 10})

	RequestErrorHandler(rec, httptest.NewRequest(http.MethodPost, "/trips", nil), err)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"validation_error"`)
}

func TestResponseErrorHandler_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseErrorHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("x: %w", domain.ErrNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"x: not found"}}`, rec.Body.String())
}
