package upstream_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/upstream"
)

func newRequest(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, http.NoBody)
	require.NoError(t, err)
	return req
}

func TestClient_Do_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := upstream.New("test-ok", time.Second)

	body, err := c.Do(newRequest(t, srv.URL))

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestClient_Do_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := upstream.New("test-status", time.Second)

	_, err := c.Do(newRequest(t, srv.URL))

	var se *upstream.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Do_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening any more

	c := upstream.New("test-down", time.Second)

	_, err := c.Do(newRequest(t, url))

	assert.ErrorIs(t, err, domain.ErrUpstream)
	var se *upstream.StatusError
	assert.False(t, errors.As(err, &se), "transport failures are not status errors")
}

// TestClient_Do_BreakerOpensAfterConsecutiveServerErrors verifies that after
// five 5xx responses the sixth call is rejected without reaching the server.
func TestClient_Do_BreakerOpensAfterConsecutiveServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := upstream.New("test-breaker", time.Second)

	for i := 0; i < 5; i++ {
		_, err := c.Do(newRequest(t, srv.URL))
		require.Error(t, err)
	}

	_, err := c.Do(newRequest(t, srv.URL))

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.ErrorIs(t, err, upstream.ErrRejected)
	assert.EqualValues(t, 5, hits.Load(), "open breaker must not call the server")
}

// TestClient_Do_BodyOverLimit verifies an oversized body is refused whole
// rather than cut short, and that a body exactly at the limit is accepted.
func TestClient_Do_BodyOverLimit(t *testing.T) {
	const limit = 64
	var size atomic.Int32
	size.Store(limit)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", int(size.Load()))))
	}))
	defer srv.Close()

	c := upstream.New("test-limit", time.Second, upstream.WithMaxBodyBytes(limit))

	body, err := c.Do(newRequest(t, srv.URL))
	require.NoError(t, err)
	assert.Len(t, body, limit)

	size.Store(limit + 1)
	body, err = c.Do(newRequest(t, srv.URL))

	require.Error(t, err)
	assert.Nil(t, body)
	assert.ErrorIs(t, err, upstream.ErrBodyTooLarge)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.NotErrorIs(t, err, upstream.ErrRejected)
}

// TestClient_Do_OversizedBodiesDoNotTripBreaker verifies the breaker treats an
// oversized body as an answer from a healthy service.
func TestClient_Do_OversizedBodiesDoNotTripBreaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(strings.Repeat("x", 32)))
	}))
	defer srv.Close()

	c := upstream.New("test-limit-breaker", time.Second, upstream.WithMaxBodyBytes(8))

	for i := 0; i < 8; i++ {
		_, err := c.Do(newRequest(t, srv.URL))
		require.ErrorIs(t, err, upstream.ErrBodyTooLarge)
	}

	assert.EqualValues(t, 8, hits.Load())
}

// TestClient_Do_ClientErrorsDoNotTripBreaker verifies 4xx responses leave the
// breaker closed.
func TestClient_Do_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := upstream.New("test-4xx", time.Second)

	for i := 0; i < 8; i++ {
		_, _ = c.Do(newRequest(t, srv.URL))
	}

	assert.EqualValues(t, 8, hits.Load())
}

func TestDecodeJSON_Malformed(t *testing.T) {
	var v map[string]any

	err := upstream.DecodeJSON("svc", []byte("{not json"), &v)

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
