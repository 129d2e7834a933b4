// Package upstream wraps outbound calls to third-party HTTP APIs (the remote
// document store, the geocoder, the weather provider).
//
// Every call goes through a per-service circuit breaker. The breaker never
// retries; while it is open, calls fail immediately with domain.ErrUpstream so
// callers fall back to their degraded result without waiting on a dead host.
package upstream

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/metrics"
)

// defaultMaxBodyBytes is the body limit when no WithMaxBodyBytes option is given.
const defaultMaxBodyBytes = 4 << 20

// tripAfter is the number of consecutive failures that opens the breaker.
const tripAfter = 5

var (
	// ErrBodyTooLarge is returned when a response body exceeds the client's
	// limit. The body is never truncated.
	ErrBodyTooLarge = fmt.Errorf("%w: response body too large", domain.ErrUpstream)

	// ErrRejected is returned when the breaker refuses a call without sending
	// it, because it is open or its single half-open trial call is in flight.
	ErrRejected = fmt.Errorf("%w: rejected by circuit breaker", domain.ErrUpstream)
)

// StatusError is returned when an upstream API answers with a non-2xx status.
// It unwraps to domain.ErrUpstream.
type StatusError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

// Unwrap lets errors.Is(err, domain.ErrUpstream) match a StatusError.
func (e *StatusError) Unwrap() error {
	return domain.ErrUpstream
}

// Client performs HTTP requests against one upstream service.
type Client struct {
	service  string
	http     *http.Client
	cb       *gobreaker.CircuitBreaker[[]byte]
	maxBytes int64
}

// Option configures a Client.
type Option func(*Client)

// WithMaxBodyBytes sets the largest response body the client accepts.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		c.maxBytes = n
	}
}

// New constructs a Client for the named service with the given request timeout.
//
// Breaker settings:
//   - opens after 5 consecutive failures
//   - stays open for 30 seconds, then lets one trial call through (half-open)
//   - 4xx responses and oversized bodies count as successes: the service is up
func New(service string, timeout time.Duration, opts ...Option) *Client {
	metrics.CircuitBreakerState.WithLabelValues(service).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        service,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return se.StatusCode < http.StatusInternalServerError
			}
			return err == nil || errors.Is(err, ErrBodyTooLarge)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("circuit breaker state change",
				"service", name,
				"from", from.String(),
				"to", to.String(),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	c := &Client{
		service:  service,
		http:     &http.Client{Timeout: timeout},
		cb:       cb,
		maxBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Service returns the name used in logs, metrics, and error messages.
func (c *Client) Service() string {
	return c.service
}

// Do sends req and returns the response body when the status is 2xx.
//
// Errors:
//   - *StatusError for non-2xx responses
//   - ErrBodyTooLarge (wrapped) when the body exceeds the limit
//   - ErrRejected (wrapped) when the breaker refuses the call
//   - domain.ErrUpstream (wrapped) for transport failures
func (c *Client) Do(req *http.Request) ([]byte, error) {
	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.roundTrip(req)
	})
	if err != nil {
		var se *StatusError
		switch {
		case errors.As(err, &se):
			metrics.UpstreamRequests.WithLabelValues(c.service, "failure").Inc()
			return nil, err
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.UpstreamRequests.WithLabelValues(c.service, "rejected").Inc()
			return nil, fmt.Errorf("%s: %w: %w", c.service, ErrRejected, err)
		default:
			metrics.UpstreamRequests.WithLabelValues(c.service, "failure").Inc()
		}
		return nil, fmt.Errorf("%s: %w: %w", c.service, domain.ErrUpstream, err)
	}

	metrics.UpstreamRequests.WithLabelValues(c.service, "success").Inc()
	return body, nil
}

func (c *Client) roundTrip(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, c.maxBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Service: c.service, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// DecodeJSON unmarshals an upstream body into v.
// Parse failures are wrapped with domain.ErrUpstream.
func DecodeJSON(service string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", service, domain.ErrUpstream, err)
	}
	return nil
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
