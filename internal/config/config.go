// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends selectable with STORE_BACKEND.
const (
	BackendRemote   = "remote"
	BackendPostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreBackend picks where the trip document lives: "remote" (hosted
	// JSON document store, the default) or "postgres".
	StoreBackend string

	// TripsAPIURL and TripsAPIKey address the hosted document store.
	// They are not required at load time; store operations fail with
	// domain.ErrConfig while either is empty.
	TripsAPIURL       string
	TripsAPIKey       string
	TripsAPIKeyHeader string

	// DatabaseURL is the Postgres connection string. Required when
	// StoreBackend is "postgres".
	DatabaseURL string

	GeocoderURL       string
	GeocoderUserAgent string
	WeatherURL        string

	// UpstreamTimeout bounds every call to the store, geocoder, and weather provider.
	UpstreamTimeout time.Duration

	// LookupRateLimit is the per-IP requests-per-minute budget on
	// /locations and /weather.
	LookupRateLimit int

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64

	// PreferencesPath is the JSON file the UI preferences persist to.
	PreferencesPath string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set or any
// values that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", BackendRemote)),
		TripsAPIURL:       os.Getenv("TRIPS_API_URL"),
		TripsAPIKey:       os.Getenv("TRIPS_API_KEY"),
		TripsAPIKeyHeader: getEnv("TRIPS_API_KEY_HEADER", "x-api-key"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GeocoderURL:       getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "trip-logbook/1.0"),
		WeatherURL:        getEnv("WEATHER_URL", "https://api.open-meteo.com"),
		PreferencesPath:   getEnv("PREFERENCES_PATH", "preferences.json"),
	}

	var problems []string

	switch cfg.StoreBackend {
	case BackendRemote:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when STORE_BACKEND=postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("STORE_BACKEND must be %q or %q, got %q", BackendRemote, BackendPostgres, cfg.StoreBackend))
	}

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		problems = append(problems, "UPSTREAM_TIMEOUT must be a positive duration")
	}
	cfg.UpstreamTimeout = timeout

	limit, err := strconv.Atoi(getEnv("LOOKUP_RATE_LIMIT", "60"))
	if err != nil || limit <= 0 {
		problems = append(problems, "LOOKUP_RATE_LIMIT must be a positive integer")
	}
	cfg.LookupRateLimit = limit

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		problems = append(problems, "MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
