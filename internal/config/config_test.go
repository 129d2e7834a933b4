package config_test

import (
	"testing"
	"time"

	"github.com/pkordes/trip-logbook/backend/internal/config"
	"github.com/stretchr/testify/require"
)

var allVars = []string{
	"PORT", "LOG_LEVEL", "CORS_ORIGINS", "STORE_BACKEND",
	"TRIPS_API_URL", "TRIPS_API_KEY", "TRIPS_API_KEY_HEADER", "DATABASE_URL",
	"GEOCODER_URL", "GEOCODER_USER_AGENT", "WEATHER_URL",
	"UPSTREAM_TIMEOUT", "LOOKUP_RATE_LIMIT", "MAX_BODY_BYTES", "PREFERENCES_PATH",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

// TestLoad_defaults verifies that every variable falls back to its default
// and that the remote backend loads without store credentials.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, config.BackendRemote, cfg.StoreBackend)
	require.Empty(t, cfg.TripsAPIURL)
	require.Empty(t, cfg.TripsAPIKey)
	require.Equal(t, "x-api-key", cfg.TripsAPIKeyHeader)
	require.Equal(t, "https://nominatim.openstreetmap.org", cfg.GeocoderURL)
	require.Equal(t, "trip-logbook/1.0", cfg.GeocoderUserAgent)
	require.Equal(t, "https://api.open-meteo.com", cfg.WeatherURL)
	require.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	require.Equal(t, 60, cfg.LookupRateLimit)
	require.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	require.Equal(t, "preferences.json", cfg.PreferencesPath)
}

// TestLoad_overrides verifies that values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/trips")
	t.Setenv("TRIPS_API_URL", "https://store.example.com/b/abc")
	t.Setenv("TRIPS_API_KEY", "k")
	t.Setenv("TRIPS_API_KEY_HEADER", "X-Master-Key")
	t.Setenv("UPSTREAM_TIMEOUT", "2500ms")
	t.Setenv("LOOKUP_RATE_LIMIT", "5")
	t.Setenv("MAX_BODY_BYTES", "4096")
	t.Setenv("PREFERENCES_PATH", "/var/lib/trips/prefs.json")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, config.BackendPostgres, cfg.StoreBackend)
	require.Equal(t, "postgres://user:pass@db:5432/trips", cfg.DatabaseURL)
	require.Equal(t, "X-Master-Key", cfg.TripsAPIKeyHeader)
	require.Equal(t, 2500*time.Millisecond, cfg.UpstreamTimeout)
	require.Equal(t, 5, cfg.LookupRateLimit)
	require.Equal(t, int64(4096), cfg.MaxBodyBytes)
	require.Equal(t, "/var/lib/trips/prefs.json", cfg.PreferencesPath)
}

// TestLoad_postgresRequiresDatabaseURL verifies that the error names the
// missing variable.
func TestLoad_postgresRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoad_invalidValues(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"STORE_BACKEND", "sqlite", "STORE_BACKEND"},
		{"UPSTREAM_TIMEOUT", "soon", "UPSTREAM_TIMEOUT"},
		{"UPSTREAM_TIMEOUT", "-1s", "UPSTREAM_TIMEOUT"},
		{"LOOKUP_RATE_LIMIT", "0", "LOOKUP_RATE_LIMIT"},
		{"MAX_BODY_BYTES", "lots", "MAX_BODY_BYTES"},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()

			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
