// Package weather is a client for an Open-Meteo-compatible forecast API.
// It fetches current temperature and wind speed for a coordinate pair.
// There is no caching: every call goes to the provider.
package weather

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/upstream"
)

// Client queries the forecast provider.
type Client struct {
	http    *upstream.Client
	baseURL string
}

// New constructs a Client for the provider at baseURL.
func New(uc *upstream.Client, baseURL string) *Client {
	return &Client{http: uc, baseURL: strings.TrimRight(baseURL, "/")}
}

// forecastResponse covers both the current "current" block and the older
// "current_weather" block some deployments still return.
type forecastResponse struct {
	Current *struct {
		Time        string  `json:"time"`
		Temperature float64 `json:"temperature_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
	CurrentUnits struct {
		Temperature string `json:"temperature_2m"`
		WindSpeed   string `json:"wind_speed_10m"`
	} `json:"current_units"`

	CurrentWeather *struct {
		Time        string  `json:"time"`
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
	} `json:"current_weather"`
	CurrentWeatherUnits struct {
		Temperature string `json:"temperature"`
		WindSpeed   string `json:"windspeed"`
	} `json:"current_weather_units"`
}

// Current returns the current conditions at lat/lng.
//
// Errors:
//   - domain.ErrValidation if a coordinate is NaN or out of range; no request is sent
//   - domain.ErrUpstream for any provider, transport, or parse failure
func (c *Client) Current(ctx context.Context, lat, lng float64) (domain.Weather, error) {
	if err := ValidateCoordinates(lat, lng); err != nil {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: %w", err)
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("current", "temperature_2m,wind_speed_10m")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+params.Encode(), http.NoBody)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.http.Do(req)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: %w", err)
	}

	var resp forecastResponse
	if err := upstream.DecodeJSON(c.http.Service(), body, &resp); err != nil {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: %w", err)
	}

	w, err := flatten(resp)
	if err != nil {
		return domain.Weather{}, fmt.Errorf("weather.Client.Current: %w", err)
	}
	w.Coordinates = domain.Coordinates{Lat: lat, Lng: lng}
	return w, nil
}

// flatten maps whichever current-conditions block is present.
func flatten(resp forecastResponse) (domain.Weather, error) {
	switch {
	case resp.Current != nil:
		return domain.Weather{
			Temperature:     resp.Current.Temperature,
			TemperatureUnit: resp.CurrentUnits.Temperature,
			WindSpeed:       resp.Current.WindSpeed,
			WindSpeedUnit:   resp.CurrentUnits.WindSpeed,
			Time:            resp.Current.Time,
		}, nil
	case resp.CurrentWeather != nil:
		return domain.Weather{
			Temperature:     resp.CurrentWeather.Temperature,
			TemperatureUnit: resp.CurrentWeatherUnits.Temperature,
			WindSpeed:       resp.CurrentWeather.WindSpeed,
			WindSpeedUnit:   resp.CurrentWeatherUnits.WindSpeed,
			Time:            resp.CurrentWeather.Time,
		}, nil
	default:
		return domain.Weather{}, fmt.Errorf("%w: response has no current conditions", domain.ErrUpstream)
	}
}

// ValidateCoordinates returns domain.ErrValidation (wrapped) unless lat is in
// [-90, 90] and lng is in [-180, 180].
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", domain.ErrValidation)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", domain.ErrValidation)
	}
	return nil
}
