package domain

// Place is a single forward-geocoding candidate.
// Lat and Lon are kept as the provider's text so no precision is lost on the
// way back to the map widget.
type Place struct {
	PlaceID     int64
	DisplayName string
	Lat         string
	Lon         string
	Type        string
	Importance  float64
}

// Weather is the current conditions at a coordinate pair, flattened from the
// forecast provider's response.
type Weather struct {
	Temperature     float64
	TemperatureUnit string
	WindSpeed       float64
	WindSpeedUnit   string
	Time            string
	Coordinates     Coordinates
}

// Summary returns the snapshot form stored on a Trip.
func (w Weather) Summary() WeatherSummary {
	return WeatherSummary{
		Temperature:     w.Temperature,
		TemperatureUnit: w.TemperatureUnit,
		WindSpeed:       w.WindSpeed,
		WindSpeedUnit:   w.WindSpeedUnit,
		Time:            w.Time,
	}
}

// Theme is the UI colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences holds process-wide UI settings.
type Preferences struct {
	Theme Theme `json:"theme"`
}

// DefaultPreferences returns the settings used before anything was saved.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight}
}
