package domain

// AirQuality is the normalized shape extracted from the provider's air
// pollution response: the overall index plus per-pollutant concentrations.
type AirQuality struct {
	AQI        int                `json:"aqi"`
	Pollutants map[string]float64 `json:"pollutants"`
}
