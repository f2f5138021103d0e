package domain

// WeatherReading holds the current conditions for a location, normalized
// to Celsius, km/h and millimeters. Produced fresh per request from the
// weather provider; never persisted.
type WeatherReading struct {
	TemperatureC    float64 `json:"temperature_c"`
	ApparentC       float64 `json:"apparent_c"`
	WindKmh         float64 `json:"wind_kmh"`
	PrecipitationMm float64 `json:"precipitation_mm"`
	IsDay           bool    `json:"is_day"`
}

// Recommendation is a single coat/shelter suggestion derived from a
// weather reading for one day or night context.
type Recommendation struct {
	Context       string  `json:"context"`
	Coat          string  `json:"coat"`
	Note          string  `json:"note"`
	Precip        string  `json:"precip"`
	AdjustedTempC float64 `json:"adjusted_temp_c"`
}

// RecommendationPair carries both framings of the same reading. Caretakers
// plan for day and night regardless of the current day/night state.
type RecommendationPair struct {
	Day   Recommendation `json:"day"`
	Night Recommendation `json:"night"`
}
