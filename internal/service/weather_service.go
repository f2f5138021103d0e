package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/catcoat/backend/internal/domain"
	"github.com/catcoat/backend/pkg/metrics"
)

// Open-Meteo variable lists. The hourly series are requested for parity
// with the provider contract; no caller consumes them yet.
const (
	currentFields = "temperature_2m,apparent_temperature,wind_speed_10m,precipitation,is_day"
	hourlyFields  = "temperature_2m,apparent_temperature,precipitation_probability,weather_code"
)

// weatherTimeout bounds a single provider call. The provider is queried
// without credentials and is never retried.
const weatherTimeout = 15 * time.Second

// WeatherService fetches current conditions from an Open-Meteo compatible
// endpoint.
type WeatherService struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Collector
}

// NewWeatherService creates a new weather service
func NewWeatherService(baseURL string, collector *metrics.Collector) *WeatherService {
	return &WeatherService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: weatherTimeout,
		},
		metrics: collector,
	}
}

// openMeteoResponse mirrors the subset of the Open-Meteo forecast payload
// this service reads. Current fields are pointers so that values missing
// from a partial response can fall back to neutral defaults.
type openMeteoResponse struct {
	Current struct {
		Time                string   `json:"time"`
		Temperature2m       *float64 `json:"temperature_2m"`
		ApparentTemperature *float64 `json:"apparent_temperature"`
		WindSpeed10m        *float64 `json:"wind_speed_10m"`
		Precipitation       *float64 `json:"precipitation"`
		IsDay               *int     `json:"is_day"`
	} `json:"current"`
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2m            []float64 `json:"temperature_2m"`
		ApparentTemperature      []float64 `json:"apparent_temperature"`
		PrecipitationProbability []int     `json:"precipitation_probability"`
		WeatherCode              []int     `json:"weather_code"`
	} `json:"hourly"`
}

// FetchCurrent retrieves the current conditions for a coordinate pair.
// Any network failure or non-200 status is returned to the caller; a
// partial payload is tolerated by substituting defaults (0 for numeric
// fields, the current temperature for the apparent one, day for the
// day/night flag).
func (s *WeatherService) FetchCurrent(ctx context.Context, lat, lon float64) (reading domain.WeatherReading, err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveWeatherFetch(time.Since(start), err)
	}()

	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%f&longitude=%f&current=%s&hourly=%s&timezone=auto",
		s.baseURL, lat, lon, currentFields, hourlyFields,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.WeatherReading{}, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WeatherReading{}, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("weather: provider returned %s", resp.Status)
		return domain.WeatherReading{}, err
	}

	var payload openMeteoResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.WeatherReading{}, fmt.Errorf("weather: failed to decode response: %w", err)
	}

	cur := payload.Current
	reading = domain.WeatherReading{IsDay: true}
	if cur.Temperature2m != nil {
		reading.TemperatureC = *cur.Temperature2m
	}
	reading.ApparentC = reading.TemperatureC
	if cur.ApparentTemperature != nil {
		reading.ApparentC = *cur.ApparentTemperature
	}
	if cur.WindSpeed10m != nil {
		reading.WindKmh = *cur.WindSpeed10m
	}
	if cur.Precipitation != nil {
		reading.PrecipitationMm = *cur.Precipitation
	}
	if cur.IsDay != nil {
		reading.IsDay = *cur.IsDay != 0
	}

	return reading, nil
}
