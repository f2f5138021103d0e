package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catcoat/backend/internal/config"
	delivery "github.com/catcoat/backend/internal/delivery/http"
	"github.com/catcoat/backend/internal/domain"
	"github.com/catcoat/backend/internal/repository/postgres"
	"github.com/catcoat/backend/internal/service"
	"github.com/catcoat/backend/pkg/metrics"
)

// fakeWeather mimics the provider: a fixed current block, failing for
// any latitude starting with "99".
func fakeWeather(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Query().Get("latitude"), "99") {
			http.Error(w, "simulated outage", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"current":{"temperature_2m":10,"apparent_temperature":8.5,"wind_speed_10m":25,"precipitation":0,"is_day":1}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, repo service.CatRepository, weatherURL string) *fiber.App {
	t.Helper()

	collector := metrics.NewCollectorWith("test", prometheus.NewRegistry())
	weatherSvc := service.NewWeatherService(weatherURL, collector)
	advisorSvc := service.NewAdvisorService(weatherSvc, repo)

	cfg := &config.Config{DatabaseURL: "postgres://test", WeatherBaseURL: weatherURL}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			return c.Status(code).JSON(fiber.Map{"error": true, "message": message})
		},
	})
	delivery.SetupRoutes(app, advisorSvc, repo, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestRootLiveness(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)
	resp, raw := doJSON(t, app, fiber.MethodGet, "/", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Cats Weather & Coat Advisor API"}`, string(raw))
}

func TestCreateThenListRoundtrip(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/cats", fiber.Map{
		"name":      "Whiskers",
		"latitude":  51.5,
		"longitude": -0.12,
		"city":      "London",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	createdID, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	resp, raw = doJSON(t, app, fiber.MethodGet, "/api/cats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Cats []domain.Cat `json:"cats"`
	}
	require.NoError(t, json.Unmarshal(raw, &listed))
	require.Len(t, listed.Cats, 1)
	assert.Equal(t, createdID, listed.Cats[0].ID)
	assert.Equal(t, "Whiskers", listed.Cats[0].Name)
	assert.Equal(t, domain.UnitsMetric, listed.Cats[0].Units)

	// Raw store keys never appear on the wire.
	assert.NotContains(t, string(raw), `"_id"`)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing name", fiber.Map{"latitude": 1.0, "longitude": 2.0}},
		{"blank name", fiber.Map{"name": "  ", "latitude": 1.0, "longitude": 2.0}},
		{"missing latitude", fiber.Map{"name": "x", "longitude": 2.0}},
		{"missing longitude", fiber.Map{"name": "x", "latitude": 1.0}},
		{"malformed units", fiber.Map{"name": "x", "latitude": 1.0, "longitude": 2.0, "units": "kelvin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := doJSON(t, app, fiber.MethodPost, "/api/cats", tt.body)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
			assert.Contains(t, string(raw), `"error":true`)
		})
	}
}

func TestCreateMalformedBody(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	req := httptest.NewRequest(fiber.MethodPost, "/api/cats", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateLatitudeZeroIsValid(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	// 0 is a real coordinate and must not be confused with "absent".
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/cats", fiber.Map{
		"name": "Equator", "latitude": 0.0, "longitude": 0.0,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDeleteCat(t *testing.T) {
	t.Parallel()

	repo := postgres.NewMemoryRepository()
	app := newTestApp(t, repo, fakeWeather(t).URL)

	_, raw := doJSON(t, app, fiber.MethodPost, "/api/cats", fiber.Map{
		"name": "Temp", "latitude": 1.0, "longitude": 2.0,
	})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := doJSON(t, app, fiber.MethodDelete, "/api/cats/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"deleted"}`, string(raw))

	// Gone from the store.
	resp, _ = doJSON(t, app, fiber.MethodDelete, "/api/cats/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteAbsentIDReturnsNotFound(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	resp, raw := doJSON(t, app, fiber.MethodDelete, "/api/cats/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "Cat not found")
}

func TestDeleteMalformedIDReturnsBadRequest(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	resp, raw := doJSON(t, app, fiber.MethodDelete, "/api/cats/not-a-valid-id", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Invalid id format")
}

func TestGetRecommendations(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	_, raw := doJSON(t, app, fiber.MethodPost, "/api/cats", fiber.Map{
		"name": "Whiskers", "latitude": 51.5, "longitude": -0.12,
	})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/recommendations/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var advice domain.CatAdvice
	require.NoError(t, json.Unmarshal(raw, &advice))
	assert.Equal(t, created.ID, advice.Cat.ID.String())
	assert.Equal(t, 10.0, advice.Weather.TemperatureC)
	assert.Equal(t, "Light coat", advice.Recommendations.Day.Coat)
	assert.True(t, strings.HasSuffix(advice.Recommendations.Night.Note,
		"Use a cozy indoor rug/blanket for naps."))
}

func TestGetRecommendationsErrors(t *testing.T) {
	t.Parallel()

	repo := postgres.NewMemoryRepository()
	app := newTestApp(t, repo, fakeWeather(t).URL)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/recommendations/garbage", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/recommendations/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Upstream failure propagates as 502 on the single-cat path.
	_, raw := doJSON(t, app, fiber.MethodPost, "/api/cats", fiber.Map{
		"name": "Stormy", "latitude": 99.0, "longitude": 0.0,
	})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw = doJSON(t, app, fiber.MethodGet, "/api/recommendations/"+created.ID, nil)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, string(raw), "Failed to fetch weather data")
}

func TestDashboardEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	for _, cat := range []fiber.Map{
		{"name": "Alpha", "latitude": 10.0, "longitude": 0.0},
		{"name": "Bravo", "latitude": 99.0, "longitude": 0.0},
		{"name": "Charlie", "latitude": 20.0, "longitude": 0.0},
	} {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/cats", cat)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, fiber.MethodGet, "/api/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Items []domain.DashboardItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Items, 3)

	assert.Equal(t, "Alpha", payload.Items[0].Cat.Name)
	assert.NotNil(t, payload.Items[0].Weather)
	assert.Empty(t, payload.Items[0].Error)

	assert.Equal(t, "Bravo", payload.Items[1].Cat.Name)
	assert.Nil(t, payload.Items[1].Weather)
	assert.NotEmpty(t, payload.Items[1].Error)
	assert.LessOrEqual(t, len(payload.Items[1].Error), 120)

	assert.Equal(t, "Charlie", payload.Items[2].Cat.Name)
	assert.NotNil(t, payload.Items[2].Recommendations)
}

func TestStoreUnavailableResponses(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewUnavailableRepository(), fakeWeather(t).URL)

	for _, tc := range []struct {
		method, path string
		body         fiber.Map
	}{
		{fiber.MethodGet, "/api/cats", nil},
		{fiber.MethodPost, "/api/cats", fiber.Map{"name": "x", "latitude": 1.0, "longitude": 2.0}},
		{fiber.MethodDelete, "/api/cats/" + uuid.NewString(), nil},
		{fiber.MethodGet, "/api/recommendations/" + uuid.NewString(), nil},
		{fiber.MethodGet, "/api/dashboard", nil},
	} {
		var body any
		if tc.body != nil {
			body = tc.body
		}
		resp, raw := doJSON(t, app, tc.method, tc.path, body)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.Contains(t, string(raw), "Database not available", "%s %s", tc.method, tc.path)
	}
}

func TestHealthProbe(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewMemoryRepository(), fakeWeather(t).URL)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/test", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var probe map[string]any
	require.NoError(t, json.Unmarshal(raw, &probe))
	assert.Contains(t, probe["backend"], "Go backend running")
	assert.Contains(t, probe["database"], "connected")
	assert.Equal(t, []any{"cats"}, probe["collections"])
}

func TestHealthProbeStoreDown(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, postgres.NewUnavailableRepository(), fakeWeather(t).URL)

	resp, raw := doJSON(t, app, fiber.MethodGet, "/test", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var probe map[string]any
	require.NoError(t, json.Unmarshal(raw, &probe))
	assert.Contains(t, probe["database"], "not connected")
	assert.NotContains(t, probe, "collections")
}
