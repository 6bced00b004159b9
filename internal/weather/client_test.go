package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(forecastURL, airQualityURL string) *Client {
	return NewClient(forecastURL, airQualityURL, "test-key", zap.NewNop().Sugar(), WithTimeout(2*time.Second))
}

func TestClientForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "42.36", r.URL.Query().Get("lat"))
		assert.Equal(t, "-71.06", r.URL.Query().Get("lon"))
		assert.Equal(t, "current,minutely,hourly,alerts", r.URL.Query().Get("exclude"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"daily":[{"temp":280.1}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	forecast, err := client.Forecast(context.Background(), 42.36, -71.06)
	require.NoError(t, err)
	assert.JSONEq(t, `{"daily":[{"temp":280.1}]}`, string(forecast))
}

func TestClientForecastUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	_, err := client.Forecast(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrUpstream)
}

func TestClientAirQuality(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list":[{"main":{"aqi":3},"components":{"pm2_5":7.5,"no2":12.1}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	airQuality, err := client.AirQuality(context.Background(), 42.36, -71.06)
	require.NoError(t, err)
	assert.Equal(t, 3, airQuality.AQI)
	assert.Equal(t, 7.5, airQuality.Pollutants["pm2_5"])
	assert.Equal(t, 12.1, airQuality.Pollutants["no2"])
}

func TestClientAirQualityEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"list":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	_, err := client.AirQuality(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrUpstream)
}

func TestClientAirQualityMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	_, err := client.AirQuality(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrUpstream)
}

func TestClientHistoricalUsesTimemachineEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	historical, err := client.Historical(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "/timemachine", gotPath)
	assert.JSONEq(t, `{"data":[]}`, string(historical))
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	_, err := client.Forecast(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrUpstream)
}
