// Package weather is the outbound client for the third-party weather and air
// pollution provider. Calls are synchronous, carry the request context, and
// are bounded by a client-level timeout; there are no retries and no caching.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"weathervane/internal/domain"
)

// ErrUpstream wraps every transport failure, non-2xx response, and unusable
// response shape from the provider.
var ErrUpstream = errors.New("upstream weather provider request failed")

const defaultTimeout = 10 * time.Second

type Client struct {
	http          *resty.Client
	forecastURL   string
	airQualityURL string
	apiKey        string
	log           *zap.SugaredLogger
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

func NewClient(forecastURL, airQualityURL, apiKey string, log *zap.SugaredLogger, opts ...Option) *Client {
	c := &Client{
		http:          resty.New().SetTimeout(defaultTimeout),
		forecastURL:   forecastURL,
		airQualityURL: airQualityURL,
		apiKey:        apiKey,
		log:           log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, url string, query map[string]string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetQueryParam("appid", c.apiKey).
		Get(url)
	if err != nil {
		c.log.Warnw("provider request failed", "url", url, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if resp.IsError() {
		c.log.Warnw("provider returned error status", "url", url, "status", resp.StatusCode())
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode())
	}
	return resp.Body(), nil
}

func coordParams(lat, lon float64) map[string]string {
	return map[string]string{
		"lat": strconv.FormatFloat(lat, 'f', -1, 64),
		"lon": strconv.FormatFloat(lon, 'f', -1, 64),
	}
}

// Forecast fetches the daily forecast for the coordinates and returns the
// provider payload as-is.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	params := coordParams(lat, lon)
	params["exclude"] = "current,minutely,hourly,alerts"
	body, err := c.get(ctx, c.forecastURL, params)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

type airQualityResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components map[string]float64 `json:"components"`
	} `json:"list"`
}

// AirQuality fetches the current air pollution reading and extracts the first
// list element. An empty or malformed list is treated as an upstream failure.
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (*domain.AirQuality, error) {
	body, err := c.get(ctx, c.airQualityURL, coordParams(lat, lon))
	if err != nil {
		return nil, err
	}

	var parsed airQualityResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding air quality response: %w", ErrUpstream, err)
	}
	if len(parsed.List) == 0 {
		return nil, fmt.Errorf("%w: air quality response contained no readings", ErrUpstream)
	}

	return &domain.AirQuality{
		AQI:        parsed.List[0].Main.AQI,
		Pollutants: parsed.List[0].Components,
	}, nil
}

// Historical fetches past weather for the coordinates via the provider's
// timemachine endpoint.
func (c *Client) Historical(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	body, err := c.get(ctx, c.forecastURL+"/timemachine", coordParams(lat, lon))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
