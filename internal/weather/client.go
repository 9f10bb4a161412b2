// Package weather wraps the OpenWeatherMap current-weather endpoint.
// Only the handful of response fields the assistant speaks are
// consumed; everything else is ignored.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the OpenWeatherMap current-weather endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

const defaultTimeout = 10 * time.Second

// Client is the interface for weather lookups. This abstraction allows
// mocking in tests and swapping implementations.
type Client interface {
	// Current fetches the current conditions for a city.
	Current(ctx context.Context, city string) (Report, error)
}

// Report holds the fields of a weather response the assistant uses.
type Report struct {
	City        string
	Description string
	TempC       int
	TempF       int
	Humidity    int
	WindSpeed   float64
}

// HTTPClient talks to the real OpenWeatherMap API.
type HTTPClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// ClientConfig holds configuration for the weather client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key. Required.
	APIKey string

	// BaseURL overrides the API endpoint (for tests). Leave empty to
	// use the default.
	BaseURL string

	// Timeout bounds each request. Zero means a sensible default.
	Timeout time.Duration
}

// NewHTTPClient creates a weather client. The caller is responsible for
// checking that the API key is configured; an empty key produces
// authentication failures at request time.
func NewHTTPClient(cfg ClientConfig) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// apiResponse mirrors the subset of the OpenWeatherMap payload we read.
type apiResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches the current conditions for city in metric units and
// derives the Fahrenheit reading from the rounded Celsius value.
func (c *HTTPClient) Current(ctx context.Context, city string) (Report, error) {
	endpoint := fmt.Sprintf("%s?q=%s&units=metric&appid=%s",
		c.baseURL, url.QueryEscape(city), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Report{}, fmt.Errorf("weather API error: %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Report{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	tempC := int(math.Round(payload.Main.Temp))
	return Report{
		City:        payload.Name,
		Description: description,
		TempC:       tempC,
		TempF:       int(math.Round(float64(tempC)*9/5 + 32)),
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}, nil
}
