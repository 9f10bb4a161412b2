package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
	"name": "London",
	"weather": [{"description": "light rain"}],
	"main": {"temp": 14.6, "humidity": 81},
	"wind": {"speed": 4.1}
}`

func TestCurrent_ParsesConsumedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	c := NewHTTPClient(ClientConfig{APIKey: "test-key", BaseURL: srv.URL})

	report, err := c.Current(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "London", report.City)
	assert.Equal(t, "light rain", report.Description)
	assert.Equal(t, 15, report.TempC)
	// F is derived from the rounded C value: round(15*9/5+32) = 59.
	assert.Equal(t, 59, report.TempF)
	assert.Equal(t, 81, report.Humidity)
	assert.Equal(t, 4.1, report.WindSpeed)
}

func TestCurrent_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(ClientConfig{APIKey: "test-key", BaseURL: srv.URL})

	_, err := c.Current(context.Background(), "Nowhereville")
	assert.Error(t, err)
}

func TestCurrent_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	c := NewHTTPClient(ClientConfig{APIKey: "test-key", BaseURL: srv.URL})

	_, err := c.Current(context.Background(), "London")
	assert.Error(t, err)
}

func TestCurrent_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewHTTPClient(ClientConfig{APIKey: "test-key", BaseURL: srv.URL})
	_, err := c.Current(ctx, "London")
	assert.Error(t, err)
}
