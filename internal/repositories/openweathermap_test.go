package repositories

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcweather/pkg/logger"
)

const parisResponse = `{
	"name": "Paris",
	"sys": {"country": "FR"},
	"main": {"temp": 18.4, "humidity": 60},
	"wind": {"speed": 3.2},
	"weather": [{"description": "clear sky", "icon": "01d"}]
}`

func testLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", io.Discard)
}

func newOpenWeatherMapTest(t *testing.T, handler http.HandlerFunc) (*OpenWeatherMapRepository, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	repo, err := NewOpenWeatherMapRepository("test-key", testLogger(), server.Client(), WithBaseURL(server.URL))
	require.NoError(t, err)
	return repo, &hits
}

func TestNewOpenWeatherMapRepository_RequiresKey(t *testing.T) {
	_, err := NewOpenWeatherMapRepository("  ", testLogger(), http.DefaultClient)
	assert.Error(t, err)
}

func TestOpenWeatherMapRepository_FetchCurrent(t *testing.T) {
	repo, hits := newOpenWeatherMapTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "New York", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(parisResponse))
	})

	record, err := repo.FetchCurrent(context.Background(), "  New York ")
	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load())

	assert.Equal(t, "Paris", record.Name)
	assert.Equal(t, "FR", record.Country)
	assert.Equal(t, "Paris, FR", record.Location())
	assert.InDelta(t, 18.4, record.Temperature, 1e-9)
	assert.InDelta(t, 60, record.Humidity, 1e-9)
	assert.InDelta(t, 3.2, record.WindSpeed, 1e-9)
	assert.Equal(t, "clear sky", record.Description)
	assert.Equal(t, "01d", record.Icon)
	assert.Equal(t, "openweathermap", record.Source)
}

func TestOpenWeatherMapRepository_EmptyCity(t *testing.T) {
	repo, hits := newOpenWeatherMapTest(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := repo.FetchCurrent(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyCity)
	assert.Zero(t, hits.Load())
}

func TestOpenWeatherMapRepository_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, ErrCityNotFound},
		{"empty weather", http.StatusOK, `{"name":"Paris","weather":[]}`, ErrNoConditions},
		{"missing weather", http.StatusOK, `{"name":"Paris"}`, ErrNoConditions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := newOpenWeatherMapTest(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := repo.FetchCurrent(context.Background(), "Paris")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenWeatherMapRepository_StatusErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusBadGateway} {
		repo, _ := newOpenWeatherMapTest(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := repo.FetchCurrent(context.Background(), "Paris")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, status, statusErr.StatusCode)
		assert.NotErrorIs(t, err, ErrCityNotFound)
	}
}

func TestOpenWeatherMapRepository_InvalidJSON(t *testing.T) {
	repo, _ := newOpenWeatherMapTest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("invalid json"))
	})

	_, err := repo.FetchCurrent(context.Background(), "Paris")
	assert.ErrorContains(t, err, "failed to parse JSON response")
}

func TestOpenWeatherMapRepository_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	repo, err := NewOpenWeatherMapRepository("test-key", testLogger(), http.DefaultClient, WithBaseURL(baseURL))
	require.NoError(t, err)

	_, err = repo.FetchCurrent(context.Background(), "Paris")
	assert.Error(t, err)
}

func TestOpenWeatherMapRepository_CancelledContext(t *testing.T) {
	repo, _ := newOpenWeatherMapTest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(parisResponse))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FetchCurrent(ctx, "Paris")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenWeatherMapRepository_BreakerOpensOnServerErrors(t *testing.T) {
	repo, hits := newOpenWeatherMapTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	for i := 0; i < 3; i++ {
		_, err := repo.FetchCurrent(context.Background(), "Paris")
		require.Error(t, err)
	}

	_, err := repo.FetchCurrent(context.Background(), "Paris")
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState), "got %v", err)
	assert.EqualValues(t, 3, hits.Load(), "an open breaker fails fast without a request")
}

func TestOpenWeatherMapRepository_NotFoundKeepsBreakerClosed(t *testing.T) {
	repo, hits := newOpenWeatherMapTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 5; i++ {
		_, err := repo.FetchCurrent(context.Background(), "Atlantis")
		require.ErrorIs(t, err, ErrCityNotFound)
	}
	assert.EqualValues(t, 5, hits.Load())
}
