package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"calcweather/config"
	"calcweather/internal/models"
	"calcweather/pkg/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	// ErrCityNotFound is returned when the provider does not know the city.
	ErrCityNotFound = errors.New("city not found")
	ErrNoConditions = errors.New("no weather conditions available")
	// ErrEmptyCity is returned before any request is made.
	ErrEmptyCity    = errors.New("city name is empty")
)

// StatusError reports a non-2xx upstream response other than 404.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error (status %d): %s", e.StatusCode, e.Status)
}

type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, city string) (models.WeatherRecord, error)
}

type options struct {
	baseURL        string
	geocodingURL   string
	breakerTimeout time.Duration
}

type Option func(*options)

func WithBaseURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.baseURL = u
		}
	}
}

func WithGeocodingURL(u string) Option {
	return func(o *options) {
		if u != "" {
			o.geocodingURL = u
		}
	}
}

func WithBreakerTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.breakerTimeout = d
		}
	}
}

func applyOptions(o options, opts []Option) options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func InitWeatherRepository(cfg *config.Config, l *logger.Logger) (WeatherRepository, error) {
	httpClient := &http.Client{Timeout: cfg.Weather.Timeout}
	opts := []Option{
		WithBaseURL(cfg.Weather.BaseURL),
		WithGeocodingURL(cfg.Weather.GeocodingURL),
		WithBreakerTimeout(cfg.Weather.BreakerTimeout),
	}

	switch cfg.Weather.Provider {
	case config.ProviderOpenMeteo:
		return NewOpenMeteoRepository(l, httpClient, opts...), nil
	case config.ProviderOpenWeatherMap, "":
		return NewOpenWeatherMapRepository(cfg.Weather.APIKey, l, httpClient, opts...)
		// Add more cases for new providers to extend the app
	}

	return nil, fmt.Errorf("unknown weather provider %q", cfg.Weather.Provider)
}
