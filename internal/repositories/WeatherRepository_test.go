package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcweather/config"
)

func TestInitWeatherRepository(t *testing.T) {
	cfg := config.Defaults()
	cfg.Weather.APIKey = "test-key"

	repo, err := InitWeatherRepository(cfg, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "openweathermap", repo.Name())

	cfg.Weather.Provider = config.ProviderOpenMeteo
	cfg.Weather.APIKey = ""
	repo, err = InitWeatherRepository(cfg, testLogger())
	require.NoError(t, err)
	assert.Equal(t, "open-meteo", repo.Name())

	cfg.Weather.Provider = config.ProviderOpenWeatherMap
	_, err = InitWeatherRepository(cfg, testLogger())
	assert.Error(t, err, "openweathermap needs a key")

	cfg.Weather.Provider = "weatherstack"
	_, err = InitWeatherRepository(cfg, testLogger())
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	repo := NewOpenMeteoRepository(testLogger(), nil,
		WithBaseURL("http://localhost:1234/"),
		WithGeocodingURL(""),
	)
	assert.Equal(t, "http://localhost:1234/v1/forecast", repo.forecastURL)
	assert.Equal(t, OpenMeteoGeocodingURL+"/v1/search", repo.geocodingURL)
}
