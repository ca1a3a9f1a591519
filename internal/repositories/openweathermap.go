package repositories

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"calcweather/internal/models"
	"calcweather/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org"
	openWeatherMapPath    = "/data/2.5/weather"
)

type OpenWeatherMapRepository struct {
	APIKey   string
	endpoint string
	upstream *upstream
	l        *logger.Logger
}

func NewOpenWeatherMapRepository(
	apiKey string,
	l *logger.Logger,
	httpClient HTTPClient,
	opts ...Option,
) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	o := applyOptions(options{
		baseURL:        OpenWeatherMapBaseURL,
		breakerTimeout: defaultBreakerTimeout,
	}, opts)

	r := &OpenWeatherMapRepository{
		APIKey:   apiKey,
		endpoint: joinURL(o.baseURL, openWeatherMapPath),
		l:        l,
	}
	r.upstream = newUpstream(r.Name(), httpClient, o.breakerTimeout, l)

	return r, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

type OpenWeatherMapResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// FetchCurrent issues one GET for the city's current conditions in metric units.
func (w *OpenWeatherMapRepository) FetchCurrent(ctx context.Context, city string) (models.WeatherRecord, error) {
	record := models.WeatherRecord{Source: w.Name()}

	city = strings.TrimSpace(city)
	if city == "" {
		return record, ErrEmptyCity
	}

	w.l.Info("making openweathermap API request", map[string]any{
		"city": city,
	})

	query := url.Values{}
	query.Set("q", city)
	query.Set("units", "metric")
	query.Set("appid", w.APIKey)

	var response OpenWeatherMapResponse
	if err := w.upstream.getJSON(ctx, w.endpoint, query, &response); err != nil {
		return record, err
	}

	if len(response.Weather) == 0 {
		return record, ErrNoConditions
	}

	record.Name = response.Name
	record.Country = response.Sys.Country
	record.Temperature = response.Main.Temp
	record.Humidity = response.Main.Humidity
	record.WindSpeed = response.Wind.Speed
	record.Description = response.Weather[0].Description
	record.Icon = response.Weather[0].Icon

	w.l.Debug("parsed API response", map[string]any{
		"location": record.Location(),
		"icon":     record.Icon,
	})

	return record, nil
}
