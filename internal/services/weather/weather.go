package weather

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"calcweather/internal/models"
	"calcweather/internal/repositories"
	"calcweather/pkg/logger"
)

const iconPlaceholder = "{icon}"

// Error panel texts.
const (
	MsgEmptyCity    = "Please enter a city name"
	MsgCityNotFound = "City not found"
	MsgFetchFailed  = "Unable to fetch weather data"
)

// WeatherService represents the weather service.
type WeatherService struct {
	repo    repositories.WeatherRepository
	iconURL string
	l       *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, iconURL string, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo:    repo,
		iconURL: iconURL,
		l:       l,
	}
}

// Lookup fetches current conditions for city and renders them. The returned
// view is always usable: on failure it carries the error panel, and err
// tells the caller why.
func (s *WeatherService) Lookup(ctx context.Context, city string) (models.WeatherView, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return errorView(city, MsgEmptyCity), repositories.ErrEmptyCity
	}

	s.l.Debug("fetching current weather", map[string]any{"repo": s.repo.Name(), "city": city})

	record, err := s.repo.FetchCurrent(ctx, city)
	if err != nil {
		if errors.Is(err, repositories.ErrCityNotFound) {
			s.l.Info("city not found", map[string]any{"repo": s.repo.Name(), "city": city})
			return errorView(city, MsgCityNotFound), err
		}

		s.l.Warning("failed to fetch weather", map[string]any{"repo": s.repo.Name(), "city": city, "err": err.Error()})
		return errorView(city, MsgFetchFailed), err
	}

	s.l.Info("successfully fetched weather", map[string]any{
		"repo":     s.repo.Name(),
		"location": record.Location(),
	})

	return s.Render(city, record), nil
}

// Render maps a provider record onto the widget's display fields.
func (s *WeatherService) Render(city string, r models.WeatherRecord) models.WeatherView {
	return models.WeatherView{
		City:          city,
		Location:      r.Location(),
		Temperature:   formatTemperature(r.Temperature),
		Description:   r.Description,
		Humidity:      formatNumber(r.Humidity) + "%",
		WindSpeed:     formatNumber(r.WindSpeed) + " m/s",
		IconURL:       s.icon(r.Icon),
		ResultVisible: true,
	}
}

func (s *WeatherService) icon(code string) string {
	if code == "" {
		return ""
	}
	return strings.ReplaceAll(s.iconURL, iconPlaceholder, code)
}

func errorView(city, msg string) models.WeatherView {
	return models.WeatherView{
		City:         city,
		ErrorVisible: true,
		Error:        msg,
	}
}

// formatTemperature rounds half up, so -2.5 renders as -2.
func formatTemperature(t float64) string {
	r := math.Floor(t + 0.5)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return formatNumber(r) + "°"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
