package repositories

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"calcweather/internal/models"
	"calcweather/pkg/logger"
)

const (
	OpenMeteoBaseURL      = "https://api.open-meteo.com"
	OpenMeteoGeocodingURL = "https://geocoding-api.open-meteo.com"

	openMeteoForecastPath = "/v1/forecast"
	openMeteoSearchPath   = "/v1/search"
	openMeteoCurrent      = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code,is_day"
)

// OpenMeteoRepository needs no API key. It geocodes the city first and then
// asks for current conditions at the first match.
type OpenMeteoRepository struct {
	forecastURL  string
	geocodingURL string
	upstream     *upstream
	l            *logger.Logger
}

func NewOpenMeteoRepository(l *logger.Logger, httpClient HTTPClient, opts ...Option) *OpenMeteoRepository {
	o := applyOptions(options{
		baseURL:        OpenMeteoBaseURL,
		geocodingURL:   OpenMeteoGeocodingURL,
		breakerTimeout: defaultBreakerTimeout,
	}, opts)

	r := &OpenMeteoRepository{
		forecastURL:  joinURL(o.baseURL, openMeteoForecastPath),
		geocodingURL: joinURL(o.geocodingURL, openMeteoSearchPath),
		l:            l,
	}
	r.upstream = newUpstream(r.Name(), httpClient, o.breakerTimeout, l)

	return r
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

type OpenMeteoPlace struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type OpenMeteoGeocodingResponse struct {
	Results []OpenMeteoPlace `json:"results"`
}

type OpenMeteoCurrent struct {
	Temperature2m      float64 `json:"temperature_2m"`
	RelativeHumidity2m float64 `json:"relative_humidity_2m"`
	WindSpeed10m       float64 `json:"wind_speed_10m"`
	WeatherCode        *int    `json:"weather_code"`
	IsDay              int     `json:"is_day"`
}

type OpenMeteoResponse struct {
	Current *OpenMeteoCurrent `json:"current"`
}

func (o *OpenMeteoRepository) FetchCurrent(ctx context.Context, city string) (models.WeatherRecord, error) {
	record := models.WeatherRecord{Source: o.Name()}

	city = strings.TrimSpace(city)
	if city == "" {
		return record, ErrEmptyCity
	}

	place, err := o.geocode(ctx, city)
	if err != nil {
		return record, err
	}

	o.l.Info("making openmeteo API request", map[string]any{
		"city": place.Name,
		"lat":  place.Latitude,
		"lon":  place.Longitude,
	})

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(place.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(place.Longitude, 'f', -1, 64))
	query.Set("current", openMeteoCurrent)
	query.Set("wind_speed_unit", "ms")

	var response OpenMeteoResponse
	if err := o.upstream.getJSON(ctx, o.forecastURL, query, &response); err != nil {
		return record, err
	}

	// Validate that we have current data
	if response.Current == nil || response.Current.WeatherCode == nil {
		return record, ErrNoConditions
	}

	current := response.Current
	description, icon := describeWMO(*current.WeatherCode, current.IsDay == 1)

	record.Name = place.Name
	record.Country = place.CountryCode
	record.Temperature = current.Temperature2m
	record.Humidity = current.RelativeHumidity2m
	record.WindSpeed = current.WindSpeed10m
	record.Description = description
	record.Icon = icon

	return record, nil
}

func (o *OpenMeteoRepository) geocode(ctx context.Context, city string) (OpenMeteoPlace, error) {
	o.l.Info("making openmeteo geocoding request", map[string]any{
		"city": city,
	})

	query := url.Values{}
	query.Set("name", city)
	query.Set("count", "1")
	query.Set("language", "en")
	query.Set("format", "json")

	var response OpenMeteoGeocodingResponse
	if err := o.upstream.getJSON(ctx, o.geocodingURL, query, &response); err != nil {
		return OpenMeteoPlace{}, err
	}
	if len(response.Results) == 0 {
		return OpenMeteoPlace{}, ErrCityNotFound
	}

	return response.Results[0], nil
}

type wmoCondition struct {
	description string
	icon        string
}

// WMO weather interpretation codes mapped onto OpenWeatherMap icon families.
var wmoConditions = map[int]wmoCondition{
	0:  {"clear sky", "01"},
	1:  {"mainly clear", "02"},
	2:  {"partly cloudy", "03"},
	3:  {"overcast", "04"},
	45: {"fog", "50"},
	48: {"depositing rime fog", "50"},
	51: {"light drizzle", "09"},
	53: {"moderate drizzle", "09"},
	55: {"dense drizzle", "09"},
	56: {"light freezing drizzle", "09"},
	57: {"dense freezing drizzle", "09"},
	61: {"slight rain", "10"},
	63: {"moderate rain", "10"},
	65: {"heavy rain", "10"},
	66: {"light freezing rain", "13"},
	67: {"heavy freezing rain", "13"},
	71: {"slight snow fall", "13"},
	73: {"moderate snow fall", "13"},
	75: {"heavy snow fall", "13"},
	77: {"snow grains", "13"},
	80: {"slight rain showers", "09"},
	81: {"moderate rain showers", "09"},
	82: {"violent rain showers", "09"},
	85: {"slight snow showers", "13"},
	86: {"heavy snow showers", "13"},
	95: {"thunderstorm", "11"},
	96: {"thunderstorm with slight hail", "11"},
	99: {"thunderstorm with heavy hail", "11"},
}

func describeWMO(code int, isDay bool) (description, icon string) {
	c, ok := wmoConditions[code]
	if !ok {
		c = wmoCondition{"unknown", "03"}
	}

	suffix := "n"
	if isDay {
		suffix = "d"
	}
	return c.description, c.icon + suffix
}
