package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"calcweather/internal/repositories"
)

// GetWeather godoc
// @Summary Get current weather
// @Description Looks up current conditions for a city and returns the rendered widget fields.
// @Description The body is a WeatherView on every status; on failure only the error panel is visible.
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(Paris)
// @Success 200 {object} models.WeatherView "Result panel visible"
// @Failure 400 {object} models.WeatherView "Empty city name"
// @Failure 404 {object} models.WeatherView "City not found"
// @Failure 502 {object} models.WeatherView "Weather provider failure"
// @Router /weather [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/weather?city=Paris"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	view, err := r.weather.Lookup(c.UserContext(), c.Query("city"))
	if err != nil {
		return c.Status(weatherStatus(err)).JSON(view)
	}

	return c.JSON(view)
}

func weatherStatus(err error) int {
	switch {
	case errors.Is(err, repositories.ErrEmptyCity):
		return fiber.StatusBadRequest
	case errors.Is(err, repositories.ErrCityNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusBadGateway
}
