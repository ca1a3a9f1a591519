package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "calcweather/docs"
	"calcweather/internal/services/calculator"
	"calcweather/internal/services/weather"
	"calcweather/pkg/logger"
)

type routes struct {
	weather    *weather.WeatherService
	calculator *calculator.Service
	validate   *validator.Validate
	l          *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	calculatorService *calculator.Service,
	l *logger.Logger,
) {
	r := &routes{
		weather:    weatherService,
		calculator: calculatorService,
		validate:   validator.New(),
		l:          l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes
	app.Get("/weather", r.handleWeatherCall)

	app.Post("/calculator/evaluate", r.handleEvaluate)
	app.Post("/calculator/sessions", r.handleCreateSession)
	app.Get("/calculator/sessions/:id", r.handleGetSession)
	app.Patch("/calculator/sessions/:id", r.handleConfigureSession)
	app.Delete("/calculator/sessions/:id", r.handleDeleteSession)
	app.Post("/calculator/sessions/:id/press", r.handlePress)
	app.Post("/calculator/sessions/:id/keydown", r.handleKeyDown)
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"calculator session not found"`
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}

// bind decodes an optional JSON body into req and validates it.
func (r *routes) bind(c *fiber.Ctx, req any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return err
		}
	}
	return r.validate.Struct(req)
}
