package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"calcweather/internal/models"
	"calcweather/internal/services/calculator"
)

// EvaluateRequest is a one-shot evaluation.
type EvaluateRequest struct {
	Expression string `json:"expression" validate:"max=1024" example:"sin(90)+2^10"`
	AngleMode  string `json:"angle_mode" validate:"max=8" example:"DEG"`
	Precision  int    `json:"precision" validate:"omitempty,min=1,max=100" example:"12"`
}

// SessionSettingsRequest holds optional settings; empty fields keep the current value.
type SessionSettingsRequest struct {
	AngleMode string `json:"angle_mode" validate:"max=8" example:"RAD"`
	Precision int    `json:"precision" validate:"omitempty,min=1,max=100" example:"6"`
}

// KeyRequest carries one button label or keyboard key.
type KeyRequest struct {
	Key string `json:"key" validate:"required,max=16" example:"="`
}

type KeyDownResponse struct {
	Session models.CalculatorView `json:"session"`
	Handled bool                  `json:"handled" example:"true"`
}

// EvaluateExpression godoc
// @Summary Evaluate an expression
// @Description Evaluates a calculator expression. Invalid input renders as NaN, never as an error status.
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Expression and settings"
// @Success 200 {object} models.Evaluation
// @Failure 400 {object} ErrorResponse "Invalid angle mode or precision"
// @Router /calculator/evaluate [post]
func (r *routes) handleEvaluate(c *fiber.Ctx) error {
	var req EvaluateRequest
	if err := r.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	mode, precision, err := r.calculator.Settings(req.AngleMode, req.Precision)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.JSON(r.calculator.Evaluate(req.Expression, mode, precision))
}

// CreateSession godoc
// @Summary Create a calculator session
// @Tags Calculator
// @Accept json
// @Produce json
// @Param request body SessionSettingsRequest false "Initial settings"
// @Success 201 {object} models.CalculatorView
// @Failure 400 {object} ErrorResponse
// @Router /calculator/sessions [post]
func (r *routes) handleCreateSession(c *fiber.Ctx) error {
	var req SessionSettingsRequest
	if err := r.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	mode, precision, err := r.calculator.Settings(req.AngleMode, req.Precision)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(r.calculator.NewSession(mode, precision))
}

// GetSession godoc
// @Summary Get a calculator session
// @Tags Calculator
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.CalculatorView
// @Failure 404 {object} ErrorResponse
// @Router /calculator/sessions/{id} [get]
func (r *routes) handleGetSession(c *fiber.Ctx) error {
	view, err := r.calculator.Get(c.Params("id"))
	if err != nil {
		return r.sessionError(c, err)
	}
	return c.JSON(view)
}

// ConfigureSession godoc
// @Summary Change angle mode or precision of a session
// @Tags Calculator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SessionSettingsRequest true "Settings to change"
// @Success 200 {object} models.CalculatorView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /calculator/sessions/{id} [patch]
func (r *routes) handleConfigureSession(c *fiber.Ctx) error {
	var req SessionSettingsRequest
	if err := r.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	id := c.Params("id")
	current, err := r.calculator.Get(id)
	if err != nil {
		return r.sessionError(c, err)
	}

	if req.AngleMode == "" {
		req.AngleMode = current.AngleMode
	}
	if req.Precision == 0 {
		req.Precision = current.Precision
	}

	mode, precision, err := r.calculator.Settings(req.AngleMode, req.Precision)
	if err != nil {
		return badRequest(c, err.Error())
	}

	view, err := r.calculator.Configure(id, mode, precision)
	if err != nil {
		return r.sessionError(c, err)
	}
	return c.JSON(view)
}

// DeleteSession godoc
// @Summary Delete a calculator session
// @Tags Calculator
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /calculator/sessions/{id} [delete]
func (r *routes) handleDeleteSession(c *fiber.Ctx) error {
	if err := r.calculator.Delete(c.Params("id")); err != nil {
		return r.sessionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PressButton godoc
// @Summary Press a calculator button
// @Description Applies one button label (digits, operators, Ac, DEL, =, sin, √, x², x!, 1/x, ...).
// @Tags Calculator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body KeyRequest true "Button label"
// @Success 200 {object} models.CalculatorView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /calculator/sessions/{id}/press [post]
func (r *routes) handlePress(c *fiber.Ctx) error {
	var req KeyRequest
	if err := r.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	view, err := r.calculator.Press(c.Params("id"), req.Key)
	if err != nil {
		return r.sessionError(c, err)
	}
	return c.JSON(view)
}

// KeyDown godoc
// @Summary Send a keyboard key
// @Description Digits, operators, parentheses and "." are appended, Enter evaluates, Backspace deletes. Other keys are ignored.
// @Tags Calculator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body KeyRequest true "Keyboard key"
// @Success 200 {object} KeyDownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /calculator/sessions/{id}/keydown [post]
func (r *routes) handleKeyDown(c *fiber.Ctx) error {
	var req KeyRequest
	if err := r.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	view, handled, err := r.calculator.KeyDown(c.Params("id"), req.Key)
	if err != nil {
		return r.sessionError(c, err)
	}
	return c.JSON(KeyDownResponse{Session: view, Handled: handled})
}

func (r *routes) sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, calculator.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	}

	r.l.Error(err, map[string]any{"session": c.Params("id")})
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "calculator failure"})
}
