package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"calcweather/internal/calc"
	"calcweather/internal/models"
	"calcweather/pkg/logger"
)

const defaultSweepSpec = "@every 1m"

// Config carries the defaults applied to new sessions and one-shot evaluations.
type Config struct {
	AngleMode  calc.AngleMode
	Precision  int
	SessionTTL time.Duration
	SweepSpec  string
}

// Service exposes the evaluator and the per-session calculator state machine.
type Service struct {
	cfg   Config
	store *Store
	cron  *cron.Cron
	l     *logger.Logger
}

func NewService(cfg Config, l *logger.Logger) *Service {
	cfg.Precision = calc.ClampPrecision(cfg.Precision)
	if cfg.SweepSpec == "" {
		cfg.SweepSpec = defaultSweepSpec
	}

	return &Service{
		cfg:   cfg,
		store: NewStore(cfg.SessionTTL),
		l:     l,
	}
}

// Settings resolves an optional angle mode name and precision against the defaults.
func (s *Service) Settings(mode string, precision int) (calc.AngleMode, int, error) {
	m := s.cfg.AngleMode
	if mode != "" {
		parsed, err := calc.ParseAngleMode(mode)
		if err != nil {
			return m, 0, err
		}
		m = parsed
	}

	if precision == 0 {
		precision = s.cfg.Precision
	}
	if precision < calc.MinPrecision || precision > calc.MaxPrecision {
		return m, 0, fmt.Errorf("precision must be between %d and %d", calc.MinPrecision, calc.MaxPrecision)
	}

	return m, precision, nil
}

// Evaluate runs a stateless evaluation and formats the result. Invalid input
// renders as NaN; the reason is only logged.
func (s *Service) Evaluate(expr string, mode calc.AngleMode, precision int) models.Evaluation {
	precision = calc.ClampPrecision(precision)
	res := models.Evaluation{
		Expression: expr,
		AngleMode:  mode.String(),
		Precision:  precision,
	}
	if expr == "" {
		return res
	}

	v, err := evaluate(expr, mode)
	if err != nil {
		s.l.Debug("expression did not evaluate", map[string]any{
			"expression": expr,
			"mode":       mode.String(),
			"reason":     err.Error(),
		})
	}
	res.Display = calc.Format(v, precision)

	return res
}

// evaluate compiles expr once and returns NaN together with the failure.
func evaluate(expr string, mode calc.AngleMode) (float64, error) {
	e, err := calc.Compile(expr)
	if err != nil {
		return math.NaN(), err
	}
	v, err := e.Eval(mode)
	if err != nil {
		return math.NaN(), err
	}
	return v, nil
}

func (s *Service) NewSession(mode calc.AngleMode, precision int) models.CalculatorView {
	sess := NewSession(uuid.NewString(), mode, precision)
	view := s.store.Put(sess)

	s.l.Info("calculator session created", map[string]any{
		"session":   view.ID,
		"angleMode": view.AngleMode,
		"precision": view.Precision,
	})

	return view
}

func (s *Service) Get(id string) (models.CalculatorView, error) {
	return s.store.Get(id)
}

func (s *Service) Delete(id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.l.Info("calculator session deleted", map[string]any{"session": id})
	return nil
}

func (s *Service) Configure(id string, mode calc.AngleMode, precision int) (models.CalculatorView, error) {
	return s.store.Update(id, func(sess *Session) {
		sess.Configure(mode, precision)
	})
}

// Press applies a button press to the session.
func (s *Service) Press(id, key string) (models.CalculatorView, error) {
	view, err := s.store.Update(id, func(sess *Session) {
		sess.Press(key)
	})
	if err != nil {
		return view, err
	}

	if key == KeyEquals && view.Display == ErrorDisplay {
		s.l.Debug("session evaluation failed", map[string]any{"session": id})
	}
	return view, nil
}

// KeyDown applies a keyboard key; handled is false for keys the calculator ignores.
func (s *Service) KeyDown(id, key string) (view models.CalculatorView, handled bool, err error) {
	view, err = s.store.Update(id, func(sess *Session) {
		handled = sess.KeyDown(key)
	})
	return view, handled, err
}

// StartSweeper schedules removal of idle sessions.
func (s *Service) StartSweeper() error {
	if s.cfg.SessionTTL <= 0 {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.SweepSpec, s.sweep); err != nil {
		return fmt.Errorf("failed to schedule session sweeper: %w", err)
	}
	c.Start()
	s.cron = c

	s.l.Info("calculator session sweeper started", map[string]any{
		"schedule": s.cfg.SweepSpec,
		"ttl":      s.cfg.SessionTTL.String(),
	})
	return nil
}

func (s *Service) sweep() {
	if n := s.store.Sweep(time.Now()); n > 0 {
		s.l.Info("expired calculator sessions removed", map[string]any{
			"removed":   n,
			"remaining": s.store.Len(),
		})
	}
}

// Stop waits for a running sweep to finish.
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}
