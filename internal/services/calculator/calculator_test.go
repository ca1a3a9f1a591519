package calculator_test

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcweather/internal/calc"
	"calcweather/internal/services/calculator"
	"calcweather/pkg/logger"
)

func newService(t *testing.T, ttl time.Duration) *calculator.Service {
	t.Helper()
	l := logger.NewZapLogger("test-app", io.Discard)
	return calculator.NewService(calculator.Config{
		AngleMode:  calc.Degrees,
		Precision:  12,
		SessionTTL: ttl,
	}, l)
}

func TestService_Evaluate(t *testing.T) {
	svc := newService(t, 0)

	res := svc.Evaluate("2^10", calc.Degrees, 12)
	assert.Equal(t, "1024", res.Display)
	assert.Equal(t, "2^10", res.Expression)
	assert.Equal(t, "DEG", res.AngleMode)
	assert.Equal(t, 12, res.Precision)

	assert.Equal(t, "1", svc.Evaluate("sin(π/2)", calc.Radians, 12).Display)
	assert.Equal(t, "0.333333", svc.Evaluate("1/3", calc.Degrees, 6).Display)
	assert.Equal(t, "NaN", svc.Evaluate("sin(", calc.Degrees, 12).Display)
}

func TestService_EvaluateLogsReason(t *testing.T) {
	var buf bytes.Buffer
	svc := calculator.NewService(calculator.Config{AngleMode: calc.Degrees, Precision: 12},
		logger.NewZapLogger("test-app", &buf))

	res := svc.Evaluate("sqrt(4)!", calc.Degrees, 12)
	assert.Equal(t, "NaN", res.Display)

	entry := map[string]any{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "exactly one log entry")
	assert.Equal(t, "expression did not evaluate", entry["msg"])
	assert.Contains(t, entry["reason"], "syntax error at 7")

	buf.Reset()
	assert.Equal(t, "", svc.Evaluate("", calc.Degrees, 12).Display)
	assert.Equal(t, "4", svc.Evaluate("2+2", calc.Degrees, 0).Display)
	assert.Zero(t, buf.Len())
}

func TestService_Settings(t *testing.T) {
	svc := newService(t, 0)

	mode, precision, err := svc.Settings("", 0)
	require.NoError(t, err)
	assert.Equal(t, calc.Degrees, mode)
	assert.Equal(t, 12, precision)

	mode, precision, err = svc.Settings("rad", 6)
	require.NoError(t, err)
	assert.Equal(t, calc.Radians, mode)
	assert.Equal(t, 6, precision)

	_, _, err = svc.Settings("gradians", 6)
	assert.Error(t, err)

	_, _, err = svc.Settings("", 101)
	assert.Error(t, err)

	_, _, err = svc.Settings("", -1)
	assert.Error(t, err)
}

func TestService_SessionLifecycle(t *testing.T) {
	svc := newService(t, 0)

	view := svc.NewSession(calc.Degrees, 12)
	require.NotEmpty(t, view.ID)
	assert.Equal(t, string(calculator.StateCleared), view.State)

	for _, k := range []string{"2", "+", "2"} {
		_, err := svc.Press(view.ID, k)
		require.NoError(t, err)
	}

	got, err := svc.Press(view.ID, calculator.KeyEquals)
	require.NoError(t, err)
	assert.Equal(t, "4", got.Display)

	got, err = svc.Press(view.ID, calculator.KeyEquals)
	require.NoError(t, err)
	assert.Equal(t, "4", got.Display)

	got, handled, err := svc.KeyDown(view.ID, "Backspace")
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "", got.Buffer)

	_, handled, err = svc.KeyDown(view.ID, "F5")
	require.NoError(t, err)
	assert.False(t, handled)

	got, err = svc.Configure(view.ID, calc.Radians, 5)
	require.NoError(t, err)
	assert.Equal(t, "RAD", got.AngleMode)
	assert.Equal(t, 5, got.Precision)

	got, err = svc.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)

	require.NoError(t, svc.Delete(view.ID))
	_, err = svc.Get(view.ID)
	assert.ErrorIs(t, err, calculator.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Delete(view.ID), calculator.ErrSessionNotFound)

	_, err = svc.Press("missing", "1")
	assert.ErrorIs(t, err, calculator.ErrSessionNotFound)
}

func TestService_SessionsAreIsolated(t *testing.T) {
	svc := newService(t, 0)

	a := svc.NewSession(calc.Degrees, 12)
	b := svc.NewSession(calc.Radians, 12)
	require.NotEqual(t, a.ID, b.ID)

	_, err := svc.Press(a.ID, "7")
	require.NoError(t, err)

	got, err := svc.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Buffer)
}

func TestService_ConcurrentPresses(t *testing.T) {
	svc := newService(t, 0)
	view := svc.NewSession(calc.Degrees, 12)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Press(view.ID, "1")
		}()
	}
	wg.Wait()

	got, err := svc.Get(view.ID)
	require.NoError(t, err)
	assert.Len(t, got.Buffer, 50)
}

func TestService_Sweeper(t *testing.T) {
	svc := newService(t, time.Hour)
	require.NoError(t, svc.StartSweeper())
	svc.Stop()
	svc.Stop()

	disabled := newService(t, 0)
	require.NoError(t, disabled.StartSweeper())
	disabled.Stop()
}

func TestService_SweeperRejectsBadSchedule(t *testing.T) {
	l := logger.NewZapLogger("test-app", io.Discard)
	svc := calculator.NewService(calculator.Config{
		SessionTTL: time.Minute,
		SweepSpec:  "not a schedule",
	}, l)

	assert.Error(t, svc.StartSweeper())
}
