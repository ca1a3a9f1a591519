package calculator

import (
	"math"
	"regexp"
	"time"

	"calcweather/internal/calc"
	"calcweather/internal/models"
)

// State is the position of a session in the edit/evaluate cycle.
type State string

const (
	StateEditing   State = "EDITING"
	StateEvaluated State = "EVALUATED"
	StateCleared   State = "CLEARED"
)

// ErrorDisplay is shown when an expression cannot be evaluated.
const ErrorDisplay = "Error"

// Button labels with behaviour beyond appending their own text.
const (
	KeyClear     = "Ac"
	KeyDelete    = "DEL"
	KeyEquals    = "="
	KeySqrt      = "√"
	KeySquare    = "x²"
	KeyCube      = "x³"
	KeyPower     = "x^y"
	KeyFact      = "x!"
	KeyInverse   = "1/x"
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
)

var functionKeys = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true,
	"ln": true, "log": true, "exp": true, "abs": true,
}

var appendKeys = map[string]string{
	KeySqrt:   "sqrt(",
	KeySquare: "^2",
	KeyCube:   "^3",
	KeyPower:  "^",
	KeyFact:   "!",
}

var typedKey = regexp.MustCompile(`^[0-9+\-*/().]$`)

// Session is one calculator: its input buffer, display lines and settings.
// It is not safe for concurrent use; Store serializes access.
type Session struct {
	ID         string
	buffer     []rune
	display    string
	expression string
	lastResult string
	state      State
	mode       calc.AngleMode
	precision  int
	updatedAt  time.Time
}

func NewSession(id string, mode calc.AngleMode, precision int) *Session {
	return &Session{
		ID:        id,
		state:     StateCleared,
		mode:      mode,
		precision: calc.ClampPrecision(precision),
		updatedAt: time.Now(),
	}
}

func (s *Session) Buffer() string { return string(s.buffer) }
func (s *Session) State() State    { return s.state }

// Configure changes the angle mode and precision used by later evaluations.
func (s *Session) Configure(mode calc.AngleMode, precision int) {
	s.mode = mode
	s.precision = calc.ClampPrecision(precision)
	s.touch()
}

// Press handles a calculator button.
func (s *Session) Press(key string) {
	switch {
	case key == KeyClear:
		s.Clear()
	case key == KeyDelete:
		s.Delete()
	case key == KeyEquals:
		s.Evaluate()
	case functionKeys[key]:
		s.append(key + "(")
	case appendKeys[key] != "":
		s.append(appendKeys[key])
	case key == KeyInverse:
		s.buffer = []rune("1/(" + string(s.buffer) + ")")
		s.edited()
	default:
		// digits, operators, π, e, % and anything unrecognized go in verbatim
		s.append(key)
	}
}

// KeyDown handles a keyboard key and reports whether it was recognized.
func (s *Session) KeyDown(key string) bool {
	switch {
	case typedKey.MatchString(key):
		s.append(key)
	case key == KeyEnter:
		s.Evaluate()
	case key == KeyBackspace:
		s.Delete()
	default:
		return false
	}
	return true
}

// Clear empties the buffer and both display lines.
func (s *Session) Clear() {
	s.buffer = s.buffer[:0]
	s.display = ""
	s.expression = ""
	s.state = StateCleared
	s.touch()
}

// Delete removes one trailing character; it does nothing on an empty buffer.
func (s *Session) Delete() {
	if len(s.buffer) == 0 {
		return
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
	s.edited()
}

// Evaluate computes the buffer. The formatted result becomes the next buffer
// so calculations chain; an unevaluable buffer shows Error and is reset.
func (s *Session) Evaluate() {
	input := string(s.buffer)
	defer s.touch()

	var formatted string
	if input != "" {
		v := calc.Evaluate(input, s.mode)
		if math.IsNaN(v) {
			s.buffer = s.buffer[:0]
			s.display = ErrorDisplay
			s.expression = ""
			s.state = StateCleared
			return
		}
		formatted = calc.Format(v, s.precision)
	}

	s.display = formatted
	s.expression = input + " ="
	s.lastResult = formatted
	s.buffer = []rune(formatted)
	s.state = StateEvaluated
}

func (s *Session) append(text string) {
	s.buffer = append(s.buffer, []rune(text)...)
	s.edited()
}

func (s *Session) edited() {
	s.display = string(s.buffer)
	s.expression = s.display
	s.state = StateEditing
	s.touch()
}

func (s *Session) touch() { s.updatedAt = time.Now() }

// View returns a snapshot safe to hand out of the store.
func (s *Session) View() models.CalculatorView {
	return models.CalculatorView{
		ID:         s.ID,
		Buffer:     string(s.buffer),
		Display:    s.display,
		Expression: s.expression,
		LastResult: s.lastResult,
		State:      string(s.state),
		AngleMode:  s.mode.String(),
		Precision:  s.precision,
		UpdatedAt:  s.updatedAt,
	}
}
