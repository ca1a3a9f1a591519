// Package calc evaluates calculator input strings.
//
// Input is normalized (display glyphs such as × ÷ π become operators and
// names), parsed by a recursive-descent parser and evaluated over a fixed
// table of functions and constants. Nothing outside that table can be
// referenced.
package calc

import "math"

// Expression is a compiled calculator expression.
type Expression struct {
	source string
	root   node
}

// Compile normalizes and parses expr.
func Compile(expr string) (*Expression, error) {
	toks, err := tokenize(normalize(expr))
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}

	return &Expression{source: expr, root: root}, nil
}

func (e *Expression) String() string { return e.source }

// Eval computes the expression under the given angle mode.
func (e *Expression) Eval(mode AngleMode) (float64, error) {
	return e.root.eval(mode)
}

// Evaluate compiles and evaluates expr, folding every failure into NaN.
func Evaluate(expr string, mode AngleMode) float64 {
	e, err := Compile(expr)
	if err != nil {
		return math.NaN()
	}
	v, err := e.Eval(mode)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Calculate evaluates expr and formats the result for display.
// Empty input yields an empty display.
func Calculate(expr string, mode AngleMode, precision int) string {
	if expr == "" {
		return ""
	}
	return Format(Evaluate(expr, mode), precision)
}
