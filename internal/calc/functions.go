package calc

import "math"

type function struct {
	name  string
	arity int
	fn    func(mode AngleMode, args []float64) float64
}

func unary(f func(float64) float64) func(AngleMode, []float64) float64 {
	return func(_ AngleMode, args []float64) float64 { return f(args[0]) }
}

// functions is the complete set of callable names. log is base 10, ln is natural.
var functions = map[string]*function{
	"sin": {name: "sin", arity: 1, fn: func(m AngleMode, a []float64) float64 { return math.Sin(m.forward(a[0])) }},
	"cos": {name: "cos", arity: 1, fn: func(m AngleMode, a []float64) float64 { return math.Cos(m.forward(a[0])) }},
	"tan": {name: "tan", arity: 1, fn: func(m AngleMode, a []float64) float64 { return math.Tan(m.forward(a[0])) }},

	"asin": {name: "asin", arity: 1, fn: func(m AngleMode, a []float64) float64 { return m.inverse(math.Asin(a[0])) }},
	"acos": {name: "acos", arity: 1, fn: func(m AngleMode, a []float64) float64 { return m.inverse(math.Acos(a[0])) }},
	"atan": {name: "atan", arity: 1, fn: func(m AngleMode, a []float64) float64 { return m.inverse(math.Atan(a[0])) }},

	"log":   {name: "log10", arity: 1, fn: unary(math.Log10)},
	"log10": {name: "log10", arity: 1, fn: unary(math.Log10)},
	"ln":    {name: "ln", arity: 1, fn: unary(math.Log)},
	"sqrt":  {name: "sqrt", arity: 1, fn: unary(math.Sqrt)},
	"exp":   {name: "exp", arity: 1, fn: unary(math.Exp)},
	"abs":   {name: "abs", arity: 1, fn: unary(math.Abs)},
	"fact":  {name: "fact", arity: 1, fn: unary(Factorial)},
	"pow":   {name: "pow", arity: 2, fn: func(_ AngleMode, a []float64) float64 { return math.Pow(a[0], a[1]) }},
}

var constants = map[string]float64{
	"PI": math.Pi,
	"E":  math.E,
	"e":  math.E,
}

// Factorial truncates n and multiplies out n!. Negative or NaN operands give NaN.
func Factorial(n float64) float64 {
	if math.IsNaN(n) || n < 0 {
		return math.NaN()
	}
	n = math.Floor(n)
	// 171! overflows float64
	if n > 170 {
		return math.Inf(1)
	}
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
	}
	return r
}
