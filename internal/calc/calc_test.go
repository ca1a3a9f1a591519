package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcweather/internal/calc"
)

const tolerance = 1e-9

func TestFactorial(t *testing.T) {
	want := 1.0
	for n := 0; n <= 20; n++ {
		if n > 1 {
			want *= float64(n)
		}
		assert.Equal(t, want, calc.Factorial(float64(n)), "factorial(%d)", n)
	}

	assert.Equal(t, 120.0, calc.Factorial(5))
	assert.Equal(t, 120.0, calc.Factorial(5.9), "operand is truncated")
	assert.True(t, math.IsNaN(calc.Factorial(-3)))
	assert.True(t, math.IsNaN(calc.Factorial(-0.5)))
	assert.True(t, math.IsNaN(calc.Factorial(math.NaN())))
	assert.True(t, math.IsInf(calc.Factorial(171), 1))
}

func TestEvaluate_Arithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"10-4-3", 3},
		{"8/4/2", 1},
		{"2^10", 1024},
		{"2**10", 1024},
		{"2^3^2", 512},
		{"-2^2", -4},
		{"2^-1", 0.5},
		{"-(3)", -3},
		{"+4", 4},
		{"6×7", 42},
		{"9÷3", 3},
		{" 1 + 1 ", 2},
		{".5+.5", 1},
		{"1.5e3", 1500},
		{"2.5e-1*4", 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.Evaluate(tt.expr, calc.Radians), tolerance)
		})
	}
}

func TestEvaluate_PercentAndFactorial(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"50%", 0.5},
		{"12.5%", 0.125},
		{"200*10%", 20},
		{"5!", 120},
		{"0!", 1},
		{"(2+1)!", 6},
		{"((1+2))!", 6},
		{"2^3!", 64},
		{"3!+1", 7},
		{"fact(4)", 24},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.Evaluate(tt.expr, calc.Radians), tolerance)
		})
	}

	assert.True(t, math.IsNaN(calc.Evaluate("(0-3)!", calc.Radians)))
}

func TestEvaluate_ConstantsAndFunctions(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"π", math.Pi},
		{"PI", math.Pi},
		{"e", math.E},
		{"E", math.E},
		{"2*e", 2 * math.E},
		{"log(1000)", 3},
		{"log10(100)", 2},
		{"ln(e)", 1},
		{"sqrt(16)", 4},
		{"exp(0)", 1},
		{"abs(-7)", 7},
		{"pow(2,5)", 32},
		{"sqrt(abs(-81))", 9},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.InDelta(t, tt.want, calc.Evaluate(tt.expr, calc.Radians), tolerance)
		})
	}
}

func TestEvaluate_AngleModes(t *testing.T) {
	assert.InDelta(t, 1, calc.Evaluate("sin(90)", calc.Degrees), tolerance)
	assert.InDelta(t, 1, calc.Evaluate("sin(π/2)", calc.Radians), tolerance)
	assert.InDelta(t, -1, calc.Evaluate("cos(180)", calc.Degrees), tolerance)
	assert.InDelta(t, 1, calc.Evaluate("tan(45)", calc.Degrees), tolerance)

	assert.InDelta(t, 90, calc.Evaluate("asin(1)", calc.Degrees), tolerance)
	assert.InDelta(t, math.Pi/2, calc.Evaluate("asin(1)", calc.Radians), tolerance)
	assert.InDelta(t, 60, calc.Evaluate("acos(0.5)", calc.Degrees), tolerance)
	assert.InDelta(t, 45, calc.Evaluate("atan(1)", calc.Degrees), tolerance)
}

func TestEvaluate_FactorialAfterCall(t *testing.T) {
	for _, expr := range []string{"sqrt(4)!", "asin(1)!", "sin(30)!", "fact(3)!", "pow(2,3)!", "sqrt(4)%"} {
		assert.True(t, math.IsNaN(calc.Evaluate(expr, calc.Degrees)), expr)
		assert.Equal(t, "NaN", calc.Calculate(expr, calc.Radians, 6), expr)
	}

	_, err := calc.Compile("sqrt(4)!")
	var syntaxErr *calc.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 7, syntaxErr.Pos)

	// factorial inside the argument is still fine
	assert.InDelta(t, 0.5, calc.Evaluate("sin(3!*5)", calc.Degrees), tolerance)
	assert.InDelta(t, math.Sqrt(24), calc.Evaluate("sqrt(4!)", calc.Radians), tolerance)
}

func TestEvaluate_SignAndFractionEdges(t *testing.T) {
	assert.InDelta(t, -4, calc.Evaluate("-2^2", calc.Radians), tolerance)
	assert.InDelta(t, 4, calc.Evaluate("(-2)^2", calc.Radians), tolerance)
	assert.InDelta(t, 0.005, calc.Evaluate(".5%", calc.Radians), tolerance)
}

func TestEvaluate_InvalidInputIsNaN(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"1+",
		"(1+2",
		"1+2)",
		"2e",
		"2π",
		"foo(1)",
		"alert",
		"x=1",
		"1;2",
		"sin",
		"sin()",
		"pow(2)",
		"sqrt(1,2)",
		"5!!",
		"5%%",
		"(5)%",
		"PI!",
		"1..2",
		"1.2.3",
		"2#3",
		"pow(1,2)!",
	}

	for _, expr := range invalid {
		t.Run(expr, func(t *testing.T) {
			assert.True(t, math.IsNaN(calc.Evaluate(expr, calc.Degrees)))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	_, err := calc.Compile("1 + foo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, calc.ErrUnknownIdentifier))

	_, err = calc.Compile("1 +")
	var syntaxErr *calc.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 3, syntaxErr.Pos)

	_, err = calc.Compile("2 $ 3")
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 2, syntaxErr.Pos)

	e, err := calc.Compile("pow(2)")
	require.NoError(t, err)
	_, err = e.Eval(calc.Radians)
	assert.ErrorIs(t, err, calc.ErrArity)
}

func TestCompile_Reusable(t *testing.T) {
	e, err := calc.Compile("asin(1)")
	require.NoError(t, err)
	assert.Equal(t, "asin(1)", e.String())

	deg, err := e.Eval(calc.Degrees)
	require.NoError(t, err)
	rad, err := e.Eval(calc.Radians)
	require.NoError(t, err)

	assert.InDelta(t, 90, deg, tolerance)
	assert.InDelta(t, math.Pi/2, rad, tolerance)
}

func TestCalculate(t *testing.T) {
	assert.Equal(t, "", calc.Calculate("", calc.Degrees, 12))
	assert.Equal(t, "1024", calc.Calculate("2^10", calc.Degrees, 12))
	assert.Equal(t, "0.5", calc.Calculate("50%", calc.Degrees, 12))
	assert.Equal(t, "1", calc.Calculate("sin(90)", calc.Degrees, 12))
	assert.Equal(t, "0", calc.Calculate("sin(180)", calc.Degrees, 12))
	assert.Equal(t, "0.333333", calc.Calculate("1/3", calc.Degrees, 6))
	assert.Equal(t, "Infinity", calc.Calculate("1/0", calc.Degrees, 12))
	assert.Equal(t, "-Infinity", calc.Calculate("-1/0", calc.Degrees, 12))
	assert.Equal(t, "NaN", calc.Calculate("2+", calc.Degrees, 12))

	// chaining: a formatted result is valid input again
	first := calc.Calculate("2+2", calc.Degrees, 12)
	assert.Equal(t, "4", first)
	assert.Equal(t, "4", calc.Calculate(first, calc.Degrees, 12))

	small := calc.Calculate("0.000000123456", calc.Degrees, 3)
	assert.Equal(t, "1.23e-7", small)
	assert.Equal(t, "1.23e-7", calc.Calculate(small+"*1", calc.Degrees, 3))
}

func TestParseAngleMode(t *testing.T) {
	tests := []struct {
		in   string
		want calc.AngleMode
	}{
		{"DEG", calc.Degrees},
		{"deg", calc.Degrees},
		{"Degrees", calc.Degrees},
		{"RAD", calc.Radians},
		{" rad ", calc.Radians},
		{"radians", calc.Radians},
	}
	for _, tt := range tests {
		got, err := calc.ParseAngleMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := calc.ParseAngleMode("grad")
	assert.Error(t, err)

	assert.Equal(t, "DEG", calc.Degrees.String())
	assert.Equal(t, "RAD", calc.Radians.String())
}
