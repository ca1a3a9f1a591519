package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultPrecision = 12
	MinPrecision     = 1
	MaxPrecision     = 100

	integerTolerance = 1e-12
)

// trailingZeros drops ".000" entirely or the zeros after the last significant
// fractional digit, so no dangling decimal point is left behind.
var trailingZeros = regexp.MustCompile(`(?:\.0+|(\.\d+?)0+)$`)

// Format renders v for the display. Non-finite values render as NaN, Infinity
// or -Infinity; near-integers render without a fraction; everything else uses
// precision significant digits with trailing fractional zeros removed.
func Format(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if r := math.Round(v); math.Abs(r-v) < integerTolerance {
		return formatInteger(r)
	}

	s := toPrecision(v, ClampPrecision(precision))
	if strings.Contains(s, ".") {
		s = trailingZeros.ReplaceAllString(s, "$1")
	}
	return s
}

// ClampPrecision maps out-of-range precision onto the nearest valid value.
func ClampPrecision(p int) int {
	switch {
	case p < MinPrecision:
		return DefaultPrecision
	case p > MaxPrecision:
		return MaxPrecision
	}
	return p
}

func formatInteger(r float64) string {
	if r == 0 {
		return "0"
	}
	if math.Abs(r) < 1e21 {
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strconv.FormatFloat(r, 'e', -1, 64)
}

// toPrecision lays out p significant digits the way calculator displays
// expect: fixed notation unless the decimal exponent is below -6 or at least p.
func toPrecision(v float64, p int) string {
	sci := strconv.FormatFloat(v, 'e', p-1, 64)
	idx := strings.IndexByte(sci, 'e')
	mantissa, expPart := sci[:idx], sci[idx+1:]

	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return sci
	}

	if exp < -6 || exp >= p {
		sign := "+"
		if exp < 0 {
			sign = "-"
			exp = -exp
		}
		return mantissa + "e" + sign + strconv.Itoa(exp)
	}

	return strconv.FormatFloat(v, 'f', p-1-exp, 64)
}
