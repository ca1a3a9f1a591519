package calc

import (
	"fmt"
	"math"
	"strings"
)

// AngleMode selects how trigonometric arguments and results are interpreted.
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	if m == Radians {
		return "RAD"
	}
	return "DEG"
}

// ParseAngleMode accepts DEG/RAD and their long forms, case insensitive.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEG", "DEGREE", "DEGREES":
		return Degrees, nil
	case "RAD", "RADIAN", "RADIANS":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("unknown angle mode %q", s)
}

func toRadians(x float64) float64   { return x * math.Pi / 180 }
func fromRadians(x float64) float64 { return x * 180 / math.Pi }

// forward converts the argument of sin/cos/tan into radians.
func (m AngleMode) forward(x float64) float64 {
	if m == Degrees {
		return toRadians(x)
	}
	return x
}

// inverse converts the radian result of asin/acos/atan into the mode's unit.
func (m AngleMode) inverse(x float64) float64 {
	if m == Degrees {
		return fromRadians(x)
	}
	return x
}
