package groups

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmitrymomot/datakit/pkg/validator"
)

// Method names an allocation strategy.
type Method string

const (
	// MethodEvenDistribution spreads units as evenly as possible over n groups.
	MethodEvenDistribution Method = "n_dist"
	// MethodProportional sizes groups by explicit proportions.
	MethodProportional Method = "l_sizes"
)

var methods = []Method{MethodEvenDistribution, MethodProportional}

// ParseMethod validates a method name.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if err := validator.Apply(validator.InList("method", m, methods)); err != nil {
		return "", errors.Join(ErrUnknownMethod, err)
	}
	return m, nil
}

// Rounding is the rounding applied to proportional group sizes.
type Rounding string

const (
	// RoundingFloor rounds sizes down. It is the default.
	RoundingFloor Rounding = "floor"
	// RoundingRound rounds half to even.
	RoundingRound Rounding = "round"
	// RoundingCeil rounds sizes up.
	RoundingCeil Rounding = "ceil"
)

var roundings = []Rounding{RoundingFloor, RoundingRound, RoundingCeil}

// ParseRounding validates a rounding name. The empty string means floor.
func ParseRounding(s string) (Rounding, error) {
	if s == "" {
		return RoundingFloor, nil
	}
	r := Rounding(s)
	if err := validator.Apply(validator.InList("rounding", r, roundings)); err != nil {
		return "", errors.Join(ErrInvalidRounding, err)
	}
	return r, nil
}

func (r Rounding) apply(x float64) (float64, error) {
	switch r {
	case RoundingFloor, "":
		return math.Floor(x), nil
	case RoundingRound:
		return math.RoundToEven(x), nil
	case RoundingCeil:
		return math.Ceil(x), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRounding, string(r))
	}
}
