package table

import (
	"fmt"
	"math"
)

// Direction is a comparison operator applied as "share <op> threshold".
type Direction string

const (
	Greater      Direction = ">"
	Less         Direction = "<"
	GreaterEqual Direction = ">="
	LessEqual    Direction = "<="
	EqualTo      Direction = "=="
)

// ParseDirection validates an operator string.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Greater, Less, GreaterEqual, LessEqual, EqualTo:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

func (d Direction) compare(a, b float64) (bool, error) {
	switch d {
	case Greater:
		return a > b, nil
	case Less:
		return a < b, nil
	case GreaterEqual:
		return a >= b, nil
	case LessEqual:
		return a <= b, nil
	case EqualTo:
		return a == b, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidDirection, string(d))
	}
}

type targetKind int

const (
	targetValue targetKind = iota
	targetAny
	targetNaN
	targetInf
)

// Target is what MakesUp counts.
type Target struct {
	kind  targetKind
	value any
}

// TargetValue counts cells equal to v.
func TargetValue(v any) Target { return Target{kind: targetValue, value: v} }

// TargetAny counts the most frequent value, missing values included.
func TargetAny() Target { return Target{kind: targetAny} }

// TargetNaN counts missing cells (nil or NaN).
func TargetNaN() Target { return Target{kind: targetNaN} }

// TargetInf counts positive and negative infinities.
func TargetInf() Target { return Target{kind: targetInf} }

func (t Target) String() string {
	switch t.kind {
	case targetAny:
		return "any"
	case targetNaN:
		return "NaN"
	case targetInf:
		return "inf"
	default:
		return FormatValue(t.value)
	}
}

// MakesUp answers "does target make up <direction> thresh of values?",
// with thresh a share between 0 and 1. With missingErr, a TargetValue that
// never occurs returns ErrValueNotFound.
func MakesUp(values []any, target Target, thresh float64, direction Direction, missingErr bool) (bool, error) {
	if _, err := ParseDirection(string(direction)); err != nil {
		return false, err
	}
	if thresh < 0 || thresh > 1 || math.IsNaN(thresh) {
		return false, fmt.Errorf("%w: %v", ErrInvalidThreshold, thresh)
	}

	n, err := countTarget(values, target)
	if err != nil {
		return false, err
	}
	if n == 0 && missingErr && target.kind == targetValue {
		return false, fmt.Errorf("%w: %v", ErrValueNotFound, target)
	}

	share := 0.0
	if len(values) > 0 {
		share = float64(n) / float64(len(values))
	}
	return direction.compare(share, thresh)
}

func countTarget(values []any, target Target) (int, error) {
	n := 0
	switch target.kind {
	case targetNaN:
		for _, v := range values {
			if IsMissing(v) {
				n++
			}
		}
	case targetInf:
		for _, v := range values {
			if f, ok := ToFloat(v); ok && math.IsInf(f, 0) {
				n++
			}
		}
	case targetAny:
		counts := make(map[any]int)
		missing := 0
		for _, v := range values {
			if IsMissing(v) {
				missing++
				continue
			}
			k, err := Key(v)
			if err != nil {
				return 0, err
			}
			counts[k]++
		}
		n = missing
		for _, c := range counts {
			n = max(n, c)
		}
	default:
		for _, v := range values {
			if Equal(v, target.value) {
				n++
			}
		}
	}
	return n, nil
}
