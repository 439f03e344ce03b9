package validator

import (
	"fmt"
	"math"
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %v", min),
			Rule:    "validation.min",
			Params: map[string]any{
				"field": field,
				"min":   min,
				"value": value,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %v", max),
			Rule:    "validation.max",
			Params: map[string]any{
				"field": field,
				"max":   max,
				"value": value,
			},
		},
	}
}

// RangeNum validates that min <= value <= max.
func RangeNum[T Numeric](field string, value T, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
			Rule:    "validation.range",
			Params: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
				"value": value,
			},
		},
	}
}

// Finite validates that a float is neither NaN nor infinite.
func Finite(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsNaN(value) && !math.IsInf(value, 0)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a finite number",
			Rule:    "validation.finite",
			Params: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// Min is an alias for MinNum.
func Min[T Numeric](field string, value T, min T) Rule {
	return MinNum(field, value, min)
}

// Max is an alias for MaxNum.
func Max[T Numeric](field string, value T, max T) Rule {
	return MaxNum(field, value, max)
}
