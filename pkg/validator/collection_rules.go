package validator

import "fmt"

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Rule:    "validation.required",
			Params: map[string]any{
				"field": field,
			},
		},
	}
}

// EachInRange validates that every element lies within [min, max].
func EachInRange[T Numeric](field string, values []T, min, max T) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range values {
				if !(v >= min && v <= max) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("every element must be between %v and %v", min, max),
			Rule:    "validation.each_range",
			Params: map[string]any{
				"field":  field,
				"min":    min,
				"max":    max,
				"values": values,
			},
		},
	}
}

// SumInRange validates that the elements sum to a value within [min, max].
func SumInRange[T Numeric](field string, values []T, min, max T) Rule {
	var sum T
	for _, v := range values {
		sum += v
	}
	return Rule{
		Check: func() bool {
			return sum >= min && sum <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("sum must be between %v and %v, got %v", min, max, sum),
			Rule:    "validation.sum_range",
			Params: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
				"sum":   sum,
			},
		},
	}
}
