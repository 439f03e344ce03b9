package validator

import "fmt"

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowedValues),
			Rule:    "validation.in_list",
			Params: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
				"value":          value,
			},
		},
	}
}

// MutuallyExclusive validates that at most one of the flags is set.
func MutuallyExclusive(field string, flags ...bool) Rule {
	return Rule{
		Check: func() bool {
			n := 0
			for _, f := range flags {
				if f {
					n++
				}
			}
			return n <= 1
		},
		Error: ValidationError{
			Field:   field,
			Message: "only one of the options may be specified",
			Rule:    "validation.mutually_exclusive",
			Params: map[string]any{
				"field": field,
			},
		},
	}
}

// ExactlyOne validates that exactly one of the flags is set.
func ExactlyOne(field string, flags ...bool) Rule {
	return Rule{
		Check: func() bool {
			n := 0
			for _, f := range flags {
				if f {
					n++
				}
			}
			return n == 1
		},
		Error: ValidationError{
			Field:   field,
			Message: "exactly one of the options must be specified",
			Rule:    "validation.exactly_one",
			Params: map[string]any{
				"field": field,
			},
		},
	}
}
