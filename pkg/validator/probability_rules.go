package validator

import "fmt"

// ProbabilityTolerance absorbs floating point drift when proportions are
// summed, so that 0.1+0.2+0.7 is accepted as summing to 1.
const ProbabilityTolerance = 1e-9

// Probability validates that a value is a proportion in [0, 1].
func Probability(field string, value float64) Rule {
	r := RangeNum(field, value, 0, 1)
	r.Error.Message = "must be a proportion between 0 and 1"
	r.Error.Rule = "validation.probability"
	return r
}

// Probabilities validates that there is at least one proportion, that every
// proportion is in [0, 1] and that together they sum to no more than 1.
func Probabilities(field string, values []float64) []Rule {
	each := EachInRange(field, values, 0, 1)
	each.Error.Message = "every proportion must be between 0 and 1"
	each.Error.Rule = "validation.probability"

	var sum float64
	for _, v := range values {
		sum += v
	}
	total := Rule{
		Check: func() bool {
			return sum >= 0 && sum <= 1+ProbabilityTolerance
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("proportions must sum to between 0 and 1, got %v", sum),
			Rule:    "validation.probability_sum",
			Params: map[string]any{
				"field": field,
				"sum":   sum,
			},
		},
	}

	return []Rule{RequiredSlice(field, values), each, total}
}
