package array

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/dmitrymomot/datakit/pkg/validator"
)

// Blend mixes two equally long slices: x1*(1-amount) + x2*amount.
// An amount of 0 returns a copy of x1 and 1 a copy of x2.
func Blend(x1, x2 []float64, amount float64) ([]float64, error) {
	if len(x1) != len(x2) {
		return nil, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(x1), len(x2))
	}
	if err := validator.Apply(validator.Probability("amount", amount)); err != nil {
		return nil, errors.Join(ErrInvalidAmount, err)
	}
	out := make([]float64, len(x1))
	floats.ScaleTo(out, 1-amount, x1)
	floats.AddScaled(out, amount, x2)
	return out, nil
}
