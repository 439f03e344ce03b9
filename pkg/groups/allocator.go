package groups

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/dmitrymomot/datakit/pkg/validator"
)

// Allocator decides which group each of length units belongs to.
type Allocator interface {
	Method() Method
	// Allocate returns one label per unit, with the labels of each group
	// laid out contiguously in ascending order.
	Allocate(length int) ([]int, error)
	// NumGroups is the number of groups Allocate distributes units over.
	NumGroups(length int) int
}

// NewAllocator builds the allocator for method. n is used by
// MethodEvenDistribution, p and rounding by MethodProportional.
func NewAllocator(method Method, n int, p []float64, rounding Rounding) (Allocator, error) {
	switch method {
	case MethodEvenDistribution:
		return NewEvenDistribution(n)
	case MethodProportional:
		return NewProportional(p, rounding)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(method))
	}
}

// EvenDistribution spreads units over n groups so that group sizes differ by
// at most one.
type EvenDistribution struct {
	n int
}

// NewEvenDistribution returns an allocator for n groups. n must be at least 1.
func NewEvenDistribution(n int) (*EvenDistribution, error) {
	if err := validator.Apply(validator.MinNum("n", n, 1)); err != nil {
		return nil, errors.Join(ErrInvalidGroupCount, err)
	}
	return &EvenDistribution{n: n}, nil
}

// Method returns MethodEvenDistribution.
func (a *EvenDistribution) Method() Method { return MethodEvenDistribution }

// NumGroups returns n regardless of the unit count.
func (a *EvenDistribution) NumGroups(int) int { return a.n }

// Allocate places position i (1-based) in group ceil(i / (length/n)) - 1.
// The quotient is rounded to 5 decimals first so float drift such as
// 7.000000003 does not push a unit into the next group.
func (a *EvenDistribution) Allocate(length int) ([]int, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrSizeMismatch, length)
	}
	labels := make([]int, length)
	if length == 0 {
		return labels, nil
	}
	divisor := float64(length) / float64(a.n)
	for i := range labels {
		q := float64(i+1) / divisor
		q = math.RoundToEven(q*1e5) / 1e5
		labels[i] = int(math.Ceil(q)) - 1
	}
	return labels, nil
}

// Proportional sizes groups by proportions of the unit count.
// When the proportions sum to 1 the group count is fixed and units left over
// by rounding go to the last group. Otherwise an extra trailing group takes
// the remaining units.
type Proportional struct {
	p        []float64
	rounding Rounding
	fixed    bool
}

// NewProportional validates p: at least one proportion, each in [0, 1],
// summing to at most 1.
func NewProportional(p []float64, rounding Rounding) (*Proportional, error) {
	if err := validator.Apply(validator.Probabilities("p", p)...); err != nil {
		return nil, errors.Join(ErrInvalidProportions, err)
	}
	r, err := ParseRounding(string(rounding))
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, v := range p {
		sum += v
	}
	return &Proportional{
		p:        slices.Clone(p),
		rounding: r,
		fixed:    math.Abs(sum-1) <= validator.ProbabilityTolerance,
	}, nil
}

// Method returns MethodProportional.
func (a *Proportional) Method() Method { return MethodProportional }

// Fixed reports whether the proportions sum to 1.
func (a *Proportional) Fixed() bool { return a.fixed }

// NumGroups counts the declared proportions plus the extra group when they sum to less than 1.
func (a *Proportional) NumGroups(int) int {
	if a.fixed {
		return len(a.p)
	}
	return len(a.p) + 1
}

// Sizes returns the number of units in each group.
func (a *Proportional) Sizes(length int) ([]int, error) {
	sizes := make([]int, len(a.p), len(a.p)+1)
	total := 0
	for i, p := range a.p {
		s, err := a.rounding.apply(float64(length) * p)
		if err != nil {
			return nil, err
		}
		sizes[i] = int(s)
		total += sizes[i]
	}

	excess := length - total
	if excess >= 0 {
		if a.fixed {
			sizes[len(sizes)-1] += excess
		} else {
			sizes = append(sizes, excess)
		}
	}

	sum := 0
	for _, s := range sizes {
		sum += s
	}
	if sum != length {
		return nil, fmt.Errorf("%w: sizes %v sum to %d, want %d", ErrSizeMismatch, sizes, sum, length)
	}
	return sizes, nil
}

func (a *Proportional) Allocate(length int) ([]int, error) {
	sizes, err := a.Sizes(length)
	if err != nil {
		return nil, err
	}
	labels := make([]int, 0, length)
	for g, s := range sizes {
		for range s {
			labels = append(labels, g)
		}
	}
	return labels, nil
}

// Sizes counts the units per label, from label 0 to the highest label seen.
func Sizes(labels []int) []int {
	if len(labels) == 0 {
		return nil
	}
	out := make([]int, max(slices.Max(labels), -1)+1)
	for _, l := range labels {
		if l >= 0 {
			out[l]++
		}
	}
	return out
}
