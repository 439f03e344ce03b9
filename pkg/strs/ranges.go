package strs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregate names a function that reduces a range of values.
type Aggregate string

const (
	AggMax  Aggregate = "max"
	AggMin  Aggregate = "min"
	AggMean Aggregate = "mean"
	AggSum  Aggregate = "sum"
	// AggStd is the population standard deviation.
	AggStd Aggregate = "std"
)

// ParseAggregate validates an aggregate name.
func ParseAggregate(s string) (Aggregate, error) {
	switch a := Aggregate(strings.ToLower(s)); a {
	case AggMax, AggMin, AggMean, AggSum, AggStd:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q (allowed: max, min, mean, sum, std)", ErrUnknownAggregate, s)
	}
}

// Apply reduces x. Empty input gives NaN, except for sum which gives 0.
func (a Aggregate) Apply(x []float64) float64 {
	if len(x) == 0 && a != AggSum {
		return math.NaN()
	}
	switch a {
	case AggMax:
		return floats.Max(x)
	case AggMin:
		return floats.Min(x)
	case AggMean:
		return stat.Mean(x, nil)
	case AggSum:
		return floats.Sum(x)
	case AggStd:
		return stat.PopStdDev(x, nil)
	default:
		return math.NaN()
	}
}

// Range is an inclusive integer range with the aggregate to apply over it.
type Range struct {
	Values    []int
	Aggregate Aggregate
}

const rangeChars = "-0123456789"

// ParseRanges parses comma-separated inclusive ranges with optional
// aggregate functions, e.g. "1,max(2-5),sum(7-10),13-15". Ranges without
// a function get defaultAgg. Spaces are ignored.
func ParseRanges(s string, defaultAgg Aggregate) ([]Range, error) {
	if _, err := ParseAggregate(string(defaultAgg)); err != nil {
		return nil, err
	}
	s = strings.ReplaceAll(s, " ", "")

	var out []Range
	for part := range strings.SplitSeq(s, ",") {
		if part == "" {
			continue
		}
		body, name, err := SeparateFunctionName(part)
		if err != nil {
			return nil, err
		}
		agg := defaultAgg
		if name != "" {
			if agg, err = ParseAggregate(name); err != nil {
				return nil, err
			}
		}
		if err := CheckChars("range", body, rangeChars); err != nil {
			return nil, err
		}
		values, err := parseRange(body)
		if err != nil {
			return nil, err
		}
		out = append(out, Range{Values: values, Aggregate: agg})
	}
	return out, nil
}

func parseRange(s string) ([]int, error) {
	lo, hi, isRange := strings.Cut(s, "-")
	start, err := strconv.Atoi(lo)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	if !isRange {
		return []int{start}, nil
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	if end < start {
		return nil, fmt.Errorf("%w: %q ends before it starts", ErrInvalidRange, s)
	}
	values := make([]int, 0, end-start+1)
	for v := start; v <= end; v++ {
		values = append(values, v)
	}
	return values, nil
}

// SeparateFunctionName splits "max(2-5)" into "2-5" and "max". Strings
// without a parenthesis are returned unchanged with an empty name.
func SeparateFunctionName(s string) (body, name string, err error) {
	if !strings.Contains(s, "(") {
		return s, "", nil
	}
	parts := strings.Split(s, "(")
	switch {
	case len(parts) > 2:
		return "", "", fmt.Errorf("%w: multiple '(' in %q", ErrMalformedFunction, s)
	case parts[0] == "":
		return "", "", fmt.Errorf("%w: %q has no function name before '('", ErrMalformedFunction, s)
	case parts[1] == "" || parts[1] == ")":
		return "", "", fmt.Errorf("%w: %q has no arguments", ErrMalformedFunction, s)
	}
	return strings.TrimSuffix(parts[1], ")"), strings.ToLower(parts[0]), nil
}
