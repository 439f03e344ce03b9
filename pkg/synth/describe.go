package synth

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/dmitrymomot/datakit/pkg/array"
)

// Description summarises the non-NaN values of a series.
type Description struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
	IQR    float64
}

// Describe computes summary statistics, ignoring NaNs. Std is the sample
// standard deviation and is NaN for fewer than two values.
func Describe(x []float64) (Description, error) {
	vals := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return Description{}, ErrEmpty
	}
	slices.Sort(vals)

	mean, std := stat.MeanStdDev(vals, nil)
	if len(vals) < 2 {
		std = math.NaN()
	}
	return Description{
		Count:  len(vals),
		Mean:   mean,
		Std:    std,
		Min:    vals[0],
		Q25:    array.Percentile(vals, 25),
		Median: array.Percentile(vals, 50),
		Q75:    array.Percentile(vals, 75),
		Max:    vals[len(vals)-1],
		IQR:    array.IQR(vals),
	}, nil
}
