package array

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

// NaNStats returns the number of NaNs in x and their share of x in percent,
// rounded to 2 decimals. An empty slice has no NaNs.
func NaNStats(x []float64) (int, float64) {
	n := 0
	for _, v := range x {
		if math.IsNaN(v) {
			n++
		}
	}
	if len(x) == 0 {
		return 0, 0
	}
	pct := float64(n) / float64(len(x)) * 100
	return n, math.RoundToEven(pct*100) / 100
}

// PrintNaNStats reports "<message>: <count> (<percent>%)" through m.
func PrintNaNStats(m *logger.Messenger, message string, x []float64) {
	n, pct := NaNStats(x)
	logger.OrSilent(m).Msgf("%s: %d (%v%%)", message, n, pct)
}

// Percentile returns the q-th percentile (0-100) of x, interpolating
// linearly between the closest ranks. NaNs are not ignored.
func Percentile(x []float64, q float64) float64 {
	if len(x) == 0 || floats.HasNaN(x) {
		return math.NaN()
	}
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	h := float64(len(sorted)-1) * q / 100
	lo := math.Floor(h)
	i := int(lo)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// IQR is the interquartile range: the 75th minus the 25th percentile.
func IQR(x []float64) float64 {
	return Percentile(x, 75) - Percentile(x, 25)
}
