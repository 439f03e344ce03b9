// Package array holds helpers for one-dimensional numeric data: blending two
// series, cutting a series into windows, and NaN and spread statistics.
//
// Window and WindowedReverse are generic over the element type. Blend, IQR and
// Percentile work on []float64 and use gonum.org/v1/gonum/floats.
//
//	windows, n, err := array.Window(signal, array.WindowOptions{
//	    Size: 2, Gap: 1, SampleRate: 250, Rolling: true, DiscardShorts: true,
//	})
//
// Invalid window options wrap ErrInvalidWindow together with the
// validator.ValidationErrors naming the rejected option.
package array
