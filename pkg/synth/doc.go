// Package synth generates synthetic data that resembles existing data.
//
// # Architecture
//
// Describe summarises a series. Resemble draws a new series from a
// distribution parameterised by that summary, using gonum's distuv
// samplers. Distort and SimNoise apply Resemble to every numeric column of
// a table.Table, optionally blending with the original values or
// replacing labels.
//
// Supported distributions:
//   - Uniform: min to max
//   - Gaussian: mean and sample standard deviation
//   - RobustGaussian: median and interquartile range
//   - Poisson: lambda set to the maximum
//   - Shuffle: a permutation of the original values
//
// # Usage
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	noise, err := synth.SimNoise(data, synth.SimNoiseOptions{
//		Distribution: synth.Gaussian,
//		Size:         0.5,
//		LabelColumn:  "class",
//		NewLabel:     "noise",
//		Rand:         rng,
//	})
//
// Integer columns stay integral unless blended with Amount below 1.
//
// # Error Handling
//
// Invalid options wrap ErrInvalidOptions together with the validator
// errors. A column with no finite values returns ErrEmpty and a
// non-numeric column returns ErrNotNumeric.
package synth
