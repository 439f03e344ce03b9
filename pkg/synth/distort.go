package synth

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/dmitrymomot/datakit/pkg/array"
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/table"
	"github.com/dmitrymomot/datakit/pkg/validator"
)

// DistortOptions configures Distort.
type DistortOptions struct {
	Distribution Distribution
	// Amount blends original (0) and generated (1) values.
	Amount float64
	// Size is the fraction of rows to return.
	Size float64
	// RandomizeOriginal samples rows randomly instead of taking the first ones.
	RandomizeOriginal bool
	// Exclude lists columns that are replaced with NaN.
	Exclude []string
	// LabelColumn is left untouched or overwritten with NewLabel.
	LabelColumn string
	KeepLabels  bool
	NewLabel    any
	// Append prefixes the result with the same number of original rows.
	Append bool
	Rand   *rand.Rand
	Logger *slog.Logger
}

// DefaultDistortOptions replaces every column with uniform noise.
func DefaultDistortOptions() DistortOptions {
	return DistortOptions{
		Distribution: Uniform,
		Amount:       1,
		Size:         1,
		KeepLabels:   true,
		NewLabel:     "noise",
	}
}

// SimNoiseOptions configures SimNoise.
type SimNoiseOptions struct {
	Distribution Distribution
	Size         float64
	Exclude      []string
	LabelColumn  string
	NewLabel     any
	// Append prefixes the result with all original rows.
	Append bool
	Rand   *rand.Rand
	Logger *slog.Logger
}

// DefaultSimNoiseOptions simulates a full-size uniform noise set.
func DefaultSimNoiseOptions() SimNoiseOptions {
	return SimNoiseOptions{
		Distribution: Uniform,
		Size:         1,
		NewLabel:     "noise",
	}
}

// Distort regenerates every numeric column from a distribution resembling
// it and blends the result with the original values.
func Distort(t *table.Table, opts DistortOptions) (*table.Table, error) {
	if err := validator.Apply(
		validator.Probability("amount", opts.Amount),
		validator.RangeNum("size", opts.Size, 0, 1),
	); err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}
	cfg := newConfig([]Option{WithRand(opts.Rand), WithLogger(opts.Logger)})

	var labels []any
	if opts.LabelColumn != "" && !opts.KeepLabels {
		labels = repeat(opts.NewLabel, t.NumRows())
	}
	out, err := regenerate(t, opts.Distribution, opts.Amount, opts.LabelColumn, labels, opts.Exclude, cfg)
	if err != nil {
		return nil, err
	}

	n := int(float64(t.NumRows()) * opts.Size)
	var keep *table.Table
	if opts.RandomizeOriginal {
		keep, err = out.Take(cfg.perm(t.NumRows())[:n])
		if err != nil {
			return nil, err
		}
	} else {
		keep = out.Head(n)
	}

	cfg.log.Debug("distorted table",
		slog.String("distribution", string(opts.Distribution)),
		slog.Float64("amount", opts.Amount),
		logger.Rows(keep.NumRows()),
	)
	if opts.Append {
		return table.Concat(t.Head(keep.NumRows()), keep)
	}
	return keep, nil
}

// SimNoise generates a noise data set resembling t, with the label
// column, when given, set to NewLabel.
func SimNoise(t *table.Table, opts SimNoiseOptions) (*table.Table, error) {
	if err := validator.Apply(validator.RangeNum("size", opts.Size, 0, 1)); err != nil {
		return nil, errors.Join(ErrInvalidOptions, err)
	}
	cfg := newConfig([]Option{WithRand(opts.Rand), WithLogger(opts.Logger)})

	var labels []any
	if opts.LabelColumn != "" {
		labels = repeat(opts.NewLabel, t.NumRows())
	}
	out, err := regenerate(t, opts.Distribution, 1, opts.LabelColumn, labels, opts.Exclude, cfg)
	if err != nil {
		return nil, err
	}

	n := int(float64(t.NumRows()) * opts.Size)
	keep, err := out.Take(cfg.perm(t.NumRows())[:n])
	if err != nil {
		return nil, err
	}
	cfg.log.Debug("simulated noise",
		slog.String("distribution", string(opts.Distribution)),
		logger.Rows(keep.NumRows()),
	)
	if opts.Append {
		return table.Concat(t, keep)
	}
	return keep, nil
}

// regenerate returns a copy of t with every column other than the label
// and excluded columns resembled. Excluded columns become NaN and the label
// column is replaced by labels when non-nil.
func regenerate(
	t *table.Table,
	dist Distribution,
	amount float64,
	labelCol string,
	labels []any,
	exclude []string,
	cfg *config,
) (*table.Table, error) {
	for _, name := range append(slices.Clone(exclude), labelCol) {
		if name != "" && !t.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q", table.ErrColumnNotFound, name)
		}
	}

	out := t.Copy()
	for _, name := range t.Columns() {
		switch {
		case name == labelCol:
			if labels != nil {
				if err := out.AddColumn(name, labels); err != nil {
					return nil, err
				}
			}
		case slices.Contains(exclude, name):
			if err := out.AddColumn(name, repeat(math.NaN(), t.NumRows())); err != nil {
				return nil, err
			}
		default:
			values, err := regenerateColumn(t, name, dist, amount, cfg)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", name, err)
			}
			if err := out.AddColumn(name, values); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func regenerateColumn(t *table.Table, name string, dist Distribution, amount float64, cfg *config) ([]any, error) {
	if !t.IsNumeric(name) {
		return nil, ErrNotNumeric
	}
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	x, err := t.FloatColumn(name)
	if err != nil {
		return nil, err
	}

	integers := isIntegerColumn(raw)
	colCfg := *cfg
	colCfg.integers = integers
	gen, err := resemble(x, dist, &colCfg)
	if err != nil {
		return nil, err
	}
	if amount != 1 {
		if gen, err = array.Blend(x, gen, amount); err != nil {
			return nil, err
		}
		integers = false
	}

	out := make([]any, len(gen))
	for i, v := range gen {
		if integers && !math.IsNaN(v) {
			out[i] = int64(v)
			continue
		}
		out[i] = v
	}
	return out, nil
}

func isIntegerColumn(values []any) bool {
	seen := false
	for _, v := range values {
		switch v.(type) {
		case nil:
		case int, int64, int32, uint32, uint64:
			seen = true
		default:
			return false
		}
	}
	return seen
}

func repeat(v any, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = v
	}
	return out
}
