package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/synth"
	"github.com/dmitrymomot/datakit/pkg/table"
)

// synthArgs are the flags shared by noise and distort.
type synthArgs struct {
	In       string  `validate:"required"`
	Out      string  `validate:"required"`
	Dist     string  `validate:"oneof=uniform gaussian robust_gaussian poisson shuffle"`
	Size     float64 `validate:"gte=0,lte=1"`
	Label    string
	NewLabel string
	Exclude  string
	Append   bool
	Seed     uint64
}

func (s *synthArgs) bind(fs *flag.FlagSet) {
	fs.StringVar(&s.In, "in", "", "input CSV or XLSX file, - for stdin")
	fs.StringVar(&s.Out, "out", "", "output CSV or XLSX file, - for stdout")
	fs.StringVar(&s.Dist, "dist", "uniform", "distribution: uniform, gaussian, robust_gaussian, poisson or shuffle")
	fs.Float64Var(&s.Size, "size", 1, "fraction of rows to generate")
	fs.StringVar(&s.Label, "label", "", "label column")
	fs.StringVar(&s.NewLabel, "new-label", "noise", "label given to generated rows")
	fs.StringVar(&s.Exclude, "exclude", "", "comma-separated columns to leave out (filled with NaN)")
	fs.BoolVar(&s.Append, "append", false, "append the generated rows to original rows")
	fs.Uint64Var(&s.Seed, "seed", 0, "random seed (default: DATAKIT_SEED or random)")
}

func (s *synthArgs) distribution() (synth.Distribution, error) {
	if s.Dist == "robust_gaussian" {
		return synth.RobustGaussian, nil
	}
	return synth.ParseDistribution(s.Dist)
}

func runNoise(ctx context.Context, a *app, args []string) error {
	var sa synthArgs
	fs := flag.NewFlagSet("noise", flag.ContinueOnError)
	sa.bind(fs)
	if err := parseFlags(fs, args, &sa, a.stderr); err != nil {
		return err
	}
	dist, err := sa.distribution()
	if err != nil {
		return err
	}

	opts := synth.DefaultSimNoiseOptions()
	opts.Distribution = dist
	opts.Size = sa.Size
	opts.LabelColumn = sa.Label
	opts.NewLabel = sa.NewLabel
	opts.Exclude = splitList(sa.Exclude)
	opts.Append = sa.Append
	opts.Rand = a.cfg.rng(sa.Seed)
	opts.Logger = a.log

	return a.synthesize(ctx, sa, "Simulated noise:", func(data *table.Table) (*table.Table, error) {
		return synth.SimNoise(data, opts)
	})
}

type distortArgs struct {
	synthArgs
	Amount     float64 `validate:"gte=0,lte=1"`
	Randomize  bool
	KeepLabels bool
}

func runDistort(ctx context.Context, a *app, args []string) error {
	var da distortArgs
	fs := flag.NewFlagSet("distort", flag.ContinueOnError)
	da.bind(fs)
	fs.Float64Var(&da.Amount, "amount", 1, "blend between original (0) and generated (1) values")
	fs.BoolVar(&da.Randomize, "randomize", false, "sample rows randomly instead of taking the first ones")
	fs.BoolVar(&da.KeepLabels, "keep-labels", true, "keep the original labels instead of -new-label")
	if err := parseFlags(fs, args, &da, a.stderr); err != nil {
		return err
	}
	dist, err := da.distribution()
	if err != nil {
		return err
	}

	opts := synth.DefaultDistortOptions()
	opts.Distribution = dist
	opts.Amount = da.Amount
	opts.Size = da.Size
	opts.RandomizeOriginal = da.Randomize
	opts.Exclude = splitList(da.Exclude)
	opts.LabelColumn = da.Label
	opts.KeepLabels = da.KeepLabels
	opts.NewLabel = da.NewLabel
	opts.Append = da.Append
	opts.Rand = a.cfg.rng(da.Seed)
	opts.Logger = a.log

	return a.synthesize(ctx, da.synthArgs, "Distorted data:", func(data *table.Table) (*table.Table, error) {
		return synth.Distort(data, opts)
	})
}

func (a *app) synthesize(ctx context.Context, sa synthArgs, message string, fn func(*table.Table) (*table.Table, error)) error {
	paths, err := a.paths(sa.In, map[string]string{"out": sa.Out}, nil)
	if err != nil {
		return err
	}

	var data, out *table.Table
	if err := a.step(ctx, "Read data:", func() (err error) {
		data, err = a.read(paths.MustGet("in"))
		return err
	}); err != nil {
		return err
	}
	if err := a.step(ctx, message, func() (err error) {
		out, err = fn(data)
		return err
	}); err != nil {
		return err
	}
	if err := a.step(ctx, "Wrote data:", func() error {
		return a.write(out, paths.MustGet("out"))
	}); err != nil {
		return err
	}
	a.log.InfoContext(ctx, "synthetic data written",
		slog.String("distribution", sa.Dist),
		logger.Rows(out.NumRows()),
		logger.Columns(out.NumCols()),
	)
	return nil
}
