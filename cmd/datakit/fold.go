package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/dmitrymomot/datakit/pkg/groups"
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/table"
)

// groupingArgs are the flags shared by fold and partition.
type groupingArgs struct {
	In     string `validate:"required"`
	Column string
	ID     string
	Cat    string
	Seed   uint64
}

func (g *groupingArgs) bind(fs *flag.FlagSet) {
	fs.StringVar(&g.In, "in", "", "input CSV or XLSX file, - for stdin")
	fs.StringVar(&g.Column, "column", "", "column to group by (default: first column)")
	fs.StringVar(&g.ID, "id", "", "ID column; rows sharing an ID stay in the same group")
	fs.StringVar(&g.Cat, "cat", "", "categorical column to balance groups over")
	fs.Uint64Var(&g.Seed, "seed", 0, "random seed (default: DATAKIT_SEED or random)")
}

func (g *groupingArgs) options(a *app) []groups.Option {
	opts := []groups.Option{
		groups.WithRand(a.cfg.rng(g.Seed)),
		groups.WithLogger(a.log),
	}
	if g.Column != "" {
		opts = append(opts, groups.WithColumn(g.Column))
	}
	if g.ID != "" {
		opts = append(opts, groups.WithIDColumn(g.ID))
	}
	if g.Cat != "" {
		opts = append(opts, groups.WithCatColumn(g.Cat))
	}
	return opts
}

type foldArgs struct {
	groupingArgs
	Out      string `validate:"required"`
	K        int    `validate:"min=1"`
	GroupCol string `validate:"required"`
	Factor   bool
}

func runFold(ctx context.Context, a *app, args []string) error {
	var fa foldArgs
	fs := flag.NewFlagSet("fold", flag.ContinueOnError)
	fa.bind(fs)
	fs.StringVar(&fa.Out, "out", "", "output CSV or XLSX file, - for stdout")
	fs.IntVar(&fa.K, "k", 5, "number of folds")
	fs.StringVar(&fa.GroupCol, "group-col", "fold", "name of the fold column")
	fs.BoolVar(&fa.Factor, "factor", false, "write only the fold column")
	if err := parseFlags(fs, args, &fa, a.stderr); err != nil {
		return err
	}

	paths, err := a.paths(fa.In, map[string]string{"out": fa.Out}, nil)
	if err != nil {
		return err
	}

	var data *table.Table
	if err := a.step(ctx, "Read data:", func() (err error) {
		data, err = a.read(paths.MustGet("in"))
		return err
	}); err != nil {
		return err
	}

	opts := append(fa.options(a), groups.WithGroupColumn(fa.GroupCol))
	var out *table.Table
	if err := a.step(ctx, "Created folds:", func() error {
		if fa.Factor {
			labels, err := groups.FoldFactor(data, fa.K, opts...)
			if err != nil {
				return err
			}
			out = new(table.Table)
			return out.AddIntColumn(fa.GroupCol, labels)
		}
		var err error
		out, err = groups.Fold(data, fa.K, opts...)
		return err
	}); err != nil {
		return fmt.Errorf("folding %s: %w", filepath.Base(fa.In), err)
	}

	if err := a.step(ctx, "Wrote folds:", func() error {
		return a.write(out, paths.MustGet("out"))
	}); err != nil {
		return err
	}
	a.log.InfoContext(ctx, "folds created",
		logger.Rows(out.NumRows()),
		logger.Groups(fa.K),
		logger.Path(paths.MustGet("out")),
	)
	return nil
}
