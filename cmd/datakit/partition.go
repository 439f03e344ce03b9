package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/datakit/pkg/groups"
	"github.com/dmitrymomot/datakit/pkg/iopaths"
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/table"
)

type partitionArgs struct {
	groupingArgs
	OutDir   string `validate:"required"`
	P        string `validate:"required"`
	Rounding string `validate:"omitempty,oneof=floor round ceil"`
	Format   string `validate:"omitempty,oneof=csv xlsx"`
}

func runPartition(ctx context.Context, a *app, args []string) error {
	var pa partitionArgs
	fs := flag.NewFlagSet("partition", flag.ContinueOnError)
	pa.bind(fs)
	fs.StringVar(&pa.OutDir, "out-dir", "", "directory for the partition files")
	fs.StringVar(&pa.P, "p", "", "comma-separated partition proportions, e.g. 0.2,0.3")
	fs.StringVar(&pa.Rounding, "rounding", "floor", "rounding of partition sizes: floor, round or ceil")
	fs.StringVar(&pa.Format, "format", "", "output format: csv or xlsx (default: same as input)")
	if err := parseFlags(fs, args, &pa, a.stderr); err != nil {
		return err
	}

	p, err := parseFloats(pa.P)
	if err != nil {
		return err
	}
	rounding, err := groups.ParseRounding(pa.Rounding)
	if err != nil {
		return err
	}
	ext := ".csv"
	if pa.Format == "xlsx" || (pa.Format == "" && isXLSX(pa.In)) {
		ext = ".xlsx"
	}

	paths, err := a.paths(pa.In, nil, map[string]string{"out_dir": pa.OutDir})
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

	var parts []*table.Table
	if err := a.step(ctx, "Created partitions:", func() (err error) {
		parts, err = groups.Partition(data, p, append(pa.options(a), groups.WithRounding(rounding))...)
		return err
	}); err != nil {
		return fmt.Errorf("partitioning %s: %w", filepath.Base(pa.In), err)
	}

	files := make(map[string]string, len(parts))
	for k := range parts {
		files[partName(k)] = filepath.Join(paths.MustGet("out_dir"), partName(k)+ext)
	}
	if err := paths.SetMany(files, iopaths.OutFiles); err != nil {
		return err
	}

	if err := a.step(ctx, "Wrote partitions:", func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelWrites)
		for k, part := range parts {
			path := paths.MustGet(partName(k))
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := a.write(part, path); err != nil {
					return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
				}
				a.log.DebugContext(gctx, "partition written", logger.Group("partition",
					logger.Rows(part.NumRows()),
					logger.Path(path),
				))
				return nil
			})
		}
		return g.Wait()
	}); err != nil {
		return err
	}
	a.log.InfoContext(ctx, "partitions created",
		logger.Rows(data.NumRows()),
		logger.Groups(len(parts)),
		logger.Path(paths.MustGet("out_dir")),
	)
	return nil
}

const maxParallelWrites = 4

func partName(k int) string {
	return fmt.Sprintf("partition_%d", k)
}
