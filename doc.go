// Package datakit is a toolkit for preparing tabular datasets for
// machine-learning experiments.
//
// Its core is a balanced grouping engine that assigns rows to folds or
// partitions of near-equal size. Rows sharing an ID column value always land
// in the same group, and with a categorical column the grouping runs
// separately within each category. Supporting packages load and save
// tables, generate synthetic rows, time processing steps and manage the
// input and output paths of a run.
//
// Packages:
//
//   - pkg/groups: balanced fold and partition assignment
//   - pkg/array: blending, windowing and summary statistics for numeric slices
//   - pkg/table: column-oriented tables with CSV and XLSX import and export
//   - pkg/synth: noise generation and distortion of numeric columns
//   - pkg/strs: letter sequences, random identifiers and range parsing
//   - pkg/timestamps: named timestamps and step timing
//   - pkg/iopaths: checked collections of input and output paths
//   - pkg/logger: slog setup and the indented progress messenger
//   - pkg/config: environment-driven configuration
//   - pkg/validator: rule-based argument validation
//   - pkg/attrs: dot-path access to nested maps and structs
//
// The cmd/datakit command exposes fold, partition, noise and distort
// subcommands on top of these packages.
//
// Basic usage:
//
//	t, err := table.ReadCSVFile("data.csv", table.DefaultImportOptions())
//	if err != nil {
//		return err
//	}
//	folded, err := groups.Fold(t, 5,
//		groups.WithIDColumn("participant"),
//		groups.WithCatColumn("diagnosis"),
//		groups.WithRand(rand.New(rand.NewPCG(1, 2))),
//	)
//	if err != nil {
//		return err
//	}
//	return folded.WriteCSVFile("folds.csv")
package datakit
