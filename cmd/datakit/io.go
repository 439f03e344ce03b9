package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/datakit/pkg/iopaths"
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/table"
)

func isXLSX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// read loads a CSV or XLSX table; "-" reads CSV from stdin.
func (a *app) read(path string) (*table.Table, error) {
	opts := table.DefaultImportOptions()
	switch {
	case path == iopaths.Stdin:
		return table.ReadCSV(a.stdin, opts)
	case isXLSX(path):
		return table.ReadXLSX(path, "", opts)
	default:
		return table.ReadCSVFile(path, opts)
	}
}

// write stores t as CSV or XLSX by extension; "-" writes CSV to stdout.
func (a *app) write(t *table.Table, path string) error {
	switch {
	case path == iopaths.Stdin:
		return t.WriteCSV(a.stdout)
	case isXLSX(path):
		return t.WriteXLSX(path, "")
	default:
		return t.WriteCSVFile(path)
	}
}

// paths registers the input file and output files of a command and
// creates the output directories.
func (a *app) paths(in string, outFiles, outDirs map[string]string) (*iopaths.IOPaths, error) {
	opts := []iopaths.Option{
		iopaths.WithPaths(iopaths.InFiles, map[string]string{"in": in}),
		iopaths.WithAllowOverwriting(a.cfg.AllowOverwrite),
		iopaths.WithReporter(a.msg),
	}
	if outFiles != nil {
		opts = append(opts, iopaths.WithPaths(iopaths.OutFiles, outFiles))
	}
	if outDirs != nil {
		opts = append(opts, iopaths.WithPaths(iopaths.OutDirs, outDirs))
	}
	p, err := iopaths.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := p.MkOutputDirs(); err != nil {
		return nil, err
	}
	a.log.Debug("paths prepared", logger.Path(p.MustGet("in")), slog.Int("paths", p.NumPaths()))
	return p, nil
}
