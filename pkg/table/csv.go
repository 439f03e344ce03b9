package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ImportOptions configures CSV and XLSX import.
type ImportOptions struct {
	// Delimiter is the CSV field delimiter.
	Delimiter rune
	// HasHeader reports whether the first row holds column names.
	// Without a header, columns are named col_1, col_2, ...
	HasHeader bool
	// InferTypes converts columns to int64, float64 or bool when every
	// non-empty cell parses as that type. Otherwise cells stay strings.
	InferTypes bool
}

// DefaultImportOptions returns comma-separated input with a header and type inference.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{Delimiter: ',', HasHeader: true, InferTypes: true}
}

// ReadCSV parses CSV data into a table.
func ReadCSV(r io.Reader, opts ImportOptions) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return fromStrings(records, opts)
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string, opts ImportOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, opts)
}

// WriteCSV writes the table with a header row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return err
	}
	rec := make([]string, len(t.names))
	for r := 0; r < t.nrows; r++ {
		for c := range t.cols {
			rec[c] = FormatValue(t.cols[c][r])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates path and writes the table to it.
func (t *Table) WriteCSVFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return t.WriteCSV(f)
}

// fromStrings builds a table from raw string records, as read from CSV or XLSX.
func fromStrings(records [][]string, opts ImportOptions) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	width := 0
	for _, rec := range records {
		width = max(width, len(rec))
	}

	var names []string
	body := records
	if opts.HasHeader {
		names = headerNames(records[0], width)
		body = records[1:]
	} else {
		names = make([]string, width)
		for i := range names {
			names[i] = fmt.Sprintf("col_%d", i+1)
		}
	}

	cols := make([][]any, width)
	for c := range cols {
		raw := make([]string, len(body))
		for r, rec := range body {
			if c < len(rec) {
				raw[r] = rec[c]
			}
		}
		cols[c] = parseColumn(raw, opts.InferTypes)
	}
	return New(names, cols...)
}

// headerNames normalises header cells to NFC and trims whitespace and BOM.
// Blank headers are named after their position.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	for i := range names {
		var h string
		if i < len(header) {
			h = header[i]
		}
		h = strings.TrimPrefix(h, "\ufeff")
		h = strings.TrimSpace(norm.NFC.String(h))
		if h == "" {
			h = fmt.Sprintf("col_%d", i+1)
		}
		names[i] = h
	}
	return names
}
