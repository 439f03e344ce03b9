// Package table provides a small column-oriented, in-memory table used by the
// grouping, synthesis and command line packages.
//
// A Table holds named columns of equal length. Cells are plain Go values
// (int, int64, float64, string, bool) with nil for missing values. Operations
// that reshape a table (Select, DropColumns, Take, Filter, SortByInt, Join,
// Concat, SubsetByLevels) return new tables and leave the receiver untouched.
// AddColumn, MoveColumn and Rename modify the receiver.
//
// # Architecture
//
// Columns are stored as []any slices in insertion order with a name index.
// Distinct values are tracked through Key, which maps equal numbers of
// different Go types to one comparable key, so 1, int64(1) and 1.0 fall into
// the same level or join bucket.
//
// CSV import uses encoding/csv and XLSX import uses
// github.com/xuri/excelize/v2. Both share one conversion step: header names
// are normalised to Unicode NFC, and each column is typed as int64, float64,
// bool or string depending on what all of its non-empty cells parse as.
//
// # Usage
//
//	t, err := table.ReadCSVFile("data.csv", table.DefaultImportOptions())
//	if err != nil {
//	    return err
//	}
//	levels, err := t.SubsetByLevels("diagnosis", false)
//	...
//	cleaned, err := table.Drop(t, table.DropOptions{
//	    Target:    table.TargetNaN(),
//	    Thresh:    0.3,
//	    Direction: table.Greater,
//	    Axis:      table.AxisColumns,
//	})
//
// # Error Handling
//
// All failures wrap one of the sentinel errors in errors.go, such as
// ErrColumnNotFound, ErrLengthMismatch or ErrUnmatchedKey, and can be matched
// with errors.Is.
package table
