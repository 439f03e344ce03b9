package table

import (
	"fmt"
	"slices"
)

// Table is an in-memory, column-oriented table.
// Every column holds the same number of values. Cells are plain Go values:
// int, int64, float64, string, bool or nil for a missing value.
type Table struct {
	names []string
	index map[string]int
	cols  [][]any
	nrows int
}

// New builds a table from column names and column slices.
// The column slices are copied.
func New(names []string, cols ...[]any) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%w: %d names for %d columns", ErrLengthMismatch, len(names), len(cols))
	}
	t := &Table{index: make(map[string]int, len(names))}
	for i, name := range names {
		if t.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		if err := t.AddColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(names []string, cols ...[]any) *Table {
	t, err := New(names, cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// FromRecords builds a table from row records, each holding one value per name.
func FromRecords(names []string, records [][]any) (*Table, error) {
	cols := make([][]any, len(names))
	for i := range cols {
		cols[i] = make([]any, len(records))
	}
	for r, rec := range records {
		if len(rec) != len(names) {
			return nil, fmt.Errorf("%w: record %d has %d values, want %d", ErrLengthMismatch, r, len(rec), len(names))
		}
		for c, v := range rec {
			cols[c][r] = v
		}
	}
	return New(names, cols...)
}

func (t *Table) NumRows() int { return t.nrows }

func (t *Table) NumCols() int { return len(t.names) }

// Columns returns the column names in order.
func (t *Table) Columns() []string { return slices.Clone(t.names) }

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]any, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return slices.Clone(t.cols[i]), nil
}

// FirstColumn returns the name of the first column.
func (t *Table) FirstColumn() (string, error) {
	if len(t.names) == 0 {
		return "", ErrNoColumns
	}
	return t.names[0], nil
}

// Value returns a single cell.
func (t *Table) Value(row int, name string) (any, error) {
	c, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if row < 0 || row >= t.nrows {
		return nil, fmt.Errorf("%w: row %d", ErrIndexOutOfRange, row)
	}
	return t.cols[c][row], nil
}

// Row returns row i as a name to value map.
func (t *Table) Row(i int) (map[string]any, error) {
	if i < 0 || i >= t.nrows {
		return nil, fmt.Errorf("%w: row %d", ErrIndexOutOfRange, i)
	}
	row := make(map[string]any, len(t.names))
	for c, name := range t.names {
		row[name] = t.cols[c][i]
	}
	return row, nil
}

// Copy returns a deep copy of the table structure. Cell values are shared.
func (t *Table) Copy() *Table {
	out := &Table{
		names: slices.Clone(t.names),
		index: make(map[string]int, len(t.names)),
		cols:  make([][]any, len(t.cols)),
		nrows: t.nrows,
	}
	for i, name := range t.names {
		out.index[name] = i
		out.cols[i] = slices.Clone(t.cols[i])
	}
	return out
}

// AddColumn appends a column, or replaces the values of an existing one.
// The values are copied. The first column of an empty table sets the row count.
func (t *Table) AddColumn(name string, values []any) error {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if len(t.names) > 0 && len(values) != t.nrows {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows", ErrLengthMismatch, name, len(values), t.nrows)
	}
	if i, ok := t.index[name]; ok {
		t.cols[i] = slices.Clone(values)
		return nil
	}
	if len(t.names) == 0 {
		t.nrows = len(values)
	}
	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.cols = append(t.cols, slices.Clone(values))
	return nil
}

// AddIntColumn is AddColumn for integer labels.
func (t *Table) AddIntColumn(name string, values []int) error {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return t.AddColumn(name, vals)
}

// DropColumns returns a copy of the table without the named columns.
func (t *Table) DropColumns(names ...string) (*Table, error) {
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !t.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		drop[name] = struct{}{}
	}
	keep := make([]string, 0, len(t.names))
	for _, name := range t.names {
		if _, ok := drop[name]; !ok {
			keep = append(keep, name)
		}
	}
	return t.Select(keep...)
}

// Select returns a copy holding only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	out := &Table{index: make(map[string]int, len(names)), nrows: t.nrows}
	for _, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
		if _, dup := out.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		out.index[name] = len(out.names)
		out.names = append(out.names, name)
		out.cols = append(out.cols, slices.Clone(t.cols[i]))
	}
	return out, nil
}

// MoveColumn moves the named column to position pos in place.
func (t *Table) MoveColumn(name string, pos int) error {
	from, ok := t.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if pos < 0 || pos >= len(t.names) {
		return fmt.Errorf("%w: position %d", ErrIndexOutOfRange, pos)
	}
	col := t.cols[from]
	t.names = slices.Delete(t.names, from, from+1)
	t.cols = slices.Delete(t.cols, from, from+1)
	t.names = slices.Insert(t.names, pos, name)
	t.cols = slices.Insert(t.cols, pos, col)
	for i, n := range t.names {
		t.index[n] = i
	}
	return nil
}

// Rename changes a column name in place.
func (t *Table) Rename(from, to string) error {
	i, ok := t.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, from)
	}
	if from == to {
		return nil
	}
	if t.HasColumn(to) {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, to)
	}
	delete(t.index, from)
	t.index[to] = i
	t.names[i] = to
	return nil
}

// String renders a short summary.
func (t *Table) String() string {
	return fmt.Sprintf("Table(%d rows x %d cols: %v)", t.nrows, len(t.names), t.names)
}
