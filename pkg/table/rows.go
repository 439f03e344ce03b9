package table

import (
	"fmt"
	"slices"
	"sort"
)

// Take returns a new table holding the rows at indices, in that order.
func (t *Table) Take(indices []int) (*Table, error) {
	for _, i := range indices {
		if i < 0 || i >= t.nrows {
			return nil, fmt.Errorf("%w: row %d", ErrIndexOutOfRange, i)
		}
	}
	out := t.empty(len(indices))
	for c, col := range t.cols {
		dst := make([]any, len(indices))
		for j, i := range indices {
			dst[j] = col[i]
		}
		out.cols[c] = dst
	}
	return out, nil
}

// Filter returns the rows where mask is true.
func (t *Table) Filter(mask []bool) (*Table, error) {
	if len(mask) != t.nrows {
		return nil, fmt.Errorf("%w: mask has %d values, table has %d rows", ErrLengthMismatch, len(mask), t.nrows)
	}
	idx := make([]int, 0, t.nrows)
	for i, keep := range mask {
		if keep {
			idx = append(idx, i)
		}
	}
	return t.Take(idx)
}

// Head returns the first n rows, or all rows when n exceeds the row count.
func (t *Table) Head(n int) *Table {
	n = max(0, min(n, t.nrows))
	out, _ := t.Take(seq(n))
	return out
}

// Concat stacks tables row-wise. All tables must have the same column set;
// the column order of the first table is kept.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return &Table{index: map[string]int{}}, nil
	}
	first := tables[0]
	total := 0
	for i, t := range tables {
		if len(t.names) != len(first.names) {
			return nil, fmt.Errorf("%w: table %d", ErrSchemaMismatch, i)
		}
		for _, name := range first.names {
			if !t.HasColumn(name) {
				return nil, fmt.Errorf("%w: table %d lacks %q", ErrSchemaMismatch, i, name)
			}
		}
		total += t.nrows
	}
	out := first.empty(total)
	for c, name := range first.names {
		col := make([]any, 0, total)
		for _, t := range tables {
			col = append(col, t.cols[t.index[name]]...)
		}
		out.cols[c] = col
	}
	return out, nil
}

// SortByInt returns a copy of the table stably sorted ascending by an integer column.
func (t *Table) SortByInt(name string) (*Table, error) {
	col, err := t.IntColumn(name)
	if err != nil {
		return nil, err
	}
	order := seq(t.nrows)
	sort.SliceStable(order, func(a, b int) bool { return col[order[a]] < col[order[b]] })
	return t.Take(order)
}

// IntColumn returns the named column converted to ints.
func (t *Table) IntColumn(name string) ([]int, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	out := make([]int, t.nrows)
	for r, v := range t.cols[i] {
		n, ok := ToInt(v)
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d (%v)", ErrNotInteger, name, r, v)
		}
		out[r] = n
	}
	return out, nil
}

// FloatColumn returns the named column converted to float64.
// Missing and non-numeric cells become NaN.
func (t *Table) FloatColumn(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	out := make([]float64, t.nrows)
	for r, v := range t.cols[i] {
		out[r] = FloatOrNaN(v)
	}
	return out, nil
}

// IsNumeric reports whether every non-missing cell of the column is a number.
func (t *Table) IsNumeric(name string) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	for _, v := range t.cols[i] {
		if v == nil {
			continue
		}
		if _, ok := ToFloat(v); !ok {
			return false
		}
	}
	return true
}

// empty returns a table with t's columns and room for n rows.
func (t *Table) empty(n int) *Table {
	out := &Table{
		names: slices.Clone(t.names),
		index: make(map[string]int, len(t.names)),
		cols:  make([][]any, len(t.names)),
		nrows: n,
	}
	for i, name := range t.names {
		out.index[name] = i
	}
	return out
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
