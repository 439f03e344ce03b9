package table

import "fmt"

// Level is the subset of rows sharing one value of a categorical column.
type Level struct {
	Value any
	Table *Table
}

// Unique returns the distinct values of a column in order of first appearance.
func (t *Table) Unique(name string) ([]any, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	seen := make(map[any]struct{})
	var out []any
	for _, v := range t.cols[i] {
		k, err := Key(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// SubsetByLevels splits the table into one sub-table per distinct value of
// the named column, in order of first appearance. Row order within each
// level is preserved. With dropCol the column is removed from every subset.
func (t *Table) SubsetByLevels(name string, dropCol bool) ([]Level, error) {
	c, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	order := make([]any, 0)
	rows := make(map[any][]int)
	values := make(map[any]any)
	for r, v := range t.cols[c] {
		k, err := Key(v)
		if err != nil {
			return nil, err
		}
		if _, seen := rows[k]; !seen {
			order = append(order, k)
			values[k] = v
		}
		rows[k] = append(rows[k], r)
	}

	src := t
	if dropCol {
		var err error
		if src, err = t.DropColumns(name); err != nil {
			return nil, err
		}
	}

	levels := make([]Level, 0, len(order))
	for _, k := range order {
		sub, err := src.Take(rows[k])
		if err != nil {
			return nil, err
		}
		levels = append(levels, Level{Value: values[k], Table: sub})
	}
	return levels, nil
}
