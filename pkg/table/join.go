package table

import "fmt"

// JoinKind selects how rows without a match are handled.
type JoinKind int

const (
	// JoinLeft keeps every left row; unmatched rows get nil right cells.
	JoinLeft JoinKind = iota
	// JoinOuter is JoinLeft plus the unmatched right rows, appended in right order.
	JoinOuter
	// JoinStrict fails with ErrUnmatchedKey when a left row has no match.
	JoinStrict
)

// Join merges right onto t by equal values of the key column.
// Keys in right must be unique. The result keeps t's row order and column
// order, followed by right's non-key columns.
func (t *Table) Join(right *Table, key string, kind JoinKind) (*Table, error) {
	lk, ok := t.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q in left table", ErrColumnNotFound, key)
	}
	rk, ok := right.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q in right table", ErrColumnNotFound, key)
	}

	var extra []string
	for _, name := range right.names {
		if name == key {
			continue
		}
		if t.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q in both tables", ErrDuplicateColumn, name)
		}
		extra = append(extra, name)
	}

	lookup := make(map[any]int, right.nrows)
	for r, v := range right.cols[rk] {
		k, err := Key(v)
		if err != nil {
			return nil, err
		}
		if _, dup := lookup[k]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, v)
		}
		lookup[k] = r
	}

	matches := make([]int, t.nrows)
	used := make([]bool, right.nrows)
	for r, v := range t.cols[lk] {
		k, err := Key(v)
		if err != nil {
			return nil, err
		}
		m, ok := lookup[k]
		if !ok {
			if kind == JoinStrict {
				return nil, fmt.Errorf("%w: %v", ErrUnmatchedKey, v)
			}
			m = -1
		} else {
			used[m] = true
		}
		matches[r] = m
	}

	var orphans []int
	if kind == JoinOuter {
		for r, u := range used {
			if !u {
				orphans = append(orphans, r)
			}
		}
	}

	n := t.nrows + len(orphans)
	out := &Table{index: make(map[string]int), nrows: n}
	for c, name := range t.names {
		col := make([]any, n)
		copy(col, t.cols[c])
		if c == lk {
			for j, r := range orphans {
				col[t.nrows+j] = right.cols[rk][r]
			}
		}
		out.index[name] = len(out.names)
		out.names = append(out.names, name)
		out.cols = append(out.cols, col)
	}
	for _, name := range extra {
		src := right.cols[right.index[name]]
		col := make([]any, n)
		for r, m := range matches {
			if m >= 0 {
				col[r] = src[m]
			}
		}
		for j, r := range orphans {
			col[t.nrows+j] = src[r]
		}
		out.index[name] = len(out.names)
		out.names = append(out.names, name)
		out.cols = append(out.cols, col)
	}
	return out, nil
}

func (t *Table) LeftJoin(right *Table, key string) (*Table, error) {
	return t.Join(right, key, JoinLeft)
}

func (t *Table) OuterJoin(right *Table, key string) (*Table, error) {
	return t.Join(right, key, JoinOuter)
}
