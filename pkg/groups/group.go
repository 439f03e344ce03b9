package groups

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/datakit/pkg/table"
)

// Group returns a copy of t with a label column assigning every row to a
// group. The rows are the units. WithColumn picks the column the grouping is
// based on; by default the first column is used.
func Group(t *table.Table, alloc Allocator, opts ...Option) (*table.Table, error) {
	return group(t, alloc, newConfig(opts))
}

func group(t *table.Table, alloc Allocator, cfg *config) (*table.Table, error) {
	col := cfg.column
	if col == "" {
		first, err := t.FirstColumn()
		if err != nil {
			return nil, err
		}
		col = first
	}
	if !t.HasColumn(col) {
		return nil, fmt.Errorf("%w: %q", table.ErrColumnNotFound, col)
	}

	lbls, err := labels(t.NumRows(), alloc, cfg)
	if err != nil {
		return nil, err
	}
	out := t.Copy()
	if err := out.AddIntColumn(cfg.groupCol, lbls); err != nil {
		return nil, err
	}
	return out, nil
}

// GroupUniques returns a copy of t where the distinct values of idCol are the
// units: every distinct id gets a label and all rows sharing it receive that
// label. An existing label column is replaced.
func GroupUniques(t *table.Table, alloc Allocator, idCol string, opts ...Option) (*table.Table, error) {
	return groupUniques(t, alloc, idCol, newConfig(opts))
}

func groupUniques(t *table.Table, alloc Allocator, idCol string, cfg *config) (*table.Table, error) {
	ids, err := t.Unique(idCol)
	if err != nil {
		return nil, err
	}
	lbls, err := labels(len(ids), alloc, cfg)
	if err != nil {
		return nil, err
	}

	lookup := table.Table{}
	if err := lookup.AddColumn(idCol, ids); err != nil {
		return nil, err
	}
	if err := lookup.AddIntColumn(cfg.groupCol, lbls); err != nil {
		return nil, err
	}

	src := t
	if t.HasColumn(cfg.groupCol) {
		if src, err = t.DropColumns(cfg.groupCol); err != nil {
			return nil, err
		}
	}
	out, err := src.Join(&lookup, idCol, table.JoinStrict)
	if err != nil {
		if errors.Is(err, table.ErrUnmatchedKey) {
			return nil, errors.Join(ErrUnmatchedID, err)
		}
		return nil, err
	}
	return out, nil
}
