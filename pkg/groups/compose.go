package groups

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/table"
)

// compose labels t according to the id and category columns of cfg and
// returns the labelled table in the original row order.
//
// With a category column every level is grouped independently, so label k
// in one level is unrelated to label k in another.
func compose(t *table.Table, alloc Allocator, cfg *config) (*table.Table, error) {
	if t.HasColumn(sortingIndexColumn) {
		return nil, fmt.Errorf("%w: %q", ErrReservedColumn, sortingIndexColumn)
	}
	work := t.Copy()
	order := make([]int, work.NumRows())
	for i := range order {
		order[i] = i
	}
	if err := work.AddIntColumn(sortingIndexColumn, order); err != nil {
		return nil, err
	}

	var (
		labelled *table.Table
		err      error
	)
	switch {
	case cfg.catCol != "":
		labelled, err = composeLevels(work, alloc, cfg)
	case cfg.idCol != "":
		labelled, err = groupUniques(work, alloc, cfg.idCol, cfg)
	default:
		labelled, err = group(work, alloc, cfg)
	}
	if err != nil {
		return nil, err
	}

	sorted, err := labelled.SortByInt(sortingIndexColumn)
	if err != nil {
		return nil, err
	}
	return sorted.DropColumns(sortingIndexColumn)
}

func composeLevels(work *table.Table, alloc Allocator, cfg *config) (*table.Table, error) {
	levels, err := work.SubsetByLevels(cfg.catCol, false)
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return group(work, alloc, cfg)
	}

	lcfg := *cfg
	lcfg.column = cfg.catCol

	parts := make([]*table.Table, 0, len(levels))
	for _, level := range levels {
		var part *table.Table
		if cfg.idCol != "" {
			part, err = groupUniques(level.Table, alloc, cfg.idCol, &lcfg)
		} else {
			part, err = group(level.Table, alloc, &lcfg)
		}
		if err != nil {
			return nil, fmt.Errorf("level %v: %w", level.Value, err)
		}
		parts = append(parts, part)
	}
	cfg.log.Debug("grouped levels",
		slog.String("cat_col", cfg.catCol),
		slog.Int("levels", len(levels)),
		logger.Rows(work.NumRows()),
	)
	return table.Concat(parts...)
}
