package groups

import (
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/table"
)

// Fold returns a copy of t with a label column splitting the rows into n
// balanced folds. WithIDColumn keeps rows sharing an id in one fold and
// WithCatColumn balances the folds within each category level.
// Row order is preserved.
func Fold(t *table.Table, n int, opts ...Option) (*table.Table, error) {
	alloc, err := NewEvenDistribution(n)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	out, err := compose(t, alloc, cfg)
	if err != nil {
		return nil, err
	}
	cfg.log.Debug("folded", logger.Rows(out.NumRows()), logger.Groups(n))
	return out, nil
}

// FoldFactor is like Fold but returns only the fold labels, aligned with the rows of t.
func FoldFactor(t *table.Table, n int, opts ...Option) ([]int, error) {
	cfg := newConfig(opts)
	out, err := Fold(t, n, opts...)
	if err != nil {
		return nil, err
	}
	return out.IntColumn(cfg.groupCol)
}

// Partition splits t into one table per proportion in p, using the labels of
// the proportional allocator. If p sums to less than 1, a final extra
// partition holds the remaining rows. Partitions keep the original row order
// and do not carry the label column. A partition may be empty.
func Partition(t *table.Table, p []float64, opts ...Option) ([]*table.Table, error) {
	cfg := newConfig(opts)
	alloc, err := NewProportional(p, cfg.rounding)
	if err != nil {
		return nil, err
	}
	labelled, err := compose(t, alloc, cfg)
	if err != nil {
		return nil, err
	}
	lbls, err := labelled.IntColumn(cfg.groupCol)
	if err != nil {
		return nil, err
	}
	rest, err := labelled.DropColumns(cfg.groupCol)
	if err != nil {
		return nil, err
	}

	rows := make([][]int, alloc.NumGroups(len(lbls)))
	for i, l := range lbls {
		rows[l] = append(rows[l], i)
	}
	parts := make([]*table.Table, len(rows))
	for g, idx := range rows {
		if parts[g], err = rest.Take(idx); err != nil {
			return nil, err
		}
	}
	cfg.log.Debug("partitioned", logger.Rows(labelled.NumRows()), logger.Groups(len(parts)))
	return parts, nil
}
