package table

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

// Axis selects whether Drop removes columns or rows.
type Axis int

const (
	AxisColumns Axis = iota
	AxisRows
)

// DropOptions describes "drop <axis> where <target> makes up <direction> <thresh>".
type DropOptions struct {
	Target    Target
	Thresh    float64
	Direction Direction
	Axis      Axis
	// Include limits the search to these columns. Mutually exclusive with Exclude.
	Include []string
	// Exclude removes these columns from the search.
	Exclude []string
	// Messenger reports how much was dropped. Nil is silent.
	Messenger *logger.Messenger
}

// Drop returns a copy of t without the columns, or rows, where the target
// share satisfies the comparison. For rows, only the searched columns of each
// row are counted.
func Drop(t *Table, opts DropOptions) (*Table, error) {
	if opts.Include != nil && opts.Exclude != nil {
		return nil, ErrIncludeExclude
	}
	if opts.Direction == "" {
		opts.Direction = Greater
	}
	msg := logger.OrSilent(opts.Messenger)

	searched, err := searchedColumns(t, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	switch opts.Axis {
	case AxisColumns:
		var drop []string
		for _, name := range searched {
			hit, err := MakesUp(t.cols[t.index[name]], opts.Target, opts.Thresh, opts.Direction, false)
			if err != nil {
				return nil, err
			}
			if hit {
				drop = append(drop, name)
			}
		}
		msg.Msgf("Dropped %d columns.", len(drop))
		return t.DropColumns(drop...)

	case AxisRows:
		keep := make([]bool, t.nrows)
		dropped := 0
		row := make([]any, len(searched))
		for r := range t.nrows {
			for c, name := range searched {
				row[c] = t.cols[t.index[name]][r]
			}
			hit, err := MakesUp(row, opts.Target, opts.Thresh, opts.Direction, false)
			if err != nil {
				return nil, err
			}
			keep[r] = !hit
			if hit {
				dropped++
			}
		}
		msg.Msgf("Dropped %d rows.", dropped)
		return t.Filter(keep)

	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAxis, opts.Axis)
	}
}

func searchedColumns(t *Table, include, exclude []string) ([]string, error) {
	for _, name := range slices.Concat(include, exclude) {
		if !t.HasColumn(name) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
		}
	}
	if include != nil {
		out := make([]string, 0, len(include))
		for _, name := range t.names {
			if slices.Contains(include, name) {
				out = append(out, name)
			}
		}
		return out, nil
	}
	out := make([]string, 0, len(t.names))
	for _, name := range t.names {
		if !slices.Contains(exclude, name) {
			out = append(out, name)
		}
	}
	return out, nil
}
