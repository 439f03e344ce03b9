package table

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

// PolyOptions configures Polynomialize.
type PolyOptions struct {
	// Degree is the highest power added. Degree 1 adds nothing.
	Degree int
	// Suffix goes between the column name and the power. Defaults to "_poly".
	Suffix string
	// Exclude lists columns that get no polynomial terms.
	Exclude []string
	// Logger receives a warning when non-numeric columns are skipped.
	Logger *slog.Logger
}

// Polynomialize returns a copy of t with power columns added after the
// originals: for every included column c and power d in 2..Degree, a column
// c<suffix>d. Columns are ordered by power, then by original position.
// Non-numeric columns are excluded automatically.
func Polynomialize(t *Table, opts PolyOptions) (*Table, error) {
	if opts.Degree < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, opts.Degree)
	}
	if opts.Suffix == "" {
		opts.Suffix = "_poly"
	}
	log := logger.OrDiscard(opts.Logger)

	var include, auto []string
	for _, name := range t.names {
		if slices.Contains(opts.Exclude, name) {
			continue
		}
		if !t.IsNumeric(name) {
			auto = append(auto, name)
			continue
		}
		include = append(include, name)
	}
	if len(auto) > 0 {
		log.Warn("excluded non-numeric columns from polynomial features",
			logger.Columns(len(auto)),
			slog.Any("names", auto),
		)
	}

	out := t.Copy()
	for d := 2; d <= opts.Degree; d++ {
		for _, name := range include {
			src := t.cols[t.index[name]]
			vals := make([]any, len(src))
			for i, v := range src {
				vals[i] = power(v, d)
			}
			if err := out.AddColumn(fmt.Sprintf("%s%s%d", name, opts.Suffix, d), vals); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// power raises numeric cells to d, keeping integers integral.
func power(v any, d int) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int:
		return intPow(int64(x), d)
	case int64:
		return intPow(x, d)
	default:
		f, ok := ToFloat(v)
		if !ok {
			return nil
		}
		return math.Pow(f, float64(d))
	}
}

func intPow(x int64, d int) int64 {
	out := int64(1)
	for range d {
		out *= x
	}
	return out
}
