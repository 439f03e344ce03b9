package array

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/datakit/pkg/validator"
)

// WindowOptions configures Window. Size and Gap are counted in units of
// SampleRate samples.
type WindowOptions struct {
	Size       int
	Gap        int
	SampleRate int
	// Rolling slides the window Gap units at a time. Otherwise windows are
	// taken back to back with Gap units skipped between them.
	Rolling bool
	// Reverse starts from the end of x. Element order inside windows is kept.
	Reverse bool
	// DiscardShorts returns no windows when x is shorter than one window.
	// Otherwise x itself is returned as the only, uncounted, window.
	DiscardShorts bool
}

// DefaultWindowOptions returns rolling windows of 2 samples moving 1 sample at a time.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{Size: 2, Gap: 1, SampleRate: 1, Rolling: true, DiscardShorts: true}
}

func (o WindowOptions) validate() error {
	rules := []validator.Rule{
		validator.MinNum("size", o.Size, 1),
		validator.MinNum("sample_rate", o.SampleRate, 1),
		validator.MinNum("gap", o.Gap, 0),
	}
	if o.Rolling {
		rules = append(rules, validator.MinNum("gap", o.Gap, 1))
	}
	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidWindow, err)
	}
	return nil
}

// Window splits x, e.g. a time series, into windows and returns them with
// the number of full windows. Windows are copies of the underlying data.
func Window[T any](x []T, opts WindowOptions) ([][]T, int, error) {
	if err := opts.validate(); err != nil {
		return nil, 0, err
	}
	n := opts.Size * opts.SampleRate
	gap := opts.Gap * opts.SampleRate
	length := len(x)

	if length < n {
		if opts.DiscardShorts {
			return [][]T{}, 0, nil
		}
		return [][]T{slices.Clone(x)}, 0, nil
	}

	var count int
	var bounds func(i int) (int, int)
	if opts.Rolling {
		count = (length-n)/gap + 1
		bounds = func(i int) (int, int) {
			if opts.Reverse {
				end := length - i*gap
				return end - n, end
			}
			return i * gap, i*gap + n
		}
	} else {
		step := n + gap
		count = length / step
		if length%step >= n {
			count++
		}
		bounds = func(i int) (int, int) {
			if opts.Reverse {
				end := length - i*n - i*gap
				return end - n, end
			}
			start := i*n + i*gap
			return start, start + n
		}
	}

	out := make([][]T, count)
	for i := range out {
		lo, hi := bounds(i)
		if lo < 0 || hi > length {
			return nil, 0, fmt.Errorf("%w: window %d out of range", ErrInvalidWindow, i)
		}
		out[i] = slices.Clone(x[lo:hi])
	}
	return out, count, nil
}

// WindowedReverse reverses x window by window: with wsize 2,
// [1 2 3 4 5] becomes [2 1 4 3 5].
func WindowedReverse[T any](x []T, wsize int) ([]T, error) {
	if err := validator.Apply(validator.MinNum("wsize", wsize, 1)); err != nil {
		return nil, errors.Join(ErrInvalidWindow, err)
	}
	out := make([]T, 0, len(x))
	for pos := 0; pos < len(x); pos += wsize {
		w := slices.Clone(x[pos:min(pos+wsize, len(x))])
		slices.Reverse(w)
		out = append(out, w...)
	}
	return out, nil
}
