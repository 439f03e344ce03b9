package timestamps

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/datakit/pkg/table"
)

// Timestamps collects points in time, optionally named, and reports the
// durations between them.
type Timestamps struct {
	runID string
	times []time.Time
	names map[string]int
	clock func() time.Time
}

// Option configures Timestamps.
type Option func(*Timestamps)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(ts *Timestamps) { ts.clock = now }
}

// WithRunID sets the run identifier instead of a random UUID.
func WithRunID(id string) Option {
	return func(ts *Timestamps) { ts.runID = id }
}

// New creates an empty collection with a random run id.
func New(opts ...Option) *Timestamps {
	ts := &Timestamps{
		names: make(map[string]int),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}
	if ts.runID == "" {
		ts.runID = uuid.NewString()
	}
	return ts
}

// RunID identifies the collection in exports.
func (ts *Timestamps) RunID() string { return ts.runID }

func (ts *Timestamps) Len() int { return len(ts.times) }

// Stamp records the current time, under name when one is given.
func (ts *Timestamps) Stamp(name ...string) error {
	if len(name) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyNames, len(name))
	}
	if len(name) == 1 {
		if _, ok := ts.names[name[0]]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name[0])
		}
	}
	ts.times = append(ts.times, ts.clock())
	if len(name) == 1 {
		ts.names[name[0]] = len(ts.times) - 1
	}
	return nil
}

func (ts *Timestamps) resolve(idx int) (int, error) {
	i := idx
	if i < 0 {
		i += len(ts.times)
	}
	if i < 0 || i >= len(ts.times) {
		return 0, fmt.Errorf("%w: %d with %d timestamps", ErrIndexOutOfRange, idx, len(ts.times))
	}
	return i, nil
}

// Get returns the timestamp at idx. Negative indices count from the end.
func (ts *Timestamps) Get(idx int) (time.Time, error) {
	i, err := ts.resolve(idx)
	if err != nil {
		return time.Time{}, err
	}
	return ts.times[i], nil
}

func (ts *Timestamps) GetByName(name string) (time.Time, error) {
	i, err := ts.Index(name)
	if err != nil {
		return time.Time{}, err
	}
	return ts.times[i], nil
}

// Index returns the position of a named timestamp.
func (ts *Timestamps) Index(name string) (int, error) {
	i, ok := ts.names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return i, nil
}

// Name returns the name at idx, or "" for an unnamed timestamp.
func (ts *Timestamps) Name(idx int) (string, error) {
	i, err := ts.resolve(idx)
	if err != nil {
		return "", err
	}
	for name, at := range ts.names {
		if at == i {
			return name, nil
		}
	}
	return "", nil
}

// Ref points at a timestamp by index or by name.
type Ref struct {
	idx  int
	name string
}

// At refers to a timestamp by index. Negative indices count from the end.
func At(idx int) Ref { return Ref{idx: idx} }

// Named refers to a timestamp by name.
func Named(name string) Ref { return Ref{name: name} }

func (ts *Timestamps) lookup(r Ref) (time.Time, error) {
	if r.name != "" {
		return ts.GetByName(r.name)
	}
	return ts.Get(r.idx)
}

// Took returns end minus start. With raiseNegative a negative
// difference is an error.
func (ts *Timestamps) Took(start, end Ref, raiseNegative bool) (time.Duration, error) {
	from, err := ts.lookup(start)
	if err != nil {
		return 0, err
	}
	to, err := ts.lookup(end)
	if err != nil {
		return 0, err
	}
	d := to.Sub(from)
	if d < 0 && raiseNegative {
		return 0, fmt.Errorf("%w: %s", ErrNegativeDuration, d)
	}
	return d, nil
}

// Last is the duration between the two most recent timestamps.
func (ts *Timestamps) Last() (time.Duration, error) {
	return ts.Took(At(-2), At(-1), true)
}

// TotalTime is the duration between the first and last timestamps.
func (ts *Timestamps) TotalTime() (time.Duration, error) {
	return ts.Took(At(0), At(-1), true)
}

// Merge adds the timestamps of other, ordering all of them by time. With
// suffixIdentical, names used by both collections are renamed to unique
// "<name>_<k>" variants in each; otherwise names from other win.
// other is not modified.
func (ts *Timestamps) Merge(other *Timestamps, suffixIdentical bool) {
	type entry struct {
		at    time.Time
		name  string
		other bool
	}
	entries := make([]entry, 0, len(ts.times)+len(other.times))
	for i, at := range ts.times {
		entries = append(entries, entry{at: at, name: nameAt(ts.names, i)})
	}
	for i, at := range other.times {
		entries = append(entries, entry{at: at, name: nameAt(other.names, i), other: true})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].at.Before(entries[j].at) })

	renames := map[bool]map[string]string{false: {}, true: {}}
	if suffixIdentical {
		used := make(map[string]bool, len(ts.names)+len(other.names))
		for name := range ts.names {
			used[name] = true
		}
		for name := range other.names {
			used[name] = true
		}
		var duplicates []string
		for name := range ts.names {
			if _, ok := other.names[name]; ok {
				duplicates = append(duplicates, name)
			}
		}
		slices.Sort(duplicates)
		for _, fromOther := range []bool{false, true} {
			for _, name := range duplicates {
				unique := uniqueName(name, used)
				used[unique] = true
				renames[fromOther][name] = unique
			}
		}
	}

	times := make([]time.Time, len(entries))
	names := make(map[string]int, len(ts.names)+len(other.names))
	// names from ts first so that other wins on clashes
	for _, fromOther := range []bool{false, true} {
		for i, e := range entries {
			if e.other != fromOther || e.name == "" {
				continue
			}
			name := e.name
			if renamed, ok := renames[fromOther][name]; ok {
				name = renamed
			}
			names[name] = i
		}
	}
	for i, e := range entries {
		times[i] = e.at
	}
	ts.times = times
	ts.names = names
}

// Update merges other without renaming clashing names.
func (ts *Timestamps) Update(other *Timestamps) {
	ts.Merge(other, false)
}

// Equal compares the recorded times and names, ignoring run ids.
func (ts *Timestamps) Equal(other *Timestamps) bool {
	return slices.EqualFunc(ts.times, other.times, time.Time.Equal) &&
		maps.Equal(ts.names, other.names)
}

// ToTable returns one row per timestamp with the columns
// "Name", "Time Raw" (unix seconds) and "Time From Start" (hh:mm:ss).
func (ts *Timestamps) ToTable() *table.Table {
	n := len(ts.times)
	names := make([]any, n)
	raw := make([]any, n)
	fromStart := make([]any, n)
	for i, at := range ts.times {
		names[i] = nameAt(ts.names, i)
		raw[i] = float64(at.UnixNano()) / float64(time.Second)
		fromStart[i] = FormatHHMMSS(at.Sub(ts.times[0]))
	}
	return table.MustNew([]string{"Name", "Time Raw", "Time From Start"}, names, raw, fromStart)
}

// WriteCSV writes ToTable as CSV.
func (ts *Timestamps) WriteCSV(w io.Writer) error {
	return ts.ToTable().WriteCSV(w)
}

func (ts *Timestamps) String() string {
	var b strings.Builder
	b.WriteString("Timestamps:\n\n")
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tName\tTime Raw\tTime From Start")
	for i, at := range ts.times {
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%s\n",
			i, nameAt(ts.names, i),
			float64(at.UnixNano())/float64(time.Second),
			FormatHHMMSS(at.Sub(ts.times[0])),
		)
	}
	tw.Flush()
	return b.String()
}

func nameAt(names map[string]int, idx int) string {
	for name, at := range names {
		if at == idx {
			return name
		}
	}
	return ""
}

func uniqueName(name string, used map[string]bool) string {
	for k := 0; ; k++ {
		candidate := fmt.Sprintf("%s_%d", name, k)
		if !used[candidate] {
			return candidate
		}
	}
}
