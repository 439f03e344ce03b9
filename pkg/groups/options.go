package groups

import (
	"log/slog"
	"math/rand/v2"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

const (
	// DefaultGroupColumn is the name of the label column added to tables.
	DefaultGroupColumn = "group"

	sortingIndexColumn = ".sorting_index"
)

// Option configures a grouping call.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	shuffle  bool
	rounding Rounding
	log      *slog.Logger
	groupCol string
	column   string
	idCol    string
	catCol   string
}

func defaultConfig() *config {
	return &config{
		shuffle:  true,
		rounding: RoundingFloor,
		groupCol: DefaultGroupColumn,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.log = logger.OrDiscard(cfg.log).With(logger.Component("groups"))
	return cfg
}

// WithRand shuffles labels with r instead of the global generator.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithoutShuffle keeps labels in contiguous ascending order.
func WithoutShuffle() Option {
	return func(c *config) { c.shuffle = false }
}

// WithRounding sets the rounding of proportional group sizes.
func WithRounding(r Rounding) Option {
	return func(c *config) { c.rounding = r }
}

// WithLogger logs allocations at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithGroupColumn names the label column. Defaults to "group".
func WithGroupColumn(name string) Option {
	return func(c *config) {
		if name != "" {
			c.groupCol = name
		}
	}
}

// WithColumn sets the column whose rows Group labels. Only its length is used;
// values are not balanced. Defaults to the first column.
func WithColumn(name string) Option {
	return func(c *config) { c.column = name }
}

// WithIDColumn keeps rows sharing a value of name in the same group.
func WithIDColumn(name string) Option {
	return func(c *config) { c.idCol = name }
}

// WithCatColumn runs the grouping separately within each level of name.
func WithCatColumn(name string) Option {
	return func(c *config) { c.catCol = name }
}

func (c *config) shuffleInts(xs []int) {
	swap := func(i, j int) { xs[i], xs[j] = xs[j], xs[i] }
	if c.rng != nil {
		c.rng.Shuffle(len(xs), swap)
		return
	}
	rand.Shuffle(len(xs), swap)
}
