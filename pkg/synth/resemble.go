package synth

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

// Distribution names how resembling data is generated.
type Distribution string

const (
	// Uniform draws between the minimum and maximum.
	Uniform Distribution = "uniform"
	// Gaussian draws from a normal distribution with the mean and standard deviation.
	Gaussian Distribution = "gaussian"
	// RobustGaussian draws from a normal distribution with the median and IQR.
	RobustGaussian Distribution = "robust gaussian"
	// Poisson draws from a Poisson distribution with the maximum as lambda.
	Poisson Distribution = "poisson"
	// Shuffle permutes the original values.
	Shuffle Distribution = "shuffle"
)

// ParseDistribution validates a distribution name.
func ParseDistribution(s string) (Distribution, error) {
	switch d := Distribution(s); d {
	case Uniform, Gaussian, RobustGaussian, Poisson, Shuffle:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDistribution, s)
	}
}

// Option configures generation.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	integers bool
	log      *slog.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.log = logger.OrDiscard(cfg.log).With(logger.Component("synth"))
	return cfg
}

// WithRand draws from r instead of the global generator.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// AsIntegers truncates generated values toward zero.
func AsIntegers() Option {
	return func(c *config) { c.integers = true }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

func (c *config) source() rand.Source {
	if c.rng == nil {
		return nil
	}
	return c.rng
}

func (c *config) shuffle(xs []float64) {
	swap := func(i, j int) { xs[i], xs[j] = xs[j], xs[i] }
	if c.rng != nil {
		c.rng.Shuffle(len(xs), swap)
		return
	}
	rand.Shuffle(len(xs), swap)
}

func (c *config) perm(n int) []int {
	if c.rng != nil {
		return c.rng.Perm(n)
	}
	return rand.Perm(n)
}

type sampler interface {
	Rand() float64
}

// Resemble generates len(x) values following the chosen distribution,
// parameterised by the statistics of the non-NaN values of x.
func Resemble(x []float64, dist Distribution, opts ...Option) ([]float64, error) {
	return resemble(x, dist, newConfig(opts))
}

func resemble(x []float64, dist Distribution, cfg *config) ([]float64, error) {
	if dist == Shuffle {
		out := slices.Clone(x)
		cfg.shuffle(out)
		return out, nil
	}

	desc, err := Describe(x)
	if err != nil {
		return nil, err
	}

	src := cfg.source()
	var s sampler
	switch dist {
	case Uniform:
		s = distuv.Uniform{Min: desc.Min, Max: desc.Max, Src: src}
	case Gaussian:
		s = distuv.Normal{Mu: desc.Mean, Sigma: finiteOrZero(desc.Std), Src: src}
	case RobustGaussian:
		s = distuv.Normal{Mu: desc.Median, Sigma: finiteOrZero(desc.IQR), Src: src}
	case Poisson:
		if desc.Max < 0 {
			return nil, fmt.Errorf("%w: poisson lambda %v is negative", ErrInvalidParameter, desc.Max)
		}
		s = distuv.Poisson{Lambda: desc.Max, Src: src}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, string(dist))
	}

	out := make([]float64, len(x))
	for i := range out {
		v := s.Rand()
		if cfg.integers {
			v = math.Trunc(v)
		}
		out[i] = v
	}
	cfg.log.Debug("resembled series",
		slog.String("distribution", string(dist)),
		logger.Rows(len(out)),
	)
	return out, nil
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
