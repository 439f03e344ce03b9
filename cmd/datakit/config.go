package main

import (
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

// Config holds the settings shared by all commands.
type Config struct {
	LogLevel       string `env:"DATAKIT_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat      string `env:"DATAKIT_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Service        string `env:"DATAKIT_SERVICE" envDefault:"datakit" validate:"required"`
	AllowOverwrite bool   `env:"DATAKIT_ALLOW_OVERWRITE" envDefault:"false"`
	Verbose        bool   `env:"DATAKIT_VERBOSE" envDefault:"true"`
	// Seed makes runs reproducible. Zero draws a random seed.
	Seed uint64 `env:"DATAKIT_SEED"`
}

type runIDKey struct{}

func (c Config) logger(w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithLevelName(c.LogLevel),
		logger.WithFormat(logger.Format(c.LogFormat)),
		logger.WithOutput(w),
		logger.WithAttr(slog.String("service", c.Service)),
		logger.WithContextValue("run_id", runIDKey{}),
	)
}

// rng returns a seeded generator, or nil to use the global one.
func (c Config) rng(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = c.Seed
	}
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
