package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/datakit/pkg/config"
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/timestamps"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage error")

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"fold":      {"add a balanced fold column", runFold},
	"partition": {"split into balanced partitions", runPartition},
	"noise":     {"simulate noise resembling the data", runNoise},
	"distort":   {"distort the data towards resembling noise", runDistort},
}

// app carries the collaborators shared by the commands.
type app struct {
	cfg    Config
	log    *slog.Logger
	msg    *logger.Messenger
	timer  *timestamps.StepTimer
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("datakit", flag.ContinueOnError)
	global.SetOutput(stderr)
	envFile := global.String("env", "", "load environment variables from this .env file")
	global.Usage = func() { usage(stderr, global) }
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return exitUsage
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", rest[0])
		global.Usage()
		return exitUsage
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
	}
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	msg := logger.NewMessenger(logger.WithVerbose(cfg.Verbose), logger.WithWriter(stderr))
	a := &app{
		cfg:    cfg,
		log:    cfg.logger(stderr).With(slog.String("command", rest[0])),
		msg:    msg,
		timer:  timestamps.NewStepTimer("Took:", msg),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	ctx = context.WithValue(ctx, runIDKey{}, a.timer.RunID())
	if err := cmd.run(ctx, a, rest[1:]); err != nil {
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		a.log.ErrorContext(ctx, "command failed", logger.Error(err))
		return exitError
	}
	if total, err := a.timer.TotalTime(); err == nil {
		a.msg.Msg("Total:", timestamps.FormatHHMMSS(total))
	}
	return exitOK
}

func usage(w io.Writer, global *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: datakit [-env file] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags:")
	global.PrintDefaults()
}

// parseFlags parses a subcommand's flags and validates the bound arguments.
func parseFlags(fs *flag.FlagSet, args []string, bound any, stderr io.Writer) error {
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return errUsage
	}
	if err := config.Validate(bound); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return errors.Join(errUsage, err)
	}
	return nil
}

// step times fn as one reported step, unless ctx is already done.
func (a *app) step(ctx context.Context, message string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.timer.TimeStep(4, message, fn)
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, part)
		}
		out = append(out, v)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
