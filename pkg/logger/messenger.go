package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ErrNegativeIndent is returned when an indentation change would go below zero.
var ErrNegativeIndent = errors.New("logger: indentation cannot be negative")

// Messenger prints progress messages with a configurable indentation.
// When not verbose, every call is a no-op.
type Messenger struct {
	verbose bool
	indent  int
	sink    func(string)
}

// MessengerOption configures a Messenger.
type MessengerOption func(*Messenger)

// WithVerbose toggles message output.
func WithVerbose(verbose bool) MessengerOption {
	return func(m *Messenger) { m.verbose = verbose }
}

// WithIndent sets the starting indentation. Negative values are clamped to zero.
func WithIndent(n int) MessengerOption {
	return func(m *Messenger) { m.indent = max(0, n) }
}

// WithSink replaces the message writer.
func WithSink(fn func(string)) MessengerOption {
	return func(m *Messenger) {
		if fn != nil {
			m.sink = fn
		}
	}
}

// WithWriter writes each message as a line to w.
func WithWriter(w io.Writer) MessengerOption {
	return func(m *Messenger) {
		if w != nil {
			m.sink = func(s string) { fmt.Fprintln(w, s) }
		}
	}
}

// WithSlog routes messages to l at the given level.
func WithSlog(l *slog.Logger, level slog.Level) MessengerOption {
	return func(m *Messenger) {
		if l == nil {
			return
		}
		m.sink = func(s string) {
			l.Log(context.Background(), level, strings.TrimLeft(s, " "), slog.Int("indent", m.indent))
		}
	}
}

// NewMessenger creates a verbose Messenger printing to stdout.
func NewMessenger(opts ...MessengerOption) *Messenger {
	m := &Messenger{
		verbose: true,
		sink:    func(s string) { fmt.Fprintln(os.Stdout, s) },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Silent returns a Messenger that prints nothing.
func Silent() *Messenger {
	return NewMessenger(WithVerbose(false))
}

// OrSilent returns m, or a silent Messenger when m is nil.
func OrSilent(m *Messenger) *Messenger {
	if m == nil {
		return Silent()
	}
	return m
}

func (m *Messenger) Verbose() bool { return m.verbose }

func (m *Messenger) Indent() int { return m.indent }

// Msg prints the objects separated by spaces after the current indentation.
func (m *Messenger) Msg(objs ...any) {
	_ = MsgIf(m.verbose, m.indent, objs, m.sink)
}

// MsgIf joins objs with spaces, indents the line and passes it to every sink,
// but only when verbose is set. Nil sinks are skipped.
func MsgIf(verbose bool, indent int, objs []any, sinks ...func(string)) error {
	if indent < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIndent, indent)
	}
	if !verbose {
		return nil
	}
	parts := make([]string, len(objs))
	for i, o := range objs {
		parts[i] = fmt.Sprint(o)
	}
	line := strings.Repeat(" ", indent) + strings.Join(parts, " ")
	for _, sink := range sinks {
		if sink != nil {
			sink(line)
		}
	}
	return nil
}

// Msgf prints a formatted message after the current indentation.
func (m *Messenger) Msgf(format string, args ...any) {
	if !m.verbose {
		return
	}
	m.sink(strings.Repeat(" ", m.indent) + fmt.Sprintf(format, args...))
}

// Now prints msg followed by the current local time in layout.
// An empty layout uses "2006-01-02 15:04:05".
func (m *Messenger) Now(msg, layout string) {
	if layout == "" {
		layout = time.DateTime
	}
	m.Msg(msg + time.Now().Format(layout))
}

// SetIndent replaces the indentation.
func (m *Messenger) SetIndent(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIndent, n)
	}
	m.indent = n
	return nil
}

// AddIndent shifts the indentation by delta.
func (m *Messenger) AddIndent(delta int) error {
	return m.SetIndent(m.indent + delta)
}

// WithIndentation runs fn with the indentation set to n and restores it afterwards.
func (m *Messenger) WithIndentation(n int, fn func()) error {
	prev := m.indent
	if err := m.SetIndent(n); err != nil {
		return err
	}
	defer func() { m.indent = prev }()
	fn()
	return nil
}

// WithAddedIndentation runs fn with the indentation shifted by delta.
func (m *Messenger) WithAddedIndentation(delta int, fn func()) error {
	return m.WithIndentation(m.indent+delta, fn)
}
