package timestamps

import (
	"errors"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

// DefaultTimerMessage prefixes reported step durations.
const DefaultTimerMessage = "Took:"

// StepTimer stamps the start and end of steps and reports their durations.
type StepTimer struct {
	*Timestamps
	message string
	msg     *logger.Messenger
}

// NewStepTimer reports through m, or stays quiet when m is nil or not verbose.
func NewStepTimer(message string, m *logger.Messenger, opts ...Option) *StepTimer {
	if message == "" {
		message = DefaultTimerMessage
	}
	return &StepTimer{
		Timestamps: New(opts...),
		message:    message,
		msg:        logger.OrSilent(m),
	}
}

// TimeStep stamps before and after fn, even when fn fails, and reports
// "<message> hh:mm:ss" at the given indentation. An empty message uses the
// timer's default.
func (s *StepTimer) TimeStep(indent int, message string, fn func() error) (err error) {
	if message == "" {
		message = s.message
	}
	if err := s.Stamp(); err != nil {
		return err
	}
	defer func() {
		if stampErr := s.Stamp(); stampErr != nil {
			err = errors.Join(err, stampErr)
			return
		}
		took, tookErr := s.Last()
		if tookErr != nil {
			err = errors.Join(err, tookErr)
			return
		}
		if s.msg.Verbose() {
			if indentErr := s.msg.WithIndentation(indent, func() {
				s.msg.Msg(message, FormatHHMMSS(took))
			}); indentErr != nil {
				err = errors.Join(err, indentErr)
			}
		}
	}()
	return fn()
}
