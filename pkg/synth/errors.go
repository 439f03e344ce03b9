package synth

import "errors"

var (
	ErrUnknownDistribution = errors.New("synth: unknown distribution")
	ErrEmpty               = errors.New("synth: no finite values to describe")
	ErrInvalidParameter    = errors.New("synth: invalid distribution parameter")
	ErrInvalidOptions      = errors.New("synth: invalid options")
	ErrNotNumeric          = errors.New("synth: column is not numeric")
)
