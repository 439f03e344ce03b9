package array

import "errors"

var (
	ErrLengthMismatch = errors.New("array: slices have different lengths")
	ErrInvalidAmount  = errors.New("array: blend amount must be between 0 and 1")
	ErrInvalidWindow  = errors.New("array: invalid window options")
	ErrEmpty          = errors.New("array: empty input")
)
