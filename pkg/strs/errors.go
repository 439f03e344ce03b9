package strs

import "errors"

var (
	ErrInvalidSize       = errors.New("strs: size must be non-negative")
	ErrIllegalChars      = errors.New("strs: string contains illegal characters")
	ErrUnknownAggregate  = errors.New("strs: unknown aggregate function")
	ErrInvalidRange      = errors.New("strs: invalid range")
	ErrMalformedFunction = errors.New("strs: malformed function call")
)
