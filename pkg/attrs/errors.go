package attrs

import "errors"

var (
	ErrNilObject      = errors.New("attrs: object is nil")
	ErrInvalidPath    = errors.New("attrs: invalid path")
	ErrNotFound       = errors.New("attrs: path not found")
	ErrNotTraversable = errors.New("attrs: value is neither a map nor a struct")
	ErrNotSettable    = errors.New("attrs: value cannot be set")
	ErrTypeMismatch   = errors.New("attrs: value type does not match")
	ErrMutate         = errors.New("attrs: mutation failed")
)
