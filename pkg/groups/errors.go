package groups

import "errors"

var (
	ErrInvalidProportions = errors.New("groups: invalid proportions")
	ErrInvalidGroupCount  = errors.New("groups: invalid number of groups")
	ErrInvalidRounding    = errors.New("groups: invalid rounding mode")
	ErrUnknownMethod      = errors.New("groups: unknown allocation method")
	ErrSizeMismatch       = errors.New("groups: group sizes do not sum to the number of units")
	ErrUnmatchedID        = errors.New("groups: id has no group")
	ErrReservedColumn     = errors.New("groups: column name is reserved")
)
