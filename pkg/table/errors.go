package table

import "errors"

var (
	ErrColumnNotFound   = errors.New("table: column not found")
	ErrDuplicateColumn  = errors.New("table: duplicate column name")
	ErrLengthMismatch   = errors.New("table: column length mismatch")
	ErrIndexOutOfRange  = errors.New("table: index out of range")
	ErrSchemaMismatch   = errors.New("table: tables have different columns")
	ErrNoColumns        = errors.New("table: table has no columns")
	ErrNotInteger       = errors.New("table: value is not an integer")
	ErrUnmatchedKey     = errors.New("table: join key has no match")
	ErrDuplicateKey     = errors.New("table: join key is not unique in right table")
	ErrUncomparable     = errors.New("table: value cannot be used as a key")
	ErrEmptyInput       = errors.New("table: no data to read")
	ErrInvalidDirection = errors.New("table: invalid comparison direction")
	ErrInvalidThreshold = errors.New("table: threshold must be between 0 and 1")
	ErrValueNotFound    = errors.New("table: value not found")
	ErrInvalidAxis      = errors.New("table: invalid axis")
	ErrIncludeExclude   = errors.New("table: include and exclude are mutually exclusive")
	ErrInvalidDegree    = errors.New("table: polynomial degree must be at least 1")
	ErrNotNumeric       = errors.New("table: value is not numeric")
)
