package timestamps

import "errors"

var (
	ErrDuplicateName    = errors.New("timestamps: name already used")
	ErrNameNotFound     = errors.New("timestamps: name not found")
	ErrIndexOutOfRange  = errors.New("timestamps: index out of range")
	ErrNegativeDuration = errors.New("timestamps: end is earlier than start")
	ErrTooManyNames     = errors.New("timestamps: stamp takes at most one name")
	ErrNoPrevious       = errors.New("timestamps: step 0 has no previous step")
)
