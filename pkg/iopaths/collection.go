package iopaths

import (
	"fmt"
	"slices"
)

// Collection names a group of paths with shared checks.
type Collection string

const (
	// InFiles must be existing files.
	InFiles Collection = "in_files"
	// InDirs must be existing directories.
	InDirs Collection = "in_dirs"
	// OutFiles must not exist unless overwriting is allowed.
	OutFiles Collection = "out_files"
	OutDirs  Collection = "out_dirs"
	// TmpFiles must not exist unless overwriting is allowed.
	TmpFiles Collection = "tmp_files"
	// TmpDirs must not exist.
	TmpDirs Collection = "tmp_dirs"
)

// Collections lists every collection in display order.
var Collections = []Collection{InFiles, InDirs, OutFiles, OutDirs, TmpFiles, TmpDirs}

var outputCollections = []Collection{OutFiles, OutDirs, TmpFiles, TmpDirs}

// ParseCollection validates a collection name.
func ParseCollection(s string) (Collection, error) {
	c := Collection(s)
	if !slices.Contains(Collections, c) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
	}
	return c, nil
}

func (c Collection) String() string { return string(c) }

func (c Collection) isDir() bool {
	return c == InDirs || c == OutDirs || c == TmpDirs
}

// Nesting forbids paths of Inner from lying inside paths of Outer.
type Nesting struct {
	Inner Collection
	Outer Collection
}

// DefaultDisallowedNestings keeps inputs and outputs out of temporary directories.
func DefaultDisallowedNestings() []Nesting {
	return []Nesting{
		{InFiles, TmpDirs},
		{OutFiles, TmpDirs},
		{InDirs, TmpDirs},
		{OutDirs, TmpDirs},
	}
}

// DefaultAllowDuplicatesIn lets several names share a directory.
func DefaultAllowDuplicatesIn() []Collection {
	return []Collection{InDirs, OutDirs, TmpDirs}
}

// pairs checked for the same path appearing in both collections
var crossDuplicateChecks = [][2]Collection{
	{InFiles, OutFiles},
	{InFiles, TmpFiles},
	{OutFiles, TmpFiles},
	{TmpDirs, InDirs},
	{TmpDirs, OutDirs},
}
