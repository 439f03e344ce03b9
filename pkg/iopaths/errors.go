package iopaths

import "errors"

var (
	ErrUnknownCollection   = errors.New("iopaths: unknown collection")
	ErrCollectionNotSet    = errors.New("iopaths: collection is not set")
	ErrNotOutputCollection = errors.New("iopaths: not an output collection")
	ErrUnknownName         = errors.New("iopaths: name is not in any collection")
	ErrDuplicateKey        = errors.New("iopaths: name used in more than one collection")
	ErrDuplicatePath       = errors.New("iopaths: duplicate path")
	ErrEmptyPath           = errors.New("iopaths: empty path")
	ErrPathNotFound        = errors.New("iopaths: path does not exist")
	ErrPathExists          = errors.New("iopaths: path already exists")
	ErrNestedPath          = errors.New("iopaths: disallowed nested path")
	ErrNotDirectory        = errors.New("iopaths: path is not a directory")
	ErrNotFile             = errors.New("iopaths: path is not a file")

	ErrFailedToGetAbsolutePath = errors.New("iopaths: failed to get absolute path")
	ErrFailedToCreateDirectory = errors.New("iopaths: failed to create directory")
	ErrFailedToDeleteDirectory = errors.New("iopaths: failed to delete directory")
	ErrFailedToDeleteFile      = errors.New("iopaths: failed to delete file")
	ErrFailedToMoveFile        = errors.New("iopaths: failed to move file")
	ErrFailedToReadFile        = errors.New("iopaths: failed to read file")
	ErrFailedToWriteFile       = errors.New("iopaths: failed to write file")
)
