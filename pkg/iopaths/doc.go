// Package iopaths manages the named input, output and temporary paths of a
// command or pipeline.
//
// # Architecture
//
// Paths live in six collections: in_files, in_dirs, out_files, out_dirs,
// tmp_files and tmp_dirs. Every change re-validates the whole set:
//   - names are unique across collections
//   - in_files and in_dirs exist with the right type
//   - out_files and tmp_files do not exist when registered, unless
//     overwriting is allowed
//   - tmp_dirs do not exist when registered
//   - a path is used once per collection, except in the collections named
//     by WithAllowDuplicatesIn, and never in both collections of a
//     cross-checked pair such as in_files and out_files
//   - inputs and outputs do not lie inside tmp_dirs
//
// A failed change leaves the previous state in place. "-" stands for
// standard input and skips the file system checks.
//
// # Usage
//
//	paths, err := iopaths.New(
//		iopaths.WithPaths(iopaths.InFiles, map[string]string{"data": "data.csv"}),
//		iopaths.WithPaths(iopaths.OutDirs, map[string]string{"out": "results"}),
//	)
//	if err != nil {
//		return err
//	}
//	if err := paths.MkOutputDirs(); err != nil {
//		return err
//	}
//	data := paths.MustGet("data")
//
// # Error Handling
//
// Validation failures wrap ErrDuplicateKey, ErrDuplicatePath,
// ErrPathNotFound, ErrPathExists or ErrNestedPath. File system failures
// wrap the ErrFailedTo* errors.
package iopaths
