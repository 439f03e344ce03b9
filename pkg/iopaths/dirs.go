package iopaths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

// DirOption configures MkDir and RmDir.
type DirOption func(*dirConfig)

type dirConfig struct {
	argName       string
	failIfExists  bool
	failIfMissing bool
	allowNonDir   bool
	msg           *logger.Messenger
}

func newDirConfig(opts []DirOption) *dirConfig {
	cfg := &dirConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.msg = logger.OrSilent(cfg.msg)
	return cfg
}

func (c *dirConfig) prefix() string {
	if c.argName == "" {
		return ""
	}
	return fmt.Sprintf("`%s` ", c.argName)
}

// WithArgName names the path in messages and errors.
func WithArgName(name string) DirOption {
	return func(c *dirConfig) { c.argName = name }
}

// FailIfExists makes MkDir fail for an existing path.
func FailIfExists() DirOption {
	return func(c *dirConfig) { c.failIfExists = true }
}

// FailIfMissing makes RmDir fail for a missing path.
func FailIfMissing() DirOption {
	return func(c *dirConfig) { c.failIfMissing = true }
}

// AllowNonDir makes RmDir ignore a path that is not a directory.
func AllowNonDir() DirOption {
	return func(c *dirConfig) { c.allowNonDir = true }
}

// WithMessenger reports created and removed directories.
func WithMessenger(m *logger.Messenger) DirOption {
	return func(c *dirConfig) { c.msg = m }
}

// MkDir creates path and its parents.
func MkDir(path string, opts ...DirOption) error {
	cfg := newDirConfig(opts)
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	_, statErr := os.Stat(abs)
	exists := statErr == nil
	if exists && cfg.failIfExists {
		return fmt.Errorf("%w: %sdirectory %s", ErrPathExists, cfg.prefix(), abs)
	}
	if !exists {
		cfg.msg.Msgf("%sdirectory does not exist and will be created: %s", cfg.prefix(), abs)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}
	return nil
}

// RmDir removes the directory at path and everything below it.
func RmDir(path string, opts ...DirOption) error {
	cfg := newDirConfig(opts)
	info, err := os.Stat(path)
	if err != nil {
		if cfg.failIfMissing {
			return fmt.Errorf("%w: %spath %s", ErrPathNotFound, cfg.prefix(), path)
		}
		return nil
	}
	if !info.IsDir() {
		if cfg.allowNonDir {
			return nil
		}
		return fmt.Errorf("%w: %spath %s", ErrNotDirectory, cfg.prefix(), path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	cfg.msg.Msgf("%sdirectory will be removed: %s", cfg.prefix(), abs)
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteDirectory, err)
	}
	return nil
}
