package iopaths

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

// IOPaths holds named input, output and temporary paths in six
// collections and re-validates them on every change. Paths are stored
// absolute. A collection that was never set differs from an empty one.
type IOPaths struct {
	colls collections
	all   map[string]string

	allowNone          bool
	allowOverwriting   bool
	allowDuplicatesIn  []Collection
	disallowedNestings []Nesting
	note               string
	msg                *logger.Messenger
}

// Option configures IOPaths.
type Option func(*IOPaths)

// WithPaths sets a collection.
func WithPaths(c Collection, paths map[string]string) Option {
	return func(p *IOPaths) {
		if paths == nil {
			paths = map[string]string{}
		}
		p.colls[c] = maps.Clone(paths)
	}
}

// AllowNone drops empty paths instead of rejecting them.
func AllowNone() Option {
	return func(p *IOPaths) { p.allowNone = true }
}

// WithAllowOverwriting controls whether out and tmp files may exist.
// Overwriting is allowed by default.
func WithAllowOverwriting(allow bool) Option {
	return func(p *IOPaths) { p.allowOverwriting = allow }
}

// WithAllowDuplicatesIn lists collections where names may share a path.
func WithAllowDuplicatesIn(cs ...Collection) Option {
	return func(p *IOPaths) { p.allowDuplicatesIn = slices.Clone(cs) }
}

// WithDisallowedNestings replaces the default nesting rules.
func WithDisallowedNestings(ns ...Nesting) Option {
	return func(p *IOPaths) { p.disallowedNestings = slices.Clone(ns) }
}

// WithNote adds a note line to String.
func WithNote(note string) Option {
	return func(p *IOPaths) { p.note = note }
}

// WithReporter reports created and removed directories.
func WithReporter(m *logger.Messenger) Option {
	return func(p *IOPaths) { p.msg = m }
}

// New builds and validates a set of paths.
func New(opts ...Option) (*IOPaths, error) {
	p := &IOPaths{
		colls:              collections{},
		allowOverwriting:   true,
		allowDuplicatesIn:  DefaultAllowDuplicatesIn(),
		disallowedNestings: DefaultDisallowedNestings(),
	}
	for _, opt := range opts {
		opt(p)
	}
	for c := range p.colls {
		if _, err := ParseCollection(string(c)); err != nil {
			return nil, err
		}
	}
	p.msg = logger.OrSilent(p.msg)
	candidate := p.colls
	p.colls = collections{}
	if err := p.commit(candidate); err != nil {
		return nil, err
	}
	return p, nil
}

// commit validates cs and replaces the current collections on success.
func (p *IOPaths) commit(cs collections) error {
	checked, all, err := p.prepare(cs)
	if err != nil {
		return err
	}
	p.colls = checked
	p.all = all
	return nil
}

// Check re-runs the validations against the file system. Paths that must
// not exist are only checked when they are first registered.
func (p *IOPaths) Check() error {
	return p.commit(p.colls)
}

func (p *IOPaths) newWithSettings(cs collections) (*IOPaths, error) {
	out := &IOPaths{
		allowNone:          p.allowNone,
		allowOverwriting:   p.allowOverwriting,
		allowDuplicatesIn:  slices.Clone(p.allowDuplicatesIn),
		disallowedNestings: slices.Clone(p.disallowedNestings),
		note:               p.note,
		msg:                p.msg,
	}
	if err := out.commit(cs); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the path stored under name.
func (p *IOPaths) Get(name string) (string, error) {
	path, ok := p.all[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return path, nil
}

// MustGet is Get that panics on unknown names.
func (p *IOPaths) MustGet(name string) string {
	path, err := p.Get(name)
	if err != nil {
		panic(err)
	}
	return path
}

// Collection returns a copy of a collection, nil when it was never set.
func (p *IOPaths) Collection(c Collection) (map[string]string, error) {
	if _, err := ParseCollection(string(c)); err != nil {
		return nil, err
	}
	if p.colls[c] == nil {
		return nil, nil
	}
	return maps.Clone(p.colls[c]), nil
}

// CollectionOf returns the collection holding name.
func (p *IOPaths) CollectionOf(name string) (Collection, error) {
	for _, c := range Collections {
		if _, ok := p.colls[c][name]; ok {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownName, name)
}

func (p *IOPaths) CollectionSizes() map[Collection]int {
	out := make(map[Collection]int, len(Collections))
	for _, c := range Collections {
		out[c] = len(p.colls[c])
	}
	return out
}

func (p *IOPaths) NumPaths() int { return len(p.all) }

// SetCollection replaces a whole collection. A nil map unsets it.
func (p *IOPaths) SetCollection(c Collection, paths map[string]string) error {
	if _, err := ParseCollection(string(c)); err != nil {
		return err
	}
	cs := p.colls.clone()
	if paths == nil {
		delete(cs, c)
	} else {
		cs[c] = maps.Clone(paths)
	}
	return p.commit(cs)
}

// Set adds or replaces one path. The change is discarded when it fails
// validation.
func (p *IOPaths) Set(name, path string, c Collection) error {
	return p.SetMany(map[string]string{name: path}, c)
}

// SetMany adds or replaces paths in a collection.
func (p *IOPaths) SetMany(paths map[string]string, c Collection) error {
	if _, err := ParseCollection(string(c)); err != nil {
		return err
	}
	cs := p.colls.clone()
	if cs[c] == nil {
		cs[c] = map[string]string{}
	}
	maps.Copy(cs[c], paths)
	return p.commit(cs)
}

// Remove forgets a path. Nothing is deleted from disk.
func (p *IOPaths) Remove(name string) error {
	c, err := p.CollectionOf(name)
	if err != nil {
		return err
	}
	delete(p.colls[c], name)
	delete(p.all, name)
	return nil
}

// RemoveMany forgets several paths, stopping at the first unknown name.
func (p *IOPaths) RemoveMany(names ...string) error {
	for _, name := range names {
		if err := p.Remove(name); err != nil {
			return err
		}
	}
	return nil
}

// RemoveInDir forgets every path below dir, and dir itself when includeDir.
func (p *IOPaths) RemoveInDir(dir string, includeDir bool) error {
	abs, err := normalize(dir)
	if err != nil {
		return err
	}
	var names []string
	for name, path := range p.all {
		if isWithin(path, abs) || (includeDir && path == abs) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return p.RemoveMany(names...)
}

// MkOutputDir creates the parent directory of the named path.
func (p *IOPaths) MkOutputDir(name string) error {
	path, err := p.Get(name)
	if err != nil {
		return err
	}
	return MkDir(filepath.Dir(path), WithArgName(name), WithMessenger(p.msg))
}

// MkOutputDirs creates output directories: the directories themselves for
// out_dirs and tmp_dirs, the parents for out_files and tmp_files. Without
// arguments every set output collection is handled. Naming a collection
// that was never set is an error.
func (p *IOPaths) MkOutputDirs(cs ...Collection) error {
	explicit := len(cs) > 0
	if !explicit {
		cs = []Collection{OutDirs, OutFiles, TmpDirs, TmpFiles}
	}
	for _, c := range cs {
		if !slices.Contains(outputCollections, c) {
			return fmt.Errorf("%w: %q", ErrNotOutputCollection, c)
		}
		paths := p.colls[c]
		if paths == nil {
			if explicit {
				return fmt.Errorf("%w: %s", ErrCollectionNotSet, c)
			}
			continue
		}
		for _, name := range slices.Sorted(maps.Keys(paths)) {
			dir := paths[name]
			if dir == Stdin {
				continue
			}
			if !c.isDir() {
				dir = filepath.Dir(dir)
			}
			if err := MkDir(dir, WithArgName(name), WithMessenger(p.msg)); err != nil {
				return err
			}
		}
	}
	return nil
}

// RmOption configures the removal methods.
type RmOption func(*rmConfig)

type rmConfig struct {
	keepPath      bool
	ignoreMissing bool
}

// KeepPath leaves the removed path registered.
func KeepPath() RmOption {
	return func(c *rmConfig) { c.keepPath = true }
}

// IgnoreMissing skips paths that do not exist on disk.
func IgnoreMissing() RmOption {
	return func(c *rmConfig) { c.ignoreMissing = true }
}

func newRmConfig(opts []RmOption) rmConfig {
	var cfg rmConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// RmFile deletes the named file and forgets its path.
func (p *IOPaths) RmFile(name string, opts ...RmOption) error {
	cfg := newRmConfig(opts)
	path, err := p.Get(name)
	if err != nil {
		return err
	}
	info, statErr := os.Stat(path)
	switch {
	case statErr == nil && info.Mode().IsRegular():
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToDeleteFile, err)
		}
	case !cfg.ignoreMissing:
		return fmt.Errorf("%w: %q is not an existing file: %s", ErrNotFile, name, path)
	}
	if cfg.keepPath {
		return nil
	}
	return p.Remove(name)
}

// RmDir deletes the named directory and forgets it and every path below it.
func (p *IOPaths) RmDir(name string, opts ...RmOption) error {
	cfg := newRmConfig(opts)
	path, err := p.Get(name)
	if err != nil {
		return err
	}
	dirOpts := []DirOption{WithArgName(name + " path"), WithMessenger(p.msg)}
	if !cfg.ignoreMissing {
		dirOpts = append(dirOpts, FailIfMissing())
	}
	if err := RmDir(path, dirOpts...); err != nil {
		return err
	}
	if cfg.keepPath {
		return nil
	}
	return p.RemoveInDir(path, true)
}

// RmTmpDirs deletes every temporary directory.
func (p *IOPaths) RmTmpDirs(opts ...RmOption) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(p.colls[TmpDirs])) {
		if _, err := p.Get(name); err != nil {
			// already forgotten as part of an enclosing directory
			continue
		}
		errs = append(errs, p.RmDir(name, opts...))
	}
	return errors.Join(errs...)
}

// MvFile moves the named file to newPath and updates the stored path.
func (p *IOPaths) MvFile(name, newPath string) error {
	c, err := p.CollectionOf(name)
	if err != nil {
		return err
	}
	if err := os.Rename(p.all[name], newPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToMoveFile, err)
	}
	cs := p.colls.clone()
	cs[c][name] = newPath
	return p.commit(cs)
}

// NewTmpDir registers a not yet existing, uniquely named directory under
// parent in tmp_dirs and returns its path.
func (p *IOPaths) NewTmpDir(name, parent string) (string, error) {
	path := filepath.Join(parent, "tmp_"+uuid.NewString())
	if err := p.Set(name, path, TmpDirs); err != nil {
		return "", err
	}
	return p.Get(name)
}

// Update adds the paths of other, overwriting names that already exist in
// the same collection.
func (p *IOPaths) Update(other *IOPaths) error {
	cs := p.colls.clone()
	for _, c := range Collections {
		paths := other.colls[c]
		if paths == nil {
			continue
		}
		if cs[c] == nil {
			cs[c] = map[string]string{}
		}
		maps.Copy(cs[c], paths)
	}
	return p.commit(cs)
}

// Difference returns the entries of p not present with the same path in
// other, keeping p's settings.
func (p *IOPaths) Difference(other *IOPaths) (*IOPaths, error) {
	cs := collections{}
	for _, c := range Collections {
		this := p.colls[c]
		if this == nil {
			continue
		}
		diff := map[string]string{}
		for name, path := range this {
			if otherPath, ok := other.colls[c][name]; !ok || otherPath != path {
				diff[name] = path
			}
		}
		cs[c] = diff
	}
	return p.newWithSettings(cs)
}

// Equal compares the collections, treating unset and set collections as
// different.
func (p *IOPaths) Equal(other *IOPaths) bool {
	if p.NumPaths() != other.NumPaths() {
		return false
	}
	for _, c := range Collections {
		a, b := p.colls[c], other.colls[c]
		if (a == nil) != (b == nil) || !maps.Equal(a, b) {
			return false
		}
	}
	return true
}

const maxPathsPerCollection = 10

func (p *IOPaths) String() string {
	lines := []string{"Input and output paths"}
	for _, c := range Collections {
		paths := p.colls[c]
		if paths == nil {
			lines = append(lines, fmt.Sprintf("  %s (0)", c))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s (%d):", c, len(paths)))
		for i, name := range slices.Sorted(maps.Keys(paths)) {
			if i == maxPathsPerCollection {
				lines = append(lines, "    ...")
				break
			}
			lines = append(lines, fmt.Sprintf("    %s -> %s", name, paths[name]))
		}
	}
	if p.note != "" {
		lines = append(lines, "  Note: "+p.note)
	}
	return strings.Join(lines, "\n")
}
