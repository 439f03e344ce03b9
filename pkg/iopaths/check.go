package iopaths

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Stdin marks a path read from standard input. It skips existence and
// duplicate checks and is never made absolute.
const Stdin = "-"

type collections map[Collection]map[string]string

func (cs collections) clone() collections {
	out := make(collections, len(cs))
	for c, paths := range cs {
		if paths != nil {
			out[c] = maps.Clone(paths)
		}
	}
	return out
}

// prepare validates and normalises a candidate set of collections and
// returns it together with the flat name to path map.
func (p *IOPaths) prepare(cs collections) (collections, map[string]string, error) {
	cs = cs.clone()

	for i, c1 := range Collections {
		for _, c2 := range Collections[i+1:] {
			if err := checkDifferentKeys(cs[c1], cs[c2], c1, c2); err != nil {
				return nil, nil, err
			}
		}
	}

	for _, c := range Collections {
		paths, err := p.checkCollection(c, cs[c])
		if err != nil {
			return nil, nil, err
		}
		if cs[c] != nil {
			cs[c] = paths
		}
	}

	for _, pair := range crossDuplicateChecks {
		if err := checkCrossDuplicates(cs[pair[0]], cs[pair[1]], pair[0], pair[1]); err != nil {
			return nil, nil, err
		}
	}
	for _, n := range p.disallowedNestings {
		if err := checkNesting(cs[n.Inner], cs[n.Outer], n); err != nil {
			return nil, nil, err
		}
	}

	all := make(map[string]string)
	for _, c := range Collections {
		maps.Copy(all, cs[c])
	}
	return cs, all, nil
}

func (p *IOPaths) checkCollection(c Collection, paths map[string]string) (map[string]string, error) {
	if paths == nil {
		return nil, nil
	}
	out := make(map[string]string, len(paths))
	for _, name := range slices.Sorted(maps.Keys(paths)) {
		path := paths[name]
		if path == "" {
			if p.allowNone {
				continue
			}
			return nil, fmt.Errorf("%w: %s[%q]", ErrEmptyPath, c, name)
		}
		abs, err := normalize(path)
		if err != nil {
			return nil, err
		}
		out[name] = abs
	}

	if !slices.Contains(p.allowDuplicatesIn, c) {
		if dups := duplicateNames(out); len(dups) > 0 {
			return nil, fmt.Errorf("%w in %s: %s", ErrDuplicatePath, c, strings.Join(dups, ", "))
		}
	}

	switch c {
	case InFiles:
		return out, checkExist(out, c, false)
	case InDirs:
		return out, checkExist(out, c, true)
	case OutFiles, TmpFiles:
		if !p.allowOverwriting {
			return out, checkMissing(p.added(c, out), c, false)
		}
	case TmpDirs:
		return out, checkMissing(p.added(c, out), c, true)
	}
	return out, nil
}

// added returns the entries of paths not already committed in c. Paths
// that must not exist are only checked when first registered, so creating
// them afterwards does not invalidate the set.
func (p *IOPaths) added(c Collection, paths map[string]string) map[string]string {
	out := make(map[string]string, len(paths))
	for name, path := range paths {
		if committed, ok := p.colls[c][name]; !ok || committed != path {
			out[name] = path
		}
	}
	return out
}

func normalize(path string) (string, error) {
	if path == Stdin {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}
	return abs, nil
}

func checkDifferentKeys(a, b map[string]string, ca, cb Collection) error {
	if a == nil || b == nil {
		return nil
	}
	var shared []string
	for name := range a {
		if _, ok := b[name]; ok {
			shared = append(shared, name)
		}
	}
	if len(shared) == 0 {
		return nil
	}
	slices.Sort(shared)
	return fmt.Errorf("%w: %s and %s share %s", ErrDuplicateKey, ca, cb, strings.Join(shared, ", "))
}

// duplicateNames describes every path used by more than one name,
// ignoring Stdin.
func duplicateNames(paths map[string]string) []string {
	byPath := make(map[string][]string)
	for _, name := range slices.Sorted(maps.Keys(paths)) {
		path := paths[name]
		if path == Stdin {
			continue
		}
		byPath[path] = append(byPath[path], name)
	}
	var out []string
	for _, path := range slices.Sorted(maps.Keys(byPath)) {
		if names := byPath[path]; len(names) > 1 {
			out = append(out, fmt.Sprintf("%s (%s)", path, strings.Join(names, ", ")))
		}
	}
	return out
}

func dedupe(paths map[string]string) map[string]string {
	out := make(map[string]string, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, name := range slices.Sorted(maps.Keys(paths)) {
		path := paths[name]
		if path != Stdin && seen[path] {
			continue
		}
		seen[path] = true
		out[name] = path
	}
	return out
}

func checkCrossDuplicates(a, b map[string]string, ca, cb Collection) error {
	if a == nil || b == nil {
		return nil
	}
	combined := make(map[string]string, len(a)+len(b))
	for name, path := range dedupe(a) {
		combined[ca.String()+"."+name] = path
	}
	for name, path := range dedupe(b) {
		combined[cb.String()+"."+name] = path
	}
	if dups := duplicateNames(combined); len(dups) > 0 {
		return fmt.Errorf("%w across %s and %s: %s", ErrDuplicatePath, ca, cb, strings.Join(dups, ", "))
	}
	return nil
}

func checkExist(paths map[string]string, c Collection, dir bool) error {
	for _, name := range slices.Sorted(maps.Keys(paths)) {
		path := paths[name]
		if path == Stdin {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %s[%q] %s", ErrPathNotFound, c, name, path)
		}
		if dir && !info.IsDir() {
			return fmt.Errorf("%w: %s[%q] %s", ErrNotDirectory, c, name, path)
		}
		if !dir && !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s[%q] %s", ErrNotFile, c, name, path)
		}
	}
	return nil
}

func checkMissing(paths map[string]string, c Collection, dir bool) error {
	for _, name := range slices.Sorted(maps.Keys(paths)) {
		path := paths[name]
		if path == Stdin {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() == dir {
			return fmt.Errorf("%w: %s[%q] %s", ErrPathExists, c, name, path)
		}
	}
	return nil
}

func checkNesting(inner, outer map[string]string, n Nesting) error {
	if inner == nil || outer == nil {
		return nil
	}
	var found []string
	for _, in := range slices.Sorted(maps.Keys(inner)) {
		for _, out := range slices.Sorted(maps.Keys(outer)) {
			if isWithin(inner[in], outer[out]) {
				found = append(found, fmt.Sprintf("(%s in %s)", in, out))
			}
		}
	}
	if len(found) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s inside %s: %s", ErrNestedPath, n.Inner, n.Outer, strings.Join(found, ", "))
}

// isWithin reports whether path lies strictly below dir.
func isWithin(path, dir string) bool {
	if path == Stdin || dir == Stdin {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
