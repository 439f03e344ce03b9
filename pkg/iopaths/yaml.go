package iopaths

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads collections from a YAML file mapping collection names to
// name: path maps, then validates them with opts applied.
func LoadYAML(path string, opts ...Option) (*IOPaths, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	fromFile := make([]Option, 0, len(doc)+len(opts))
	for name, paths := range doc {
		c, err := ParseCollection(name)
		if err != nil {
			return nil, err
		}
		fromFile = append(fromFile, WithPaths(c, paths))
	}
	return New(append(fromFile, opts...)...)
}

// SaveYAML writes the set collections to path.
func (p *IOPaths) SaveYAML(path string) error {
	doc := make(map[string]map[string]string, len(p.colls))
	for _, c := range Collections {
		if p.colls[c] != nil {
			doc[string(c)] = p.colls[c]
		}
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	return nil
}
