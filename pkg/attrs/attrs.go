package attrs

import (
	"fmt"
	"reflect"
	"strings"
)

// Option configures a lookup or assignment.
type Option func(*config)

type config struct {
	def         any
	allowNil    bool
	makeMissing bool
}

// WithDefault sets the value Get returns when the path does not resolve.
func WithDefault(v any) Option {
	return func(c *config) { c.def = v }
}

// AllowNil accepts a nil object: Get returns nil and Has returns false.
func AllowNil() Option {
	return func(c *config) { c.allowNil = true }
}

// MakeMissing lets Set create map[string]any values for missing or nil
// intermediate keys.
func MakeMissing() Option {
	return func(c *config) { c.makeMissing = true }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value at path, or the default when any key along it is missing.
func Get(obj any, path string, opts ...Option) (any, error) {
	cfg := newConfig(opts)
	if obj == nil {
		if !cfg.allowNil {
			return nil, ErrNilObject
		}
		return nil, nil
	}
	keys, err := split(path)
	if err != nil {
		return nil, err
	}
	v := reflect.ValueOf(obj)
	for _, k := range keys {
		next, ok := lookup(v, k)
		if !ok {
			return cfg.def, nil
		}
		v = next
	}
	return export(v), nil
}

// Has reports whether every key along path exists.
func Has(obj any, path string, opts ...Option) (bool, error) {
	cfg := newConfig(opts)
	if obj == nil {
		if !cfg.allowNil {
			return false, ErrNilObject
		}
		return false, nil
	}
	keys, err := split(path)
	if err != nil {
		return false, err
	}
	v := reflect.ValueOf(obj)
	for _, k := range keys {
		next, ok := lookup(v, k)
		if !ok {
			return false, nil
		}
		v = next
	}
	return true, nil
}

// Set assigns value at path. All keys but the last must exist unless
// MakeMissing is given.
func Set(obj any, path string, value any, opts ...Option) error {
	cfg := newConfig(opts)
	if obj == nil {
		return ErrNilObject
	}
	keys, err := split(path)
	if err != nil {
		return err
	}
	v := reflect.ValueOf(obj)
	last := len(keys) - 1
	for i, k := range keys[:last] {
		next, ok := lookup(v, k)
		if !ok || isNil(next) {
			if !cfg.makeMissing {
				return fmt.Errorf("%w: %q", ErrNotFound, strings.Join(keys[:i+1], "."))
			}
			child := reflect.ValueOf(map[string]any{})
			if ok && next.Kind() == reflect.Map {
				child = reflect.MakeMap(next.Type())
			}
			if err := assign(v, k, child); err != nil {
				return fmt.Errorf("%q: %w", strings.Join(keys[:i+1], "."), err)
			}
			next = child
		}
		v = next
	}
	if err := assign(v, keys[last], reflect.ValueOf(value)); err != nil {
		return fmt.Errorf("%q: %w", path, err)
	}
	return nil
}

// Mutate replaces the value at path with fn applied to it.
// A missing final key passes nil to fn.
func Mutate(obj any, path string, fn func(any) (any, error)) error {
	old, err := Get(obj, path)
	if err != nil {
		return err
	}
	val, err := fn(old)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrMutate, path, err)
	}
	return Set(obj, path, val)
}

func split(path string) ([]string, error) {
	keys := strings.Split(path, ".")
	for _, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return keys, nil
}

// indirect follows pointers and interfaces. Nil ones yield the zero Value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNil(v reflect.Value) bool {
	v = indirect(v)
	return !v.IsValid() || (v.Kind() == reflect.Map && v.IsNil())
}

func lookup(v reflect.Value, key string) (reflect.Value, bool) {
	v = indirect(v)
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	switch v.Kind() {
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() != reflect.String {
			return reflect.Value{}, false
		}
		e := v.MapIndex(reflect.ValueOf(key).Convert(kt))
		return e, e.IsValid()
	case reflect.Struct:
		f, ok := v.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return reflect.Value{}, false
		}
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		return fv, true
	default:
		return reflect.Value{}, false
	}
}

func assign(parent reflect.Value, key string, val reflect.Value) error {
	p := indirect(parent)
	if !p.IsValid() {
		return ErrNotTraversable
	}
	switch p.Kind() {
	case reflect.Map:
		kt := p.Type().Key()
		if kt.Kind() != reflect.String {
			return ErrNotTraversable
		}
		if p.IsNil() {
			return fmt.Errorf("%w: nil map", ErrNotSettable)
		}
		v, err := fit(val, p.Type().Elem())
		if err != nil {
			return err
		}
		p.SetMapIndex(reflect.ValueOf(key).Convert(kt), v)
		return nil
	case reflect.Struct:
		f, ok := p.Type().FieldByName(key)
		if !ok || !f.IsExported() {
			return fmt.Errorf("%w: field %s", ErrNotFound, key)
		}
		fv, err := p.FieldByIndexErr(f.Index)
		if err != nil || !fv.CanSet() {
			return fmt.Errorf("%w: field %s", ErrNotSettable, key)
		}
		v, err := fit(val, fv.Type())
		if err != nil {
			return err
		}
		fv.Set(v)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrNotTraversable, p.Kind())
	}
}

// fit checks that val can be stored in a slot of type t.
func fit(val reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !val.IsValid() {
		switch t.Kind() {
		case reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrTypeMismatch, t)
	}
	if !val.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrTypeMismatch, val.Type(), t)
	}
	return val, nil
}

func export(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
