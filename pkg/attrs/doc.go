// Package attrs reads and writes nested values by dot-separated paths.
//
// A path such as "model.params.k" walks string-keyed maps and exported
// struct fields interchangeably, following pointers and interfaces on the
// way. This is handy for nested configuration decoded from YAML into
// map[string]any, or for options structs holding such maps.
//
// # Usage
//
//	cfg := map[string]any{"model": map[string]any{"k": 5}}
//
//	k, _ := attrs.Get(cfg, "model.k")                                  // 5
//	v, _ := attrs.Get(cfg, "model.seed", attrs.WithDefault(42))         // 42
//	ok, _ := attrs.Has(cfg, "model.k")                                  // true
//	_ = attrs.Set(cfg, "split.p", 0.2, attrs.MakeMissing())             // creates "split"
//	_ = attrs.Mutate(cfg, "model.k", func(v any) (any, error) { return v.(int) * 2, nil })
//
// Struct fields can only be set when the struct is reached through a pointer.
// Set and Mutate never convert between types: the new value must be
// assignable to the map element or field type.
//
// # Error Handling
//
// A nil object fails with ErrNilObject unless AllowNil is given. Set fails
// with ErrNotFound for a missing intermediate key without MakeMissing,
// ErrNotSettable for unaddressable structs or nil maps and ErrTypeMismatch
// for values of the wrong type. Failures of the Mutate callback wrap
// ErrMutate.
package attrs
