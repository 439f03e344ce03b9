package attrs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/attrs"
)

type inner struct {
	C       map[string]any
	Counts  map[string]int
	Name    string
	private int
}

func nested() map[string]any {
	return map[string]any{
		"b": &inner{C: map[string]any{"d": 1}, Name: "x", private: 7},
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	a := nested()

	v, err := attrs.Get(a, "b.C.d")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = attrs.Get(a, "b.Name")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	v, err = attrs.Get(a, "b.o.p", attrs.WithDefault("not found"))
	require.NoError(t, err)
	assert.Equal(t, "not found", v)

	v, err = attrs.Get(a, "b.private", attrs.WithDefault(-1))
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	v, err = attrs.Get(nil, "b.o.p", attrs.AllowNil())
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = attrs.Get(nil, "b.o.p")
	assert.ErrorIs(t, err, attrs.ErrNilObject)

	_, err = attrs.Get(a, "b..C")
	assert.ErrorIs(t, err, attrs.ErrInvalidPath)
}

func TestHas(t *testing.T) {
	t.Parallel()

	a := nested()

	ok, err := attrs.Has(a, "b.C.d")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = attrs.Has(a, "b.o.p")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = attrs.Has(nil, "b.o.p", attrs.AllowNil())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = attrs.Has(nil, "b.o.p")
	assert.ErrorIs(t, err, attrs.ErrNilObject)
}

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("existing path", func(t *testing.T) {
		t.Parallel()
		a := nested()
		require.NoError(t, attrs.Set(a, "b.C.d", 2))
		v, err := attrs.Get(a, "b.C.d")
		require.NoError(t, err)
		assert.Equal(t, 2, v)

		require.NoError(t, attrs.Set(a, "b.Name", "y"))
		assert.Equal(t, "y", a["b"].(*inner).Name)
	})

	t.Run("missing intermediate", func(t *testing.T) {
		t.Parallel()
		a := nested()
		err := attrs.Set(a, "split.p", 0.2)
		assert.ErrorIs(t, err, attrs.ErrNotFound)

		require.NoError(t, attrs.Set(a, "split.train.p", 0.2, attrs.MakeMissing()))
		v, err := attrs.Get(a, "split.train.p")
		require.NoError(t, err)
		assert.Equal(t, 0.2, v)
	})

	t.Run("nil typed map field", func(t *testing.T) {
		t.Parallel()
		a := nested()
		err := attrs.Set(a, "b.Counts.rows", 3)
		assert.ErrorIs(t, err, attrs.ErrNotFound)

		require.NoError(t, attrs.Set(a, "b.Counts.rows", 3, attrs.MakeMissing()))
		assert.Equal(t, map[string]int{"rows": 3}, a["b"].(*inner).Counts)
	})

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()
		a := nested()
		err := attrs.Set(a, "b.Name", 5)
		assert.ErrorIs(t, err, attrs.ErrTypeMismatch)
	})

	t.Run("struct held by value", func(t *testing.T) {
		t.Parallel()
		a := map[string]any{"b": inner{Name: "x"}}
		err := attrs.Set(a, "b.Name", "y")
		assert.ErrorIs(t, err, attrs.ErrNotSettable)
	})

	t.Run("not traversable", func(t *testing.T) {
		t.Parallel()
		a := map[string]any{"b": 1}
		err := attrs.Set(a, "b.c", 2)
		assert.ErrorIs(t, err, attrs.ErrNotTraversable)
	})

	t.Run("nil object", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, attrs.Set(nil, "a", 1), attrs.ErrNilObject)
	})
}

func TestMutate(t *testing.T) {
	t.Parallel()

	a := nested()
	times5 := func(v any) (any, error) { return v.(int) * 5, nil }
	require.NoError(t, attrs.Mutate(a, "b.C.d", times5))
	require.NoError(t, attrs.Mutate(a, "b.C.d", times5))
	v, err := attrs.Get(a, "b.C.d")
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	boom := errors.New("boom")
	err = attrs.Mutate(a, "b.C.d", func(any) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, attrs.ErrMutate)
	assert.ErrorIs(t, err, boom)

	err = attrs.Mutate(a, "x.y", func(v any) (any, error) { return v, nil })
	assert.ErrorIs(t, err, attrs.ErrNotFound)
}
