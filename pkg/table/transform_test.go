package table_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/table"
)

func TestMakesUp(t *testing.T) {
	t.Parallel()

	values := []any{0, 0, 0, 1, nil, math.Inf(1), 0.0, "a", 0, 0}

	tests := []struct {
		name      string
		target    table.Target
		thresh    float64
		direction table.Direction
		want      bool
	}{
		{"zero above half", table.TargetValue(0), 0.5, table.Greater, true},
		{"zero exact share", table.TargetValue(0), 0.6, table.EqualTo, true},
		{"zero below half", table.TargetValue(0), 0.5, table.Less, false},
		{"any nan", table.TargetNaN(), 0, table.Greater, true},
		{"nan share", table.TargetNaN(), 0.1, table.LessEqual, true},
		{"inf share", table.TargetInf(), 0.1, table.GreaterEqual, true},
		{"most common value", table.TargetAny(), 0.6, table.EqualTo, true},
		{"absent value", table.TargetValue(7), 0, table.EqualTo, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.MakesUp(values, tt.target, tt.thresh, tt.direction, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("single value column", func(t *testing.T) {
		got, err := table.MakesUp([]any{"x", "x"}, table.TargetAny(), 1, table.EqualTo, false)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := table.MakesUp(values, table.TargetValue(7), 0, table.Greater, true)
		assert.ErrorIs(t, err, table.ErrValueNotFound)
		_, err = table.MakesUp(values, table.TargetNaN(), 1.5, table.Greater, false)
		assert.ErrorIs(t, err, table.ErrInvalidThreshold)
		_, err = table.MakesUp(values, table.TargetNaN(), 0.5, table.Direction("!="), false)
		assert.ErrorIs(t, err, table.ErrInvalidDirection)
		_, err = table.ParseDirection(">=")
		assert.NoError(t, err)
	})
}

func dropFixture() *table.Table {
	return table.MustNew(
		[]string{"a", "b", "c", "y"},
		[]any{1, 2, 3, 4},
		[]any{nil, nil, nil, 1},
		[]any{0, 0, 0, 0},
		[]any{1.0, math.NaN(), 3.0, 4.0},
	)
}

func TestDrop(t *testing.T) {
	t.Parallel()

	t.Run("columns with many NaNs", func(t *testing.T) {
		var buf bytes.Buffer
		out, err := table.Drop(dropFixture(), table.DropOptions{
			Target:    table.TargetNaN(),
			Thresh:    0.5,
			Direction: table.Greater,
			Axis:      table.AxisColumns,
			Messenger: logger.NewMessenger(logger.WithWriter(&buf)),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "y"}, out.Columns())
		assert.Equal(t, "Dropped 1 columns.\n", buf.String())
	})

	t.Run("constant columns", func(t *testing.T) {
		out, err := table.Drop(dropFixture(), table.DropOptions{
			Target:    table.TargetAny(),
			Thresh:    1,
			Direction: table.EqualTo,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "y"}, out.Columns())
	})

	t.Run("exclude keeps columns", func(t *testing.T) {
		out, err := table.Drop(dropFixture(), table.DropOptions{
			Target:    table.TargetAny(),
			Thresh:    1,
			Direction: table.EqualTo,
			Exclude:   []string{"c"},
		})
		require.NoError(t, err)
		assert.Equal(t, 4, out.NumCols())
	})

	t.Run("rows with NaN in y", func(t *testing.T) {
		out, err := table.Drop(dropFixture(), table.DropOptions{
			Target:    table.TargetNaN(),
			Thresh:    0,
			Direction: table.Greater,
			Axis:      table.AxisRows,
			Include:   []string{"y"},
		})
		require.NoError(t, err)
		a, _ := out.Column("a")
		assert.Equal(t, []any{1, 3, 4}, a)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := table.Drop(dropFixture(), table.DropOptions{Include: []string{"a"}, Exclude: []string{"b"}})
		assert.ErrorIs(t, err, table.ErrIncludeExclude)
		_, err = table.Drop(dropFixture(), table.DropOptions{Target: table.TargetNaN(), Axis: table.Axis(3)})
		assert.ErrorIs(t, err, table.ErrInvalidAxis)
		_, err = table.Drop(dropFixture(), table.DropOptions{Include: []string{"zz"}})
		assert.ErrorIs(t, err, table.ErrColumnNotFound)
	})
}

func TestPolynomialize(t *testing.T) {
	t.Parallel()

	tbl := table.MustNew(
		[]string{"a", "b", "c"},
		[]any{1, 2, 3},
		[]any{2.0, nil, 0.5},
		[]any{"x", "y", "z"},
	)

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	out, err := table.Polynomialize(tbl, table.PolyOptions{Degree: 3, Logger: log})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "a_poly2", "b_poly2", "a_poly3", "b_poly3"}, out.Columns())

	a3, _ := out.Column("a_poly3")
	assert.Equal(t, []any{int64(1), int64(8), int64(27)}, a3)
	b2, _ := out.Column("b_poly2")
	assert.Equal(t, []any{4.0, nil, 0.25}, b2)
	assert.Contains(t, buf.String(), "excluded non-numeric columns")
	assert.Equal(t, 3, tbl.NumCols())

	t.Run("exclude and suffix", func(t *testing.T) {
		out, err := table.Polynomialize(tbl, table.PolyOptions{Degree: 2, Suffix: "^", Exclude: []string{"b", "c"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "a^2"}, out.Columns())
	})

	t.Run("invalid degree", func(t *testing.T) {
		_, err := table.Polynomialize(tbl, table.PolyOptions{Degree: 0})
		assert.ErrorIs(t, err, table.ErrInvalidDegree)
	})
}
