package groups_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/groups"
	"github.com/dmitrymomot/datakit/pkg/validator"
)

func TestEvenDistribution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length, n int
		want      []int
	}{
		{10, 3, []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 2}},
		{9, 3, []int{0, 0, 0, 1, 1, 1, 2, 2, 2}},
		{4, 4, []int{0, 1, 2, 3}},
		{3, 5, []int{1, 3, 4}},
		{0, 2, []int{}},
	}
	for _, tt := range tests {
		alloc, err := groups.NewEvenDistribution(tt.n)
		require.NoError(t, err)
		got, err := alloc.Allocate(tt.length)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "length=%d n=%d", tt.length, tt.n)
	}
}

func TestEvenDistributionBalance(t *testing.T) {
	t.Parallel()

	for length := 1; length <= 80; length++ {
		for n := 1; n <= length; n++ {
			alloc, err := groups.NewEvenDistribution(n)
			require.NoError(t, err)
			labels, err := alloc.Allocate(length)
			require.NoError(t, err)
			require.Len(t, labels, length)
			require.True(t, slices.IsSorted(labels))

			sizes := groups.Sizes(labels)
			require.Len(t, sizes, n, "length=%d n=%d", length, n)
			assert.LessOrEqual(t, slices.Max(sizes)-slices.Min(sizes), 1, "length=%d n=%d", length, n)
			assert.Positive(t, slices.Min(sizes), "length=%d n=%d", length, n)
		}
	}
}

func TestProportional(t *testing.T) {
	t.Parallel()

	t.Run("excess goes to last group", func(t *testing.T) {
		alloc, err := groups.NewProportional([]float64{0.5, 0.5}, groups.RoundingFloor)
		require.NoError(t, err)
		assert.True(t, alloc.Fixed())
		labels, err := alloc.Allocate(9)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, 1}, labels)
	})

	t.Run("implicit extra group", func(t *testing.T) {
		alloc, err := groups.NewProportional([]float64{0.3}, "")
		require.NoError(t, err)
		assert.False(t, alloc.Fixed())
		assert.Equal(t, 2, alloc.NumGroups(10))
		sizes, err := alloc.Sizes(10)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 7}, sizes)
	})

	t.Run("drifting sum is fixed", func(t *testing.T) {
		alloc, err := groups.NewProportional([]float64{0.1, 0.2, 0.7}, groups.RoundingFloor)
		require.NoError(t, err)
		assert.True(t, alloc.Fixed())
		sizes, err := alloc.Sizes(10)
		require.NoError(t, err)
		assert.Equal(t, 10, sizes[0]+sizes[1]+sizes[2])
		assert.Len(t, sizes, 3)
	})

	t.Run("round half to even", func(t *testing.T) {
		alloc, err := groups.NewProportional([]float64{0.25, 0.25, 0.5}, groups.RoundingRound)
		require.NoError(t, err)
		sizes, err := alloc.Sizes(10)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 2, 6}, sizes)
	})

	t.Run("ceil can overshoot", func(t *testing.T) {
		alloc, err := groups.NewProportional([]float64{0.5, 0.5}, groups.RoundingCeil)
		require.NoError(t, err)
		_, err = alloc.Sizes(9)
		assert.ErrorIs(t, err, groups.ErrSizeMismatch)
	})

	t.Run("empty extra group", func(t *testing.T) {
		alloc, err := groups.NewProportional([]float64{0.5}, groups.RoundingFloor)
		require.NoError(t, err)
		sizes, err := alloc.Sizes(0)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0}, sizes)
	})
}

func TestProportionalSumInvariant(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		k := 1 + r.IntN(5)
		p := make([]float64, k)
		budget := 1.0
		for i := range p {
			p[i] = r.Float64() * budget
			budget -= p[i]
		}
		length := r.IntN(200)
		for _, rounding := range []groups.Rounding{groups.RoundingFloor, groups.RoundingRound} {
			alloc, err := groups.NewProportional(p, rounding)
			require.NoError(t, err, "p=%v", p)
			sizes, err := alloc.Sizes(length)
			if rounding == groups.RoundingRound && err != nil {
				// rounding up may overshoot the unit count
				require.ErrorIs(t, err, groups.ErrSizeMismatch)
				continue
			}
			require.NoError(t, err, "p=%v length=%d", p, length)
			sum := 0
			for _, s := range sizes {
				sum += s
			}
			assert.Equal(t, length, sum, "p=%v", p)
		}
	}
}

func TestValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    []float64
	}{
		{"above one", []float64{1.5}},
		{"sum above one", []float64{0.6, 0.6}},
		{"negative", []float64{-0.1, 0.5}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := groups.NewProportional(tt.p, groups.RoundingFloor)
			require.Error(t, err)
			assert.ErrorIs(t, err, groups.ErrInvalidProportions)
			assert.True(t, validator.IsValidationError(err))
			assert.Contains(t, validator.ExtractValidationErrors(err).Fields(), "p")
		})
	}

	_, err := groups.NewEvenDistribution(0)
	assert.ErrorIs(t, err, groups.ErrInvalidGroupCount)

	_, err = groups.NewProportional([]float64{0.2}, groups.Rounding("up"))
	assert.ErrorIs(t, err, groups.ErrInvalidRounding)

	_, err = groups.ParseMethod("random")
	assert.ErrorIs(t, err, groups.ErrUnknownMethod)

	_, err = groups.NewAllocator(groups.Method("x"), 2, nil, "")
	assert.ErrorIs(t, err, groups.ErrUnknownMethod)
}

func TestNewAllocator(t *testing.T) {
	t.Parallel()

	m, err := groups.ParseMethod("n_dist")
	require.NoError(t, err)
	alloc, err := groups.NewAllocator(m, 3, nil, "")
	require.NoError(t, err)
	assert.Equal(t, groups.MethodEvenDistribution, alloc.Method())

	m, err = groups.ParseMethod("l_sizes")
	require.NoError(t, err)
	alloc, err = groups.NewAllocator(m, 0, []float64{0.2, 0.8}, groups.RoundingFloor)
	require.NoError(t, err)
	assert.Equal(t, groups.MethodProportional, alloc.Method())
	assert.Equal(t, 2, alloc.NumGroups(10))
}

func TestLabels(t *testing.T) {
	t.Parallel()

	alloc, err := groups.NewEvenDistribution(4)
	require.NoError(t, err)

	a, err := groups.Labels(40, alloc, groups.WithRand(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)
	b, err := groups.Labels(40, alloc, groups.WithRand(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []int{10, 10, 10, 10}, groups.Sizes(a))
	assert.False(t, slices.IsSorted(a))

	plain, err := groups.Labels(8, alloc, groups.WithoutShuffle())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3}, plain)
}

func TestSizes(t *testing.T) {
	t.Parallel()

	assert.Nil(t, groups.Sizes(nil))
	assert.Equal(t, []int{1, 0, 2}, groups.Sizes([]int{2, 0, 2}))
}
