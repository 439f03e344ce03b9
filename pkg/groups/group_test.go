package groups_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/groups"
	"github.com/dmitrymomot/datakit/pkg/logger"
	"github.com/dmitrymomot/datakit/pkg/table"
)

// participants builds a table of rows with ids shared by several rows and a
// diagnosis category constant per id.
func participants(t *testing.T) *table.Table {
	t.Helper()
	var row, id, diag, score []any
	for p := range 12 {
		cat := "control"
		if p%3 == 0 {
			cat = "case"
		}
		for k := range 1 + p%3 {
			row = append(row, len(row))
			id = append(id, p)
			diag = append(diag, cat)
			score = append(score, float64(p*10+k))
		}
	}
	tbl, err := table.New([]string{"row", "id", "diagnosis", "score"}, row, id, diag, score)
	require.NoError(t, err)
	return tbl
}

func seeded() groups.Option {
	return groups.WithRand(rand.New(rand.NewPCG(42, 1024)))
}

func column(t *testing.T, tbl *table.Table, name string) []any {
	t.Helper()
	col, err := tbl.Column(name)
	require.NoError(t, err)
	return col
}

func assertIDsShareGroup(t *testing.T, tbl *table.Table) {
	t.Helper()
	ids := column(t, tbl, "id")
	labels, err := tbl.IntColumn("group")
	require.NoError(t, err)
	byID := map[any]int{}
	for i, id := range ids {
		if g, ok := byID[id]; ok {
			assert.Equal(t, g, labels[i], "id %v split across groups", id)
		}
		byID[id] = labels[i]
	}
}

func TestGroup(t *testing.T) {
	t.Parallel()

	tbl := participants(t)
	alloc, err := groups.NewEvenDistribution(3)
	require.NoError(t, err)

	out, err := groups.Group(tbl, alloc, seeded())
	require.NoError(t, err)
	assert.Equal(t, append(tbl.Columns(), "group"), out.Columns())
	assert.False(t, tbl.HasColumn("group"))

	labels, err := out.IntColumn("group")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8, 8}, groups.Sizes(labels))

	named, err := groups.Group(tbl, alloc, groups.WithGroupColumn("fold"), groups.WithColumn("score"))
	require.NoError(t, err)
	assert.True(t, named.HasColumn("fold"))

	_, err = groups.Group(tbl, alloc, groups.WithColumn("missing"))
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
}

func TestGroupUniques(t *testing.T) {
	t.Parallel()

	tbl := participants(t)
	alloc, err := groups.NewEvenDistribution(4)
	require.NoError(t, err)

	for seed := range uint64(10) {
		out, err := groups.GroupUniques(tbl, alloc, "id", groups.WithRand(rand.New(rand.NewPCG(seed, seed))))
		require.NoError(t, err)
		assert.Equal(t, tbl.NumRows(), out.NumRows())
		assert.Equal(t, column(t, tbl, "row"), column(t, out, "row"))
		assertIDsShareGroup(t, out)
	}

	t.Run("replaces existing label column", func(t *testing.T) {
		first, err := groups.GroupUniques(tbl, alloc, "id", seeded())
		require.NoError(t, err)
		second, err := groups.GroupUniques(first, alloc, "id", seeded())
		require.NoError(t, err)
		assert.Equal(t, first.Columns(), second.Columns())
	})

	t.Run("unknown id column", func(t *testing.T) {
		_, err := groups.GroupUniques(tbl, alloc, "nope")
		assert.ErrorIs(t, err, table.ErrColumnNotFound)
	})

	t.Run("large integer ids stay distinct", func(t *testing.T) {
		ids := table.MustNew([]string{"id"}, []any{int64(9007199254740993), int64(9007199254740992)})
		two, err := groups.NewEvenDistribution(2)
		require.NoError(t, err)
		out, err := groups.GroupUniques(ids, two, "id", seeded())
		require.NoError(t, err)
		labels, err := out.IntColumn("group")
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{0, 1}, labels)
	})
}

func TestFold(t *testing.T) {
	t.Parallel()

	tbl := participants(t)

	t.Run("plain", func(t *testing.T) {
		out, err := groups.Fold(tbl, 4, seeded())
		require.NoError(t, err)
		assert.Equal(t, column(t, tbl, "row"), column(t, out, "row"))
		assert.Equal(t, column(t, tbl, "score"), column(t, out, "score"))
		labels, err := out.IntColumn("group")
		require.NoError(t, err)
		assert.Equal(t, []int{6, 6, 6, 6}, groups.Sizes(labels))
	})

	t.Run("id and category", func(t *testing.T) {
		out, err := groups.Fold(tbl, 2,
			groups.WithIDColumn("id"),
			groups.WithCatColumn("diagnosis"),
			seeded(),
		)
		require.NoError(t, err)
		assert.Equal(t, tbl.Columns(), slices.DeleteFunc(out.Columns(), func(s string) bool { return s == "group" }))
		assert.Equal(t, column(t, tbl, "row"), column(t, out, "row"))
		assertIDsShareGroup(t, out)

		levels, err := out.SubsetByLevels("diagnosis", false)
		require.NoError(t, err)
		for _, level := range levels {
			ids, err := level.Table.Unique("id")
			require.NoError(t, err)
			uniq, err := level.Table.Select("id", "group")
			require.NoError(t, err)
			perGroup := map[int]int{}
			seen := map[any]bool{}
			for i := range uniq.NumRows() {
				row, _ := uniq.Row(i)
				if seen[row["id"]] {
					continue
				}
				seen[row["id"]] = true
				perGroup[row["group"].(int)]++
			}
			assert.Len(t, perGroup, 2)
			assert.LessOrEqual(t, abs(perGroup[0]-perGroup[1]), 1, "level %v with %d ids", level.Value, len(ids))
		}
	})

	t.Run("id only", func(t *testing.T) {
		out, err := groups.Fold(tbl, 3, groups.WithIDColumn("id"), seeded())
		require.NoError(t, err)
		assertIDsShareGroup(t, out)
		assert.Equal(t, column(t, tbl, "row"), column(t, out, "row"))
	})

	t.Run("category only", func(t *testing.T) {
		out, err := groups.Fold(tbl, 2, groups.WithCatColumn("diagnosis"), groups.WithoutShuffle())
		require.NoError(t, err)
		levels, err := out.SubsetByLevels("diagnosis", false)
		require.NoError(t, err)
		for _, level := range levels {
			labels, err := level.Table.IntColumn("group")
			require.NoError(t, err)
			sizes := groups.Sizes(labels)
			assert.LessOrEqual(t, abs(sizes[0]-sizes[1]), 1)
		}
	})

	t.Run("factor", func(t *testing.T) {
		factor, err := groups.FoldFactor(tbl, 3, seeded())
		require.NoError(t, err)
		out, err := groups.Fold(tbl, 3, seeded())
		require.NoError(t, err)
		labels, err := out.IntColumn("group")
		require.NoError(t, err)
		assert.Equal(t, labels, factor)
	})

	t.Run("invalid n", func(t *testing.T) {
		_, err := groups.Fold(tbl, 0)
		assert.ErrorIs(t, err, groups.ErrInvalidGroupCount)
	})

	t.Run("reserved column", func(t *testing.T) {
		bad := tbl.Copy()
		require.NoError(t, bad.AddColumn(".sorting_index", make([]any, bad.NumRows())))
		_, err := groups.Fold(bad, 2)
		assert.ErrorIs(t, err, groups.ErrReservedColumn)
	})

	t.Run("empty table", func(t *testing.T) {
		empty := table.MustNew([]string{"a", "b"}, []any{}, []any{})
		out, err := groups.Fold(empty, 3, groups.WithCatColumn("b"))
		require.NoError(t, err)
		assert.Equal(t, 0, out.NumRows())
		assert.True(t, out.HasColumn("group"))
	})

	t.Run("logs allocations", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevelName("debug"))
		_, err := groups.Fold(tbl, 2, groups.WithLogger(log))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "component=groups")
		assert.Contains(t, buf.String(), "method=n_dist")
	})
}

func TestStratifiedIndependence(t *testing.T) {
	t.Parallel()

	// Level "a" comes first, so it consumes the generator before "b" does.
	build := func(bRows int) *table.Table {
		var cat, val []any
		for i := range 10 {
			cat = append(cat, "a")
			val = append(val, i)
		}
		for i := range bRows {
			cat = append(cat, "b")
			val = append(val, 100+i)
		}
		return table.MustNew([]string{"cat", "val"}, cat, val)
	}

	labelsOfA := func(tbl *table.Table) []int {
		out, err := groups.Fold(tbl, 3, groups.WithCatColumn("cat"), seeded())
		require.NoError(t, err)
		levels, err := out.SubsetByLevels("cat", false)
		require.NoError(t, err)
		labels, err := levels[0].Table.IntColumn("group")
		require.NoError(t, err)
		return labels
	}

	assert.Equal(t, labelsOfA(build(5)), labelsOfA(build(17)))
}

func TestPartition(t *testing.T) {
	t.Parallel()

	tbl := participants(t)

	t.Run("exhaustive and disjoint", func(t *testing.T) {
		parts, err := groups.Partition(tbl, []float64{0.2, 0.3}, seeded())
		require.NoError(t, err)
		require.Len(t, parts, 3)

		var all []int
		for _, p := range parts {
			assert.Equal(t, []string{"row", "id", "diagnosis", "score"}, p.Columns())
			rows, err := p.IntColumn("row")
			require.NoError(t, err)
			assert.True(t, slices.IsSorted(rows), "row order is preserved")
			all = append(all, rows...)
		}
		slices.Sort(all)
		want := make([]int, tbl.NumRows())
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, all)
		assert.Equal(t, 4, parts[0].NumRows())
		assert.Equal(t, 7, parts[1].NumRows())
		assert.Equal(t, 13, parts[2].NumRows())
	})

	t.Run("scalar proportion adds a remainder partition", func(t *testing.T) {
		ten := table.MustNew([]string{"x"}, []any{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
		parts, err := groups.Partition(ten, []float64{0.3}, seeded())
		require.NoError(t, err)
		require.Len(t, parts, 2)
		assert.Equal(t, 3, parts[0].NumRows())
		assert.Equal(t, 7, parts[1].NumRows())
	})

	t.Run("ids stay together", func(t *testing.T) {
		parts, err := groups.Partition(tbl, []float64{0.5, 0.5},
			groups.WithIDColumn("id"),
			groups.WithCatColumn("diagnosis"),
			seeded(),
		)
		require.NoError(t, err)
		require.Len(t, parts, 2)
		in := map[any]int{}
		for k, p := range parts {
			for _, id := range column(t, p, "id") {
				if prev, ok := in[id]; ok {
					assert.Equal(t, prev, k)
				}
				in[id] = k
			}
		}
	})

	t.Run("validation happens first", func(t *testing.T) {
		for _, p := range [][]float64{{1.5}, {0.6, 0.6}} {
			_, err := groups.Partition(tbl, p)
			assert.ErrorIs(t, err, groups.ErrInvalidProportions)
		}
	})

	t.Run("rounding option", func(t *testing.T) {
		ten := table.MustNew([]string{"x"}, []any{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
		parts, err := groups.Partition(ten, []float64{0.25, 0.25, 0.5}, groups.WithRounding(groups.RoundingRound))
		require.NoError(t, err)
		assert.Equal(t, 2, parts[0].NumRows())
		assert.Equal(t, 6, parts[2].NumRows())
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
