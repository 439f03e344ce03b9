// Package groups assigns rows of a table.Table to balanced groups: folds for
// cross-validation and proportional partitions such as train/test splits.
//
// # Architecture
//
// An Allocator decides how many units go to each group and returns one label
// per unit. Two allocators exist:
//
//   - EvenDistribution (MethodEvenDistribution, "n_dist") spreads units over n
//     groups with sizes differing by at most one.
//   - Proportional (MethodProportional, "l_sizes") sizes groups by
//     proportions. When the proportions sum to 1, units left over by rounding
//     go to the last group. Otherwise an extra trailing group takes them.
//
// Labels are shuffled with math/rand/v2 unless WithoutShuffle is given.
// WithRand supplies a seeded generator for reproducible results.
//
// Group labels rows directly. GroupUniques labels the distinct values of an id
// column and joins the labels back, so rows sharing an id always share a
// group. Fold and Partition combine the two: with WithCatColumn every level of
// the category column is grouped on its own and the levels are stitched back
// together in the original row order.
//
// # Usage
//
//	folded, err := groups.Fold(t, 5,
//	    groups.WithIDColumn("participant"),
//	    groups.WithCatColumn("diagnosis"),
//	)
//
//	parts, err := groups.Partition(t, []float64{0.2})
//	test, train := parts[0], parts[1]
//
// # Error Handling
//
// Invalid arguments are reported before any allocation with ErrInvalidProportions,
// ErrInvalidGroupCount, ErrInvalidRounding or ErrUnknownMethod, joined with
// the validator.ValidationErrors describing the rejected field. ErrSizeMismatch
// means the allocated sizes did not add up, which can happen with ceiling
// rounding.
package groups
