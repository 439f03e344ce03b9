// Package validator provides small, composable parameter checks used across
// datakit to reject malformed arguments before any work is done.
//
// A Rule couples a Check function with error metadata. Apply evaluates rules
// and aggregates the failures into ValidationErrors, which implements error
// and matches ErrValidationFailed with errors.Is.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.MinNum("n", n, 1),
//	    validator.InList("rounding", rounding, []string{"floor", "round", "ceil"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// Proportions, as used for partitioning, have dedicated rules:
//
//	err := validator.Apply(validator.Probabilities("p", []float64{0.2, 0.3})...)
//
// # Error Handling
//
// Packages that call into validator usually join the returned ValidationErrors
// with their own sentinel, so callers can test either:
//
//	errors.Is(err, groups.ErrInvalidProportions) // package specific
//	validator.IsValidationError(err)             // any rule failure
package validator
