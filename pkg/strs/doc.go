// Package strs holds small string utilities: letter sequences for naming
// things, random alphanumeric identifiers, illegal character checks and a
// parser for range strings such as "1,max(2-5),13-15".
//
// # Usage
//
//	ids, _ := strs.LetterStrings(30) // "aa", "ab", ... "bd"
//
//	ranges, err := strs.ParseRanges("1,max(2-5),sum(7-10)", strs.AggMean)
//	for _, r := range ranges {
//		fmt.Println(r.Values, r.Aggregate)
//	}
//
// # Error Handling
//
// Parse failures wrap ErrInvalidRange, ErrMalformedFunction,
// ErrUnknownAggregate or ErrIllegalChars.
package strs
