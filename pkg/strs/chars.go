package strs

import (
	"fmt"
	"slices"
	"strings"
)

// IllegalChars returns the distinct runes of s missing from allowed, sorted.
func IllegalChars(s, allowed string) []rune {
	var out []rune
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	slices.Sort(out)
	return out
}

// HasIllegalChars reports whether s contains a rune missing from allowed.
func HasIllegalChars(s, allowed string) bool {
	return len(IllegalChars(s, allowed)) > 0
}

// CheckChars returns ErrIllegalChars listing the offending runes.
func CheckChars(field, s, allowed string) error {
	illegal := IllegalChars(s, allowed)
	if len(illegal) == 0 {
		return nil
	}
	quoted := make([]string, len(illegal))
	for i, r := range illegal {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return fmt.Errorf("%w: %s contains %s", ErrIllegalChars, field, strings.Join(quoted, ", "))
}
