package strs

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

const alphabetSize = 26

// LetterOption configures letter string generation.
type LetterOption func(*letterConfig)

type letterConfig struct {
	numChars   int
	upper      bool
	descending bool
}

// WithNumChars sets the starting width of the strings.
func WithNumChars(n int) LetterOption {
	return func(c *letterConfig) { c.numChars = n }
}

// Upper uses uppercase letters.
func Upper() LetterOption {
	return func(c *letterConfig) { c.upper = true }
}

// Descending walks the alphabet from z to a.
func Descending() LetterOption {
	return func(c *letterConfig) { c.descending = true }
}

// LetterStrings returns the first n letter strings ("aa", "ab", ...).
// Without WithNumChars the width is the smallest one that fits n strings.
func LetterStrings(n int, opts ...LetterOption) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	cfg := letterConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.numChars <= 0 {
		cfg.numChars = 1
		for capacity := alphabetSize; n > capacity; capacity *= alphabetSize {
			cfg.numChars++
		}
	}

	out := make([]string, 0, n)
	if n == 0 {
		return out, nil
	}
	for s := range letterSeq(cfg) {
		out = append(out, s)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

// LetterStringSeq yields letter strings indefinitely. After the last string
// of a width ("zz") the width grows by one ("aaa").
func LetterStringSeq(opts ...LetterOption) iter.Seq[string] {
	cfg := letterConfig{numChars: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.numChars <= 0 {
		cfg.numChars = 1
	}
	return letterSeq(cfg)
}

func letterSeq(cfg letterConfig) iter.Seq[string] {
	letters := []byte("abcdefghijklmnopqrstuvwxyz")
	if cfg.upper {
		letters = []byte(strings.ToUpper(string(letters)))
	}
	if cfg.descending {
		slices.Reverse(letters)
	}

	return func(yield func(string) bool) {
		for width := cfg.numChars; ; width++ {
			digits := make([]int, width)
			buf := make([]byte, width)
			for {
				for i, d := range digits {
					buf[i] = letters[d]
				}
				if !yield(string(buf)) {
					return
				}
				// odometer increment, rightmost position first
				i := width - 1
				for ; i >= 0; i-- {
					digits[i]++
					if digits[i] < len(letters) {
						break
					}
					digits[i] = 0
				}
				if i < 0 {
					break
				}
			}
		}
	}
}
