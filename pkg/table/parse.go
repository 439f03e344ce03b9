package table

import (
	"strconv"
	"strings"
)

type columnType int

const (
	typeInt columnType = iota
	typeFloat
	typeBool
	typeString
)

// parseColumn converts a column of raw strings. Empty strings become nil.
// With infer, the narrowest type that fits every non-empty cell is used,
// trying int64, then float64, then bool.
func parseColumn(raw []string, infer bool) []any {
	out := make([]any, len(raw))
	kind := typeString
	if infer {
		kind = detectType(raw)
	}
	for i, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		switch kind {
		case typeInt:
			v, _ := strconv.ParseInt(s, 10, 64)
			out[i] = v
		case typeFloat:
			v, _ := strconv.ParseFloat(s, 64)
			out[i] = v
		case typeBool:
			out[i] = strings.EqualFold(s, "true")
		default:
			out[i] = raw[i]
		}
	}
	return out
}

func detectType(raw []string) columnType {
	isInt, isFloat, isBool := true, true, true
	nonEmpty := 0
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		nonEmpty++
		if isInt {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			if !strings.EqualFold(s, "true") && !strings.EqualFold(s, "false") {
				isBool = false
			}
		}
	}
	switch {
	case nonEmpty == 0:
		return typeString
	case isInt:
		return typeInt
	case isFloat:
		return typeFloat
	case isBool:
		return typeBool
	default:
		return typeString
	}
}
