package table

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// ToFloat converts numeric cell values to float64.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint32:
		return float64(x), true
	default:
		return 0, false
	}
}

// FloatOrNaN is ToFloat with NaN for missing or non-numeric values.
func FloatOrNaN(v any) float64 {
	f, ok := ToFloat(v)
	if !ok {
		return math.NaN()
	}
	return f
}

// ToInt converts integer cell values, and integral floats, to int.
func ToInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case int32:
		return int(x), true
	case uint32:
		return int(x), true
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int(x), true
		}
	}
	return 0, false
}

// IsMissing reports nil and NaN cells.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}

// Equal compares two cells. Numbers compare by value across int and float types;
// two NaNs are equal.
func Equal(a, b any) bool {
	if _, ok := integerKey(a); ok {
		if _, ok := integerKey(b); ok {
			ka, _ := Key(a)
			kb, _ := Key(b)
			return ka == kb
		}
	}
	fa, oka := ToFloat(a)
	fb, okb := ToFloat(b)
	if oka && okb {
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return fa == fb
	}
	if oka != okb {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

// nanKey is the key shared by all NaN cells.
type nanKey struct{}

// Key returns a comparable map key for a cell so that equal cells share a key.
// Integers map to int64 (uint64 above MaxInt64 stays uint64), integral floats
// below 2^53 map to int64 and other floats stay float64.
func Key(v any) (any, error) {
	if k, ok := integerKey(v); ok {
		return k, nil
	}
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case nil:
		return nil, nil
	default:
		if !reflect.TypeOf(v).Comparable() {
			return nil, fmt.Errorf("%w: %T", ErrUncomparable, v)
		}
		return v, nil
	}
	if math.IsNaN(f) {
		return nanKey{}, nil
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f), nil
	}
	return f, nil
}

func integerKey(v any) (any, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case int32:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return x, true
		}
		return int64(x), true
	}
	return nil, false
}

// FormatValue renders a cell for text output. Missing values render empty.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if math.IsNaN(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
