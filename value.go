package jsondec

import (
	"encoding/json"
	"strconv"
)

// The decoders traverse the generic value tree a JSON parser produces:
// map[string]any for objects, []any for arrays, string, bool, nil, and
// json.Number or float64 for numbers depending on the driver. A missing
// object key is the two-value map lookup miss; it is distinct from an
// explicit JSON null, which arrives as an untyped nil.

func isNull(v any) bool { return v == nil }

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// numberText returns the textual form of a numeric value. It accepts the
// representations the drivers emit (json.Number, float64) plus the int
// kinds hand-built trees and the YAML driver produce.
func numberText(v any) (string, bool) {
	switch n := v.(type) {
	case json.Number:
		return n.String(), true
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), true
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	default:
		return "", false
	}
}
