// Package conv collects tiny helper functions that are not part of the public
// API but aid internal conversions, currently around JSON-RPC request ids.
package conv

import (
	"encoding/json"
	"reflect"
)

// AsNumber attempts to coerce a decoded JSON value into a float64.
func AsNumber(v interface{}) (float64, bool) {
	switch actual := v.(type) {
	case float64:
		return actual, true
	case float32:
		return float64(actual), true
	case int:
		return float64(actual), true
	case int32:
		return float64(actual), true
	case int64:
		return float64(actual), true
	case uint64:
		return float64(actual), true
	case json.Number:
		n, err := actual.Float64()
		return n, err == nil
	}
	return 0, false
}

// EqualRequestId reports whether two JSON-RPC ids denote the same request.
// Numeric ids compare by value regardless of the Go type they decoded into.
func EqualRequestId(a, b interface{}) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	an, aok := AsNumber(a)
	bn, bok := AsNumber(b)
	return aok && bok && an == bn
}
