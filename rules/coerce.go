package rules

import (
	"encoding/json"
	"errors"
	"reflect"
)

var (
	errNotString = errors.New("must be a string")
	errNotNumber = errors.New("must be a number")
	errNotArray  = errors.New("must be an array")
)

// str accepts plain strings and named string types.
func str(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// toFloat coerces any Go numeric kind, json.Number included, into a
// float64 for comparison.
func toFloat(value any) (float64, bool) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// count measures slices, arrays, and maps.
func count(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// looseEqual treats all numeric kinds as one domain, so a decoded JSON
// float64(2) equals a rule-set literal 2. Everything else compares
// deeply.
func looseEqual(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}
