package validate

import (
	"reflect"
	"strings"
)

// emptyObject stands in for a nil object so presence rules still run
// against every declared field.
var emptyObject = map[string]any{}

// Field reads a dotted path from an object, such as
// "customer.address.city", using the same field extraction as the
// walker. The boolean is false when an intermediate segment is not an
// object; a missing final field yields nil like any other absent value.
func Field(object any, path string) (any, bool) {
	cur := object
	for part := range strings.SplitSeq(path, ".") {
		if !isObject(cur) {
			return nil, false
		}
		cur = fieldValue(cur, part)
	}
	return cur, true
}

// fieldValue reads the named field from an object without mutating it.
// Supported shapes are string-keyed maps and structs, possibly behind
// pointers. Struct fields match by exported name, json tag, or a
// case-insensitive name as a last resort. Missing fields and unreadable
// objects both yield nil, which rule functions treat like any other
// value.
func fieldValue(object any, name string) any {
	rv, ok := deref(reflect.ValueOf(object))
	if !ok {
		return nil
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		key := reflect.ValueOf(name)
		if kt := rv.Type().Key(); kt != key.Type() {
			key = key.Convert(kt)
		}
		v := rv.MapIndex(key)
		if !v.IsValid() {
			return nil
		}
		return v.Interface()
	case reflect.Struct:
		return structField(rv, name)
	default:
		return nil
	}
}

func structField(rv reflect.Value, name string) any {
	t := rv.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Name == name || jsonFieldName(f) == name {
			return rv.Field(i).Interface()
		}
	}
	// Rule-sets are usually authored with JSON-style lowercase keys
	// while exported Go fields start upper-case.
	for i := range t.NumField() {
		f := t.Field(i)
		if f.IsExported() && strings.EqualFold(f.Name, name) {
			return rv.Field(i).Interface()
		}
	}
	return nil
}

func jsonFieldName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

// isObject reports whether v can be walked as an object: a string-keyed
// map or a struct, possibly behind pointers.
func isObject(v any) bool {
	rv, ok := deref(reflect.ValueOf(v))
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	default:
		return false
	}
}

// asSlice flattens a slice or array value into []any. Strings and maps
// are not arrays for validation purposes.
func asSlice(v any) ([]any, bool) {
	rv, ok := deref(reflect.ValueOf(v))
	if !ok {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	default:
		return nil, false
	}
}

// deref unwraps pointers and interfaces down to the concrete value. The
// boolean is false for nil values and nil pointer chains.
func deref(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	return rv, true
}
