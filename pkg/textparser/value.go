package textparser

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Lazy is a deferred value. When a key resolves to a Lazy, the function
// is called during Parse and its result is substituted instead.
//
// A bare func() any is treated the same way.
type Lazy func() any

// Getter is implemented by record-like values that expose named members
// to dotted-path lookup.
//
// Get reports false when the member does not exist.
type Getter interface {
	Get(segment string) (any, bool)
}

// lookup resolves a dotted key against target and invokes the result
// if it is deferred.
func lookup(target any, key string) (any, bool) {
	v, ok := walk(target, key)
	if !ok {
		return nil, false
	}
	return force(v), true
}

// walk follows a dotted key through target, one segment at a time.
// It returns false as soon as a segment cannot be resolved.
func walk(target any, key string) (any, bool) {
	for _, segment := range strings.Split(key, ".") {
		next, ok := member(target, segment)
		if !ok {
			return nil, false
		}
		target = next
	}
	return target, true
}

// member resolves a single path segment against target.
//
// Mappings and sequences are indexed, records expose fields, and every
// other value is a scalar with no members.
func member(target any, segment string) (any, bool) {
	if rv := reflect.ValueOf(target); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false
	}

	switch t := target.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := t[segment]
		return v, ok && v != nil
	case Getter:
		v, ok := t.Get(segment)
		return v, ok && v != nil
	}

	rv := reflect.ValueOf(target)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	var v reflect.Value
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v = rv.MapIndex(reflect.ValueOf(segment).Convert(rv.Type().Key()))
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		v = rv.Index(i)
	case reflect.Struct:
		f, ok := rv.Type().FieldByName(segment)
		if !ok || !f.IsExported() {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			// nil embedded pointer
			return nil, false
		}
		v = fv
	default:
		return nil, false
	}

	if !v.IsValid() || isNil(v) {
		return nil, false
	}
	return v.Interface(), true
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// force invokes a deferred value. Anything else is returned as-is.
func force(v any) any {
	switch fn := v.(type) {
	case Lazy:
		if fn == nil {
			return nil
		}
		return fn()
	case func() any:
		if fn == nil {
			return nil
		}
		return fn()
	}
	return v
}

// stringify returns the substitution text for v. It reports false for
// values that are not strings, numbers or booleans.
func stringify(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case json.Number:
		return val.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}
