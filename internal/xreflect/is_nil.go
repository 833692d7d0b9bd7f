package xreflect

import "reflect"

// IsNil reports whether v is nil or a nil pointer, map, chan, func or interface.
// A nil slice is a valid empty value and is not reported as nil.
func IsNil[T any](v T) bool {
	return isNil(reflect.ValueOf(any(v)))
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
