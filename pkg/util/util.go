package util

import (
	"reflect"
)

// IsNil reports whether itf is nil or wraps a typed nil reference.
// A plain itf == nil misses nils boxed into a non-nil interface.
func IsNil(itf interface{}) bool {
	if itf == nil {
		return true
	}
	switch v := reflect.ValueOf(itf); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
