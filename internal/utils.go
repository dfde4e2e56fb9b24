package internal

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNilKey          = errors.New("key cannot be nil")
	ErrUncomparableKey = errors.New("key is not comparable")
)

// ValidateKey rejects keys that would panic when used as a map key. Only keys
// that hold an interface value can fail here.
func ValidateKey(key any) error {
	if key == nil {
		return ErrNilKey
	}
	if !hashable(reflect.ValueOf(key)) {
		return fmt.Errorf("invalid key type %T: %w", key, ErrUncomparableKey)
	}

	return nil
}

// MayHoldInterface reports whether values of t can carry an interface value,
// directly or through struct fields and array elements. Keys of any other
// comparable type never fail ValidateKey.
func MayHoldInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return MayHoldInterface(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if MayHoldInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// hashable walks the dynamic value. A nil interface compares fine.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Array:
		if !v.Type().Comparable() {
			return false
		}
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}
