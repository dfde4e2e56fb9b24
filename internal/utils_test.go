package internal

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateKey(t *testing.T) {
	type pair struct {
		a any
		b int
	}

	tests := []struct {
		name string
		key  any
		want error
	}{
		{"string", "a", nil},
		{"int", 42, nil},
		{"struct", pair{a: "x", b: 1}, nil},
		{"nil", nil, ErrNilKey},
		{"slice", []int{1}, ErrUncomparableKey},
		{"map", map[string]int{}, ErrUncomparableKey},
		{"struct holding slice", pair{a: []int{1}}, ErrUncomparableKey},
		{"struct with nil interface", pair{a: nil, b: 1}, nil},
		{"array of nil interfaces", [2]any{}, nil},
		{"array holding map", [2]any{1, map[int]int{}}, ErrUncomparableKey},
		{"nested nil interface", pair{a: pair{a: nil}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestMayHoldInterface(t *testing.T) {
	type plain struct {
		a string
		b [2]int
	}
	type nested struct {
		p plain
		v [1]any
	}

	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"string", reflect.TypeOf(""), false},
		{"int", reflect.TypeOf(0), false},
		{"pointer", reflect.TypeOf(&plain{}), false},
		{"plain struct", reflect.TypeOf(plain{}), false},
		{"interface", reflect.TypeOf((*any)(nil)).Elem(), true},
		{"error", reflect.TypeOf((*error)(nil)).Elem(), true},
		{"struct with interface array", reflect.TypeOf(nested{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MayHoldInterface(tt.typ); got != tt.want {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
