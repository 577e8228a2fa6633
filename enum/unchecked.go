package enum

import (
	"cmp"
	"strings"
)

// Unchecked holds a raw discriminant associated with the checked type T.
//
// The value is stored verbatim and never validated on construction. The type
// parameter lives in a zero-length array, so it costs no storage and takes no
// part in ==, which compares Value only. Unchecked values are usable as map
// keys. Values tagged with different types cannot be mixed.
type Unchecked[T Checked] struct {
	_ [0]T

	// Value is the raw discriminant as received from or sent to native code.
	Value uint32
}

// NewUnchecked wraps v without looking at it.
func NewUnchecked[T Checked](v uint32) Unchecked[T] {
	return Unchecked[T]{Value: v}
}

// Wrap returns the carrier for a known variant.
func Wrap[T Checked](e T) Unchecked[T] {
	return Unchecked[T]{Value: e.Uint32()}
}

// Enum promotes the raw value to T. It reports false for undeclared values.
func (u Unchecked[T]) Enum() (T, bool) {
	return FromUint32[T](u.Value)
}

// Or promotes the raw value, substituting def when it is not declared.
func (u Unchecked[T]) Or(def T) T {
	if e, ok := u.Enum(); ok {
		return e
	}

	return def
}

// Known reports whether the raw value is a declared discriminant of T.
func (u Unchecked[T]) Known() bool {
	return T(u.Value).IsValid()
}

// Uint32 returns the raw value.
func (u Unchecked[T]) Uint32() uint32 {
	return u.Value
}

// Compare orders carriers by raw value.
func (u Unchecked[T]) Compare(other Unchecked[T]) int {
	return cmp.Compare(u.Value, other.Value)
}

// String returns the variant name for declared values and "Type(v)" otherwise.
func (u Unchecked[T]) String() string {
	if e, ok := u.Enum(); ok {
		return e.String()
	}

	name := typeName[T]()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	return FormatUnknown(name, u.Value)
}
