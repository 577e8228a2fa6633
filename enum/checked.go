package enum

import (
	"fmt"
	"strconv"
)

// Checked is satisfied by every generated closed enumeration.
//
// Conforming types have uint32 as underlying type, so they are copyable and
// comparable by value. IsValid reports whether the receiver is one of the
// declared discriminants; it is the only place a type lists its variants.
type Checked interface {
	~uint32
	Uint32() uint32
	IsValid() bool
	String() string
}

// FromUint32 promotes a raw discriminant to T.
// It returns the zero T and false when v is not declared by T.
func FromUint32[T Checked](v uint32) (T, bool) {
	e := T(v)
	if !e.IsValid() {
		var zero T
		return zero, false
	}

	return e, true
}

// MustFromUint32 is like FromUint32 but panics on an undeclared value.
// It is meant for values produced by this program, never for native input.
func MustFromUint32[T Checked](v uint32) T {
	e, ok := FromUint32[T](v)
	if !ok {
		panic(fmt.Sprintf("enum: %s is not a declared value", FormatUnknown(typeName[T](), v)))
	}

	return e
}

// FormatUnknown renders an undeclared value as "Type(v)".
func FormatUnknown(name string, v uint32) string {
	return name + "(" + strconv.FormatUint(uint64(v), 10) + ")"
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
