package d2d

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"d2d-enumgen/enum"
)

// ErrShortBuffer is returned when a native struct is decoded from fewer bytes
// than its C layout occupies.
var ErrShortBuffer = errors.New("d2d: short buffer")

// UnknownValueError reports an enum field whose raw value is not declared by
// its type. The raw value is kept so the caller can log it or pass it on.
type UnknownValueError struct {
	// Struct and Field locate the value, e.g. "StrokeStyleProperties" and "DashStyle".
	Struct string
	Field  string
	// Type is the enum type of the field.
	Type string
	// Value is the raw discriminant.
	Value uint32
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("d2d: %s.%s: %s", e.Struct, e.Field, enum.FormatUnknown(e.Type, e.Value))
}

// checkField appends an UnknownValueError for u if it is not a declared T.
func checkField[T enum.Checked](errs []error, structName, field string, u enum.Unchecked[T]) []error {
	if u.Known() {
		return errs
	}

	var zero T

	return append(errs, &UnknownValueError{
		Struct: structName,
		Field:  field,
		Type:   strings.TrimPrefix(fmt.Sprintf("%T", zero), "d2d."),
		Value:  u.Value,
	})
}

// reader decodes little-endian C struct fields.
type reader struct {
	b   []byte
	off int
}

func newReader(name string, b []byte, size int) (*reader, error) {
	if len(b) < size {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrShortBuffer, name, size, len(b))
	}

	return &reader{b: b}, nil
}

func (r *reader) u32() uint32 {
	v := binary.LittleEndian.Uint32(r.b[r.off:])
	r.off += 4

	return v
}

func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

// writer encodes little-endian C struct fields.
type writer struct {
	b []byte
}

func newWriter(size int) *writer {
	return &writer{b: make([]byte, 0, size)}
}

func (w *writer) u32(v uint32) {
	w.b = binary.LittleEndian.AppendUint32(w.b, v)
}

func (w *writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}
