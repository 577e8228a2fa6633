// Package gen renders enumeration declarations into Go source.
//
// Generation uses text/template, then golang.org/x/tools/imports for
// formatting, so the output is gofmt-clean and deterministic.
//
// For every checked enum the output has:
//   - a uint32-based type and one constant per variant
//   - <Type>FromUint32 and <Type>Values
//   - Uint32, IsValid and String methods
//
// For every flag set the output has:
//   - a uint32-based type, a <Type>None constant and one constant per bit
//   - <Type>FromUint32, which never fails
//   - Uint32, Has, Union, Intersect, Without, Unknown and String methods
//
// A duplicated discriminant is rejected by validation. It would also fail to
// compile, since the IsValid switch lists every constant of the type.
package gen
