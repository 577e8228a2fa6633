// Package enum is the runtime half of the enumgen code generator.
//
// Native graphics APIs hand back plain 32-bit integers. This package gives the
// generated types two ways of receiving them:
//
//   - Checked enums are closed sets of named discriminants. A raw value is
//     promoted with [FromUint32] (or the generated <Type>FromUint32 wrapper),
//     which reports false for any value that is not declared.
//   - [Unchecked] carries a raw value tagged with the checked type it belongs
//     to, without validating it. Receiving, storing, comparing and passing the
//     value back to the native layer never fails; promotion happens only when
//     a caller asks for it with [Unchecked.Enum].
//
// Flag sets are a separate policy: every bit pattern is legal, so they satisfy
// [Flags] but not [Checked].
//
// # Example
//
//	mode, ok := d2d.ExtendModeFromUint32(raw)
//	if !ok {
//		// unknown value, caller decides
//	}
//
//	u := enum.NewUnchecked[d2d.ExtendMode](raw)
//	cache[u] = brush // never fails
//	if mode, ok := u.Enum(); ok {
//		_ = mode
//	}
package enum
