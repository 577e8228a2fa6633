// Package diagnostic provides structured errors, warnings and notes produced
// while validating an enumeration declaration file.
//
// Key capabilities:
//   - Duplicate discriminant and duplicate identifier errors
//   - Flag bit shape errors (zero, multi-bit, overlapping)
//   - Warnings for enums whose Go zero value is not a declared variant
package diagnostic
