// Package d2d holds the Direct2D enumerations, flag sets and the plain
// structs that carry them across the native boundary.
//
// Enumerations and flag sets are generated from enums.yaml. Their values are
// the D2D1_* discriminants of the native ABI. Structs decoded from native
// memory keep enum fields as [enum.Unchecked] so that a value added by a newer
// Direct2D runtime never makes decoding fail; promote them with Check or with
// the field's Enum method where the typed value is needed.
package d2d

//go:generate go run ../cmd/enumgen -in enums.yaml
//go:generate go tool stringer -type=GeometryType -trimprefix=GeometryType -output=geometrytype_string.go
