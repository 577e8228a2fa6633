// Package decl provides the YAML schema, parsing and validation of
// enumeration declaration files.
//
// A declaration file is the single list that drives every generated type.
// Discriminants are dictated by the native ABI and are copied verbatim.
//
// # Schema Overview
//
//	version: "1"
//	package: d2d
//	enums:
//	  - name: ExtendMode
//	    doc: How a brush paints areas outside its normal content area.
//	    variants:
//	      Clamp: 0
//	      Wrap: 1
//	      Mirror: 2
//	  - name: Gamma
//	    variants:
//	      "2.2": {value: 0, alias: "2_2"}   # not an identifier, needs an alias
//	      "1.0": {value: 1, alias: "1_0"}
//	flags:
//	  - name: BitmapOptions
//	    bits:
//	      TARGET: 0x1
//	      CANNOT_DRAW: 0x2
//
// Variants and bits keep the order they are written in. A variant's map key
// is its display name, printed by String; the Go constant is the type name
// followed by the alias, or by the display name converted to CamelCase.
//
// # Validation
//
// Validate rejects duplicate discriminants within a type, duplicate Go
// identifiers anywhere in the file, names that need an alias, and flag bits
// that are not exactly one set bit.
package decl
