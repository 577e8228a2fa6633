package decl

import (
	"fmt"

	"d2d-enumgen/internal/ident"
)

// File represents the root of a YAML declaration file.
type File struct {
	// Version of the declaration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the name of the generated package. Defaults to the name of
	// the output directory.
	Package string `yaml:"package,omitempty"`

	// Runtime is the import path of the enum runtime package. Defaults to
	// "<module>/enum" of the enclosing module.
	Runtime string `yaml:"runtime,omitempty"`

	// Enums lists the closed enumerations.
	Enums []EnumDecl `yaml:"enums,omitempty"`

	// Flags lists the open bit sets.
	Flags []FlagDecl `yaml:"flags,omitempty"`
}

// EnumDecl declares one closed enumeration.
type EnumDecl struct {
	// Name is the Go type name.
	Name string `yaml:"name"`

	// Doc is an optional doc comment for the type, without the leading name.
	Doc string `yaml:"doc,omitempty"`

	// Variants are the declared discriminants, in order.
	Variants VariantList `yaml:"variants"`
}

// FlagDecl declares one flag set.
type FlagDecl struct {
	// Name is the Go type name.
	Name string `yaml:"name"`

	// Doc is an optional doc comment for the type, without the leading name.
	Doc string `yaml:"doc,omitempty"`

	// Bits are the named single-bit masks, in order.
	Bits VariantList `yaml:"bits"`
}

// Variant is one named discriminant or flag bit.
// YAML formats supported:
//   - Plain value: "Wrap: 1"
//   - With options: "\"2.2\": {value: 0, alias: 2_2, doc: ...}"
type Variant struct {
	// Name is the display name, returned by String.
	Name string
	// Value is the discriminant or bit mask.
	Value uint32
	// Alias replaces the identifier derived from Name.
	Alias string
	// Doc is an optional comment for the generated constant.
	Doc string
	// Line is the line of the variant in the source file, 0 if unknown.
	Line int
	// Hex writes Value back as a hex literal. Set for values read as 0x..
	// and for every flag bit.
	Hex bool
}

// Suffix returns the part of the constant name that follows the type name.
func (v Variant) Suffix() (string, error) {
	if v.Alias != "" {
		return v.Alias, nil
	}

	return ident.GoName(v.Name)
}

// Ident returns the Go constant name of the variant within typeName.
func (v Variant) Ident(typeName string) (string, error) {
	suffix, err := v.Suffix()
	if err != nil {
		return "", fmt.Errorf("variant %q: %w (add an alias)", v.Name, err)
	}

	name := ident.Join(typeName, suffix)
	if !ident.IsExported(name) {
		return "", fmt.Errorf("variant %q: %q is not an exported Go identifier", v.Name, name)
	}

	return name, nil
}

// VariantList is an ordered list of variants read from a YAML mapping.
type VariantList []Variant

// HasValue reports whether some variant has the discriminant value.
func (l VariantList) HasValue(value uint32) bool {
	for _, v := range l {
		if v.Value == value {
			return true
		}
	}

	return false
}

// TypeNames returns the names of all declared types, enums first.
func (f *File) TypeNames() []string {
	names := make([]string, 0, len(f.Enums)+len(f.Flags))
	for _, e := range f.Enums {
		names = append(names, e.Name)
	}

	for _, fl := range f.Flags {
		names = append(names, fl.Name)
	}

	return names
}
