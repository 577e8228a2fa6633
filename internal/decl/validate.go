package decl

import (
	"fmt"

	"golang.org/x/mod/module"

	"d2d-enumgen/enum"
	"d2d-enumgen/internal/common"
	"d2d-enumgen/internal/diagnostic"
	"d2d-enumgen/internal/ident"
)

// Validate checks a declaration file for everything that would make the
// generated code wrong or uncompilable.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported schema version %q", f.Version), "", "")
	}

	if f.Package != "" && !ident.IsIdentifier(f.Package) {
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not an identifier", f.Package), "", "")
	}

	if f.Runtime != "" {
		if err := module.CheckImportPath(f.Runtime); err != nil {
			res.AddError("invalid_runtime", fmt.Sprintf("runtime import path: %v", err), "", "")
		}
	}

	if common.IsEmpty(f.Enums) && common.IsEmpty(f.Flags) {
		res.AddWarning("empty_file", "no enums or flags declared", "", "")
	}

	// Every generated top-level identifier lives in one package scope.
	idents := newScope(res)

	for i := range f.Enums {
		validateEnum(res, idents, &f.Enums[i])
	}

	for i := range f.Flags {
		validateFlags(res, idents, &f.Flags[i])
	}

	return res
}

// scope tracks generated package-level identifiers.
type scope struct {
	res  *diagnostic.Diagnostics
	seen map[string]string
}

func newScope(res *diagnostic.Diagnostics) *scope {
	return &scope{res: res, seen: map[string]string{}}
}

// declare records name, reporting a clash with an earlier declaration.
func (s *scope) declare(name, owner, typeName, variant string) bool {
	if prev, ok := s.seen[name]; ok {
		s.res.AddError("duplicate_identifier",
			fmt.Sprintf("identifier %s of %s clashes with %s", name, owner, prev), typeName, variant)

		return false
	}

	s.seen[name] = owner

	return true
}

func validateTypeName(res *diagnostic.Diagnostics, idents *scope, name string) bool {
	if name == "" {
		res.AddError("missing_type_name", "type without a name", "", "")
		return false
	}

	if !ident.IsExported(name) {
		res.AddError("invalid_type_name", fmt.Sprintf("%q is not an exported Go identifier", name), name, "")
		return false
	}

	if !idents.declare(name, "type "+name, name, "") {
		return false
	}

	helper := ident.Lower(name) + "Names"

	return idents.declare(helper, "type "+name, name, "")
}

func validateEnum(res *diagnostic.Diagnostics, idents *scope, e *EnumDecl) {
	if !validateTypeName(res, idents, e.Name) {
		return
	}

	idents.declare(e.Name+"FromUint32", "type "+e.Name, e.Name, "")
	idents.declare(e.Name+"Values", "type "+e.Name, e.Name, "")

	if common.IsEmpty(e.Variants) {
		res.AddError("no_variants", "enum declares no variants", e.Name, "")
		return
	}

	validateVariants(res, idents, e.Name, e.Variants, false)

	if !e.Variants.HasValue(0) {
		res.AddWarning("no_zero_value",
			"no variant has discriminant 0; the Go zero value is not a valid "+e.Name, e.Name, "")
	}
}

func validateFlags(res *diagnostic.Diagnostics, idents *scope, fl *FlagDecl) {
	if !validateTypeName(res, idents, fl.Name) {
		return
	}

	idents.declare(fl.Name+"FromUint32", "type "+fl.Name, fl.Name, "")
	idents.declare(fl.Name+"None", "type "+fl.Name, fl.Name, "")

	if common.IsEmpty(fl.Bits) {
		res.AddError("no_bits", "flag set declares no bits", fl.Name, "")
		return
	}

	validateVariants(res, idents, fl.Name, fl.Bits, true)
}

func validateVariants(res *diagnostic.Diagnostics, idents *scope, typeName string, list VariantList, flags bool) {
	byName := map[string]struct{}{}
	byValue := map[uint32]string{}

	for _, v := range list {
		where := v.Name
		if v.Line > 0 {
			where = fmt.Sprintf("%s (line %d)", v.Name, v.Line)
		}

		if v.Name == "" {
			res.AddError("missing_variant_name", "variant without a name", typeName, where)
			continue
		}

		if _, ok := byName[v.Name]; ok {
			res.AddError("duplicate_name", fmt.Sprintf("name %q is declared twice", v.Name), typeName, where)
		}

		byName[v.Name] = struct{}{}

		if prev, ok := byValue[v.Value]; ok {
			res.AddError("duplicate_value",
				fmt.Sprintf("value %#x is already used by %s", v.Value, prev), typeName, where)
		} else {
			byValue[v.Value] = v.Name
		}

		if flags {
			switch {
			case v.Value == 0:
				res.AddError("zero_flag", "flag bit must not be zero", typeName, where)
			case !enum.IsSingleBit(v.Value):
				res.AddError("multi_bit_flag",
					fmt.Sprintf("flag value %#x must have exactly one bit set", v.Value), typeName, where)
			}
		}

		name, err := v.Ident(typeName)
		if err != nil {
			res.AddError("invalid_variant_name", err.Error(), typeName, where)
			continue
		}

		if v.Alias != "" {
			if derived, err := ident.GoName(v.Name); err == nil && derived == v.Alias {
				res.AddInfo("redundant_alias", "alias matches the derived name", typeName, where)
			}
		}

		idents.declare(name, typeName+"."+v.Name, typeName, where)
	}
}
