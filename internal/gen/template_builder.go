package gen

import (
	"fmt"
	"strconv"
	"strings"

	"d2d-enumgen/internal/common"
	"d2d-enumgen/internal/decl"
	"d2d-enumgen/internal/ident"
)

// runtimePkg is the package name generated code uses for the runtime.
const runtimePkg = "enum"

// templateData holds all data needed by the file templates.
type templateData struct {
	Source           string
	PackageName      string
	RuntimeImport    string
	RuntimeAlias     string
	GenerateComments bool
	Enums            []enumData
	Flags            []flagData
}

// enumData describes one checked enum.
type enumData struct {
	Name     string
	Doc      []string
	Variants []variantData
}

// flagData describes one flag set.
type flagData struct {
	Name     string
	NamesVar string
	Doc      []string
	Bits     []variantData
}

// variantData is one constant of a generated type.
type variantData struct {
	Ident   string
	Display string
	Value   string
	Doc     []string
}

// buildTemplateData constructs the template data for a validated file.
func (g *Generator) buildTemplateData(f *decl.File, pkgName, runtimeImport string) (*templateData, error) {
	data := &templateData{
		Source:           g.config.Source,
		PackageName:      pkgName,
		RuntimeImport:    runtimeImport,
		GenerateComments: g.config.GenerateComments,
	}

	if common.PkgAlias(runtimeImport) != runtimePkg {
		data.RuntimeAlias = runtimePkg
	}

	for _, e := range f.Enums {
		variants, err := buildVariants(e.Name, e.Variants, formatDecimal)
		if err != nil {
			return nil, err
		}

		data.Enums = append(data.Enums, enumData{
			Name:     e.Name,
			Doc:      docLines(e.Name, e.Doc, "is a closed enumeration of native discriminants."),
			Variants: variants,
		})
	}

	for _, fl := range f.Flags {
		bits, err := buildVariants(fl.Name, fl.Bits, formatHex)
		if err != nil {
			return nil, err
		}

		data.Flags = append(data.Flags, flagData{
			Name:     fl.Name,
			NamesVar: ident.Lower(fl.Name) + "Names",
			Doc:      docLines(fl.Name, fl.Doc, "is a set of native bit flags."),
			Bits:     bits,
		})
	}

	return data, nil
}

func buildVariants(typeName string, list decl.VariantList, format func(uint32) string) ([]variantData, error) {
	out := make([]variantData, 0, len(list))

	for _, v := range list {
		name, err := v.Ident(typeName)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", typeName, err)
		}

		out = append(out, variantData{
			Ident:   name,
			Display: v.Name,
			Value:   format(v.Value),
			Doc:     splitLines(v.Doc),
		})
	}

	return out, nil
}

// docLines turns a declaration doc into comment lines starting with the
// type name, as golint expects.
func docLines(name, doc, fallback string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		doc = fallback
	}

	if !strings.HasPrefix(doc, name+" ") {
		doc = name + " " + doc
	}

	return splitLines(doc)
}

func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}

	return lines
}

func formatDecimal(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatHex(v uint32) string {
	return fmt.Sprintf("%#x", v)
}
