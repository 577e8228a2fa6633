package gen

import "text/template"

// Template for checked enums.
var enumsTemplate = template.Must(template.New("enums").Parse(`// Code generated by enumgen from {{.Source}}. DO NOT EDIT.

package {{.PackageName}}

import {{if .RuntimeAlias}}{{.RuntimeAlias}} {{end}}"{{.RuntimeImport}}"
{{range $e := .Enums}}
{{range $e.Doc}}// {{.}}
{{end}}type {{$e.Name}} uint32

const (
{{- range $e.Variants}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.Ident}} {{$e.Name}} = {{.Value}}
{{- end}}
)

{{if $.GenerateComments}}// {{$e.Name}}FromUint32 returns the {{$e.Name}} declared for v. It reports false
// if v is not a declared discriminant.
{{end}}func {{$e.Name}}FromUint32(v uint32) ({{$e.Name}}, bool) {
	return enum.FromUint32[{{$e.Name}}](v)
}

{{if $.GenerateComments}}// {{$e.Name}}Values returns every declared {{$e.Name}} in declaration order.
{{end}}func {{$e.Name}}Values() []{{$e.Name}} {
	return []{{$e.Name}}{
{{- range $e.Variants}}
		{{.Ident}},
{{- end}}
	}
}

{{if $.GenerateComments}}// Uint32 returns the discriminant of e.
{{end}}func (e {{$e.Name}}) Uint32() uint32 {
	return uint32(e)
}

{{if $.GenerateComments}}// IsValid reports whether e is a declared {{$e.Name}}.
{{end}}func (e {{$e.Name}}) IsValid() bool {
	switch e {
	case {{range $i, $v := $e.Variants}}{{if $i}},
		{{end}}{{$v.Ident}}{{end}}:
		return true
	}

	return false
}

{{if $.GenerateComments}}// String returns the declared name of e, or "{{$e.Name}}(n)" for an undeclared value.
{{end}}func (e {{$e.Name}}) String() string {
	switch e {
{{- range $e.Variants}}
	case {{.Ident}}:
		return {{printf "%q" .Display}}
{{- end}}
	}

	return enum.FormatUnknown({{printf "%q" $e.Name}}, uint32(e))
}
{{end}}`))

// Template for flag sets.
var flagsTemplate = template.Must(template.New("flags").Parse(`// Code generated by enumgen from {{.Source}}. DO NOT EDIT.

package {{.PackageName}}

import {{if .RuntimeAlias}}{{.RuntimeAlias}} {{end}}"{{.RuntimeImport}}"
{{range $f := .Flags}}
{{range $f.Doc}}// {{.}}
{{end}}type {{$f.Name}} uint32

const (
	{{$f.Name}}None {{$f.Name}} = 0
{{- range $f.Bits}}
{{- range .Doc}}
	// {{.}}
{{- end}}
	{{.Ident}} {{$f.Name}} = {{.Value}}
{{- end}}
)

var {{$f.NamesVar}} = []enum.Flag[{{$f.Name}}]{
{{- range $f.Bits}}
	{Value: {{.Ident}}, Name: {{printf "%q" .Display}}},
{{- end}}
}

{{if $.GenerateComments}}// {{$f.Name}}FromUint32 returns v as a {{$f.Name}}. Every bit pattern is a valid
// {{$f.Name}}, including bits without a name.
{{end}}func {{$f.Name}}FromUint32(v uint32) {{$f.Name}} {
	return {{$f.Name}}(v)
}

{{if $.GenerateComments}}// Uint32 returns the raw bit pattern of f.
{{end}}func (f {{$f.Name}}) Uint32() uint32 {
	return uint32(f)
}

{{if $.GenerateComments}}// Has reports whether every bit of flag is set in f.
{{end}}func (f {{$f.Name}}) Has(flag {{$f.Name}}) bool {
	return enum.Has(f, flag)
}

{{if $.GenerateComments}}// Union returns the bits set in f or other.
{{end}}func (f {{$f.Name}}) Union(other {{$f.Name}}) {{$f.Name}} {
	return f | other
}

{{if $.GenerateComments}}// Intersect returns the bits set in both f and other.
{{end}}func (f {{$f.Name}}) Intersect(other {{$f.Name}}) {{$f.Name}} {
	return f & other
}

{{if $.GenerateComments}}// Without returns f with the bits of other cleared.
{{end}}func (f {{$f.Name}}) Without(other {{$f.Name}}) {{$f.Name}} {
	return f &^ other
}

{{if $.GenerateComments}}// Unknown returns the bits of f that have no name.
{{end}}func (f {{$f.Name}}) Unknown() {{$f.Name}} {
	return f &^ enum.Named({{$f.NamesVar}})
}

{{if $.GenerateComments}}// String returns the names of the bits set in f, joined by "|".
{{end}}func (f {{$f.Name}}) String() string {
	return enum.FormatFlags(f, {{$f.NamesVar}})
}
{{end}}`))
