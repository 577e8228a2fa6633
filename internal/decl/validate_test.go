package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *File {
	t.Helper()

	f, err := Parse([]byte(src))
	require.NoError(t, err)

	return f
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(mustParse(t, sampleYAML))

	assert.True(t, res.IsValid(), "unexpected errors: %v", res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"file_is_nil"}, res.Codes())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		codes []string
	}{
		{
			name: "duplicate discriminant",
			yaml: `
enums:
  - name: ExtendMode
    variants:
      Clamp: 0
      Wrap: 1
      Mirror: 1
`,
			codes: []string{"duplicate_value"},
		},
		{
			name: "runtime is not an import path",
			yaml: `
runtime: 'x"y'
enums:
  - name: ExtendMode
    variants:
      Clamp: 0
`,
			codes: []string{"invalid_runtime"},
		},
		{
			name: "duplicate display name",
			yaml: `
enums:
  - name: ExtendMode
    variants:
      Clamp: 0
      Clamp: 1
`,
			codes: []string{"duplicate_name", "duplicate_identifier"},
		},
		{
			name: "name needs alias",
			yaml: `
enums:
  - name: Gamma
    variants:
      "2.2": 0
      "1.0": 1
`,
			codes: []string{"invalid_variant_name", "invalid_variant_name"},
		},
		{
			name: "alias clash",
			yaml: `
enums:
  - name: CapStyle
    variants:
      Flat: 0
      Square: {value: 1, alias: Flat}
`,
			codes: []string{"duplicate_identifier"},
		},
		{
			name: "derived names clash",
			yaml: `
enums:
  - name: Join
    variants:
      round-join: 0
      RoundJoin: 1
`,
			codes: []string{"duplicate_identifier"},
		},
		{
			name: "duplicate type across enums and flags",
			yaml: `
enums:
  - name: Mode
    variants:
      A: 0
flags:
  - name: Mode
    bits:
      A: 0x1
`,
			codes: []string{"duplicate_identifier"},
		},
		{
			name: "constant clashes with another type",
			yaml: `
enums:
  - name: Fill
    variants:
      Mode: 0
  - name: FillMode
    variants:
      A: 0
`,
			codes: []string{"duplicate_identifier"},
		},
		{
			name: "bad type names",
			yaml: `
enums:
  - name: extendMode
    variants:
      A: 0
  - variants:
      A: 0
`,
			codes: []string{"invalid_type_name", "missing_type_name"},
		},
		{
			name: "empty variant lists",
			yaml: `
enums:
  - name: Empty
    variants: {}
flags:
  - name: NoBits
    bits: {}
`,
			codes: []string{"no_variants", "no_bits"},
		},
		{
			name: "bad flag bits",
			yaml: `
flags:
  - name: Opts
    bits:
      ZERO: 0x0
      BOTH: 0x3
      ONE: 0x1
      AGAIN: 0x1
`,
			codes: []string{"zero_flag", "multi_bit_flag", "duplicate_value"},
		},
		{
			name: "flag named like the empty set",
			yaml: `
flags:
  - name: Opts
    bits:
      NONE: 0x1
`,
			codes: []string{"duplicate_identifier"},
		},
		{
			name: "bad header",
			yaml: `
version: "2"
package: "my-pkg"
enums:
  - name: A
    variants:
      X: 0
`,
			codes: []string{"unsupported_version", "invalid_package"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(mustParse(t, tt.yaml))
			assert.Equal(t, tt.codes, res.Codes(), "diagnostics: %v", res.Error())
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	res := Validate(mustParse(t, `
enums:
  - name: Level
    variants:
      Level9: 37120
      Level10: 40960
`))
	require.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "no_zero_value", res.Warnings[0].Code)
	assert.Equal(t, "Level", res.Warnings[0].Type)

	res = Validate(mustParse(t, "version: \"1\"\n"))
	require.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "empty_file", res.Warnings[0].Code)
}

func TestValidate_RedundantAlias(t *testing.T) {
	res := Validate(mustParse(t, `
enums:
  - name: FillMode
    variants:
      Alternate: {value: 0, alias: Alternate}
      Winding: 1
`))
	require.True(t, res.IsValid())
	require.Len(t, res.Infos, 1)
	assert.Equal(t, "redundant_alias", res.Infos[0].Code)
	assert.Contains(t, res.Infos[0].Variant, "line 5")
}

func TestVariantIdent(t *testing.T) {
	id, err := Variant{Name: "FORCE_BITMAP_REMOTING"}.Ident("RenderTargetUsage")
	require.NoError(t, err)
	assert.Equal(t, "RenderTargetUsageForceBitmapRemoting", id)

	id, err = Variant{Name: "2.2", Alias: "2_2"}.Ident("Gamma")
	require.NoError(t, err)
	assert.Equal(t, "Gamma2_2", id)

	_, err = Variant{Name: "2.2"}.Ident("Gamma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add an alias")

	_, err = Variant{Name: "x", Alias: "+"}.Ident("Gamma")
	require.Error(t, err)
}
