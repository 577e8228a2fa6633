package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Clamp", "Clamp"},
		{"IsContained", "IsContained"},
		{"Level9", "Level9"},
		{"Level10", "Level10"},
		{"FORCE_BITMAP_REMOTING", "ForceBitmapRemoting"},
		{"GDI_COMPATIBLE", "GDICompatible"},
		{"CPU_READ", "CPURead"},
		{"ENABLE_COLOR_FONT", "EnableColorFont"},
		{"TARGET", "Target"},
		{"counter-clockwise", "CounterClockwise"},
		{"nearest neighbor", "NearestNeighbor"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := GoName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGoName_NotAnIdentifier(t *testing.T) {
	for _, input := range []string{"", "2.2", "1.0", "_", "a+b", "3D"} {
		t.Run(input, func(t *testing.T) {
			_, err := GoName(input)
			assert.Error(t, err)
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"RoundedRectangle", []string{"Rounded", "Rectangle"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"orderID", []string{"order", "ID"}},
		{"NO_SNAP", []string{"NO", "SNAP"}},
		{"Level10", []string{"Level10"}},
		{"__a__b__", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "Gamma2_2", Join("Gamma", "2_2"))
	assert.True(t, IsExported("ExtendMode"))
	assert.False(t, IsExported("extendMode"))
	assert.False(t, IsExported("2_2"))
	assert.True(t, IsIdentifier("extendModeNames"))
	assert.False(t, IsIdentifier("type"))
	assert.Equal(t, "extendMode", Lower("ExtendMode"))
	assert.Equal(t, "", Lower(""))
}
