package enum_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d2d-enumgen/enum"
)

// level mirrors the shape of a generated enum with sparse discriminants.
type level uint32

const (
	levelDefault level = 0
	level9       level = 37120
	level10      level = 40960
)

func (l level) Uint32() uint32 { return uint32(l) }

func (l level) IsValid() bool {
	switch l {
	case levelDefault, level9, level10:
		return true
	}

	return false
}

func (l level) String() string {
	switch l {
	case levelDefault:
		return "Default"
	case level9:
		return "Level9"
	case level10:
		return "Level10"
	}

	return enum.FormatUnknown("level", uint32(l))
}

type mode uint32

func (m mode) Uint32() uint32 { return uint32(m) }
func (m mode) IsValid() bool  { return m < 3 }
func (m mode) String() string { return enum.FormatUnknown("mode", uint32(m)) }

type options uint32

const (
	optTarget    options = 0x1
	optCannot    options = 0x2
	optCPURead   options = 0x4
	optGDICompat options = 0x8
)

var optionNames = []enum.Flag[options]{
	{Value: optTarget, Name: "TARGET"},
	{Value: optCannot, Name: "CANNOT_DRAW"},
	{Value: optCPURead, Name: "CPU_READ"},
	{Value: optGDICompat, Name: "GDI_COMPATIBLE"},
}

func TestFromUint32(t *testing.T) {
	t.Parallel()

	for _, want := range []level{levelDefault, level9, level10} {
		got, ok := enum.FromUint32[level](want.Uint32())
		require.True(t, ok, "discriminant %d", want)
		assert.Equal(t, want, got)
	}

	for _, raw := range []uint32{1, 37119, 37121, 40961, ^uint32(0)} {
		got, ok := enum.FromUint32[level](raw)
		assert.False(t, ok, "discriminant %d", raw)
		assert.Equal(t, levelDefault, got, "absent result carries the zero value")
	}
}

func TestMustFromUint32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, level9, enum.MustFromUint32[level](37120))
	assert.PanicsWithValue(t, "enum: enum_test.level(1) is not a declared value", func() {
		enum.MustFromUint32[level](1)
	})
}

func TestUnchecked(t *testing.T) {
	t.Parallel()

	t.Run("unknown value is carried", func(t *testing.T) {
		t.Parallel()

		u := enum.NewUnchecked[level](99)
		assert.Equal(t, uint32(99), u.Uint32())
		assert.False(t, u.Known())

		_, ok := u.Enum()
		assert.False(t, ok)
		assert.Equal(t, level10, u.Or(level10))
		assert.Equal(t, "level(99)", u.String())
	})

	t.Run("known value is promoted", func(t *testing.T) {
		t.Parallel()

		u := enum.Wrap(level10)
		assert.True(t, u.Known())

		got, ok := u.Enum()
		require.True(t, ok)
		assert.Equal(t, level10, got)
		assert.Equal(t, level10, u.Or(levelDefault))
		assert.Equal(t, "Level10", u.String())
	})

	t.Run("map key", func(t *testing.T) {
		t.Parallel()

		seen := map[enum.Unchecked[level]]int{}
		seen[enum.NewUnchecked[level](7)]++
		seen[enum.NewUnchecked[level](7)]++
		seen[enum.Wrap(level9)]++

		assert.Len(t, seen, 2)
		assert.Equal(t, 2, seen[enum.NewUnchecked[level](7)])
	})

	t.Run("ordering", func(t *testing.T) {
		t.Parallel()

		a := enum.NewUnchecked[level](1)
		b := enum.NewUnchecked[level](40960)
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 1, b.Compare(a))
		assert.Equal(t, 0, a.Compare(enum.NewUnchecked[level](1)))
	})
}

func TestUncheckedLaws(t *testing.T) {
	t.Parallel()

	delegates := func(v uint32) bool {
		got, gotOK := enum.NewUnchecked[mode](v).Enum()
		want, wantOK := enum.FromUint32[mode](v)

		return got == want && gotOK == wantOK
	}
	require.NoError(t, quick.Check(delegates, nil))

	equality := func(a, b uint32) bool {
		return (enum.NewUnchecked[mode](a) == enum.NewUnchecked[mode](b)) == (a == b)
	}
	require.NoError(t, quick.Check(equality, nil))

	reflexive := func(v uint32) bool {
		return enum.NewUnchecked[level](v) == enum.NewUnchecked[level](v)
	}
	require.NoError(t, quick.Check(reflexive, nil))
}

func TestFlags(t *testing.T) {
	t.Parallel()

	set := optTarget | optCPURead
	assert.Equal(t, options(0x5), set)
	assert.True(t, enum.Has(set, optTarget))
	assert.True(t, enum.Has(set, optCPURead))
	assert.False(t, enum.Has(set, optCannot))
	assert.True(t, enum.Has(set, set))
	assert.Equal(t, options(0xf), enum.Named(optionNames))

	tests := []struct {
		name string
		set  options
		want string
	}{
		{"empty", 0, "NONE"},
		{"single", optGDICompat, "GDI_COMPATIBLE"},
		{"pair", set, "TARGET|CPU_READ"},
		{"unnamed only", 0x30, "0x30"},
		{"mixed", optCannot | 0x100, "CANNOT_DRAW|0x100"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, enum.FormatFlags(tt.set, optionNames))
		})
	}
}

func TestIsSingleBit(t *testing.T) {
	t.Parallel()

	assert.True(t, enum.IsSingleBit(0x1))
	assert.True(t, enum.IsSingleBit(0x80000000))
	assert.False(t, enum.IsSingleBit(0))
	assert.False(t, enum.IsSingleBit(0x3))
}
