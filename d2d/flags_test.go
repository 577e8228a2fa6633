package d2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d2d-enumgen/enum"
)

// flagSet is the method set generated for every flag set.
type flagSet[F any] interface {
	~uint32
	Uint32() uint32
	Has(F) bool
	Union(F) F
	Intersect(F) F
	Without(F) F
	Unknown() F
	String() string
}

// checkFlagLaws verifies single-bit names, membership and union over every
// pair of distinct named bits.
func checkFlagLaws[F flagSet[F]](t *testing.T, names []enum.Flag[F]) {
	t.Helper()

	require.NotEmpty(t, names)

	var none F

	assert.Equal(t, "NONE", none.String())
	assert.Zero(t, none.Unknown())

	for _, a := range names {
		assert.True(t, enum.IsSingleBit(a.Value.Uint32()), a.Name)
		assert.True(t, a.Value.Has(a.Value), a.Name)
		assert.True(t, a.Value.Has(none), a.Name)
		assert.Equal(t, a.Name, a.Value.String())
		assert.Zero(t, a.Value.Unknown(), a.Name)
		assert.Zero(t, a.Value.Without(a.Value), a.Name)

		for _, b := range names {
			if a.Value == b.Value {
				continue
			}

			u := a.Value.Union(b.Value)
			assert.True(t, u.Has(a.Value), "%s|%s", a.Name, b.Name)
			assert.True(t, u.Has(b.Value), "%s|%s", a.Name, b.Name)
			assert.Equal(t, a.Value, u.Intersect(a.Value))
			assert.Equal(t, b.Value, u.Without(a.Value))
			assert.False(t, a.Value.Has(b.Value), "%s has %s", a.Name, b.Name)

			for _, c := range names {
				if c.Value != a.Value && c.Value != b.Value {
					assert.False(t, u.Has(c.Value), "%s|%s has %s", a.Name, b.Name, c.Name)
				}
			}
		}
	}
}

func TestFlagSets_Laws(t *testing.T) {
	t.Run("RenderTargetUsage", func(t *testing.T) { checkFlagLaws(t, renderTargetUsageNames) })
	t.Run("PresentOptions", func(t *testing.T) { checkFlagLaws(t, presentOptionsNames) })
	t.Run("DrawTextOptions", func(t *testing.T) { checkFlagLaws(t, drawTextOptionsNames) })
	t.Run("BitmapOptions", func(t *testing.T) { checkFlagLaws(t, bitmapOptionsNames) })
}

func TestBitmapOptions_Membership(t *testing.T) {
	opts := BitmapOptionsTarget.Union(BitmapOptionsCPURead)

	assert.Equal(t, uint32(0x5), opts.Uint32())
	assert.True(t, opts.Has(BitmapOptionsTarget))
	assert.True(t, opts.Has(BitmapOptionsCPURead))
	assert.False(t, opts.Has(BitmapOptionsCannotDraw))
	assert.Equal(t, "TARGET|CPU_READ", opts.String())
	assert.Equal(t, opts, BitmapOptionsFromUint32(0x5))
}

func TestFlags_Operations(t *testing.T) {
	opts := DrawTextOptionsNoSnap | DrawTextOptionsClip

	assert.Equal(t, DrawTextOptionsClip, opts.Intersect(DrawTextOptionsClip|DrawTextOptionsEnableColorFont))
	assert.Equal(t, DrawTextOptionsNoSnap, opts.Without(DrawTextOptionsClip))
	assert.True(t, opts.Has(DrawTextOptionsNone))
	assert.False(t, opts.Has(DrawTextOptionsClip|DrawTextOptionsEnableColorFont))
	assert.Equal(t, "NONE", DrawTextOptionsNone.String())
}

func TestFlags_UnnamedBitsAreValid(t *testing.T) {
	usage := RenderTargetUsageFromUint32(0x13)

	assert.True(t, usage.Has(RenderTargetUsageForceBitmapRemoting))
	assert.True(t, usage.Has(RenderTargetUsageGDICompatible))
	assert.Equal(t, RenderTargetUsage(0x10), usage.Unknown())
	assert.Equal(t, "FORCE_BITMAP_REMOTING|GDI_COMPATIBLE|0x10", usage.String())
	assert.Equal(t, uint32(0x13), usage.Uint32())

	assert.Equal(t, PresentOptions(0), (PresentOptionsRetainContents | PresentOptionsImmediately).Unknown())
}
