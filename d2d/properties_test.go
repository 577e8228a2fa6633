package d2d

import (
	"encoding"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d2d-enumgen/enum"
)

var (
	_ encoding.BinaryMarshaler   = PixelFormat{}
	_ encoding.BinaryUnmarshaler = (*PixelFormat)(nil)
	_ encoding.BinaryMarshaler   = RenderTargetProperties{}
	_ encoding.BinaryUnmarshaler = (*RenderTargetProperties)(nil)
	_ encoding.BinaryMarshaler   = StrokeStyleProperties{}
	_ encoding.BinaryUnmarshaler = (*StrokeStyleProperties)(nil)
	_ encoding.BinaryMarshaler   = BitmapBrushProperties{}
	_ encoding.BinaryUnmarshaler = (*BitmapBrushProperties)(nil)
	_ encoding.BinaryMarshaler   = ArcSegment{}
	_ encoding.BinaryUnmarshaler = (*ArcSegment)(nil)
)

func words(vs ...uint32) []byte {
	b := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}

	return b
}

func TestRenderTargetProperties_Layout(t *testing.T) {
	p := RenderTargetProperties{
		Type: enum.Wrap(RenderTargetTypeHardware),
		PixelFormat: PixelFormat{
			Format:    87,
			AlphaMode: enum.Wrap(AlphaModePremultiplied),
		},
		DpiX:     96,
		DpiY:     120,
		Usage:    RenderTargetUsageGDICompatible,
		MinLevel: enum.Wrap(FeatureLevelLevel10),
	}

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, RenderTargetPropertiesSize)

	want := words(2, 87, 1, math.Float32bits(96), math.Float32bits(120), 0x2, 40960)
	assert.Equal(t, want, b)

	var got RenderTargetProperties
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, p, got)
	assert.NoError(t, got.Check())
}

func TestPixelFormat(t *testing.T) {
	p := PixelFormat{Format: 87, AlphaMode: enum.Wrap(AlphaModeIgnore)}

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, words(87, 3), b)

	var got PixelFormat
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, p, got)
	assert.NoError(t, got.Check())

	require.NoError(t, got.UnmarshalBinary(words(28, 4)))
	assert.Equal(t, "AlphaMode(4)", got.AlphaMode.String())

	var uv *UnknownValueError
	require.ErrorAs(t, got.Check(), &uv)
	assert.Equal(t, "PixelFormat", uv.Struct)
	assert.Equal(t, uint32(4), uv.Value)
}

func TestRenderTargetProperties_UnknownValuesSurvive(t *testing.T) {
	in := words(7, 0, 9, 0, 0, 0x100, 45056)

	var p RenderTargetProperties
	require.NoError(t, p.UnmarshalBinary(in))

	assert.Equal(t, uint32(7), p.Type.Value)
	assert.Equal(t, RenderTargetUsage(0x100), p.Usage.Unknown())
	assert.Equal(t, FeatureLevelDefault, p.MinLevel.Or(FeatureLevelDefault))

	out, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	err = p.Check()
	require.Error(t, err)

	var uv *UnknownValueError
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "Type", uv.Field)
	assert.Equal(t, "RenderTargetType", uv.Type)
	assert.Equal(t, uint32(7), uv.Value)

	msg := err.Error()
	assert.Contains(t, msg, "d2d: RenderTargetProperties.Type: RenderTargetType(7)")
	assert.Contains(t, msg, "d2d: RenderTargetProperties.PixelFormat.AlphaMode: AlphaMode(9)")
	assert.Contains(t, msg, "d2d: RenderTargetProperties.MinLevel: FeatureLevel(45056)")
}

func TestDefaultRenderTargetProperties(t *testing.T) {
	p := DefaultRenderTargetProperties()

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, make([]byte, RenderTargetPropertiesSize), b)
	assert.NoError(t, p.Check())
}

func TestStrokeStyleProperties(t *testing.T) {
	p := DefaultStrokeStyleProperties()
	p.DashStyle = enum.Wrap(DashStyleDashDot)
	p.DashOffset = 0.5
	p.EndCap = enum.Wrap(CapStyleTriangle)

	b, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, words(0, 3, 0, 0, math.Float32bits(DefaultMiterLimit), 3, math.Float32bits(0.5)), b)

	var got StrokeStyleProperties
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, p, got)
	assert.NoError(t, got.Check())

	got.LineJoin = enum.NewUnchecked[LineJoin](4)
	got.DashCap = enum.NewUnchecked[CapStyle](12)

	err = got.Check()
	require.Error(t, err)
	assert.Len(t, err.(interface{ Unwrap() []error }).Unwrap(), 2)
}

func TestBitmapBrushProperties(t *testing.T) {
	in := words(2, 1, 1)

	var p BitmapBrushProperties
	require.NoError(t, p.UnmarshalBinary(in))
	assert.Equal(t, ExtendModeMirror, p.ExtendModeX.Or(ExtendModeClamp))
	assert.Equal(t, ExtendModeWrap, p.ExtendModeY.Or(ExtendModeClamp))
	assert.Equal(t, BitmapInterpolationModeLinear, p.InterpolationMode.Or(BitmapInterpolationModeNearestNeighbor))
	assert.NoError(t, p.Check())

	out, err := p.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestArcSegment(t *testing.T) {
	a := ArcSegment{
		Point:          Point2F{X: 10, Y: -4},
		Size:           Size2F{Width: 3, Height: 2},
		RotationAngle:  45,
		SweepDirection: enum.Wrap(SweepDirectionClockwise),
		ArcSize:        enum.NewUnchecked[ArcSize](2),
	}

	b, err := a.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, ArcSegmentSize)

	var got ArcSegment
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, a, got)

	var uv *UnknownValueError
	require.ErrorAs(t, got.Check(), &uv)
	assert.Equal(t, "ArcSize", uv.Field)
}

func TestUnmarshal_ShortBuffer(t *testing.T) {
	tests := []struct {
		name string
		u    encoding.BinaryUnmarshaler
		size int
	}{
		{"PixelFormat", &PixelFormat{}, PixelFormatSize},
		{"RenderTargetProperties", &RenderTargetProperties{}, RenderTargetPropertiesSize},
		{"StrokeStyleProperties", &StrokeStyleProperties{}, StrokeStylePropertiesSize},
		{"BitmapBrushProperties", &BitmapBrushProperties{}, BitmapBrushPropertiesSize},
		{"ArcSegment", &ArcSegment{}, ArcSegmentSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.u.UnmarshalBinary(make([]byte, tt.size-1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShortBuffer))
			assert.Contains(t, err.Error(), tt.name)

			assert.NoError(t, tt.u.UnmarshalBinary(make([]byte, tt.size+4)))
		})
	}
}
