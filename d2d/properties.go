package d2d

import (
	"errors"

	"d2d-enumgen/enum"
)

// Sizes of the native C layouts.
const (
	PixelFormatSize            = 8
	RenderTargetPropertiesSize = 28
	StrokeStylePropertiesSize  = 28
	BitmapBrushPropertiesSize  = 12
	ArcSegmentSize             = 28
)

// DefaultMiterLimit is the miter limit Direct2D uses when none is given.
const DefaultMiterLimit = 10

// PixelFormat mirrors D2D1_PIXEL_FORMAT.
type PixelFormat struct {
	// Format is a DXGI_FORMAT value; 0 lets Direct2D pick.
	Format    uint32
	AlphaMode enum.Unchecked[AlphaMode]
}

func (p PixelFormat) encode(w *writer) {
	w.u32(p.Format)
	w.u32(p.AlphaMode.Value)
}

func (p *PixelFormat) decode(r *reader) {
	p.Format = r.u32()
	p.AlphaMode = enum.NewUnchecked[AlphaMode](r.u32())
}

// MarshalBinary encodes p in the native layout.
func (p PixelFormat) MarshalBinary() ([]byte, error) {
	w := newWriter(PixelFormatSize)
	p.encode(w)

	return w.b, nil
}

// UnmarshalBinary decodes p from the native layout.
func (p *PixelFormat) UnmarshalBinary(b []byte) error {
	r, err := newReader("PixelFormat", b, PixelFormatSize)
	if err != nil {
		return err
	}

	p.decode(r)

	return nil
}

// Check reports an undeclared alpha mode.
func (p PixelFormat) Check() error {
	return errors.Join(checkField(nil, "PixelFormat", "AlphaMode", p.AlphaMode)...)
}

// RenderTargetProperties mirrors D2D1_RENDER_TARGET_PROPERTIES.
type RenderTargetProperties struct {
	Type        enum.Unchecked[RenderTargetType]
	PixelFormat PixelFormat
	DpiX        float32
	DpiY        float32
	Usage       RenderTargetUsage
	MinLevel    enum.Unchecked[FeatureLevel]
}

// DefaultRenderTargetProperties returns the properties Direct2D uses when a
// caller passes none: default type, format and feature level, system DPI.
func DefaultRenderTargetProperties() RenderTargetProperties {
	return RenderTargetProperties{
		Type: enum.Wrap(RenderTargetTypeDefault),
		PixelFormat: PixelFormat{
			AlphaMode: enum.Wrap(AlphaModeUnknown),
		},
		Usage:    RenderTargetUsageNone,
		MinLevel: enum.Wrap(FeatureLevelDefault),
	}
}

// MarshalBinary encodes p in the native layout.
func (p RenderTargetProperties) MarshalBinary() ([]byte, error) {
	w := newWriter(RenderTargetPropertiesSize)
	w.u32(p.Type.Value)
	p.PixelFormat.encode(w)
	w.f32(p.DpiX)
	w.f32(p.DpiY)
	w.u32(p.Usage.Uint32())
	w.u32(p.MinLevel.Value)

	return w.b, nil
}

// UnmarshalBinary decodes p from the native layout. Undeclared enum values
// are kept, not rejected.
func (p *RenderTargetProperties) UnmarshalBinary(b []byte) error {
	r, err := newReader("RenderTargetProperties", b, RenderTargetPropertiesSize)
	if err != nil {
		return err
	}

	p.Type = enum.NewUnchecked[RenderTargetType](r.u32())
	p.PixelFormat.decode(r)
	p.DpiX = r.f32()
	p.DpiY = r.f32()
	p.Usage = RenderTargetUsageFromUint32(r.u32())
	p.MinLevel = enum.NewUnchecked[FeatureLevel](r.u32())

	return nil
}

// Check reports every enum field of p that holds an undeclared value.
// Usage is a flag set and is never reported.
func (p RenderTargetProperties) Check() error {
	const name = "RenderTargetProperties"

	var errs []error
	errs = checkField(errs, name, "Type", p.Type)
	errs = checkField(errs, name, "PixelFormat.AlphaMode", p.PixelFormat.AlphaMode)
	errs = checkField(errs, name, "MinLevel", p.MinLevel)

	return errors.Join(errs...)
}

// StrokeStyleProperties mirrors D2D1_STROKE_STYLE_PROPERTIES.
type StrokeStyleProperties struct {
	StartCap   enum.Unchecked[CapStyle]
	EndCap     enum.Unchecked[CapStyle]
	DashCap    enum.Unchecked[CapStyle]
	LineJoin   enum.Unchecked[LineJoin]
	MiterLimit float32
	DashStyle  enum.Unchecked[DashStyle]
	DashOffset float32
}

// DefaultStrokeStyleProperties returns flat caps, miter joins and a solid line.
func DefaultStrokeStyleProperties() StrokeStyleProperties {
	return StrokeStyleProperties{
		StartCap:   enum.Wrap(CapStyleFlat),
		EndCap:     enum.Wrap(CapStyleFlat),
		DashCap:    enum.Wrap(CapStyleFlat),
		LineJoin:   enum.Wrap(LineJoinMiter),
		MiterLimit: DefaultMiterLimit,
		DashStyle:  enum.Wrap(DashStyleSolid),
	}
}

// MarshalBinary encodes p in the native layout.
func (p StrokeStyleProperties) MarshalBinary() ([]byte, error) {
	w := newWriter(StrokeStylePropertiesSize)
	w.u32(p.StartCap.Value)
	w.u32(p.EndCap.Value)
	w.u32(p.DashCap.Value)
	w.u32(p.LineJoin.Value)
	w.f32(p.MiterLimit)
	w.u32(p.DashStyle.Value)
	w.f32(p.DashOffset)

	return w.b, nil
}

// UnmarshalBinary decodes p from the native layout.
func (p *StrokeStyleProperties) UnmarshalBinary(b []byte) error {
	r, err := newReader("StrokeStyleProperties", b, StrokeStylePropertiesSize)
	if err != nil {
		return err
	}

	p.StartCap = enum.NewUnchecked[CapStyle](r.u32())
	p.EndCap = enum.NewUnchecked[CapStyle](r.u32())
	p.DashCap = enum.NewUnchecked[CapStyle](r.u32())
	p.LineJoin = enum.NewUnchecked[LineJoin](r.u32())
	p.MiterLimit = r.f32()
	p.DashStyle = enum.NewUnchecked[DashStyle](r.u32())
	p.DashOffset = r.f32()

	return nil
}

// Check reports every enum field of p that holds an undeclared value.
func (p StrokeStyleProperties) Check() error {
	const name = "StrokeStyleProperties"

	var errs []error
	errs = checkField(errs, name, "StartCap", p.StartCap)
	errs = checkField(errs, name, "EndCap", p.EndCap)
	errs = checkField(errs, name, "DashCap", p.DashCap)
	errs = checkField(errs, name, "LineJoin", p.LineJoin)
	errs = checkField(errs, name, "DashStyle", p.DashStyle)

	return errors.Join(errs...)
}

// BitmapBrushProperties mirrors D2D1_BITMAP_BRUSH_PROPERTIES.
type BitmapBrushProperties struct {
	ExtendModeX       enum.Unchecked[ExtendMode]
	ExtendModeY       enum.Unchecked[ExtendMode]
	InterpolationMode enum.Unchecked[BitmapInterpolationMode]
}

// MarshalBinary encodes p in the native layout.
func (p BitmapBrushProperties) MarshalBinary() ([]byte, error) {
	w := newWriter(BitmapBrushPropertiesSize)
	w.u32(p.ExtendModeX.Value)
	w.u32(p.ExtendModeY.Value)
	w.u32(p.InterpolationMode.Value)

	return w.b, nil
}

// UnmarshalBinary decodes p from the native layout.
func (p *BitmapBrushProperties) UnmarshalBinary(b []byte) error {
	r, err := newReader("BitmapBrushProperties", b, BitmapBrushPropertiesSize)
	if err != nil {
		return err
	}

	p.ExtendModeX = enum.NewUnchecked[ExtendMode](r.u32())
	p.ExtendModeY = enum.NewUnchecked[ExtendMode](r.u32())
	p.InterpolationMode = enum.NewUnchecked[BitmapInterpolationMode](r.u32())

	return nil
}

// Check reports every enum field of p that holds an undeclared value.
func (p BitmapBrushProperties) Check() error {
	const name = "BitmapBrushProperties"

	var errs []error
	errs = checkField(errs, name, "ExtendModeX", p.ExtendModeX)
	errs = checkField(errs, name, "ExtendModeY", p.ExtendModeY)
	errs = checkField(errs, name, "InterpolationMode", p.InterpolationMode)

	return errors.Join(errs...)
}

// Point2F mirrors D2D1_POINT_2F.
type Point2F struct {
	X, Y float32
}

// Size2F mirrors D2D1_SIZE_F.
type Size2F struct {
	Width, Height float32
}

// ArcSegment mirrors D2D1_ARC_SEGMENT.
type ArcSegment struct {
	Point          Point2F
	Size           Size2F
	RotationAngle  float32
	SweepDirection enum.Unchecked[SweepDirection]
	ArcSize        enum.Unchecked[ArcSize]
}

// MarshalBinary encodes a in the native layout.
func (a ArcSegment) MarshalBinary() ([]byte, error) {
	w := newWriter(ArcSegmentSize)
	w.f32(a.Point.X)
	w.f32(a.Point.Y)
	w.f32(a.Size.Width)
	w.f32(a.Size.Height)
	w.f32(a.RotationAngle)
	w.u32(a.SweepDirection.Value)
	w.u32(a.ArcSize.Value)

	return w.b, nil
}

// UnmarshalBinary decodes a from the native layout.
func (a *ArcSegment) UnmarshalBinary(b []byte) error {
	r, err := newReader("ArcSegment", b, ArcSegmentSize)
	if err != nil {
		return err
	}

	a.Point = Point2F{X: r.f32(), Y: r.f32()}
	a.Size = Size2F{Width: r.f32(), Height: r.f32()}
	a.RotationAngle = r.f32()
	a.SweepDirection = enum.NewUnchecked[SweepDirection](r.u32())
	a.ArcSize = enum.NewUnchecked[ArcSize](r.u32())

	return nil
}

// Check reports every enum field of a that holds an undeclared value.
func (a ArcSegment) Check() error {
	const name = "ArcSegment"

	var errs []error
	errs = checkField(errs, name, "SweepDirection", a.SweepDirection)
	errs = checkField(errs, name, "ArcSize", a.ArcSize)

	return errors.Join(errs...)
}
