package d2d

// GeometryType distinguishes the kinds of geometry objects. It is used for
// dispatch inside the binding and has no native wire value.
type GeometryType int

const (
	GeometryTypeUnknown GeometryType = iota
	GeometryTypeEllipse
	GeometryTypeGroup
	GeometryTypePath
	GeometryTypeRectangle
	GeometryTypeRoundedRectangle
	GeometryTypeTransformed
)

// IsComposite reports whether geometries of this kind wrap other geometries.
func (g GeometryType) IsComposite() bool {
	switch g {
	default:
		return false
	case GeometryTypeGroup, GeometryTypeTransformed:
		return true
	}
}

// IsSimple reports whether the geometry is a fixed primitive shape.
func (g GeometryType) IsSimple() bool {
	switch g {
	default:
		return false
	case GeometryTypeEllipse, GeometryTypeRectangle, GeometryTypeRoundedRectangle:
		return true
	}
}
