package paint

// Source is implemented by every paint source that can describe itself to
// a backend. The conversion must be read-only on the source and yield a
// style with no shared mutable state, so source and style can have
// independent lifetimes.
type Source interface {
	ToFillOrStrokeStyle() FillOrStrokeStyle
}

// FillOrStrokeStyle is the backend-facing description of a fill or stroke
// paint source. This is a sealed interface - only types in this package
// implement it.
//
// Unlike a Source, which a caller retains and may convert many times, a
// style is a self-contained snapshot the rasterizer backend can consume
// (tile, interpolate, upload) without reaching back into the source.
type FillOrStrokeStyle interface {
	// styleMarker is an unexported method that seals this interface.
	styleMarker()
}

// SolidStyle paints a single color.
type SolidStyle struct {
	Color RGBA
}

func (SolidStyle) styleMarker() {}

// NewSolidStyle creates a solid color style.
func NewSolidStyle(color RGBA) SolidStyle {
	return SolidStyle{Color: color}
}

// GradientStop defines a color at a position along a gradient.
type GradientStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// LinearGradientStyle paints a gradient along the line from (X0, Y0) to
// (X1, Y1).
type LinearGradientStyle struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []GradientStop
}

func (LinearGradientStyle) styleMarker() {}

// RadialGradientStyle paints a gradient between the circle centered at
// (X0, Y0) with radius R0 and the circle centered at (X1, Y1) with
// radius R1.
type RadialGradientStyle struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []GradientStop
}

func (RadialGradientStyle) styleMarker() {}

// SurfaceStyle paints a raster image, tiled independently along each axis.
//
// Data is row-major RGBA, Width*Height*4 bytes, owned by the style: it is
// always a private copy of the originating pattern's pixels, never a view
// into them.
type SurfaceStyle struct {
	Data    []byte
	Width   int
	Height  int
	RepeatX bool
	RepeatY bool
}

func (SurfaceStyle) styleMarker() {}

// NewSurfaceStyle creates a surface style. It takes ownership of data.
func NewSurfaceStyle(data []byte, width, height int, repeatX, repeatY bool) SurfaceStyle {
	return SurfaceStyle{
		Data:    data,
		Width:   width,
		Height:  height,
		RepeatX: repeatX,
		RepeatY: repeatY,
	}
}
