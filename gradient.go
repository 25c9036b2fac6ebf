package paint

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidStopOffset is returned by Gradient.AddColorStop for offsets
// outside [0, 1].
var ErrInvalidStopOffset = errors.New("paint: color stop offset out of range")

// gradientKind discriminates the gradient geometries.
type gradientKind int

const (
	gradientLinear gradientKind = iota
	gradientRadial
)

// Gradient is a gradient paint source for canvas fills and strokes.
//
// A gradient is created with a fixed geometry (linear or radial), then
// populated with color stops via AddColorStop. Converting it with
// ToFillOrStrokeStyle snapshots the stops, so a style handed to a backend
// is unaffected by stops added afterwards.
type Gradient struct {
	kind       gradientKind
	x0, y0, r0 float64
	x1, y1, r1 float64
	stops      []GradientStop
}

// NewLinearGradient creates a gradient along the line from (x0, y0) to
// (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{
		kind: gradientLinear,
		x0:   x0, y0: y0,
		x1: x1, y1: y1,
	}
}

// NewRadialGradient creates a gradient between the circle centered at
// (x0, y0) with radius r0 and the circle centered at (x1, y1) with
// radius r1.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *Gradient {
	return &Gradient{
		kind: gradientRadial,
		x0:   x0, y0: y0, r0: r0,
		x1: x1, y1: y1, r1: r1,
	}
}

// AddColorStop adds a color stop at the given offset.
// Offsets must be in [0, 1]; anything else (including NaN) is rejected
// with ErrInvalidStopOffset. Stops are kept in insertion order.
func (g *Gradient) AddColorStop(offset float64, color RGBA) error {
	if math.IsNaN(offset) || offset < 0 || offset > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidStopOffset, offset)
	}
	g.stops = append(g.stops, GradientStop{Offset: offset, Color: color})
	return nil
}

// Stops returns a copy of the gradient's color stops.
func (g *Gradient) Stops() []GradientStop {
	stops := make([]GradientStop, len(g.stops))
	copy(stops, g.stops)
	return stops
}

// ToFillOrStrokeStyle implements Source. The returned style carries its
// own copy of the stops.
func (g *Gradient) ToFillOrStrokeStyle() FillOrStrokeStyle {
	stops := make([]GradientStop, len(g.stops))
	copy(stops, g.stops)

	switch g.kind {
	case gradientLinear:
		return LinearGradientStyle{
			X0: g.x0, Y0: g.y0,
			X1: g.x1, Y1: g.y1,
			Stops: stops,
		}
	case gradientRadial:
		return RadialGradientStyle{
			X0: g.x0, Y0: g.y0, R0: g.r0,
			X1: g.x1, Y1: g.y1, R1: g.r1,
			Stops: stops,
		}
	}
	panic(fmt.Sprintf("paint: unknown gradient kind %d", int(g.kind)))
}
