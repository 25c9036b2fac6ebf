package paint

import (
	"errors"
	"fmt"
)

// ErrInvalidRepetition is returned by ParseRepetition for strings that do
// not name one of the four canvas repetition modes.
var ErrInvalidRepetition = errors.New("paint: invalid repetition")

// ErrInvalidSurfaceLayout is reported by Pattern.Validate when the pixel
// buffer does not match the width*height*4 RGBA layout.
var ErrInvalidSurfaceLayout = errors.New("paint: invalid surface layout")

// Repetition selects how a pattern tiles along each axis.
type Repetition int

const (
	// Repeat tiles the pattern in both directions.
	Repeat Repetition = iota
	// RepeatX tiles the pattern horizontally only.
	RepeatX
	// RepeatY tiles the pattern vertically only.
	RepeatY
	// NoRepeat paints the pattern once, without tiling.
	NoRepeat
)

// String returns the canvas API name of the repetition mode.
func (r Repetition) String() string {
	switch r {
	case Repeat:
		return "repeat"
	case RepeatX:
		return "repeat-x"
	case RepeatY:
		return "repeat-y"
	case NoRepeat:
		return "no-repeat"
	default:
		return "Unknown"
	}
}

// ParseRepetition parses a canvas API repetition keyword.
// The empty string means "repeat", per the HTML canvas specification.
func ParseRepetition(s string) (Repetition, error) {
	switch s {
	case "repeat", "":
		return Repeat, nil
	case "repeat-x":
		return RepeatX, nil
	case "repeat-y":
		return RepeatY, nil
	case "no-repeat":
		return NoRepeat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRepetition, s)
}

// flags decomposes the mode into per-axis tiling flags. All four modes are
// listed explicitly; an out-of-range value panics so that a future mode
// cannot fall through to a silent default.
func (r Repetition) flags() (repeatX, repeatY bool) {
	switch r {
	case Repeat:
		return true, true
	case RepeatX:
		return true, false
	case RepeatY:
		return false, true
	case NoRepeat:
		return false, false
	}
	panic(fmt.Sprintf("paint: unknown Repetition %d", int(r)))
}

// Pattern is an image-backed paint source: decoded RGBA pixels plus
// independent horizontal and vertical tiling flags.
//
// A Pattern is immutable after construction. It owns its pixel buffer
// exclusively, and every conversion to a FillOrStrokeStyle copies the
// pixels, so the resulting style stays valid however long the backend
// holds onto it.
type Pattern struct {
	data    []byte
	width   int
	height  int
	repeatX bool
	repeatY bool
}

// NewPattern creates a pattern from decoded pixel data.
//
// The buffer must be row-major RGBA, len(data) == width*height*4, with
// non-negative dimensions. This is a caller obligation and is not checked
// here; a malformed buffer surfaces downstream in the backend, not as an
// error from this constructor. Use Validate for an explicit check.
//
// The pattern takes ownership of data; the caller must not modify the
// slice afterwards.
func NewPattern(data []byte, width, height int, rep Repetition) *Pattern {
	x, y := rep.flags()
	Logger().Debug("pattern created",
		"width", width, "height", height, "repetition", rep.String())
	return &Pattern{
		data:    data,
		width:   width,
		height:  height,
		repeatX: x,
		repeatY: y,
	}
}

// NewPatternFromPixmap creates a pattern from a pixmap's pixels.
//
// The pixel data is copied, so the layout invariant holds by construction
// and later pixmap edits do not leak into the pattern.
func NewPatternFromPixmap(pm *Pixmap, rep Repetition) *Pattern {
	data := make([]byte, len(pm.Data()))
	copy(data, pm.Data())
	return NewPattern(data, pm.Width(), pm.Height(), rep)
}

// Width returns the pattern width in pixels.
func (p *Pattern) Width() int {
	return p.width
}

// Height returns the pattern height in pixels.
func (p *Pattern) Height() int {
	return p.height
}

// RepeatX reports whether the pattern tiles horizontally.
func (p *Pattern) RepeatX() bool {
	return p.repeatX
}

// RepeatY reports whether the pattern tiles vertically.
func (p *Pattern) RepeatY() bool {
	return p.repeatY
}

// Data returns a copy of the pattern's pixel data.
func (p *Pattern) Data() []byte {
	data := make([]byte, len(p.data))
	copy(data, p.data)
	return data
}

// Validate checks the width*height*4 layout that NewPattern leaves to the
// caller. It reports ErrInvalidSurfaceLayout for negative dimensions or a
// mismatched buffer length, and nil for a well-formed pattern.
func (p *Pattern) Validate() error {
	if p.width < 0 || p.height < 0 {
		return fmt.Errorf("%w: negative size %dx%d",
			ErrInvalidSurfaceLayout, p.width, p.height)
	}
	if want := p.width * p.height * 4; len(p.data) != want {
		return fmt.Errorf("%w: %d bytes for %dx%d, want %d",
			ErrInvalidSurfaceLayout, len(p.data), p.width, p.height, want)
	}
	return nil
}

// ToFillOrStrokeStyle implements Source. The returned SurfaceStyle carries
// an independent copy of the pixel data, so it never aliases the pattern's
// buffer; calling it repeatedly yields value-equal, independently owned
// styles.
func (p *Pattern) ToFillOrStrokeStyle() FillOrStrokeStyle {
	data := make([]byte, len(p.data))
	copy(data, p.data)
	return SurfaceStyle{
		Data:    data,
		Width:   p.width,
		Height:  p.height,
		RepeatX: p.repeatX,
		RepeatY: p.repeatY,
	}
}
