// Package paint provides retained paint sources for 2D canvas fill and
// stroke pipelines.
//
// # Overview
//
// A paint source describes what a fill or stroke operation paints with:
// a solid color, a gradient, or a tiled image pattern. Sources are plain
// values decoupled from any particular rasterizer; each one converts into
// a FillOrStrokeStyle, the backend-facing description a renderer consumes
// without knowing anything about the source's lifetime.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	// Build a tiling pattern from decoded RGBA pixels
//	pat := paint.NewPattern(pixels, 64, 64, paint.Repeat)
//
//	// Hand the backend an independent description of it
//	style := pat.ToFillOrStrokeStyle()
//
// # Pixel Layout
//
// Patterns and pixmaps use row-major RGBA with 4 bytes per pixel, so a
// well-formed buffer holds exactly width*height*4 bytes. NewPattern trusts
// the caller on this; use Pattern.Validate or construct through a Pixmap
// when fail-fast checking is wanted.
//
// # Concurrency
//
// A Pattern is immutable after construction and safe for concurrent use.
// Gradients are append-only while being defined and should be published to
// other goroutines only once fully built.
package paint
