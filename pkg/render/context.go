// Package render defines the drawing boundary consumed by widgets and a
// recording implementation used for compositing and tests.
package render

import "github.com/go-slate/slate/pkg/graphics"

// DrawingContext records or renders drawing commands. Widgets receive a
// DrawingContext during their render step; concrete backends replay the
// same calls against a real surface.
type DrawingContext interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// FillRectangle fills the rectangle with the provided brush.
	FillRectangle(brush graphics.Brush, rect graphics.Rect)
}
