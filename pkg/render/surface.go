package render

import "image/color"

// Surface is a 2D drawing target with canvas-like path semantics.
//
// BeginPath starts a new, empty path. Fill and Stroke paint the current path
// and keep it, so the same path may be filled and then stroked. Arc adds a
// line from the current point to the arc start when a current point exists.
// Angles are radians, increasing clockwise in surface coordinates (y down).
type Surface interface {
	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, start, end float64)
	Fill()
	Stroke()

	// FillRect paints a rectangle directly. It may discard the current
	// path, so call it outside of path construction.
	FillRect(x, y, w, h float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	// MeasureText returns the advance width of s in the surface's font.
	MeasureText(s string) float64
	// FillText draws s with its baseline starting at (x, y).
	FillText(s string, x, y float64)
}

// Circle appends a full circle as its own subpath.
func Circle(s Surface, x, y, r float64) {
	s.MoveTo(x+r, y)
	s.Arc(x, y, r, 0, fullTurn)
}
