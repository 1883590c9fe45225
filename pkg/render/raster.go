package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Raster is a Surface backed by a fogleman/gg context. Text uses gg's
// built-in bitmap face.
type Raster struct {
	dc     *gg.Context
	fill   color.Color
	stroke color.Color
}

// NewRaster creates a transparent w×h image surface.
func NewRaster(w, h int) *Raster {
	return &Raster{
		dc:     gg.NewContext(max(1, w), max(1, h)),
		fill:   color.Black,
		stroke: color.Black,
	}
}

func (r *Raster) BeginPath()          { r.dc.ClearPath() }
func (r *Raster) ClosePath()          { r.dc.ClosePath() }
func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }

func (r *Raster) Arc(x, y, radius, start, end float64) {
	if radius <= 0 {
		return
	}
	r.dc.DrawArc(x, y, radius, start, end)
}

func (r *Raster) Fill() {
	r.dc.SetFillStyle(gg.NewSolidPattern(r.fill))
	r.dc.FillPreserve()
}

func (r *Raster) Stroke() {
	r.dc.SetStrokeStyle(gg.NewSolidPattern(r.stroke))
	r.dc.StrokePreserve()
}

// FillRect clears the current path before painting.
func (r *Raster) FillRect(x, y, w, h float64) {
	r.dc.ClearPath()
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.SetFillStyle(gg.NewSolidPattern(r.fill))
	r.dc.Fill()
}

func (r *Raster) SetFillColor(c color.Color)   { r.fill = c }
func (r *Raster) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Raster) SetLineWidth(w float64)       { r.dc.SetLineWidth(w) }

func (r *Raster) MeasureText(s string) float64 {
	w, _ := r.dc.MeasureString(s)
	return w
}

func (r *Raster) FillText(s string, x, y float64) {
	r.dc.SetColor(r.fill)
	r.dc.DrawString(s, x, y)
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

var _ Surface = (*Raster)(nil)
