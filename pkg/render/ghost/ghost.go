// Package ghost paints placements as translucent "ghost" nodes: the slots a
// school's spells will occupy once learned.
package ghost

import (
	"github.com/matzehuels/spellgrid/pkg/geom"
	"github.com/matzehuels/spellgrid/pkg/layout"
	"github.com/matzehuels/spellgrid/pkg/render"
)

const (
	glowPad     = 2.0
	glowScale   = 0.3
	borderScale = 0.6
	borderWidth = 0.5
)

// Style controls ghost appearance. Opacity is a percentage in [0, 100];
// Radius is clamped to at least 1.
type Style struct {
	Opacity float64
	Radius  float64
}

// Normalize returns s with both fields clamped to their valid ranges.
func (s Style) Normalize() Style {
	return Style{
		Opacity: max(0, min(s.Opacity, 100)),
		Radius:  max(1, s.Radius),
	}
}

// Draw paints every placement at center plus its offset: a glow circle
// (Radius+2, 30% of the opacity), a body circle at full opacity and a thin
// border.
func Draw(s render.Surface, center geom.Point, placements []layout.Placement, style Style) {
	st := style.Normalize()
	alpha := st.Opacity / 100

	for _, p := range placements {
		pos := geom.ToWorld(center, p.X, p.Y)

		s.BeginPath()
		render.Circle(s, pos.X, pos.Y, st.Radius+glowPad)
		s.SetFillColor(render.ParseColor(p.Color, alpha*glowScale))
		s.Fill()

		s.BeginPath()
		render.Circle(s, pos.X, pos.Y, st.Radius)
		s.SetFillColor(render.ParseColor(p.Color, alpha))
		s.Fill()

		s.SetStrokeColor(render.RGBA(255, 255, 255, alpha*borderScale))
		s.SetLineWidth(borderWidth)
		s.Stroke()
	}
}
