package grid

import (
	"image/color"
	"math"

	"github.com/matzehuels/spellgrid/pkg/geom"
	"github.com/matzehuels/spellgrid/pkg/layout"
	"github.com/matzehuels/spellgrid/pkg/render"
)

// DrawSun draws the radial grid around center.
//
// ceil(MaxExtent/TierSpacing) rings, at most MaxLines, are drawn at multiples of TierSpacing,
// batched into at most three strokes: rings inside the root ring, the root
// ring itself and rings outside it. Each ring then gets
// max(Spokes, round(circumference/baseSpacing)) dots, innermost ring first,
// until the dot budget is spent. Spokes and a center marker come last.
func DrawSun(s render.Surface, center geom.Point, g layout.Grid, opts Options) Stats {
	var st Stats
	if g.TierSpacing <= 0 || g.MaxExtent <= 0 {
		drawCenter(s, center)
		return st
	}

	tiers := lineCount(g.MaxExtent, g.TierSpacing)
	spokes := min(g.Spokes, MaxLines)
	st.Rings = tiers

	batches := []struct {
		style lineStyle
		keep  func(tier int) bool
	}{
		{innerStyle, func(t int) bool { return t < g.RingTier }},
		{rootStyle, func(t int) bool { return t == g.RingTier }},
		{outerStyle, func(t int) bool { return t > g.RingTier }},
	}
	for _, b := range batches {
		drawn := false
		for t := 1; t <= tiers; t++ {
			if !b.keep(t) {
				continue
			}
			if !drawn {
				s.BeginPath()
				drawn = true
			}
			r := float64(t) * g.TierSpacing
			render.Circle(s, center.X, center.Y, r)
		}
		if drawn {
			b.style.apply(s)
			s.Stroke()
		}
	}

	st.Dots = sunDots(s, center, g.TierSpacing, tiers, spokes, opts)

	if spokes > 0 {
		s.BeginPath()
		step := 2 * math.Pi / float64(spokes)
		for i := 0; i < spokes; i++ {
			end := geom.Polar(float64(i)*step, g.MaxExtent)
			p := geom.ToWorld(center, end.X, end.Y)
			s.MoveTo(center.X, center.Y)
			s.LineTo(p.X, p.Y)
		}
		spokeStyle.apply(s)
		s.Stroke()
		st.Spokes = spokes
	}

	drawCenter(s, center)
	return st
}

func sunDots(s render.Surface, center geom.Point, spacing float64, tiers, spokes int, opts Options) int {
	budget := opts.maxDots()
	minPoints := max(1, spokes)
	baseSpacing := spacing
	if spokes > 0 {
		baseSpacing = 2 * math.Pi * spacing / float64(spokes)
	}

	batch := newDotBatch()
	for t := 1; t <= tiers && batch.n < budget; t++ {
		r := float64(t) * spacing
		count := max(minPoints, int(math.Round(2*math.Pi*r/baseSpacing)))
		step := 2 * math.Pi / float64(count)
		for i := 0; i < count && batch.n < budget; i++ {
			angle := float64(i) * step
			off := geom.Polar(angle, r)
			var c color.Color = dotColor
			if opts.PointColor != nil {
				c = opts.PointColor(angle)
			}
			batch.add(c, geom.ToWorld(center, off.X, off.Y))
		}
	}
	batch.draw(s, opts.dotRadius())
	return batch.n
}
