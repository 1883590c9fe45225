package grid

import (
	"image/color"

	"github.com/matzehuels/spellgrid/pkg/geom"
	"github.com/matzehuels/spellgrid/pkg/layout"
	"github.com/matzehuels/spellgrid/pkg/render"
)

// DrawFlat draws the row grid around center.
//
// Rows sit at every multiple of Spacing across the cross axis, out to
// MaxExtent on both sides and at most MaxLines per side; the two rows at ±RootRowIndex are highlighted.
// Columns splits the full width into that many column lines. Dots are
// placed every Spacing along each row, nearest rows first, within the same
// budget as the sun grid.
func DrawFlat(s render.Surface, center geom.Point, g layout.Grid, opts Options) Stats {
	var st Stats
	if g.Spacing <= 0 || g.MaxExtent <= 0 {
		drawCenter(s, center)
		return st
	}

	horizontal := g.Horizontal()
	half := lineCount(g.MaxExtent, g.Spacing)
	columns := min(g.Columns, MaxLines)
	ext := float64(half) * g.Spacing
	isRoot := func(k int) bool { return k == g.RootRowIndex || k == -g.RootRowIndex }

	// pt maps (along, cross) offsets to a surface position.
	pt := func(along, cross float64) geom.Point {
		if horizontal {
			return geom.ToWorld(center, along, cross)
		}
		return geom.ToWorld(center, cross, along)
	}

	for _, b := range []struct {
		style lineStyle
		root  bool
	}{{innerStyle, false}, {rootStyle, true}} {
		drawn := false
		for k := -half; k <= half; k++ {
			if isRoot(k) != b.root {
				continue
			}
			if !drawn {
				s.BeginPath()
				drawn = true
			}
			cross := float64(k) * g.Spacing
			a, z := pt(-ext, cross), pt(ext, cross)
			s.MoveTo(a.X, a.Y)
			s.LineTo(z.X, z.Y)
		}
		if drawn {
			b.style.apply(s)
			s.Stroke()
		}
	}
	st.Rings = 2*half + 1

	if columns > 0 {
		s.BeginPath()
		width := 2 * ext / float64(columns)
		for i := 0; i <= columns; i++ {
			along := -ext + float64(i)*width
			a, z := pt(along, -ext), pt(along, ext)
			s.MoveTo(a.X, a.Y)
			s.LineTo(z.X, z.Y)
		}
		spokeStyle.apply(s)
		s.Stroke()
		st.Spokes = columns + 1
	}

	budget := opts.maxDots()
	batch := newDotBatch()
	for _, k := range rowsByDistance(half) {
		cross := float64(k) * g.Spacing
		for j := -half; j <= half && batch.n < budget; j++ {
			along := float64(j) * g.Spacing
			var c color.Color = dotColor
			if opts.SegmentColor != nil {
				c = opts.SegmentColor(along)
			}
			batch.add(c, pt(along, cross))
		}
		if batch.n >= budget {
			break
		}
	}
	batch.draw(s, opts.dotRadius())
	st.Dots = batch.n

	drawCenter(s, center)
	return st
}

// rowsByDistance returns -half..half ordered 0, -1, 1, -2, 2, ...
func rowsByDistance(half int) []int {
	rows := make([]int, 0, 2*half+1)
	rows = append(rows, 0)
	for k := 1; k <= half; k++ {
		rows = append(rows, -k, k)
	}
	return rows
}
