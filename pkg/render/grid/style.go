package grid

import (
	"image/color"
	"math"

	"github.com/matzehuels/spellgrid/pkg/geom"
	"github.com/matzehuels/spellgrid/pkg/render"
)

// DefaultMaxDots bounds the number of grid dots drawn per call.
const DefaultMaxDots = 15000

// MaxLines bounds each kind of grid line per call (rings, rows on either
// side, spokes, columns), so a tiny spacing cannot make stroking unbounded.
const MaxLines = 2048

// lineCount returns ceil(extent/spacing) capped at MaxLines.
func lineCount(extent, spacing float64) int {
	return int(math.Min(math.Ceil(extent/spacing), MaxLines))
}

const (
	defaultDotRadius = 1.5
	centerRadius     = 4.0
)

// Options tunes grid drawing. The zero value is usable.
type Options struct {
	// PointColor resolves the color of a sun dot at angle (radians). Nil
	// draws every dot in the default dot color.
	PointColor func(angle float64) color.Color
	// SegmentColor resolves the color of a flat dot at position along the
	// row axis. Nil draws every dot in the default dot color.
	SegmentColor func(along float64) color.Color

	MaxDots   int     // dot budget; <= 0 means DefaultMaxDots
	DotRadius float64 // <= 0 means 1.5
}

func (o Options) maxDots() int {
	if o.MaxDots <= 0 {
		return DefaultMaxDots
	}
	return o.MaxDots
}

func (o Options) dotRadius() float64 {
	if o.DotRadius <= 0 {
		return defaultDotRadius
	}
	return o.DotRadius
}

// Stats reports what a draw call produced. Rings counts rings (sun) or rows
// (flat); Spokes counts spokes (sun) or column lines (flat).
type Stats struct {
	Rings  int
	Dots   int
	Spokes int
}

// lineStyle is one stroke batch.
type lineStyle struct {
	color color.NRGBA
	width float64
}

var (
	innerStyle = lineStyle{render.RGBA(255, 255, 255, 0.08), 1}
	rootStyle  = lineStyle{render.RGBA(255, 255, 255, 0.35), 2}
	outerStyle = lineStyle{render.RGBA(255, 255, 255, 0.04), 1}
	spokeStyle = lineStyle{render.RGBA(255, 255, 255, 0.05), 1}

	dotColor    = render.RGBA(255, 255, 255, 0.15)
	centerColor = render.RGBA(255, 255, 255, 0.5)
)

func (ls lineStyle) apply(s render.Surface) {
	s.SetStrokeColor(ls.color)
	s.SetLineWidth(ls.width)
}

// dotBatch collects dots per color in first-seen order so each color is
// filled once.
type dotBatch struct {
	order  []color.NRGBA
	points map[color.NRGBA][]geom.Point
	n      int
}

func newDotBatch() *dotBatch {
	return &dotBatch{points: make(map[color.NRGBA][]geom.Point)}
}

func (b *dotBatch) add(c color.Color, p geom.Point) {
	key := color.NRGBAModel.Convert(c).(color.NRGBA)
	if _, ok := b.points[key]; !ok {
		b.order = append(b.order, key)
	}
	b.points[key] = append(b.points[key], p)
	b.n++
}

func (b *dotBatch) draw(s render.Surface, r float64) {
	for _, c := range b.order {
		s.BeginPath()
		for _, p := range b.points[c] {
			render.Circle(s, p.X, p.Y, r)
		}
		s.SetFillColor(c)
		s.Fill()
	}
}

func drawCenter(s render.Surface, center geom.Point) {
	s.BeginPath()
	render.Circle(s, center.X, center.Y, centerRadius)
	s.SetFillColor(centerColor)
	s.Fill()
}
