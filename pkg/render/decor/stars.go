// Package decor draws seeded background decoration.
package decor

import (
	"github.com/matzehuels/spellgrid/pkg/geom"
	"github.com/matzehuels/spellgrid/pkg/render"
	"github.com/matzehuels/spellgrid/pkg/rng"
)

const maxStarRadius = 1.2

// Starfield describes a field of stars. The same Seed and Count always
// produce the same stars; Offset shifts the whole field (parallax).
type Starfield struct {
	Seed   uint32
	Count  int
	Offset geom.Point
}

// DrawStars draws the field onto a surface of the given size and returns
// how many stars landed on it.
//
// Every star consumes exactly three random values (x, y, brightness), even
// when its shifted position falls outside the surface and it is skipped.
// That keeps each star's identity stable as Offset changes.
func DrawStars(s render.Surface, size geom.Size, f Starfield) int {
	if f.Count <= 0 || size.Empty() {
		return 0
	}

	src := rng.New(f.Seed)
	drawn := 0
	for i := 0; i < f.Count; i++ {
		x := src.Float64()*size.W + f.Offset.X
		y := src.Float64()*size.H + f.Offset.Y
		b := src.Float64()
		if x < 0 || y < 0 || x > size.W || y > size.H {
			continue
		}

		s.BeginPath()
		render.Circle(s, x, y, 0.3+b*(maxStarRadius-0.3))
		s.SetFillColor(render.RGBA(255, 255, 255, 0.2+0.6*b))
		s.Fill()
		drawn++
	}
	return drawn
}
