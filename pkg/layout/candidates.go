package layout

import (
	"math"

	"github.com/matzehuels/spellgrid/pkg/geom"
	"github.com/matzehuels/spellgrid/pkg/rng"
)

const (
	// sunTierMargin is added to ceil(n/2) tiers so uneven arcs never starve.
	sunTierMargin = 5
	// flatRowMargin is added to ceil(n/columns) rows.
	flatRowMargin = 3
	// maxArcPoints caps candidates per tier on very wide or distant arcs.
	maxArcPoints = 60
	// maxWalk caps the tiers or rows walked before the margin is added, and
	// maxColumns the columns of a flat segment. Together they bound the
	// candidates a single school can produce.
	maxWalk    = 4096
	maxColumns = 1024
	// allocTiers bounds the up-front allocation; larger walks grow by append.
	allocTiers = 64
)

// SunSector describes one school's arc in sun mode.
type SunSector struct {
	ArcStart    float64 // radians
	ArcSize     float64 // radians, > 0
	TierSpacing float64
	RingTier    int  // tier index of the root ring
	Outward     bool // walk tiers away from the center
	MaxNeeded   int  // spells to place

	// Jitter in [0, 1] shifts each candidate inside its own cell. Rand must
	// be set for jitter to apply; every candidate then draws two values.
	Jitter float64
	Rand   *rng.Source
}

// GenSunCandidates returns candidates on successive tiers starting one tier
// beyond the root ring, ordered tier by tier and by angle within a tier.
//
// ceil(MaxNeeded/2)+5 tiers are walked, with ceil(MaxNeeded/2) capped at
// 4096; inward walks stop before tier 0. Each tier gets clamp(round(arcLen/TierSpacing), 1, 60) candidates at the
// midpoints of equal subdivisions of the arc.
func GenSunCandidates(s SunSector) []Candidate {
	if s.TierSpacing <= 0 || s.ArcSize <= 0 || s.MaxNeeded <= 0 {
		return nil
	}

	steps := min(ceilDiv(s.MaxNeeded, 2), maxWalk) + sunTierMargin
	if !s.Outward {
		steps = min(steps, s.RingTier-1)
	}
	if steps <= 0 {
		return nil
	}
	jitter := newJitter(s.Jitter, s.Rand)
	cands := make([]Candidate, 0, min(steps, allocTiers)*maxArcPoints)

	for t := 1; t <= steps; t++ {
		tier := s.RingTier + t
		if !s.Outward {
			tier = s.RingTier - t
		}

		radius := float64(tier) * s.TierSpacing
		points := clampInt(int(math.Round(s.ArcSize*radius/s.TierSpacing)), 1, maxArcPoints)
		step := s.ArcSize / float64(points)

		for i := 0; i < points; i++ {
			du, dv := jitter.next()
			angle := s.ArcStart + (float64(i)+0.5+du)*step
			p := geom.Polar(angle, radius+dv*s.TierSpacing)
			cands = append(cands, Candidate{X: p.X, Y: p.Y, Tier: tier})
		}
	}
	return cands
}

// FlatSector describes one school's segment in flat mode.
type FlatSector struct {
	SegStart   float64 // offset along the row axis
	SegSize    float64 // > 0
	Spacing    float64
	RootRow    int     // row index of the root row
	GrowDir    float64 // radians, only its sign on the cross axis matters
	Horizontal bool    // rows run along x
	MaxNeeded  int

	Jitter float64
	Rand   *rng.Source
}

// GenFlatCandidates returns candidates on successive rows beyond the root
// row, on the side GrowDir points to.
//
// clamp(round(SegSize/Spacing), 1, 1024) columns are centered in equal
// subdivisions of the segment; ceil(MaxNeeded/columns)+3 rows are
// generated, with ceil(MaxNeeded/columns) capped at 4096.
func GenFlatCandidates(s FlatSector) []Candidate {
	if s.Spacing <= 0 || s.SegSize <= 0 || s.MaxNeeded <= 0 {
		return nil
	}

	along, cross := flatAxes(s.GrowDir, s.Horizontal)
	columns := max(1, int(math.Round(math.Min(s.SegSize/s.Spacing, maxColumns))))
	rows := min(ceilDiv(s.MaxNeeded, columns), maxWalk) + flatRowMargin
	step := s.SegSize / float64(columns)
	jitter := newJitter(s.Jitter, s.Rand)

	cands := make([]Candidate, 0, min(rows, allocTiers)*columns)
	for r := 1; r <= rows; r++ {
		row := s.RootRow + r
		for c := 0; c < columns; c++ {
			du, dv := jitter.next()
			a := s.SegStart + (float64(c)+0.5+du)*step
			d := (float64(row) + dv) * s.Spacing
			cands = append(cands, Candidate{
				X:    along.X*a + cross.X*d,
				Y:    along.Y*a + cross.Y*d,
				Tier: row,
			})
		}
	}
	return cands
}

// flatAxes splits a growth angle into the row axis and the signed unit
// vector rows advance along.
func flatAxes(growDir float64, horizontal bool) (along, cross geom.Point) {
	gx, gy := math.Cos(growDir), math.Sin(growDir)
	if horizontal {
		return geom.Point{X: 1}, geom.Point{Y: sign(gy)}
	}
	return geom.Point{Y: 1}, geom.Point{X: sign(gx)}
}

// IsOutward reports whether a root grows away from the center: its growth
// angle is within 90° of the angle of its own position.
func IsOutward(root RootNode) bool {
	pos := math.Atan2(root.Y, root.X)
	return geom.WrapAngle(root.Dir, pos) < math.Pi/2
}

// jitter draws two offsets per candidate in [-amount/2, amount/2].
type jitter struct {
	amount float64
	src    *rng.Source
}

func newJitter(amount float64, src *rng.Source) jitter {
	if src == nil || amount <= 0 {
		return jitter{}
	}
	return jitter{amount: min(amount, 1), src: src}
}

func (j jitter) next() (du, dv float64) {
	if j.src == nil {
		return 0, 0
	}
	du = (j.src.Float64() - 0.5) * j.amount
	dv = (j.src.Float64() - 0.5) * j.amount
	return du, dv
}

func sign(v float64) float64 {
	if v < -1e-9 {
		return -1
	}
	return 1
}

// ceilDiv returns ceil(n/d) for n >= 0, d > 0 without overflowing.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
