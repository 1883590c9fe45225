package layout

import (
	"hash/fnv"

	"github.com/matzehuels/spellgrid/pkg/rng"
)

// GrowthMode computes placements for one coordinate system.
type GrowthMode interface {
	// Mode is the key this implementation is registered under.
	Mode() Mode
	// Place lays out every school in data.
	Place(data *BaseData) []Placement
}

// Registry maps modes to their implementation. The host builds one at
// startup and hands it to [NewEngine].
type Registry map[Mode]GrowthMode

// NewRegistry builds a registry from the given implementations. Later
// entries replace earlier ones with the same mode.
func NewRegistry(modes ...GrowthMode) Registry {
	r := make(Registry, len(modes))
	for _, m := range modes {
		r[m.Mode()] = m
	}
	return r
}

// DefaultRegistry returns a fresh registry with both built-in modes and no
// jitter.
func DefaultRegistry() Registry {
	return NewRegistry(SunGrowth{}, FlatGrowth{})
}

// Lookup returns the implementation for m.
func (r Registry) Lookup(m Mode) (GrowthMode, bool) {
	g, ok := r[m]
	return g, ok
}

// Jitter configures deterministic candidate jitter. Amount is a fraction of
// one grid cell in [0, 1]; zero disables jitter.
type Jitter struct {
	Amount float64
	Seed   uint32
}

// source returns the per-school generator, or nil when jitter is off.
// Each school gets its own stream so adding one school never shifts another.
func (j Jitter) source(school string) *rng.Source {
	if j.Amount <= 0 {
		return nil
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(school))
	return rng.New(j.Seed ^ h.Sum32())
}

// SunGrowth places schools on concentric tiers.
type SunGrowth struct {
	Jitter Jitter
}

func (SunGrowth) Mode() Mode { return ModeSun }

// Place walks each school's arc from the ring of its first root, outward or
// inward as that root points, and claims candidates for all its roots.
func (g SunGrowth) Place(data *BaseData) []Placement {
	out := []Placement{}
	for _, school := range data.Schools {
		count := data.SchoolData[school.Name]
		roots := data.RootsFor(school.Name)
		if count <= 0 || len(roots) == 0 {
			continue
		}
		cands := GenSunCandidates(SunSector{
			ArcStart:    school.ArcStart,
			ArcSize:     school.ArcSize,
			TierSpacing: data.Grid.TierSpacing,
			RingTier:    data.Grid.RingTier,
			Outward:     IsOutward(roots[0]),
			MaxNeeded:   count,
			Jitter:      g.Jitter.Amount,
			Rand:        g.Jitter.source(school.Name),
		})
		out = append(out, ClaimClosest(roots, cands, count, school.Color)...)
	}
	return out
}

// FlatGrowth places schools on parallel rows.
type FlatGrowth struct {
	Jitter Jitter
}

func (FlatGrowth) Mode() Mode { return ModeFlat }

// Place fills each school's segment row by row on the side its first root
// grows toward.
func (g FlatGrowth) Place(data *BaseData) []Placement {
	out := []Placement{}
	for _, school := range data.Schools {
		count := data.SchoolData[school.Name]
		roots := data.RootsFor(school.Name)
		if count <= 0 || len(roots) == 0 {
			continue
		}
		cands := GenFlatCandidates(FlatSector{
			SegStart:   school.SegStart,
			SegSize:    school.SegSize,
			Spacing:    data.Grid.Spacing,
			RootRow:    data.Grid.RootRowIndex,
			GrowDir:    roots[0].Dir,
			Horizontal: data.Grid.Horizontal(),
			MaxNeeded:  count,
			Jitter:     g.Jitter.Amount,
			Rand:       g.Jitter.source(school.Name),
		})
		out = append(out, ClaimClosest(roots, cands, count, school.Color)...)
	}
	return out
}

var (
	_ GrowthMode = SunGrowth{}
	_ GrowthMode = FlatGrowth{}
)
