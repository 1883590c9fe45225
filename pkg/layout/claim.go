package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/spellgrid/pkg/geom"
)

// ClaimClosest assigns spell slots to roots.
//
// Every root gets a quota of ceil(spellCount/len(roots)), capped by what is
// still unassigned. Roots are served in input order; each claims its nearest
// unclaimed candidates by squared distance, ties going to the earlier
// generated candidate. Claimed candidates are marked in place.
//
// When candidates run out the result is simply shorter than spellCount.
func ClaimClosest(roots []RootNode, candidates []Candidate, spellCount int, color string) []Placement {
	if len(roots) == 0 || len(candidates) == 0 || spellCount <= 0 {
		return []Placement{}
	}

	perRoot := ceilDiv(spellCount, len(roots))
	remaining := spellCount
	out := make([]Placement, 0, min(spellCount, len(candidates)))

	type ranked struct {
		idx int
		d2  float64
	}
	free := make([]ranked, 0, len(candidates))

	for _, root := range roots {
		if remaining <= 0 {
			break
		}
		quota := min(perRoot, remaining)

		free = free[:0]
		for i := range candidates {
			if candidates[i].Claimed {
				continue
			}
			free = append(free, ranked{i, geom.Dist2(root.X, root.Y, candidates[i].X, candidates[i].Y)})
		}
		slices.SortStableFunc(free, func(a, b ranked) int { return cmp.Compare(a.d2, b.d2) })

		n := min(quota, len(free))
		for _, r := range free[:n] {
			c := &candidates[r.idx]
			c.Claimed = true
			out = append(out, Placement{
				X:           c.X,
				Y:           c.Y,
				Color:       color,
				School:      root.School,
				Connections: []int{},
			})
		}
		remaining -= n
	}
	return out
}
