package layout

import (
	"cmp"
	"math"
	"slices"
	"testing"
)

func ringCandidates(cx, cy float64, n int) []Candidate {
	cands := make([]Candidate, n)
	for i := range cands {
		a := 2 * math.Pi * float64(i) / float64(n)
		r := 10 + 3*float64(i)
		cands[i] = Candidate{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return cands
}

func TestClaimClosestExactCount(t *testing.T) {
	tests := []struct {
		name       string
		roots      int
		candidates int
		spells     int
	}{
		{"one root", 1, 20, 7},
		{"even split", 2, 20, 10},
		{"uneven split", 3, 20, 10},
		{"all candidates", 4, 12, 12},
		{"zero spells", 2, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := make([]RootNode, tt.roots)
			for i := range roots {
				roots[i] = RootNode{X: float64(i) * 50, School: "a"}
			}
			cands := ringCandidates(0, 0, tt.candidates)

			got := ClaimClosest(roots, cands, tt.spells, "#fff")
			if len(got) != tt.spells {
				t.Fatalf("len = %d, want %d", len(got), tt.spells)
			}

			seen := make(map[[2]float64]bool)
			for _, p := range got {
				k := [2]float64{p.X, p.Y}
				if seen[k] {
					t.Errorf("candidate %v claimed twice", k)
				}
				seen[k] = true
			}

			claimed := 0
			for _, c := range cands {
				if c.Claimed {
					claimed++
				}
			}
			if claimed != tt.spells {
				t.Errorf("claimed flags = %d, want %d", claimed, tt.spells)
			}
		})
	}
}

func TestClaimClosestNearestPerRoot(t *testing.T) {
	roots := []RootNode{{X: -200, Y: 0, School: "a"}, {X: 200, Y: 0, School: "a"}}
	cands := append(ringCandidates(-200, 0, 12), ringCandidates(200, 0, 12)...)
	ref := slices.Clone(cands)

	got := ClaimClosest(roots, cands, 10, "#abc")
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}

	// Brute force: replay claiming with a full sort per root.
	taken := make([]bool, len(ref))
	for ri, root := range roots {
		idx := make([]int, 0, len(ref))
		for i := range ref {
			if !taken[i] {
				idx = append(idx, i)
			}
		}
		slices.SortStableFunc(idx, func(a, b int) int {
			da := math.Hypot(ref[a].X-root.X, ref[a].Y-root.Y)
			db := math.Hypot(ref[b].X-root.X, ref[b].Y-root.Y)
			return cmp.Compare(da, db)
		})
		for k, i := range idx[:5] {
			taken[i] = true
			p := got[ri*5+k]
			if p.X != ref[i].X || p.Y != ref[i].Y {
				t.Errorf("root %d pick %d = (%v,%v), want (%v,%v)", ri, k, p.X, p.Y, ref[i].X, ref[i].Y)
			}
		}
	}
}

func TestClaimClosestUnderSupply(t *testing.T) {
	roots := []RootNode{{School: "a"}}
	cands := ringCandidates(0, 0, 3)

	got := ClaimClosest(roots, cands, 5, "#000")
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestClaimClosestEmptyInputs(t *testing.T) {
	tests := []struct {
		name   string
		roots  []RootNode
		cands  []Candidate
		spells int
	}{
		{"no roots", nil, ringCandidates(0, 0, 4), 3},
		{"no candidates", []RootNode{{}}, nil, 3},
		{"no spells", []RootNode{{}}, ringCandidates(0, 0, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClaimClosest(tt.roots, tt.cands, tt.spells, "#000"); len(got) != 0 {
				t.Errorf("len = %d, want 0", len(got))
			}
		})
	}
}

func TestClaimClosestDeterministic(t *testing.T) {
	roots := []RootNode{{X: 0, Y: 0, School: "a"}, {X: 30, Y: 0, School: "a"}, {X: 15, Y: 20, School: "a"}}
	// A square lattice produces many equal distances.
	var cands []Candidate
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			cands = append(cands, Candidate{X: float64(x) * 10, Y: float64(y) * 10})
		}
	}

	a := ClaimClosest(slices.Clone(roots), slices.Clone(cands), 17, "#123")
	b := ClaimClosest(slices.Clone(roots), slices.Clone(cands), 17, "#123")
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y {
			t.Fatalf("placement %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestClaimClosestTieBreaksByGenerationOrder(t *testing.T) {
	root := []RootNode{{School: "a"}}
	cands := []Candidate{{X: 0, Y: 5}, {X: 5, Y: 0}, {X: -5, Y: 0}}

	got := ClaimClosest(root, cands, 2, "#000")
	if got[0].Y != 5 || got[1].X != 5 {
		t.Errorf("tie order = %+v, want generation order", got)
	}
}

func TestClaimClosestPlacementFields(t *testing.T) {
	got := ClaimClosest([]RootNode{{School: "fire"}}, ringCandidates(0, 0, 2), 1, "#ff0000")
	p := got[0]
	if p.Color != "#ff0000" || p.School != "fire" {
		t.Errorf("placement = %+v", p)
	}
	if p.Connections == nil || len(p.Connections) != 0 {
		t.Errorf("Connections = %v, want empty non-nil", p.Connections)
	}
}
