// Package layout places spell slots on a procedural skill-tree grid.
//
// # Overview
//
// A [BaseData] describes the grid, the schools with their sectors, the root
// anchors of each school, and how many spells every school needs. Layout
// turns it into an ordered list of [Placement] values, one per claimed slot.
//
// Two coordinate systems are supported, selected by [Mode]:
//
//   - [ModeSun]: concentric rings (tiers) spaced by TierSpacing, schools own
//     an angular arc, growth walks tiers outward or inward from the root ring.
//   - [ModeFlat]: parallel rows spaced by Spacing, schools own a linear
//     segment, growth walks rows away from the root row.
//
// # Algorithm
//
// For every school the active [GrowthMode]:
//
//  1. Generates an over-provisioned, ordered list of [Candidate] positions
//     inside the school's sector ([GenSunCandidates], [GenFlatCandidates]).
//  2. Splits the spell count evenly across the school's roots and lets each
//     root claim its nearest unclaimed candidates ([ClaimClosest]).
//
// All coordinates are offsets from the tree center. Converting to surface
// coordinates happens once, at draw time, through geom.ToWorld.
//
// # Caching
//
// [Engine] memoizes the last result keyed by [Fingerprint]. Repeated calls
// with a structurally identical BaseData return the same slice without
// recomputing, which keeps per-frame redraws cheap.
//
// # Degradation
//
// Nothing in this package returns an error. Missing spacing yields no
// candidates; too few candidates yields fewer placements than requested.
package layout
