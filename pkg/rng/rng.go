// Package rng provides a small seeded pseudo-random generator whose output is
// a pure function of the seed and the number of values drawn.
//
// The generator is mulberry32. Its output is bit-identical to the reference
// JavaScript implementation, so decorations and candidate jitter produced
// from the same seed look the same everywhere they are drawn.
//
// # Draw discipline
//
// Consumers must draw the same number of values for every logical unit they
// generate (a star, a candidate), even when the unit is later discarded.
// Skipping draws shifts every following unit.
//
//	src := rng.New(42)
//	for i := range stars {
//	    x, y, b := src.Float64(), src.Float64(), src.Float64()
//	    if !visible(x, y) {
//	        continue // values already consumed
//	    }
//	    draw(x, y, b)
//	}
package rng

// increment is the Weyl sequence step added to the state on every draw.
const increment = 0x6D2B79F5

// Source is a mulberry32 generator. The zero value is a valid source seeded
// with 0. A Source is not safe for concurrent use.
type Source struct {
	state uint32
}

// New returns a Source seeded with seed.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// Seeded returns a closure form of a fresh Source seeded with seed.
func Seeded(seed uint32) func() float64 {
	return New(seed).Float64
}

// Seed resets the source to the given seed.
func (s *Source) Seed(seed uint32) { s.state = seed }

// Uint32 returns the next raw 32-bit value.
func (s *Source) Uint32() uint32 {
	s.state += increment
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / 4294967296.0
}

// Uint64 combines two draws, high word first. It lets a Source back a
// math/rand/v2.Rand.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.Uint32())
	return hi<<32 | uint64(s.Uint32())
}
