// Package grid draws the background grid a skill tree is laid out on.
//
// [DrawSun] draws concentric tier rings, evenly spaced dots on each ring and
// radial spokes. [DrawFlat] draws the row and column analog for flat mode.
// Both are pure functions of their inputs: nothing is retained between
// calls, and the dot count is bounded by [Options.MaxDots] so a huge extent
// cannot produce runaway geometry.
//
// All coordinates passed in are offsets from center; they are converted to
// surface positions with [geom.ToWorld].
package grid
