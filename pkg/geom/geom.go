// Package geom holds the small set of 2D value types shared by layout and
// rendering.
//
// Layout code works in offsets relative to the tree center. Drawing code
// works in surface coordinates. [ToWorld] is the only place an offset is
// turned into a surface position.
package geom

import "math"

// Point is a 2D position or offset.
type Point struct {
	X, Y float64
}

// Size is the extent of a drawing surface.
type Size struct {
	W, H float64
}

// Center returns the midpoint of a surface of this size.
func (s Size) Center() Point { return Point{X: s.W / 2, Y: s.H / 2} }

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// ToWorld converts a center-relative offset into a surface position.
func ToWorld(center Point, x, y float64) Point {
	return Point{X: center.X + x, Y: center.Y + y}
}

// Polar returns the offset at angle (radians) and radius r.
func Polar(angle, r float64) Point {
	return Point{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
}

// Dist2 returns the squared Euclidean distance between (ax, ay) and (bx, by).
func Dist2(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// WrapAngle folds the absolute difference between two angles into [0, π].
func WrapAngle(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
