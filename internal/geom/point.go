// Package geom provides the 2D vector primitive and the collision predicates
// (point containment and circle intersection) for circles, line segments,
// convex polygons and circular arcs.
//
// Everything here is pure arithmetic on float64 values: predicates never
// mutate their inputs and return the same answer for the same arguments.
package geom

import "math"

// Point is a 2D point or vector. It is a value type; every operation
// returns a new Point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromPair converts an (x, y) pair.
func FromPair(p [2]float64) Point {
	return Point{X: p[0], Y: p[1]}
}

// FromPolar builds a vector of the given length from an angle in radians.
// The angle is measured with sine on the x axis and cosine on the y axis,
// so angle 0 points along +Y.
func FromPolar(radius, angle float64) Point {
	return Point{X: radius * math.Sin(angle), Y: radius * math.Cos(angle)}
}

// Pair returns the point as an (x, y) pair.
func (p Point) Pair() [2]float64 {
	return [2]float64{p.X, p.Y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Div divides both components by k. Division by zero is not guarded and
// yields IEEE-754 infinities or NaN.
func (p Point) Div(k float64) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// Invert returns -p.
func (p Point) Invert() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product of p and q.
// Positive when q is counter-clockwise from p in a Y-up frame.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Magnitude returns the Euclidean length of p.
func (p Point) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// SquaredMagnitude returns the squared length of p.
func (p Point) SquaredMagnitude() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Unit returns p scaled to length 1. The zero vector maps to itself.
func (p Point) Unit() Point {
	m := p.Magnitude()
	if m == 0 {
		return Point{}
	}
	return p.Div(m)
}

// OfLength returns a vector with p's direction and the given length.
func (p Point) OfLength(length float64) Point {
	return p.Unit().Scale(length)
}

// Normal returns the perpendicular (y, -x).
func (p Point) Normal() Point {
	return Point{X: p.Y, Y: -p.X}
}

// SquaredDistance returns |p-q|².
func (p Point) SquaredDistance(q Point) float64 {
	return p.Sub(q).SquaredMagnitude()
}

// Distance returns |p-q|.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Rotate rotates p about the origin by angle radians.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Angle returns the direction of p in radians, in (-π, π], measured from +X.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Eq reports whether p and q are within eps of each other on both axes.
func (p Point) Eq(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}
