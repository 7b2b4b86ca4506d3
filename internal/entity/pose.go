// Package entity contains the moving objects of the rocket game and the
// circle-only collision check that drives gameplay events.
package entity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-rocket/internal/geom"
)

// Bounds is the size of the playing field. Coordinates run from 0 to W
// horizontally and 0 to H vertically.
type Bounds struct {
	W, H float64
}

// Contains reports whether p lies inside the field.
func (b Bounds) Contains(p geom.Point) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// Wrap maps p back into the field, torus style.
func (b Bounds) Wrap(p geom.Point) geom.Point {
	return geom.Point{X: wrap(p.X, b.W), Y: wrap(p.Y, b.H)}
}

// Centre returns the middle of the field.
func (b Bounds) Centre() geom.Point {
	return geom.Point{X: b.W / 2, Y: b.H / 2}
}

// Box returns the field as a geometry box.
func (b Bounds) Box() geom.Box {
	return geom.Box{Max: geom.Point{X: b.W, Y: b.H}}
}

// RandomPoint returns a uniformly distributed point inside the field.
func (b Bounds) RandomPoint(rng *rand.Rand) geom.Point {
	return geom.Point{X: rng.Float64() * b.W, Y: rng.Float64() * b.H}
}

func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// Pose is a position plus a heading in radians (0 faces +X).
// Every entity embeds one by value.
type Pose struct {
	Pos     geom.Point
	Heading float64
}

// RandomPose returns a pose at a random point with a random heading.
func RandomPose(rng *rand.Rand, b Bounds) Pose {
	return Pose{
		Pos:     b.RandomPoint(rng),
		Heading: rng.Float64() * 2 * math.Pi,
	}
}

// Position returns the current location.
func (p Pose) Position() geom.Point {
	return p.Pos
}

// Direction returns the unit vector the pose faces.
func (p Pose) Direction() geom.Point {
	return geom.Point{X: math.Cos(p.Heading), Y: math.Sin(p.Heading)}
}

// Inverted returns the same position facing the opposite way.
func (p Pose) Inverted() Pose {
	return Pose{Pos: p.Pos, Heading: p.Heading - math.Pi}
}

// Advance moves the pose forward by units along its heading.
func (p *Pose) Advance(units float64) {
	p.Pos = p.Pos.Add(p.Direction().Scale(units))
}

// AdvanceWrapping moves forward and wraps around the field edges.
func (p *Pose) AdvanceWrapping(units float64, b Bounds) {
	p.Advance(units)
	p.Pos = b.Wrap(p.Pos)
}

// Displace moves the pose by d without turning it, wrapping at the edges.
func (p *Pose) Displace(d geom.Point, b Bounds) {
	p.Pos = b.Wrap(p.Pos.Add(d))
}

// PointTo turns the pose to face target. Facing one's own position keeps
// the current heading.
func (p *Pose) PointTo(target geom.Point) {
	d := target.Sub(p.Pos)
	if d == (geom.Point{}) {
		return
	}
	p.Heading = d.Angle()
}

// Turn sets the heading to the direction of v, ignoring the zero vector.
func (p *Pose) Turn(v geom.Point) {
	if v == (geom.Point{}) {
		return
	}
	p.Heading = v.Angle()
}
