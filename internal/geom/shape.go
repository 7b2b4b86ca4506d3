package geom

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by shape constructors and raised by Intersects.
var (
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")
	ErrDegenerateEdge = errors.New("polygon has a zero-length edge")
	ErrNotConvex      = errors.New("polygon is not convex")
	ErrNotImplemented = errors.New("intersection test not implemented")
)

// Shape is the capability set every collidable shape supports.
// The set of shapes is closed: Circle, Segment, Polygon and Arc.
type Shape interface {
	// ContainsPoint reports whether p lies inside the shape.
	ContainsPoint(p Point) bool
	// IntersectsCircle reports whether the shape overlaps c.
	IntersectsCircle(c Circle) bool
	// Bounds returns an axis-aligned box enclosing the shape.
	Bounds() Box

	shape()
}

func (Circle) shape()  {}
func (Segment) shape() {}
func (Polygon) shape() {}
func (Arc) shape()     {}

// Intersects reports whether two shapes overlap.
//
// Any shape can be tested against a Circle. Polygons and segments can be
// tested against each other. Arcs against anything but a circle panic with
// an error wrapping ErrNotImplemented.
func Intersects(a, b Shape) bool {
	if c, ok := b.(Circle); ok {
		return a.IntersectsCircle(c)
	}
	if c, ok := a.(Circle); ok {
		return b.IntersectsCircle(c)
	}

	switch a := a.(type) {
	case Polygon:
		switch b := b.(type) {
		case Polygon:
			return a.IntersectsPolygon(b)
		case Segment:
			return b.IntersectsPolygon(a)
		}
	case Segment:
		switch b := b.(type) {
		case Segment:
			return a.IntersectsSegment(b)
		case Polygon:
			return a.IntersectsPolygon(b)
		}
	}

	panic(fmt.Errorf("geom: %T vs %T: %w", a, b, ErrNotImplemented))
}

// Box is an axis-aligned bounding box. Both edges are inclusive.
type Box struct {
	Min, Max Point
}

// BoxOf returns the smallest box enclosing all points.
func BoxOf(points ...Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Contains reports whether p lies inside or on the box.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Overlaps reports whether two boxes share at least one point.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// Expand grows the box by d on every side.
func (b Box) Expand(d float64) Box {
	return Box{
		Min: Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}
