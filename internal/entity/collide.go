package entity

import "github.com/vovakirdan/tui-rocket/internal/geom"

// Collider is anything with a position and a collision radius.
type Collider interface {
	Position() geom.Point
	Radius() float64
}

// Collides reports whether the circles of a and b overlap. Compares
// squared distances; touching circles do not collide.
func Collides(a, b Collider) bool {
	r := a.Radius() + b.Radius()
	return a.Position().SquaredDistance(b.Position()) < r*r
}

// CircleOf returns the collision circle of c.
func CircleOf(c Collider) geom.Circle {
	return geom.NewCircle(c.Position(), c.Radius())
}

// Diameter returns twice the radius of c.
func Diameter(c Collider) float64 {
	return 2 * c.Radius()
}
