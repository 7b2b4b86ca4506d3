package geom

// Circle is an open disk. A zero radius describes a point that contains
// nothing but can still be tested for intersection.
type Circle struct {
	Radius float64
	Centre Point
}

// NewCircle returns a circle of radius r centred on c.
func NewCircle(c Point, r float64) Circle {
	return Circle{Radius: r, Centre: c}
}

// ContainsPoint reports whether p is strictly inside the circle.
// Points on the boundary are not contained.
func (c Circle) ContainsPoint(p Point) bool {
	return c.Centre.Distance(p) < c.Radius
}

// IntersectsCircle reports whether the two circles overlap.
// Externally tangent circles do not intersect.
func (c Circle) IntersectsCircle(o Circle) bool {
	return c.Centre.Distance(o.Centre) < c.Radius+o.Radius
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Box {
	return Box{Min: c.Centre, Max: c.Centre}.Expand(c.Radius)
}

// Translate returns the circle moved by d.
func (c Circle) Translate(d Point) Circle {
	return Circle{Radius: c.Radius, Centre: c.Centre.Add(d)}
}
