package geom

import "math"

// Arc is an annular wedge: the points whose distance from Inner.Centre lies
// between Inner.Radius and Inner.Radius+Thickness and whose direction from
// the centre lies between AngleStart and AngleEnd, counter-clockwise.
//
// Angles are radians measured from +X, the same frame as Point.Angle.
type Arc struct {
	AngleStart float64
	AngleEnd   float64
	Thickness  float64
	Inner      Circle
}

// Centre returns the centre shared by the inner and outer circles.
func (a Arc) Centre() Point {
	return a.Inner.Centre
}

// Outer returns the circle bounding the arc from outside.
func (a Arc) Outer() Circle {
	return Circle{Radius: a.Inner.Radius + a.Thickness, Centre: a.Inner.Centre}
}

// FullRing reports whether the wedge covers a whole turn.
func (a Arc) FullRing() bool {
	return a.AngleEnd-a.AngleStart >= 2*math.Pi
}

// Span returns AngleEnd-AngleStart normalised to [0, 2π).
func (a Arc) Span() float64 {
	span := math.Mod(a.AngleEnd-a.AngleStart, 2*math.Pi)
	if span < 0 {
		span += 2 * math.Pi
	}
	return span
}

// ContainsPoint reports whether p is in the arc. Points on the inner
// circle are contained; points on the outer circle are not.
func (a Arc) ContainsPoint(p Point) bool {
	if a.Inner.ContainsPoint(p) {
		return false
	}
	if !a.Outer().ContainsPoint(p) {
		return false
	}
	return a.inWedge(p.Sub(a.Inner.Centre))
}

// inWedge tests direction v, relative to the centre, against the two rays
// bounding the wedge. The start ray qualifies on its counter-clockwise side
// and the end ray on its clockwise side. A wedge wider than half a turn is
// the union of the two half-planes, otherwise their intersection.
func (a Arc) inWedge(v Point) bool {
	if a.FullRing() {
		return true
	}
	start := Point{X: math.Cos(a.AngleStart), Y: math.Sin(a.AngleStart)}
	end := Point{X: math.Cos(a.AngleEnd), Y: math.Sin(a.AngleEnd)}

	afterStart := start.Cross(v) >= 0
	beforeEnd := end.Cross(v) <= 0

	span := a.Span()
	switch {
	case span == 0:
		// Degenerate wedge: only the start ray itself.
		return start.Cross(v) == 0 && start.Dot(v) >= 0
	case span > math.Pi:
		return afterStart || beforeEnd
	default:
		return afterStart && beforeEnd
	}
}

// IntersectsCircle reports whether c overlaps the arc: its centre is in the
// arc, or it reaches the inner or outer curve inside the wedge, or it
// reaches one of the two radial edges.
func (a Arc) IntersectsCircle(c Circle) bool {
	if a.ContainsPoint(c.Centre) {
		return true
	}

	v := c.Centre.Sub(a.Inner.Centre)
	if a.inWedge(v) {
		d := v.Magnitude()
		for _, r := range []float64{a.Inner.Radius, a.Outer().Radius} {
			if r > 0 && math.Abs(d-r) < c.Radius {
				return true
			}
		}
	}

	if a.FullRing() {
		return false
	}
	for _, edge := range a.RadialEdges() {
		if edge.IntersectsCircle(c) {
			return true
		}
	}
	return false
}

// RadialEdges returns the straight edges at AngleStart and AngleEnd,
// each running from the inner to the outer circle.
func (a Arc) RadialEdges() [2]Segment {
	inner, outer := a.Inner.Radius, a.Outer().Radius
	ray := func(angle float64) Segment {
		dir := Point{X: math.Cos(angle), Y: math.Sin(angle)}
		return Segment{
			A: a.Inner.Centre.Add(dir.Scale(inner)),
			B: a.Inner.Centre.Add(dir.Scale(outer)),
		}
	}
	return [2]Segment{ray(a.AngleStart), ray(a.AngleEnd)}
}

// Bounds returns the box of the outer circle.
func (a Arc) Bounds() Box {
	return a.Outer().Bounds()
}

// Translate returns the arc moved by d.
func (a Arc) Translate(d Point) Arc {
	a.Inner = a.Inner.Translate(d)
	return a
}
