package geom

import "math"

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{A: a, B: b}.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Side returns cross(B-A, p-A). Positive on one side of the infinite line
// through the segment, negative on the other and exactly zero when p is
// collinear. Only the sign is meaningful.
func (s Segment) Side(p Point) float64 {
	return s.B.Sub(s.A).Cross(p.Sub(s.A))
}

// Direction returns B-A.
func (s Segment) Direction() Point {
	return s.B.Sub(s.A)
}

// Length returns |B-A|.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// ClosestPoint returns the point on the segment nearest to p.
// A zero-length segment returns A.
func (s Segment) ClosestPoint(p Point) Point {
	d := s.Direction()
	l2 := d.SquaredMagnitude()
	if l2 == 0 {
		return s.A
	}
	t := p.Sub(s.A).Dot(d) / l2
	t = math.Max(0, math.Min(1, t))
	return s.A.Add(d.Scale(t))
}

// DistanceTo returns the distance from p to the nearest point of the segment.
func (s Segment) DistanceTo(p Point) float64 {
	return s.ClosestPoint(p).Distance(p)
}

// ContainsPoint reports whether p lies on the segment, endpoints included.
// The collinearity test is exact.
func (s Segment) ContainsPoint(p Point) bool {
	if s.Side(p) != 0 {
		return false
	}
	d := s.Direction()
	t := p.Sub(s.A).Dot(d)
	if d.SquaredMagnitude() == 0 {
		return p == s.A
	}
	return t >= 0 && t <= d.SquaredMagnitude()
}

// IntersectsCircle reports whether any point of the segment is strictly
// inside c.
func (s Segment) IntersectsCircle(c Circle) bool {
	return s.ClosestPoint(c.Centre).SquaredDistance(c.Centre) < c.Radius*c.Radius
}

// IntersectsSegment reports whether the two segments share a point.
// Touching endpoints and collinear overlap count as intersecting.
func (s Segment) IntersectsSegment(o Segment) bool {
	d1, d2 := s.Side(o.A), s.Side(o.B)
	d3, d4 := o.Side(s.A), o.Side(s.B)
	if straddles(d1, d2) && straddles(d3, d4) {
		return true
	}
	return s.ContainsPoint(o.A) || s.ContainsPoint(o.B) ||
		o.ContainsPoint(s.A) || o.ContainsPoint(s.B)
}

// IntersectsPolygon reports whether the segment touches or crosses p.
func (s Segment) IntersectsPolygon(p Polygon) bool {
	if p.ContainsPoint(s.A) || p.ContainsPoint(s.B) {
		return true
	}
	for i := range p.points {
		if s.IntersectsSegment(p.Edge(i)) {
			return true
		}
	}
	return false
}

// Bounds returns the box spanned by the two endpoints.
func (s Segment) Bounds() Box {
	return BoxOf(s.A, s.B)
}

func straddles(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}
