package geom

import (
	"fmt"
	"math"
)

// turnEpsilon is the relative tolerance under which two consecutive edges
// are treated as collinear during validation.
const turnEpsilon = 1e-12

// Polygon is a convex polygon with a consistent winding order, either
// clockwise or counter-clockwise. Build one with NewPolygon.
//
// The zero Polygon has no vertices and contains nothing.
type Polygon struct {
	points []Point
}

// NewPolygon validates the vertex loop and returns a polygon over a copy
// of it. The loop is closed implicitly from the last vertex to the first.
// Consecutive collinear vertices are allowed; duplicates are not.
func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, fmt.Errorf("geom: %d vertices: %w", len(points), ErrTooFewVertices)
	}

	n := len(points)
	for i := range points {
		if points[i] == points[(i+1)%n] {
			return Polygon{}, fmt.Errorf("geom: edge %d: %w", i, ErrDegenerateEdge)
		}
	}

	var pos, neg bool
	var turning float64
	for i := range points {
		e1 := points[(i+1)%n].Sub(points[i])
		e2 := points[(i+2)%n].Sub(points[(i+1)%n])
		cross := e1.Cross(e2)
		if math.Abs(cross) > turnEpsilon*e1.Magnitude()*e2.Magnitude() {
			if cross > 0 {
				pos = true
			} else {
				neg = true
			}
		}
		turning += math.Atan2(cross, e1.Dot(e2))
	}
	if pos == neg {
		// Mixed turns, or every vertex collinear.
		return Polygon{}, fmt.Errorf("geom: vertex turns are inconsistent: %w", ErrNotConvex)
	}
	if math.Abs(math.Abs(turning)-2*math.Pi) > 1e-6 {
		return Polygon{}, fmt.Errorf("geom: polygon winds %.2f turns: %w", turning/(2*math.Pi), ErrNotConvex)
	}

	pts := make([]Point, n)
	copy(pts, points)
	return Polygon{points: pts}, nil
}

// MustPolygon is like NewPolygon but panics on invalid input.
// Intended for fixed shapes defined in code.
func MustPolygon(points ...Point) Polygon {
	p, err := NewPolygon(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// RegularPolygon returns an n-sided polygon inscribed in a circle of the
// given radius, with the first vertex at angle rotation.
func RegularPolygon(centre Point, radius float64, n int, rotation float64) (Polygon, error) {
	if n < 3 {
		return Polygon{}, fmt.Errorf("geom: %d sides: %w", n, ErrTooFewVertices)
	}
	points := make([]Point, n)
	for i := range points {
		a := rotation + 2*math.Pi*float64(i)/float64(n)
		points[i] = centre.Add(Point{X: math.Cos(a), Y: math.Sin(a)}.Scale(radius))
	}
	return NewPolygon(points...)
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.points)
}

// Points returns a copy of the vertex loop.
func (p Polygon) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Edge returns the i-th edge, from vertex i to vertex i+1 (wrapping).
func (p Polygon) Edge(i int) Segment {
	n := len(p.points)
	return Segment{A: p.points[i%n], B: p.points[(i+1)%n]}
}

// Translate returns the polygon moved by d.
func (p Polygon) Translate(d Point) Polygon {
	pts := make([]Point, len(p.points))
	for i, v := range p.points {
		pts[i] = v.Add(d)
	}
	return Polygon{points: pts}
}

// Rotate returns the polygon rotated about the origin. Rotation preserves
// convexity and winding, so no validation is needed.
func (p Polygon) Rotate(angle float64) Polygon {
	pts := make([]Point, len(p.points))
	for i, v := range p.points {
		pts[i] = v.Rotate(angle)
	}
	return Polygon{points: pts}
}

// ContainsPoint reports whether pt is inside the polygon or on its boundary.
// The point must be on the same side of every edge; zero side values never
// disqualify it. The result does not depend on winding order.
func (p Polygon) ContainsPoint(pt Point) bool {
	if len(p.points) == 0 {
		return false
	}
	var pos, neg bool
	for i := range p.points {
		s := p.Edge(i).Side(pt)
		if s > 0 {
			pos = true
		} else if s < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// IntersectsCircle reports whether the polygon and c overlap: either the
// circle's centre is inside the polygon or some edge passes strictly
// within the radius of the centre.
func (p Polygon) IntersectsCircle(c Circle) bool {
	if p.ContainsPoint(c.Centre) {
		return true
	}
	for i := range p.points {
		if p.Edge(i).IntersectsCircle(c) {
			return true
		}
	}
	return false
}

// IntersectsPolygon reports whether two polygons overlap using the
// separating axis theorem. Touching polygons intersect.
func (p Polygon) IntersectsPolygon(o Polygon) bool {
	if len(p.points) == 0 || len(o.points) == 0 {
		return false
	}
	return !p.separatedAlongEdges(o) && !o.separatedAlongEdges(p)
}

func (p Polygon) separatedAlongEdges(o Polygon) bool {
	for i := range p.points {
		axis := p.Edge(i).Direction().Normal()
		minA, maxA := project(p.points, axis)
		minB, maxB := project(o.points, axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

func project(points []Point, axis Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range points {
		d := v.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Centroid returns the mean of the vertices.
func (p Polygon) Centroid() Point {
	var sum Point
	for _, v := range p.points {
		sum = sum.Add(v)
	}
	if len(p.points) == 0 {
		return sum
	}
	return sum.Div(float64(len(p.points)))
}

// Bounds returns the box enclosing every vertex.
func (p Polygon) Bounds() Box {
	return BoxOf(p.points...)
}
