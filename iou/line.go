package iou

import "math"

// Line is a segment between two points. It is constructed and
// discarded per query; the intersection methods treat it both as a
// finite segment and as a carrier of the infinite line through its
// endpoints.
type Line struct {
	P1 Point
	P2 Point
}

func NewLine(p1, p2 Point) Line {
	return Line{
		P1: p1,
		P2: p2,
	}
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.P1.Distance(l.P2)
}

// Direction returns the segment's direction vector P2 - P1.
func (l Line) Direction() Point {
	return l.P2.Sub(l.P1)
}

// ContainsPoint reports whether p lies on the segment: its
// perpendicular distance to the supporting line is within Epsilon and
// it falls inside the segment's bounding extent (inflated by Epsilon,
// so endpoints count). Vertical and horizontal segments need no
// special casing since no slope is ever computed.
func (l Line) ContainsPoint(p Point) bool {
	d := l.Direction()
	if d.IsZero() {
		return l.P1.Equal(p)
	}
	if math.Abs(d.Cross(p.Sub(l.P1)))/d.Norm() > Epsilon {
		return false
	}
	if p.X < math.Min(l.P1.X, l.P2.X)-Epsilon || p.X > math.Max(l.P1.X, l.P2.X)+Epsilon {
		return false
	}
	if p.Y < math.Min(l.P1.Y, l.P2.Y)-Epsilon || p.Y > math.Max(l.P1.Y, l.P2.Y)+Epsilon {
		return false
	}
	return true
}

// Intersection returns the meeting point of the two infinite lines
// carried by l and other. When the directions are parallel (cross
// product within Epsilon of zero, which includes zero-length
// segments), there is no single meeting point and ok is false.
func (l Line) Intersection(other Line) (Point, bool) {
	d1 := l.Direction()
	d2 := other.Direction()
	denom := d1.Cross(d2)
	if math.Abs(denom) <= Epsilon {
		return Point{}, false
	}
	t := other.P1.Sub(l.P1).Cross(d2) / denom
	return l.P1.Add(d1.Scale(t)), true
}

// SegmentIntersection returns the point where the two finite segments
// cross, if they do. Both segments must contain the point within
// Epsilon; parallel segments never report a crossing even when they
// overlap.
func (l Line) SegmentIntersection(other Line) (Point, bool) {
	p, ok := l.Intersection(other)
	if !ok {
		return Point{}, false
	}
	if !l.ContainsPoint(p) || !other.ContainsPoint(p) {
		return Point{}, false
	}
	return p, true
}
