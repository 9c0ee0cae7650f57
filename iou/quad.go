package iou

// Quad is a convex quadrilateral given by its four corners, the common
// case for oriented bounding boxes. It is a fixed-size convenience
// over Polygon; all geometry delegates to the generic engine.
type Quad [4]Point

func NewQuad(p1, p2, p3, p4 Point) Quad {
	return Quad{p1, p2, p3, p4}
}

// Vertices returns the corner loop as a Polygon.
func (q Quad) Vertices() Polygon {
	return Polygon(q[:])
}

// Flip swaps the second and fourth corner, reversing the direction in
// which the loop is traversed. Use it to repair quads whose corners
// were listed in the wrong order.
func (q *Quad) Flip() {
	q[1], q[3] = q[3], q[1]
}

// HasRepeatedVertex reports whether any two corners coincide within
// Epsilon, i.e. the quad is degenerate.
func (q Quad) HasRepeatedVertex() bool {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 4; j++ {
			if q[i].Equal(q[j]) {
				return true
			}
		}
	}
	return false
}

// Area returns the quad's area.
func (q Quad) Area() float64 {
	return q.Vertices().Area()
}

// Winding reports the corner ordering.
func (q Quad) Winding() Winding {
	return q.Vertices().Winding()
}

// Oriented returns the quad with its corners listed in the requested
// winding.
func (q Quad) Oriented(w Winding) Quad {
	loop := q.Vertices().Oriented(w)
	return Quad{loop[0], loop[1], loop[2], loop[3]}
}

// Location classifies p against the quad.
func (q Quad) Location(p Point) Location {
	return q.Vertices().Location(p)
}

// IntersectionArea returns the overlap area of two convex quads.
func (q Quad) IntersectionArea(other Quad) float64 {
	return IntersectionArea(q.Vertices(), other.Vertices())
}

// UnionArea returns the area covered by either quad.
func (q Quad) UnionArea(other Quad) float64 {
	return UnionArea(q.Vertices(), other.Vertices())
}

// IoU returns the Intersection over Union ratio of two convex quads.
func (q Quad) IoU(other Quad) float64 {
	return IoU(q.Vertices(), other.Vertices())
}
