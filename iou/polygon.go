package iou

import (
	"math"

	"github.com/pkg/errors"
)

// Winding is the rotational direction in which a polygon's vertices
// are listed.
type Winding int

const (
	// WindingNone marks a degenerate loop: fewer than 3 vertices or
	// (near) zero signed area.
	WindingNone Winding = iota
	WindingClockwise
	WindingAnticlockwise
)

func (w Winding) String() string {
	switch w {
	case WindingClockwise:
		return "clockwise"
	case WindingAnticlockwise:
		return "anticlockwise"
	default:
		return "none"
	}
}

// Location classifies a point relative to a convex polygon.
type Location int

const (
	LocationOutside Location = iota
	LocationBoundary
	LocationInside
)

func (l Location) String() string {
	switch l {
	case LocationBoundary:
		return "boundary"
	case LocationInside:
		return "inside"
	default:
		return "outside"
	}
}

// Validation errors returned by Polygon.Validate.
var (
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")
	ErrNotConvex      = errors.New("polygon is not convex")
)

// Polygon is an ordered vertex loop describing a convex polygon's
// boundary. The caller must keep consecutive vertices distinct and the
// loop convex and non-self-intersecting; the engine can detect and
// normalize winding but does not verify convexity unless Validate is
// called explicitly.
type Polygon []Point

// SignedArea returns the shoelace sum over the closed loop, halved.
// Positive for anticlockwise winding, negative for clockwise.
func (c Polygon) SignedArea() float64 {
	n := len(c)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return area / 2
}

// Area returns the polygon's area as a non-negative magnitude.
func (c Polygon) Area() float64 {
	return math.Abs(c.SignedArea())
}

// Winding reports the loop's vertex ordering. Loops whose signed area
// magnitude is within Epsilon are degenerate and report WindingNone.
func (c Polygon) Winding() Winding {
	area := c.SignedArea()
	switch {
	case area > Epsilon:
		return WindingAnticlockwise
	case area < -Epsilon:
		return WindingClockwise
	default:
		return WindingNone
	}
}

// Reversed returns a copy of the loop with the vertex order reversed.
func (c Polygon) Reversed() Polygon {
	out := make(Polygon, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// Oriented returns the loop listed in the requested winding, reversing
// the vertex order when needed. Degenerate loops and a WindingNone
// target are returned as-is. Idempotent; the receiver is never
// mutated.
func (c Polygon) Oriented(w Winding) Polygon {
	current := c.Winding()
	if w == WindingNone || current == WindingNone || current == w {
		return c
	}
	return c.Reversed()
}

// Centroid returns the arithmetic mean of the vertices. A zero point
// for an empty loop.
func (c Polygon) Centroid() Point {
	if len(c) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(c)))
}

// Location classifies p against the polygon. Points within Epsilon of
// an edge are on the boundary; otherwise p is inside iff the cross
// products of every edge with the edge-start-to-p vector all carry the
// same sign (the convex half-plane test, in the loop's current
// winding).
func (c Polygon) Location(p Point) Location {
	n := len(c)
	if n < 3 {
		return LocationOutside
	}
	pos, neg := 0, 0
	for i := 0; i < n; i++ {
		a := c[i]
		b := c[(i+1)%n]
		if NewLine(a, b).ContainsPoint(p) {
			return LocationBoundary
		}
		cross := b.Sub(a).Cross(p.Sub(a))
		if cross > 0 {
			pos++
		} else if cross < 0 {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return LocationInside
	}
	return LocationOutside
}

// LineCrossings returns every point where the infinite line through
// cutter's endpoints crosses one of the polygon's edges, keeping only
// crossings that fall within the edge's own extent. Duplicates (a
// crossing at a shared vertex of two edges) are collapsed under the
// Epsilon equality rule.
func (c Polygon) LineCrossings(cutter Line) []Point {
	var pts []Point
	n := len(c)
	for i := 0; i < n; i++ {
		edge := NewLine(c[i], c[(i+1)%n])
		p, ok := edge.Intersection(cutter)
		if ok && edge.ContainsPoint(p) {
			pts = appendUnique(pts, p)
		}
	}
	return pts
}

// Validate checks, best effort, that the loop describes a convex
// polygon: at least 3 vertices, consecutive vertices distinct, and all
// turn directions carrying a consistent sign (collinear triples are
// tolerated). The engine never calls this implicitly; callers that do
// not trust their inputs should.
func (c Polygon) Validate() error {
	n := len(c)
	if n < 3 {
		return errors.Wrapf(ErrTooFewVertices, "got %d", n)
	}
	for i := 0; i < n; i++ {
		if c[i].Equal(c[(i+1)%n]) {
			return errors.Wrapf(ErrNotConvex, "coincident consecutive vertices at index %d", i)
		}
	}
	pos, neg := 0, 0
	for i := 0; i < n; i++ {
		a := c[i]
		b := c[(i+1)%n]
		d := c[(i+2)%n]
		turn := b.Sub(a).Cross(d.Sub(b))
		if turn > Epsilon {
			pos++
		} else if turn < -Epsilon {
			neg++
		}
	}
	if pos > 0 && neg > 0 {
		return errors.Wrap(ErrNotConvex, "turn directions change sign")
	}
	return nil
}

// appendUnique appends p to pts unless an Epsilon-equal point is
// already present.
func appendUnique(pts []Point, p Point) []Point {
	for _, q := range pts {
		if q.Equal(p) {
			return pts
		}
	}
	return append(pts, p)
}
