// Package iou computes the Intersection over Union ratio between
// convex polygons. Unlike an axis-aligned bounding box IoU it handles
// rotated rectangles and arbitrary convex shapes by clipping the two
// outlines against each other and measuring the overlap area.
package iou

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the tolerance below which two coordinates (or a derived
// quantity such as an area or a cross product) are treated as equal.
// Callers working on a different coordinate scale can set it once at
// startup; it is not synchronized, so do not change it while other
// goroutines are computing.
var Epsilon = 1e-6

// Point is a 2D point. It doubles as a 2D vector for the algebra used
// by the clipping engine.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func NewPointFrom(point image.Point) Point {
	return Point{
		X: float64(point.X),
		Y: float64(point.Y),
	}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by t.
func (p Point) Scale(t float64) Point {
	return Point{X: p.X * t, Y: p.Y * t}
}

// Div returns p scaled by 1/t.
func (p Point) Div(t float64) Point {
	return Point{X: p.X / t, Y: p.Y / t}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the signed scalar cross product of p and q
// (the z-component of the 3D cross product).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// NormSquared returns the squared Euclidean length of p.
func (p Point) NormSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Norm()
}

// SquaredDistance returns the squared Euclidean distance between p and q.
func (p Point) SquaredDistance(q Point) float64 {
	return p.Sub(q).NormSquared()
}

// IsZero reports whether both components are within Epsilon of zero.
func (p Point) IsZero() bool {
	return math.Abs(p.X) <= Epsilon && math.Abs(p.Y) <= Epsilon
}

// Equal reports whether p and q coincide, component-wise within Epsilon.
func (p Point) Equal(q Point) bool {
	return scalar.EqualWithinAbs(p.X, q.X, Epsilon) && scalar.EqualWithinAbs(p.Y, q.Y, Epsilon)
}

// Normalized returns p scaled to unit length. A zero-length p is
// returned unchanged rather than dividing by zero.
func (p Point) Normalized() Point {
	if p.IsZero() {
		return p
	}
	return p.Div(p.Norm())
}

// Angle returns the unsigned angle between p and q in [0, pi].
// Returns 0 when either vector has zero length.
func (p Point) Angle(q Point) float64 {
	n := p.Norm() * q.Norm()
	if n <= Epsilon {
		return 0
	}
	// Clamp against floating point drift before acos.
	cos := p.Dot(q) / n
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// Theta returns the polar angle of p relative to the positive x-axis,
// in [0, 2*pi). The unsigned angle to the axis is sign-corrected with
// the cross product so the full turn is covered. Returns 0 for a
// zero-length p.
func (p Point) Theta() float64 {
	ax := Point{X: 1, Y: 0}
	a := p.Angle(ax)
	if p.Cross(ax) > 0 {
		a = 2*math.Pi - a
	}
	return a
}
