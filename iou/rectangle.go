package iou

import (
	"image"
	"math"
)

// Rectangle is an axis-aligned box (top-left corner plus extents). For
// axis-aligned inputs its IoU method is a closed-form fast path that
// agrees with the generic polygon engine; it also converts to a Quad
// for mixing with rotated shapes.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func NewRect(x, y, width, height float64) Rectangle {
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X:      float64(rect.Min.X),
		Y:      float64(rect.Min.Y),
		Width:  float64(rect.Dx()),
		Height: float64(rect.Dy()),
	}
}

// Area returns the rectangle's area.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Center returns the rectangle's center point.
func (r Rectangle) Center() Point {
	return Point{
		X: r.X + r.Width/2.0,
		Y: r.Y + r.Height/2.0,
	}
}

// Quad returns the rectangle's corners as a loop that reports
// WindingAnticlockwise under the engine's convention (positive
// shoelace area).
func (r Rectangle) Quad() Quad {
	return Quad{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// IoU returns the Intersection over Union ratio of two axis-aligned
// rectangles via min/max overlap, without running the polygon clipper.
func (r Rectangle) IoU(other Rectangle) float64 {
	xA := math.Max(r.X, other.X)
	yA := math.Max(r.Y, other.Y)
	xB := math.Min(r.X+r.Width, other.X+other.Width)
	yB := math.Min(r.Y+r.Height, other.Y+other.Height)

	inter := math.Max(0, xB-xA) * math.Max(0, yB-yA)
	if inter == 0 {
		return 0
	}
	union := r.Area() + other.Area() - inter
	if union <= Epsilon {
		return 0
	}
	return inter / union
}

// BoundingRect returns the axis-aligned bounding rectangle of a vertex
// loop. A zero Rectangle for an empty loop.
func BoundingRect(c Polygon) Rectangle {
	if len(c) == 0 {
		return Rectangle{}
	}
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for _, p := range c[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
