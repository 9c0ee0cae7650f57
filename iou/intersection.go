package iou

import "sort"

// IntersectionPoints returns the boundary crossing points of the two
// polygon outlines: every point where a finite edge of a crosses a
// finite edge of b, deduplicated under the Epsilon equality rule.
func IntersectionPoints(a, b Polygon) []Point {
	var pts []Point
	na, nb := len(a), len(b)
	for i := 0; i < na; i++ {
		edgeA := NewLine(a[i], a[(i+1)%na])
		for j := 0; j < nb; j++ {
			edgeB := NewLine(b[j], b[(j+1)%nb])
			if p, ok := edgeA.SegmentIntersection(edgeB); ok {
				pts = appendUnique(pts, p)
			}
		}
	}
	return pts
}

// InnerPoints returns the vertices of a lying inside or on b, and the
// vertices of b lying inside or on a. These are the intersection
// polygon's corners that are not boundary crossings.
func InnerPoints(a, b Polygon) []Point {
	var pts []Point
	for _, p := range a {
		if b.Location(p) != LocationOutside {
			pts = appendUnique(pts, p)
		}
	}
	for _, p := range b {
		if a.Location(p) != LocationOutside {
			pts = appendUnique(pts, p)
		}
	}
	return pts
}

// IntersectionArea returns the area of the overlap of two convex
// polygons. Both loops are first normalized to clockwise winding, then
// the overlap's corners are collected (edge crossings plus mutual
// interior vertices) and reassembled into a convex loop by sorting
// around their centroid, since collection order carries no cyclic
// meaning. Fewer than 3 distinct corners means the polygons do not
// overlap, or touch only at a point or an edge: area 0.
func IntersectionArea(a, b Polygon) float64 {
	a = a.Oriented(WindingClockwise)
	b = b.Oriented(WindingClockwise)

	pts := IntersectionPoints(a, b)
	for _, p := range InnerPoints(a, b) {
		pts = appendUnique(pts, p)
	}
	if len(pts) < 3 {
		return 0
	}
	return Polygon(sortAroundCentroid(pts)).Area()
}

// UnionArea returns the area covered by either polygon, via the
// inclusion-exclusion identity; no union polygon is ever built.
func UnionArea(a, b Polygon) float64 {
	return a.Area() + b.Area() - IntersectionArea(a, b)
}

// IoU returns the Intersection over Union ratio of two convex
// polygons, in [0, 1]. When both polygons are degenerate the union is
// (near) zero and the ratio is defined as 0.
func IoU(a, b Polygon) float64 {
	inter := IntersectionArea(a, b)
	union := a.Area() + b.Area() - inter
	if union <= Epsilon {
		return 0
	}
	return inter / union
}

// sortAroundCentroid orders a centroid-relative point cloud into a
// valid convex loop: stable sort by polar angle around the centroid,
// ties (points collinear with the centroid) broken by squared distance
// so the output is deterministic.
func sortAroundCentroid(pts []Point) []Point {
	center := Polygon(pts).Centroid()
	type polar struct {
		p     Point
		theta float64
		dist  float64
	}
	polars := make([]polar, len(pts))
	for i, p := range pts {
		d := p.Sub(center)
		polars[i] = polar{p: p, theta: d.Theta(), dist: d.NormSquared()}
	}
	sort.SliceStable(polars, func(i, j int) bool {
		if polars[i].theta != polars[j].theta {
			return polars[i].theta < polars[j].theta
		}
		return polars[i].dist < polars[j].dist
	})
	out := make([]Point, len(polars))
	for i, pl := range polars {
		out[i] = pl.p
	}
	return out
}
