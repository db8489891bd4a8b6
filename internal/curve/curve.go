// Package curve provides the path geometry used by the rail-constrained
// drag core: cubic bezier flattening, arc-length sampling and nearest-point
// resolution. Everything here is pure math over display-space coordinates;
// no rendering types leak in.
package curve

import "math"

// Point is a position in display space.
type Point struct {
	X float64
	Y float64
}

// Lerp returns the linear interpolation between p and q at t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// DistanceTo returns the Euclidean distance from p to q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// flattenTolerance is the maximum deviation (in display units) allowed when
// a bezier segment is replaced by straight lines. Small enough that the
// polyline approximation is invisible at screen scale.
const flattenTolerance = 0.25

// CubicSegment is one cubic bezier span: from the previous anchor through
// two control points to the next anchor.
type CubicSegment struct {
	Control1 Point
	Control2 Point
	End      Point
}

// Path is a fixed curve flattened to a fine polyline with cumulative
// arc-lengths. A Path is immutable after construction; rebuilding for a new
// display transform means constructing a new Path.
type Path struct {
	points  []Point   // flattened vertices, len >= 1
	lengths []float64 // cumulative arc-length per vertex, lengths[0] == 0
	total   float64
}

// NewCubicPath builds a Path from a start anchor and a chain of cubic
// segments (the shape of an SVG "M ... C ... C ..." path).
func NewCubicPath(start Point, segments []CubicSegment) *Path {
	points := []Point{start}
	prev := start
	for _, seg := range segments {
		flattenCubic(prev, seg.Control1, seg.Control2, seg.End, &points)
		prev = seg.End
	}

	lengths := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].DistanceTo(points[i])
		lengths[i] = total
	}

	return &Path{points: points, lengths: lengths, total: total}
}

// Length returns the total arc-length of the path.
func (p *Path) Length() float64 {
	return p.total
}

// PointAt returns the point at the given arc-length from the start.
// Arc-lengths outside [0, Length] are clamped to the endpoints.
func (p *Path) PointAt(arc float64) Point {
	if arc <= 0 || len(p.points) == 1 {
		return p.points[0]
	}
	if arc >= p.total {
		return p.points[len(p.points)-1]
	}

	// Binary search for the segment containing arc.
	lo, hi := 0, len(p.lengths)-1
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if p.lengths[mid] <= arc {
			lo = mid
		} else {
			hi = mid
		}
	}

	segLen := p.lengths[hi] - p.lengths[lo]
	if segLen <= 0 {
		return p.points[lo]
	}
	t := (arc - p.lengths[lo]) / segLen
	return p.points[lo].Lerp(p.points[hi], t)
}

// flattenCubic recursively subdivides one cubic bezier until both control
// points are within flattenTolerance of the chord, appending endpoints to out.
func flattenCubic(p0, p1, p2, p3 Point, out *[]Point) {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < flattenTolerance {
		*out = append(*out, p3)
		return
	}

	// de Casteljau split at t=0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, out)
	flattenCubic(s, r1, q2, p3, out)
}

// distanceToLine returns the distance from p to the line through a and b.
// Degenerate lines (a == b) fall back to the distance to a.
func distanceToLine(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.DistanceTo(a)
	}
	// Cross product magnitude / line length.
	return math.Abs(dx*(p.Y-a.Y)-dy*(p.X-a.X)) / math.Sqrt(lenSq)
}
