package curve

// Nearest returns the arc-length of the sample closest to (x, y).
// Linear scan over all samples with squared Euclidean distance (no square
// root per candidate); ties resolve to the first minimum encountered, so the
// result is deterministic for a fixed PathState. This is the snapping
// primitive: free-form pointer positions are projected onto the 1-D
// arc-length domain before they ever touch the tip state.
func Nearest(x, y float64, ps *PathState) float64 {
	best := 0.0
	bestDistSq := -1.0
	for _, s := range ps.Samples {
		dx := s.X - x
		dy := s.Y - y
		distSq := dx*dx + dy*dy
		if bestDistSq < 0 || distSq < bestDistSq {
			bestDistSq = distSq
			best = s.ArcLength
		}
	}
	return best
}
