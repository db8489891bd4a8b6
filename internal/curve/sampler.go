package curve

// DefaultSampleStep is the linear spacing between precomputed samples, in
// display units. 4 units keeps snapping error below half the marker radius
// while staying cheap to scan.
const DefaultSampleStep = 4.0

// Sample is one precomputed point on the path, tagged with its arc-length.
type Sample struct {
	X         float64
	Y         float64
	ArcLength float64
}

// PathState is the sampled form of a path. It is rebuilt from scratch
// whenever the display geometry changes; samples are display-space.
type PathState struct {
	TotalLength float64
	Samples     []Sample
}

// Rebuild walks the path at a fixed linear step and records a sample at each
// arc-length, plus one final sample exactly at the total length so the
// endpoint is always reachable even when the total is not a multiple of the
// step. Rebuild has no accumulated state: calling it repeatedly with the
// same path yields the same PathState.
func Rebuild(p *Path, step float64) *PathState {
	if step <= 0 {
		step = DefaultSampleStep
	}

	total := p.Length()
	samples := make([]Sample, 0, int(total/step)+2)
	for arc := 0.0; arc <= total; arc += step {
		pt := p.PointAt(arc)
		samples = append(samples, Sample{X: pt.X, Y: pt.Y, ArcLength: arc})
	}

	// Endpoint sample. Skipped only when the stepped walk already landed
	// exactly on the total length.
	if last := samples[len(samples)-1].ArcLength; total-last > 1e-9 {
		pt := p.PointAt(total)
		samples = append(samples, Sample{X: pt.X, Y: pt.Y, ArcLength: total})
	}

	return &PathState{TotalLength: total, Samples: samples}
}
