package plot

import "math"

// MaxPointsPerUnit caps the sampling density. At high zoom most of the curve
// is off-screen, so sampling every pixel would cost far more than it shows.
const MaxPointsPerUnit = 5000

// PointsPerUnit returns the number of samples taken per math unit at the
// given scale: round(min(scale, MaxPointsPerUnit)), at least 1.
func PointsPerUnit(scale float32) int {
	ppu := int(math.Round(math.Min(float64(scale), MaxPointsPerUnit)))
	return max(ppu, 1)
}

// SampleCurve walks p across t.XRange and returns the pixel-space polyline.
//
// Linear polynomials are sampled exactly twice, at both ends of the range,
// since two points determine a line. Other polynomials are sampled at
// x = i/ppu for every integer i in [minX*ppu, maxX*ppu), ppu being
// PointsPerUnit(t.Scale()).
//
// Samples that overflow float32 are dropped and the polyline restarts at
// the next finite sample, so a path never contains non-finite coordinates.
func SampleCurve(p Polynomial, t Transform) *Path {
	minX, maxX := t.XRange()
	path := NewPath()

	if p.IsLinear() {
		for _, x := range [2]float32{float32(minX), float32(maxX)} {
			appendSample(path, t, x, p.Evaluate(x), nil)
		}
		return path
	}

	ppu := PointsPerUnit(t.scale)
	first, last := minX*ppu, maxX*ppu
	path.elements = make([]PathElement, 0, last-first)
	broken := true
	step := float32(ppu)
	for i := first; i < last; i++ {
		x := float32(i) / step
		appendSample(path, t, x, p.Evaluate(x), &broken)
	}
	return path
}

// appendSample adds (x, y) to path, starting a new polyline when *broken is
// set. A nil broken means "start a polyline only if the path is empty".
func appendSample(path *Path, t Transform, x, y float32, broken *bool) {
	px := t.ToPixels(Pt(x, y))
	if !px.IsFinite() {
		if broken != nil {
			*broken = true
		}
		return
	}
	if broken != nil && *broken {
		path.MoveTo(px.X, px.Y)
		*broken = false
		return
	}
	path.LineTo(px.X, px.Y)
}
