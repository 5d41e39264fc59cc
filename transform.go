package plot

import "math"

// Transform maps between math space and pixel space for one frame.
// It is a snapshot: later changes to the View do not affect it.
//
// Pixel space has its origin at the top-left corner with y growing down.
// Math space has its origin at the plotted (0,0) with y growing up.
type Transform struct {
	scale  float32
	origin Point  // pixel position of the math origin
	m      Matrix // math to pixels
	vp     Viewport
}

// NewTransform captures the current state of v for viewport vp.
func NewTransform(v *View, vp Viewport) Transform {
	origin := Point{
		X: float32(vp.Width)/2 + v.offset.X,
		Y: float32(vp.Height)/2 + v.offset.Y,
	}
	return Transform{
		scale:  v.scale,
		origin: origin,
		m:      Translate(origin.X, origin.Y).Multiply(Scale(v.scale, -v.scale)),
		vp:     vp,
	}
}

// Scale returns the pixels-per-unit of the snapshot.
func (t Transform) Scale() float32 {
	return t.scale
}

// Viewport returns the viewport the transform was built for.
func (t Transform) Viewport() Viewport {
	return t.vp
}

// Origin returns the pixel position of the math origin.
func (t Transform) Origin() Point {
	return t.origin
}

// Matrix returns the affine math-to-pixel map.
func (t Transform) Matrix() Matrix {
	return t.m
}

// ToPixels maps a math-space point to pixel space:
//
//	px = width/2 + offset.x + x*scale
//	py = height/2 + offset.y - y*scale
//
// A non-finite coordinate in p makes both pixel coordinates non-finite.
func (t Transform) ToPixels(p Point) Point {
	return t.m.TransformPoint(p)
}

// ToMath is the inverse of ToPixels.
func (t Transform) ToMath(px Point) Point {
	return t.m.InvertScaleTranslate(px)
}

// XRange returns the integer math x-range to draw. It always reaches at
// least one unit past both the left and right viewport edges, so lines and
// curves run off the surface instead of stopping short of it.
func (t Transform) XRange() (minX, maxX int) {
	return unitRange(t.origin.X, float32(t.vp.Width), t.scale)
}

// YRange is XRange for the vertical axis. Pixel y grows downwards, so the
// bottom edge gives the minimum.
func (t Transform) YRange() (minY, maxY int) {
	lo, hi := unitRange(t.origin.Y, float32(t.vp.Height), t.scale)
	return -hi, -lo
}

// unitRange returns the integer unit range covering [0, size] pixels plus one
// unit beyond each edge, for an axis whose origin sits at pixel origin.
func unitRange(origin, size, scale float32) (lo, hi int) {
	o, s := float64(origin), float64(scale)
	lo = -(floorInt(o/s) + 1)
	hi = floorInt((float64(size)-o)/s) + 1
	return lo, hi
}

// floorInt is math.Floor clamped to the int32 range, which keeps the int
// conversion defined for origins panned absurdly far away.
func floorInt(v float64) int {
	return int(max(math.MinInt32, min(math.MaxInt32, math.Floor(v))))
}
