package plot

import (
	"fmt"
	"math"
)

const (
	// DefaultScale is the initial zoom, in pixels per unit.
	DefaultScale float32 = 50

	// ZoomSpeed converts one scroll step into a change of ln(scale).
	ZoomSpeed = 0.2

	// MinScale is the exclusive lower bound Zoom keeps the scale above.
	MinScale float32 = 1
)

// Viewport is the pixel size of the drawing surface for one frame.
// ScaleFactor is the device pixel ratio; it affects stroke widths chosen by
// backends but not the transform.
type Viewport struct {
	Width, Height int
	ScaleFactor   float32
}

// Validate returns ErrInvalidViewport unless both sides are positive.
func (vp Viewport) Validate() error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidViewport, vp.Width, vp.Height)
	}
	return nil
}

// View holds the zoom and pan state of a plot viewport.
//
// Scale is the number of pixels per math unit. Offset is the pixel
// translation of the math origin from the viewport center.
//
// View is NOT safe for concurrent use; it belongs to the viewport whose
// input handlers mutate it.
type View struct {
	scale    float32
	offset   Point
	dragging bool
	last     Point
	hasLast  bool
}

// NewView returns a view at DefaultScale with the origin centered.
func NewView() *View {
	return &View{scale: DefaultScale}
}

// Scale returns the current pixels-per-unit.
func (v *View) Scale() float32 {
	return v.scale
}

// Offset returns the pixel translation of the origin.
func (v *View) Offset() Point {
	return v.offset
}

// Dragging reports whether a pan gesture is in progress.
func (v *View) Dragging() bool {
	return v.dragging
}

// SetScale sets the scale directly.
func (v *View) SetScale(s float32) error {
	if !isFinite(s) || s <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, s)
	}
	v.scale = s
	return nil
}

// SetOffset sets the origin translation directly.
func (v *View) SetOffset(p Point) error {
	if !p.IsFinite() {
		return fmt.Errorf("%w: %v", ErrInvalidOffset, p)
	}
	v.offset = p
	return nil
}

// Reset restores the default scale and a centered origin, and cancels any
// drag in progress.
func (v *View) Reset() {
	*v = View{scale: DefaultScale}
}

// Zoom applies a scroll step. The scale changes logarithmically so that
// zoom speed feels the same at every magnification:
//
//	scale' = exp(ln(scale) + dy*ZoomSpeed)
//
// The step is ignored when scale' would not stay above MinScale. The offset
// is rescaled with the scale so the point it pins stays put. Zoom reports
// whether the view changed.
func (v *View) Zoom(dy float32) bool {
	if dy == 0 || !isFinite(dy) {
		return false
	}
	cur := float64(v.scale)
	next := math.Exp(math.Log(cur) + float64(dy)*ZoomSpeed)
	s := float32(next)
	if !isFinite(s) || s <= MinScale || s == v.scale {
		return false
	}
	k := (next - cur) / cur
	off := Point{
		X: v.offset.X + float32(k*float64(v.offset.X)),
		Y: v.offset.Y + float32(k*float64(v.offset.Y)),
	}
	if !off.IsFinite() {
		return false
	}
	v.scale = s
	v.offset = off
	return true
}

// BeginDrag starts a pan gesture at pointer position pos.
func (v *View) BeginDrag(pos Point) {
	v.dragging = true
	v.last = pos
	v.hasLast = true
}

// PointerMoved feeds a pointer position. While dragging, the origin follows
// the pointer by the distance moved since the previous position. It
// reports whether the view changed.
func (v *View) PointerMoved(pos Point) bool {
	if !v.dragging {
		return false
	}
	if !v.hasLast {
		v.last, v.hasLast = pos, true
		return false
	}
	delta := pos.Sub(v.last)
	v.last = pos
	if delta == (Point{}) {
		return false
	}
	off := v.offset.Add(delta)
	if !off.IsFinite() {
		return false
	}
	v.offset = off
	return true
}

// EndDrag finishes the pan gesture and forgets the last pointer position.
func (v *View) EndDrag() {
	v.dragging = false
	v.last = Point{}
	v.hasLast = false
}
