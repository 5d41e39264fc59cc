package plot

import (
	"fmt"
	"strings"
)

// StyleClass tags a stroke with the role it plays in the plot. Backends map
// classes to colors and widths; the core never picks paint.
type StyleClass uint8

const (
	// ClassMinorTick is a grid line at an integer that is not a multiple of 10.
	ClassMinorTick StyleClass = iota
	// ClassMajorTick is a grid line at a non-zero multiple of 10.
	ClassMajorTick
	// ClassAxis is the x=0 or y=0 line.
	ClassAxis
	// ClassCurve is a sampled equation.
	ClassCurve
)

var styleClassNames = [...]string{
	ClassMinorTick: "minor-tick",
	ClassMajorTick: "major-tick",
	ClassAxis:      "axis",
	ClassCurve:     "curve",
}

// String returns the class name, e.g. "major-tick".
func (c StyleClass) String() string {
	if int(c) < len(styleClassNames) {
		return styleClassNames[c]
	}
	return fmt.Sprintf("StyleClass(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c StyleClass) MarshalText() ([]byte, error) {
	if int(c) >= len(styleClassNames) {
		return nil, fmt.Errorf("plot: unknown style class %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *StyleClass) UnmarshalText(text []byte) error {
	for i, name := range styleClassNames {
		if strings.EqualFold(name, string(text)) {
			*c = StyleClass(i)
			return nil
		}
	}
	return fmt.Errorf("plot: unknown style class %q", text)
}

// Stroke is a path drawn with the style of its class. Series identifies the
// equation a curve belongs to and is 0 for grid strokes.
type Stroke struct {
	Class  StyleClass
	Series int
	Path   *Path
}

// Batch is the complete geometry of one frame, in pixel space, in drawing
// order: minor ticks, major ticks, axes, then one curve per equation.
type Batch struct {
	Viewport Viewport
	Strokes  []Stroke
	Labels   []Label
}

// Lines returns the number of polylines drawn with class c.
func (b *Batch) Lines(c StyleClass) int {
	n := 0
	for _, s := range b.Strokes {
		if s.Class == c && s.Path != nil {
			n += s.Path.Subpaths()
		}
	}
	return n
}

// Points returns the total number of path points in the batch.
func (b *Batch) Points() int {
	n := 0
	for _, s := range b.Strokes {
		if s.Path != nil {
			n += s.Path.Len()
		}
	}
	return n
}

// Playback sends the batch to a backend: Begin, every stroke in order,
// every label, End.
func (b *Batch) Playback(be Backend) error {
	if err := be.Begin(b.Viewport); err != nil {
		return fmt.Errorf("plot: backend begin: %w", err)
	}
	for _, s := range b.Strokes {
		if s.Path == nil || s.Path.Len() == 0 {
			continue
		}
		be.StrokePath(s.Path, s.Class, s.Series)
	}
	for _, l := range b.Labels {
		be.DrawLabel(l)
	}
	if err := be.End(); err != nil {
		return fmt.Errorf("plot: backend end: %w", err)
	}
	return nil
}
