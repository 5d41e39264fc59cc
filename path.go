package plot

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new polyline at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo extends the current polyline to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Path is a set of open polylines in pixel space.
// Paths produced by the plotter are never closed.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new polyline at (x, y).
func (p *Path) MoveTo(x, y float32) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line to (x, y). On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float32) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Segment adds a standalone line segment from a to b.
func (p *Path) Segment(a, b Point) {
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements, i.e. the number of points.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Polylines splits the path at each MoveTo and returns the point lists.
func (p *Path) Polylines() [][]Point {
	var (
		lines [][]Point
		cur   []Point
	)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = []Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// Subpaths returns the number of polylines in the path.
func (p *Path) Subpaths() int {
	n := 0
	for _, elem := range p.elements {
		if _, ok := elem.(MoveTo); ok {
			n++
		}
	}
	return n
}
