package plot

const (
	// MinorTickMinScale is the scale, in pixels per unit, that minor grid
	// lines need to exceed before they are emitted. Denser lines would
	// smear into a solid fill.
	MinorTickMinScale float32 = 5

	// MajorTickEvery is the spacing, in units, of major grid lines.
	MajorTickEvery = 10
)

// Grid holds the grid geometry of one frame. Each path holds one segment per
// grid line spanning the whole viewport.
type Grid struct {
	Minor *Path
	Major *Path
	Axes  *Path
}

// IsMajorTick reports whether the grid line at integer coordinate n is a
// major one. The axis (n == 0) is neither major nor minor.
func IsMajorTick(n int) bool {
	return n != 0 && n%MajorTickEvery == 0
}

// NewGrid computes the grid lines visible through t: one vertical line per
// integer in t.XRange and one horizontal line per integer in t.YRange.
// Minor lines are left out when t.Scale() <= MinorTickMinScale. The x and
// y axes are always present, x axis first.
func NewGrid(t Transform) Grid {
	g := Grid{Minor: NewPath(), Major: NewPath(), Axes: NewPath()}
	w, h := float32(t.vp.Width), float32(t.vp.Height)
	minor := t.scale > MinorTickMinScale

	addLine := func(n int, a, b Point) {
		switch {
		case n == 0:
		case IsMajorTick(n):
			g.Major.Segment(a, b)
		case minor:
			g.Minor.Segment(a, b)
		}
	}

	minX, maxX := t.XRange()
	for x := minX; x <= maxX; x++ {
		px := t.ToPixels(Pt(float32(x), 0)).X
		addLine(x, Pt(px, 0), Pt(px, h))
	}
	minY, maxY := t.YRange()
	for y := minY; y <= maxY; y++ {
		py := t.ToPixels(Pt(0, float32(y))).Y
		addLine(y, Pt(0, py), Pt(w, py))
	}

	o := t.origin
	g.Axes.Segment(Pt(0, o.Y), Pt(w, o.Y))
	g.Axes.Segment(Pt(o.X, 0), Pt(o.X, h))
	return g
}
