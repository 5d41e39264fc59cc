package plot

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Plotter owns a view and a list of equations and turns them into one Batch
// per frame. Input handlers (Scroll, PointerPressed, PointerMoved,
// PointerReleased) mutate the view and report whether a redraw is needed;
// coalescing redraws is up to the host.
//
// Plotter is NOT safe for concurrent use. Drive it from the goroutine that
// owns the viewport.
type Plotter struct {
	view      *View
	equations []Equation
	opts      plotterOptions
}

// NewPlotter creates a plotter with no equations.
func NewPlotter(opts ...Option) *Plotter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := NewView()
	v.scale = o.scale
	return &Plotter{view: v, opts: o}
}

// View returns the plotter's view. Mutating it directly is allowed.
func (p *Plotter) View() *View {
	return p.view
}

// AddEquation parses text and appends it to the plotted equations.
func (p *Plotter) AddEquation(text string) (Equation, error) {
	eq, err := NewEquation(text)
	if err != nil {
		Logger().Warn("plot: rejected equation", "text", text, "error", err)
		return Equation{}, fmt.Errorf("add equation: %w", err)
	}
	return p.addEquation(eq), nil
}

// AddPolynomial appends an already built polynomial. source is kept for
// display and may be empty.
func (p *Plotter) AddPolynomial(source string, poly Polynomial) Equation {
	return p.addEquation(Equation{ID: newEquationID(), Source: source, Poly: poly})
}

func (p *Plotter) addEquation(eq Equation) Equation {
	if p.opts.simplify {
		eq.Poly = NewBuilder().WithPrecision(p.opts.precision).AddTerms(eq.Poly.terms...).Build()
	}
	p.equations = append(p.equations, eq)
	Logger().Debug("plot: equation added", "id", eq.ID, "poly", eq.Poly.String())
	return eq
}

// Equations returns a copy of the plotted equations in series order.
func (p *Plotter) Equations() []Equation {
	return slices.Clone(p.equations)
}

// RemoveEquation removes the equation with the given ID and reports whether
// it was present. Later equations move down one series index.
func (p *Plotter) RemoveEquation(id string) bool {
	i := slices.IndexFunc(p.equations, func(e Equation) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	p.equations = slices.Delete(p.equations, i, i+1)
	return true
}

// ClearEquations removes every equation.
func (p *Plotter) ClearEquations() {
	p.equations = nil
}

// Scroll zooms the view by a vertical scroll delta.
func (p *Plotter) Scroll(dy float32) bool {
	return p.view.Zoom(dy)
}

// PointerPressed starts a pan at pos.
func (p *Plotter) PointerPressed(pos Point) {
	p.view.BeginDrag(pos)
}

// PointerMoved pans the view if a drag is active.
func (p *Plotter) PointerMoved(pos Point) bool {
	return p.view.PointerMoved(pos)
}

// PointerReleased ends the pan.
func (p *Plotter) PointerReleased() {
	p.view.EndDrag()
}

// ResetView restores the initial scale and centers the origin.
func (p *Plotter) ResetView() {
	p.view.Reset()
	p.view.scale = p.opts.scale
}

// Render computes the geometry of one frame for viewport vp.
func (p *Plotter) Render(vp Viewport) (*Batch, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if vp.ScaleFactor <= 0 {
		vp.ScaleFactor = 1
	}

	t := NewTransform(p.view, vp)
	g := NewGrid(t)
	b := &Batch{
		Viewport: vp,
		Strokes:  make([]Stroke, 0, 3+len(p.equations)),
	}
	b.Strokes = append(b.Strokes,
		Stroke{Class: ClassMinorTick, Path: g.Minor},
		Stroke{Class: ClassMajorTick, Path: g.Major},
		Stroke{Class: ClassAxis, Path: g.Axes},
	)
	for i, eq := range p.equations {
		b.Strokes = append(b.Strokes, Stroke{Class: ClassCurve, Series: i, Path: SampleCurve(eq.Poly, t)})
	}
	if p.opts.labels {
		b.Labels = TickLabels(t)
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("plot: frame",
			"width", vp.Width, "height", vp.Height,
			"scale", t.scale, "curves", len(p.equations),
			"points", b.Points(), "labels", len(b.Labels))
	}
	return b, nil
}
