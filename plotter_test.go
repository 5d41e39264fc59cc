package plot

import (
	"errors"
	"strings"
	"testing"
)

func TestPlotterRenderStrokeOrder(t *testing.T) {
	p := NewPlotter()
	for _, eq := range []string{"x^2", "2x + 1", "-x^3"} {
		if _, err := p.AddEquation(eq); err != nil {
			t.Fatalf("AddEquation(%q) = %v", eq, err)
		}
	}
	b, err := p.Render(Viewport{Width: 1000, Height: 600})
	if err != nil {
		t.Fatal(err)
	}

	type tag struct {
		Class  StyleClass
		Series int
	}
	var got []tag
	for _, s := range b.Strokes {
		got = append(got, tag{s.Class, s.Series})
	}
	diff(t, []tag{
		{ClassMinorTick, 0},
		{ClassMajorTick, 0},
		{ClassAxis, 0},
		{ClassCurve, 0},
		{ClassCurve, 1},
		{ClassCurve, 2},
	}, got)

	if b.Viewport.ScaleFactor != 1 {
		t.Errorf("ScaleFactor = %v, want default 1", b.Viewport.ScaleFactor)
	}
	if len(b.Labels) == 0 {
		t.Error("expected tick labels")
	}
}

func TestPlotterRenderInvalidViewport(t *testing.T) {
	p := NewPlotter()
	if _, err := p.Render(Viewport{Width: 0, Height: 10}); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("Render() = %v, want ErrInvalidViewport", err)
	}
}

func TestPlotterAddEquationError(t *testing.T) {
	p := NewPlotter()
	_, err := p.AddEquation("3x^a")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("AddEquation error %v is not a *ParseError", err)
	}
	if !strings.HasPrefix(err.Error(), "add equation: ") {
		t.Errorf("error %q lacks context", err)
	}
	if len(p.Equations()) != 0 {
		t.Error("failed equation was added")
	}
}

func TestPlotterSimplify(t *testing.T) {
	p := NewPlotter(WithSimplify(2))
	eq, err := p.AddEquation("0.5x^2 + x^2 - 1 + 0.004")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Term{{1.5, 2}, {-1, 0}}, eq.Poly.Terms())
	if eq.Source != "0.5x^2 + x^2 - 1 + 0.004" {
		t.Errorf("Source = %q", eq.Source)
	}

	raw, _ := NewPlotter().AddEquation("x + x")
	if raw.Poly.Len() != 2 {
		t.Errorf("plotter without WithSimplify merged terms: %v", raw.Poly)
	}
}

func TestPlotterRemoveEquation(t *testing.T) {
	p := NewPlotter()
	a, _ := p.AddEquation("x")
	b, _ := p.AddEquation("x^2")
	c := p.AddPolynomial("cubic", NewBuilder().PlusXCubedTimes(1).Build())

	if !p.RemoveEquation(b.ID) {
		t.Fatal("RemoveEquation returned false for a known id")
	}
	if p.RemoveEquation(b.ID) {
		t.Error("RemoveEquation returned true for a removed id")
	}
	var ids []string
	for _, eq := range p.Equations() {
		ids = append(ids, eq.ID)
	}
	diff(t, []string{a.ID, c.ID}, ids)

	p.ClearEquations()
	if len(p.Equations()) != 0 {
		t.Error("ClearEquations left equations behind")
	}
}

func TestPlotterInput(t *testing.T) {
	p := NewPlotter(WithScale(120))
	if p.View().Scale() != 120 {
		t.Fatalf("Scale() = %v, want 120", p.View().Scale())
	}
	if !p.Scroll(1) {
		t.Error("Scroll(1) reported no change")
	}
	p.PointerPressed(Pt(0, 0))
	if !p.PointerMoved(Pt(4, 8)) {
		t.Error("PointerMoved during drag reported no change")
	}
	p.PointerReleased()
	diff(t, Pt(4, 8), p.View().Offset())

	p.ResetView()
	if p.View().Scale() != 120 || p.View().Offset() != (Point{}) {
		t.Errorf("ResetView left scale=%v offset=%v", p.View().Scale(), p.View().Offset())
	}
}

func TestPlotterOptions(t *testing.T) {
	p := NewPlotter(WithScale(-4), WithLabels(false))
	if p.View().Scale() != DefaultScale {
		t.Errorf("invalid WithScale changed the scale to %v", p.View().Scale())
	}
	b, err := p.Render(Viewport{Width: 100, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Labels) != 0 {
		t.Errorf("WithLabels(false) produced %d labels", len(b.Labels))
	}
}

func TestPlotterZoomChangesGrid(t *testing.T) {
	p := NewPlotter(WithScale(6))
	vp := Viewport{Width: 400, Height: 400}
	before, _ := p.Render(vp)
	if before.Lines(ClassMinorTick) == 0 {
		t.Fatal("expected minor ticks at scale 6")
	}
	for p.View().Scale() > MinorTickMinScale {
		p.Scroll(-1)
	}
	after, _ := p.Render(vp)
	if n := after.Lines(ClassMinorTick); n != 0 {
		t.Errorf("minor ticks = %d after zooming out to %v", n, p.View().Scale())
	}
	if after.Lines(ClassMajorTick) == 0 || after.Lines(ClassAxis) != 2 {
		t.Error("major ticks and axes must stay visible")
	}
}
