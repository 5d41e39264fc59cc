package plot

import (
	"errors"
	"fmt"
	"testing"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	name       string
	beginCalls int
	endCalls   int
	viewport   Viewport
	calls      []string
	beginErr   error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(vp Viewport) error {
	b.beginCalls++
	b.viewport = vp
	b.calls = append(b.calls, "begin")
	return b.beginErr
}

func (b *mockBackend) StrokePath(p *Path, c StyleClass, series int) {
	b.calls = append(b.calls, fmt.Sprintf("stroke %s/%d %d", c, series, p.Len()))
}

func (b *mockBackend) DrawLabel(l Label) {
	b.calls = append(b.calls, "label "+l.Text)
}

func (b *mockBackend) End() error {
	b.endCalls++
	b.calls = append(b.calls, "end")
	return nil
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend {
		return newMockBackend("test")
	})

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}

	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("png", func() Backend { return &mockBackend{} })

	_, err := NewBackend("unknown")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	want := `plot: unknown backend "unknown" (registered: [png])`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestRegisterNilFactory(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil factory")
		}
	}()

	Register("nil", nil)
}

func TestRegisterDuplicate(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	factory := func() Backend { return newMockBackend("dup") }

	Register("dup", factory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for duplicate registration")
		}
	}()

	Register("dup", factory)
}

func TestUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("temp", func() Backend {
		return newMockBackend("temp")
	})

	if !IsRegistered("temp") {
		t.Error("backend should be registered")
	}

	Unregister("temp")

	if IsRegistered("temp") {
		t.Error("backend should not be registered after Unregister")
	}

	// Unregister non-existent should not panic
	Unregister("nonexistent")
}

func TestBackends(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("window", func() Backend { return newMockBackend("w") })
	Register("raster", func() Backend { return newMockBackend("r") })
	Register("svg", func() Backend { return newMockBackend("s") })

	diff(t, []string{"raster", "svg", "window"}, Backends())
}

func TestMustBackendPanic(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for unknown backend")
		}
	}()

	_ = MustBackend("unknown")
}

func TestPlaybackOrder(t *testing.T) {
	a, b := NewPath(), NewPath()
	a.Segment(Pt(0, 0), Pt(1, 1))
	b.MoveTo(0, 0)
	b.LineTo(1, 1)
	b.LineTo(2, 0)

	batch := &Batch{
		Viewport: Viewport{Width: 10, Height: 20, ScaleFactor: 1},
		Strokes: []Stroke{
			{Class: ClassMinorTick, Path: NewPath()},
			{Class: ClassAxis, Path: a},
			{Class: ClassCurve, Series: 1, Path: b},
			{Class: ClassCurve, Series: 2},
		},
		Labels: []Label{{Text: "10"}, {Text: "0"}},
	}
	mock := newMockBackend("playback")
	if err := batch.Playback(mock); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	diff(t, []string{
		"begin",
		"stroke axis/0 2",
		"stroke curve/1 3",
		"label 10",
		"label 0",
		"end",
	}, mock.calls)
	diff(t, batch.Viewport, mock.viewport)
}

func TestPlaybackBeginError(t *testing.T) {
	mock := newMockBackend("failing")
	mock.beginErr = errors.New("no surface")
	err := (&Batch{}).Playback(mock)
	if err == nil || !errors.Is(err, mock.beginErr) {
		t.Fatalf("Playback() = %v, want wrapped begin error", err)
	}
	if mock.endCalls != 0 {
		t.Error("End called after Begin failed")
	}
}

func TestBatchCounts(t *testing.T) {
	p := NewPlotter(WithLabels(false))
	p.AddPolynomial("", MustParse("x^2"))
	b, err := p.Render(Viewport{Width: 200, Height: 200})
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Lines(ClassAxis); got != 2 {
		t.Errorf("Lines(axis) = %d, want 2", got)
	}
	if got := b.Lines(ClassCurve); got != 1 {
		t.Errorf("Lines(curve) = %d, want 1", got)
	}
	want := 0
	for _, s := range b.Strokes {
		want += s.Path.Len()
	}
	if got := b.Points(); got != want {
		t.Errorf("Points() = %d, want %d", got, want)
	}
}

func TestStyleClassText(t *testing.T) {
	for _, c := range []StyleClass{ClassMinorTick, ClassMajorTick, ClassAxis, ClassCurve} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) = %v", c, err)
		}
		var back StyleClass
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, back, err, c)
		}
	}
	if _, err := StyleClass(42).MarshalText(); err == nil {
		t.Error("MarshalText(42) succeeded")
	}
	var c StyleClass
	if err := c.UnmarshalText([]byte("gridline")); err == nil {
		t.Error(`UnmarshalText("gridline") succeeded`)
	}
	if got := StyleClass(42).String(); got != "StyleClass(42)" {
		t.Errorf("String() = %q", got)
	}
}
