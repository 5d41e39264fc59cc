// Package window hosts a plot.Plotter in a desktop window using ebiten.
//
// Controls: the mouse wheel zooms, dragging with the left button pans,
// R resets the view and Escape closes the window.
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/plot"
)

// Config holds the window settings.
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int
	Theme  plot.Theme
}

// DefaultConfig returns a 1000x600 window at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Title:  "gplot",
		Width:  1000,
		Height: 600,
		TPS:    60,
		Theme:  plot.DefaultTheme(),
	}
}

// Game adapts a Plotter to ebiten.Game. Input is read in Update; a new
// batch is computed in Draw only when the view, the equations or the
// window size changed since the previous frame.
type Game struct {
	plotter *plot.Plotter
	input   Input
	backend *Backend
	vp      plot.Viewport
	batch   *plot.Batch
	dirty   bool
	closed  bool
}

// NewGame creates a game for p painting with th.
func NewGame(p *plot.Plotter, th plot.Theme) *Game {
	return &Game{
		plotter: p,
		input:   ebitenInput{},
		backend: NewBackend(th),
		dirty:   true,
	}
}

// SetInput replaces the input source. Used by tests.
func (g *Game) SetInput(in Input) {
	g.input = in
}

// Invalidate forces the next Draw to recompute the batch. Call it after
// changing the plotter's equations.
func (g *Game) Invalidate() {
	g.dirty = true
}

// Update polls input and applies it to the plotter.
func (g *Game) Update() error {
	in := g.input
	if in.IsKeyJustPressed(ebiten.KeyEscape) {
		g.closed = true
		return ebiten.Termination
	}
	if in.IsKeyJustPressed(ebiten.KeyR) {
		g.plotter.ResetView()
		g.dirty = true
	}

	if _, dy := in.Wheel(); dy != 0 {
		if g.plotter.Scroll(float32(dy)) {
			g.dirty = true
		}
	}

	x, y := in.CursorPosition()
	pos := plot.Pt(float32(x), float32(y))
	pressed := in.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	dragging := g.plotter.View().Dragging()
	switch {
	case pressed && !dragging:
		g.plotter.PointerPressed(pos)
	case pressed:
		if g.plotter.PointerMoved(pos) {
			g.dirty = true
		}
	case dragging:
		g.plotter.PointerReleased()
	}
	return nil
}

// Draw renders the current batch on screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.render(); err != nil {
		plot.Logger().Warn("window: render failed", "error", err)
		return
	}
	g.backend.SetTarget(screen)
	if err := g.batch.Playback(g.backend); err != nil {
		plot.Logger().Warn("window: playback failed", "error", err)
	}
}

// render recomputes the batch if needed.
func (g *Game) render() error {
	if !g.dirty && g.batch != nil {
		return nil
	}
	b, err := g.plotter.Render(g.vp)
	if err != nil {
		return err
	}
	g.batch = b
	g.dirty = false
	plot.Logger().Debug("window: redraw", "points", b.Points())
	return nil
}

// Layout tracks the window size; the plot always fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := plot.Viewport{Width: max(outsideWidth, 1), Height: max(outsideHeight, 1), ScaleFactor: 1}
	if vp != g.vp {
		g.vp = vp
		g.dirty = true
	}
	return vp.Width, vp.Height
}

// Closed reports whether Escape was pressed.
func (g *Game) Closed() bool {
	return g.closed
}

// Run opens a window showing p and blocks until it is closed.
func Run(p *plot.Plotter, cfg Config) error {
	g := NewGame(p, cfg.Theme)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	plot.Logger().Info("window: open", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	plot.Logger().Info("window: closed", "error", err)
	return err
}
