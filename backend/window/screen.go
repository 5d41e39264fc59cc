package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/plot"
)

func init() {
	plot.Register("window", func() plot.Backend {
		return NewBackend(plot.DefaultTheme())
	})
}

// Backend draws a batch onto an ebiten image with anti-aliased vector
// strokes. It implements plot.Backend.
//
// Without a target set via SetTarget, Begin allocates an offscreen image of
// the viewport size.
type Backend struct {
	target *ebiten.Image
	owned  bool
	theme  plot.Theme
	face   text.Face
	scale  float32
}

var _ plot.ThemedBackend = (*Backend)(nil)

// NewBackend creates a window backend painting with th.
func NewBackend(th plot.Theme) *Backend {
	return &Backend{
		theme: th,
		face:  text.NewGoXFace(basicfont.Face7x13),
		scale: 1,
	}
}

// SetTheme replaces the colors and stroke widths.
func (b *Backend) SetTheme(th plot.Theme) {
	b.theme = th
}

// SetTarget sets the image the next frame is drawn on, typically the
// screen passed to ebiten.Game.Draw.
func (b *Backend) SetTarget(img *ebiten.Image) {
	if b.owned && b.target != nil && b.target != img {
		b.target.Deallocate()
	}
	b.target = img
	b.owned = false
}

// Target returns the image frames are drawn on.
func (b *Backend) Target() *ebiten.Image {
	return b.target
}

// Begin clears the target with the theme background.
func (b *Backend) Begin(vp plot.Viewport) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	if b.target == nil {
		b.target = ebiten.NewImage(vp.Width, vp.Height)
		b.owned = true
	}
	b.scale = vp.ScaleFactor
	if b.scale <= 0 {
		b.scale = 1
	}
	b.target.Fill(b.theme.Background)
	return nil
}

// StrokePath strokes each segment of path with the theme style of class.
func (b *Backend) StrokePath(path *plot.Path, class plot.StyleClass, series int) {
	if b.target == nil {
		return
	}
	style := b.theme.Style(class, series)
	width := style.Width * b.scale
	for _, line := range path.Polylines() {
		for i := 1; i < len(line); i++ {
			p, q := line[i-1], line[i]
			vector.StrokeLine(b.target, p.X, p.Y, q.X, q.Y, width, style.Color, true)
		}
	}
}

// DrawLabel draws l with the 7x13 bitmap face.
func (b *Backend) DrawLabel(l plot.Label) {
	if b.target == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(l.Pos.X), float64(l.Pos.Y))
	op.ColorScale.ScaleWithColor(b.theme.Label)
	switch l.Align {
	case plot.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case plot.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(b.target, l.Text, b.face, op)
}

// End finishes the frame.
func (b *Backend) End() error {
	if b.target == nil {
		return errors.New("window: End called before Begin")
	}
	return nil
}
