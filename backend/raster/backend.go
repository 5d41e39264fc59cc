// Package raster provides a raster backend for plot batches.
// It rasterizes strokes with gg.Context and writes PNG.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/plot/backend/raster"
//
//	// Create via registry
//	backend, _ := plot.NewBackend("raster")
//
//	// Or create directly with a custom theme
//	backend := raster.NewBackend(raster.WithTheme(theme))
//
//	// Play a frame back
//	batch.Playback(backend)
//
//	// Get output
//	backend.SaveToFile("plot.png")
//	img := backend.Image()
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/plot"
)

func init() {
	plot.Register("raster", func() plot.Backend {
		return NewBackend()
	})
}

// Backend rasterizes a batch to a pixel image using gg.Context.
// It implements plot.ThemedBackend, plot.WriterBackend and
// plot.FileBackend.
//
// Strokes are drawn by gg as they arrive. Labels are collected and drawn
// on top of the finished strokes in End, with a fixed 7x13 bitmap face.
type Backend struct {
	ctx    *gg.Context
	theme  plot.Theme
	face   font.Face
	vp     plot.Viewport
	labels []plot.Label
	img    *image.RGBA
}

// Ensure Backend implements all required interfaces.
var (
	_ plot.ThemedBackend = (*Backend)(nil)
	_ plot.WriterBackend = (*Backend)(nil)
	_ plot.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithTheme sets the colors and stroke widths. The default is
// plot.DefaultTheme().
func WithTheme(th plot.Theme) Option {
	return func(b *Backend) {
		b.theme = th
	}
}

// WithFace sets the label font face. The default is basicfont.Face7x13.
func WithFace(f font.Face) Option {
	return func(b *Backend) {
		if f != nil {
			b.face = f
		}
	}
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{theme: plot.DefaultTheme(), face: basicfont.Face7x13}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetTheme replaces the colors and stroke widths.
func (b *Backend) SetTheme(th plot.Theme) {
	b.theme = th
}

// Begin starts a new frame of the given size filled with the theme
// background.
func (b *Backend) Begin(vp plot.Viewport) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	if vp.ScaleFactor <= 0 {
		vp.ScaleFactor = 1
	}
	if b.ctx != nil {
		_ = b.ctx.Close()
	}
	b.vp = vp
	b.labels = b.labels[:0]
	b.img = nil
	b.ctx = gg.NewContext(vp.Width, vp.Height)
	b.ctx.ClearWithColor(gg.FromColor(b.theme.Background))
	return nil
}

// StrokePath strokes every polyline of path with the theme style of class.
func (b *Backend) StrokePath(path *plot.Path, class plot.StyleClass, series int) {
	if b.ctx == nil || path == nil || path.Len() == 0 {
		return
	}
	style := b.theme.Style(class, series)
	if style.Width <= 0 || style.Color.A == 0 {
		return
	}

	b.ctx.ClearPath()
	setPathFromElements(b.ctx, path)
	b.ctx.SetStrokeBrush(gg.Solid(gg.FromColor(style.Color)))
	b.ctx.SetLineWidth(float64(style.Width * b.vp.ScaleFactor))
	b.ctx.SetLineCap(gg.LineCapRound)
	b.ctx.SetLineJoin(gg.LineJoinRound)
	if err := b.ctx.Stroke(); err != nil {
		plot.Logger().Warn("raster: stroke failed", "class", class, "series", series, "error", err)
	}
}

// DrawLabel queues a label; labels are drawn in End.
func (b *Backend) DrawLabel(l plot.Label) {
	b.labels = append(b.labels, l)
}

// End finalizes the frame. After End is called, output methods (Image,
// WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	if b.ctx == nil {
		return fmt.Errorf("raster: End called before Begin")
	}
	src := b.ctx.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(b.theme.Label),
		Face: b.face,
	}
	ascent := b.face.Metrics().Ascent
	for _, l := range b.labels {
		width := d.MeasureString(l.Text)
		x := fixed.Int26_6(l.Pos.X * 64)
		switch l.Align {
		case plot.AlignCenter:
			x -= width / 2
		case plot.AlignRight:
			x -= width
		}
		d.Dot = fixed.Point26_6{X: x, Y: fixed.Int26_6(l.Pos.Y*64) + ascent}
		d.DrawString(l.Text)
	}
	b.img = img

	plot.Logger().Debug("raster: frame done",
		"width", b.vp.Width, "height", b.vp.Height, "labels", len(b.labels))
	return nil
}

// Image returns the rendered image, or nil before the first End.
func (b *Backend) Image() image.Image {
	if b.img == nil {
		return nil
	}
	return b.img
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, fmt.Errorf("raster: no frame rendered")
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: write %s: %w", path, err)
	}
	return f.Close()
}

// Viewport returns the size of the current frame.
func (b *Backend) Viewport() plot.Viewport {
	return b.vp
}

// setPathFromElements walks path elements and adds them to the context.
func setPathFromElements(ctx *gg.Context, path *plot.Path) {
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case plot.MoveTo:
			ctx.MoveTo(float64(e.Point.X), float64(e.Point.Y))
		case plot.LineTo:
			ctx.LineTo(float64(e.Point.X), float64(e.Point.Y))
		}
	}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
