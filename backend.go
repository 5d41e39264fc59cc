package plot

import "io"

// Backend is the interface that all output backends must implement.
// Backends receive the pixel-space geometry of a frame and translate it to
// their output (raster pixels, window draw calls, ...). Colors and stroke
// widths are the backend's business, chosen per StyleClass.
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Accept Begin before any drawing call, and reset its output there
//  2. Draw strokes in the order received (later strokes on top)
//  3. Leave paths unmodified; they may be shared with other backends
type Backend interface {
	// Begin initializes the backend for a frame of the given size.
	Begin(vp Viewport) error

	// StrokePath strokes every polyline of path in the style of class.
	// series is the equation index for ClassCurve strokes.
	StrokePath(path *Path, class StyleClass, series int)

	// DrawLabel draws a tick label.
	DrawLabel(l Label)

	// End finalizes the frame.
	End() error
}

// WriterBackend extends Backend with the ability to write the finished frame
// to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// ThemedBackend is a Backend whose paint can be changed after creation.
// Backends obtained from the registry start with DefaultTheme.
type ThemedBackend interface {
	Backend

	// SetTheme replaces the theme used from the next Begin on.
	SetTheme(th Theme)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
