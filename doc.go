// Package plot is the engine of an interactive 2D polynomial plotter.
//
// # Overview
//
// plot turns polynomial equations and a pannable, zoomable view into
// pixel-space geometry: grid lines, axes and one sampled polyline per
// equation. It does not draw anything itself. Each frame is returned as a
// Batch of strokes tagged with a StyleClass, and a Backend (raster PNG,
// desktop window, ...) decides colors and widths and rasterizes them.
//
// # Quick Start
//
//	import "github.com/gogpu/plot"
//
//	p := plot.NewPlotter()
//	if _, err := p.AddEquation("0.5x^2 - 2x + 1"); err != nil {
//		// *plot.ParseError describes the offending term
//	}
//
//	p.Scroll(1)                  // zoom in one step
//	p.PointerPressed(plot.Pt(10, 10))
//	p.PointerMoved(plot.Pt(40, 10)) // pan 30px right
//	p.PointerReleased()
//
//	batch, _ := p.Render(plot.Viewport{Width: 800, Height: 600})
//	batch.Playback(plot.MustBackend("raster"))
//
// # Equations
//
// Parse accepts free-form text such as "-x^3 + 2.5x - 1" and tolerates any
// whitespace. PolynomialBuilder merges terms that share a power and rounds
// the merged coefficients to a fixed number of decimal digits.
//
// # Coordinate System
//
// Math space has its origin at the plotted (0,0) with y growing up. Pixel
// space follows the usual computer graphics convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// A View holds the scale (pixels per unit) and the pixel offset of the math
// origin from the viewport center. Transform maps between the two spaces for
// one frame.
//
// # Sampling
//
// Curves are sampled round(min(scale, 5000)) times per unit across the
// visible range. Polynomials of degree 0 or 1 are sampled only at the two
// ends of the range.
//
// # Logging
//
// plot is silent by default. SetLogger installs a *slog.Logger shared by
// plot and its sub-packages.
package plot
