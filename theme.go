package plot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// StrokeStyle is the paint of one StyleClass.
type StrokeStyle struct {
	Color color.RGBA
	Width float32 // in device-independent pixels
}

// Theme maps style classes to paint. Backends use it; the core does not.
type Theme struct {
	Background color.RGBA
	Label      color.RGBA
	Minor      StrokeStyle
	Major      StrokeStyle
	Axis       StrokeStyle
	CurveWidth float32
	// Curves is the palette for equation series, cycled when there are more
	// series than colors.
	Curves []color.RGBA
}

// DefaultTheme returns green grid lines on black with red as the first
// curve color.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{A: 0xff},
		Label:      color.RGBA{R: 0x9a, G: 0xd0, B: 0x9a, A: 0xff},
		Minor:      StrokeStyle{Color: color.RGBA{G: 0x80, A: 0xff}, Width: 0.5},
		Major:      StrokeStyle{Color: color.RGBA{G: 0xc0, A: 0xff}, Width: 1.5},
		Axis:       StrokeStyle{Color: color.RGBA{G: 0xff, A: 0xff}, Width: 3},
		CurveWidth: 2,
		Curves: []color.RGBA{
			{R: 0xff, A: 0xff},
			{R: 0x33, G: 0x99, B: 0xff, A: 0xff},
			{R: 0xff, G: 0xcc, A: 0xff},
			{R: 0xcc, G: 0x33, B: 0xff, A: 0xff},
			{R: 0xff, G: 0x88, B: 0x22, A: 0xff},
		},
	}
}

// Style returns the paint for a stroke of class c. series selects the curve
// color for ClassCurve and is ignored otherwise.
func (th Theme) Style(c StyleClass, series int) StrokeStyle {
	switch c {
	case ClassMinorTick:
		return th.Minor
	case ClassMajorTick:
		return th.Major
	case ClassAxis:
		return th.Axis
	}
	if len(th.Curves) == 0 {
		return StrokeStyle{Color: color.RGBA{R: 0xff, A: 0xff}, Width: th.CurveWidth}
	}
	if series < 0 {
		series = -series
	}
	return StrokeStyle{Color: th.Curves[series%len(th.Curves)], Width: th.CurveWidth}
}

// ParseHex parses a color from a hex string in one of the forms "RGB",
// "RGBA", "RRGGBB" or "RRGGBBAA", with or without a leading '#'. The
// digits are checked here and converted by gg.Hex.
func ParseHex(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("plot: invalid hex color %q", hex)
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return color.RGBA{}, fmt.Errorf("plot: invalid hex color %q", hex)
	}

	c := gg.Hex(s)
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// ParsePalette parses a comma separated list of hex colors.
// An empty string yields a nil palette.
func ParsePalette(list string) ([]color.RGBA, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	palette := make([]color.RGBA, 0, len(parts))
	for _, p := range parts {
		c, err := ParseHex(p)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}
