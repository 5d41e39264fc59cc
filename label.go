package plot

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// UnitLabelMinScale is the scale at which every integer tick gets a
	// label, not just the major ones.
	UnitLabelMinScale float32 = 30

	// labelGap is the pixel distance between an axis and its labels.
	labelGap = 4

	// labelHeight reserves room for one line of label text when labels are
	// pinned to the bottom or right edge.
	labelHeight = 14
)

// Align is the horizontal anchoring of a label relative to its position.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is a piece of text anchored in pixel space. Pos is the top of the
// text box; Align selects which side of the box Pos refers to.
type Label struct {
	Text  string
	Pos   Point
	Align Align
}

var labelPrinter = message.NewPrinter(language.English)

// FormatTick formats an integer tick value with digit grouping: 12000
// becomes "12,000".
func FormatTick(n int) string {
	return labelPrinter.Sprintf("%d", n)
}

// TickLabels returns the tick labels visible through t. Major ticks are
// always labeled; every other integer is labeled once the scale reaches
// UnitLabelMinScale. Labels follow the axes, and stick to the nearest
// viewport edge when an axis is panned out of view.
func TickLabels(t Transform) []Label {
	w, h := float32(t.vp.Width), float32(t.vp.Height)
	units := t.scale >= UnitLabelMinScale
	want := func(n int) bool {
		return n != 0 && (units || IsMajorTick(n))
	}

	// Anchor lines: just below the x axis and just left of the y axis.
	ly := clamp(t.origin.Y+labelGap, 0, h-labelHeight)
	lx := clamp(t.origin.X-labelGap, labelGap, w)

	var labels []Label
	minX, maxX := t.XRange()
	for x := minX; x <= maxX; x++ {
		if !want(x) {
			continue
		}
		px := t.ToPixels(Pt(float32(x), 0)).X
		if px < 0 || px > w {
			continue
		}
		labels = append(labels, Label{Text: FormatTick(x), Pos: Pt(px, ly), Align: AlignCenter})
	}
	minY, maxY := t.YRange()
	for y := minY; y <= maxY; y++ {
		if !want(y) {
			continue
		}
		py := t.ToPixels(Pt(0, float32(y))).Y
		if py < 0 || py > h-labelHeight {
			continue
		}
		labels = append(labels, Label{Text: FormatTick(y), Pos: Pt(lx, py+labelGap), Align: AlignRight})
	}
	if o := t.origin; o.X >= 0 && o.X <= w && o.Y >= 0 && o.Y <= h {
		labels = append(labels, Label{Text: "0", Pos: Pt(o.X-labelGap, o.Y+labelGap), Align: AlignRight})
	}
	return labels
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(hi, v))
}
