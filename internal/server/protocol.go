package server

import (
	"encoding/json"

	"github.com/gogpu/plot"
)

// Message is the envelope of every WebSocket message in both directions.
type Message struct {
	Type    string          `json:"type"`
	Seq     int64           `json:"seq,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message types.
const (
	// Client to server.
	TypeResize         = "viewport.resize"
	TypeZoom           = "view.zoom"
	TypeDragStart      = "view.drag.start"
	TypeDragMove       = "view.drag.move"
	TypeDragEnd        = "view.drag.end"
	TypeReset          = "view.reset"
	TypeEquationAdd    = "equation.add"
	TypeEquationRemove = "equation.remove"
	TypeEquationClear  = "equation.clear"

	// Server to client.
	TypeWelcome       = "welcome"
	TypeFrame         = "frame"
	TypeEquationAdded = "equation.added"
	TypeError         = "error"
)

// ResizePayload sets the session viewport in pixels.
type ResizePayload struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	ScaleFactor float32 `json:"scaleFactor,omitempty"`
}

// ZoomPayload is one scroll step; positive DY zooms in.
type ZoomPayload struct {
	DY float32 `json:"dy"`
}

// PointerPayload is a pointer position in viewport pixels.
type PointerPayload struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// EquationPayload carries equation text to parse and plot.
type EquationPayload struct {
	Text string `json:"text"`
}

// EquationRemovePayload names a plotted equation by the ID from
// equation.added.
type EquationRemovePayload struct {
	ID string `json:"id"`
}

// WelcomePayload is the first message of a session.
type WelcomePayload struct {
	SessionID string  `json:"sessionId"`
	Scale     float32 `json:"scale"`
}

// EquationAddedPayload acknowledges equation.add. Series picks the curve
// color in later frames.
type EquationAddedPayload struct {
	ID      string `json:"id"`
	Display string `json:"display"`
	Series  int    `json:"series"`
}

// ErrorPayload describes a rejected request. Kind, Token and Term are set
// for equations that failed to parse.
type ErrorPayload struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Token string `json:"token,omitempty"`
	Term  string `json:"term,omitempty"`
}

// FramePayload is a rendered batch in pixel space.
type FramePayload struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Scale   float32      `json:"scale"`
	Offset  [2]float32   `json:"offset"`
	Strokes []StrokeJSON `json:"strokes"`
	Labels  []LabelJSON  `json:"labels,omitempty"`
}

// StrokeJSON is one stroke of a frame as point lists.
type StrokeJSON struct {
	Class     plot.StyleClass `json:"class"`
	Series    int             `json:"series"`
	Polylines [][][2]float32  `json:"polylines"`
}

// LabelJSON is a tick label of a frame.
type LabelJSON struct {
	Text  string     `json:"text"`
	Pos   [2]float32 `json:"pos"`
	Align string     `json:"align"`
}

var alignNames = map[plot.Align]string{
	plot.AlignLeft:   "left",
	plot.AlignCenter: "center",
	plot.AlignRight:  "right",
}

// newFramePayload flattens a batch for JSON. Empty strokes are left out.
func newFramePayload(b *plot.Batch, v *plot.View) FramePayload {
	off := v.Offset()
	f := FramePayload{
		Width:   b.Viewport.Width,
		Height:  b.Viewport.Height,
		Scale:   v.Scale(),
		Offset:  [2]float32{off.X, off.Y},
		Strokes: make([]StrokeJSON, 0, len(b.Strokes)),
	}
	for _, s := range b.Strokes {
		if s.Path == nil || s.Path.Len() == 0 {
			continue
		}
		lines := s.Path.Polylines()
		sj := StrokeJSON{Class: s.Class, Series: s.Series, Polylines: make([][][2]float32, len(lines))}
		for i, line := range lines {
			pts := make([][2]float32, len(line))
			for j, p := range line {
				pts[j] = [2]float32{p.X, p.Y}
			}
			sj.Polylines[i] = pts
		}
		f.Strokes = append(f.Strokes, sj)
	}
	for _, l := range b.Labels {
		f.Labels = append(f.Labels, LabelJSON{Text: l.Text, Pos: [2]float32{l.Pos.X, l.Pos.Y}, Align: alignNames[l.Align]})
	}
	return f
}
