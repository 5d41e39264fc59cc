package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/gogpu/plot"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
	sendBuffer = 16
)

// Session is one WebSocket client with its own plotter and viewport.
// The plotter is touched only by ReadPump; WritePump only drains send.
type Session struct {
	ID      string
	conn    *websocket.Conn
	send    chan []byte
	plotter *plot.Plotter
	vp      plot.Viewport
	limits  Limits
	log     *slog.Logger
}

func newSession(conn *websocket.Conn, p *plot.Plotter, vp plot.Viewport, limits Limits) *Session {
	id := uuid.New().String()
	return &Session{
		ID:      id,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		plotter: p,
		vp:      vp,
		limits:  limits,
		log:     plot.Logger().With("session", id),
	}
}

// ReadPump handles client messages until the connection closes. Every
// message that changes the view is answered with a frame.
func (s *Session) ReadPump(ctx context.Context) {
	defer s.conn.Close(websocket.StatusNormalClosure, "")

	s.conn.SetReadLimit(maxMsgSize)

	s.reply(TypeWelcome, 0, WelcomePayload{SessionID: s.ID, Scale: s.plotter.View().Scale()})
	s.pushFrame(0)

	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			s.log.Debug("read error", "error", err)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.log.Warn("invalid message", "error", err)
			s.replyError(0, fmt.Errorf("invalid message: %w", err))
			continue
		}
		s.handle(&msg)
	}
}

// WritePump sends queued messages and keeps the connection alive with pings.
func (s *Session) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-s.send:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := s.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				s.log.Debug("write error", "error", err)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := s.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) handle(msg *Message) {
	p := s.plotter
	changed := false

	switch msg.Type {
	case TypeResize:
		var pl ResizePayload
		if !s.decode(msg, &pl) {
			return
		}
		vp := plot.Viewport{Width: pl.Width, Height: pl.Height, ScaleFactor: pl.ScaleFactor}
		if err := s.limits.checkViewport(vp); err != nil {
			s.replyError(msg.Seq, err)
			return
		}
		s.vp = vp
		changed = true

	case TypeZoom:
		var pl ZoomPayload
		if !s.decode(msg, &pl) {
			return
		}
		v := p.View()
		scale, offset := v.Scale(), v.Offset()
		if p.Scroll(pl.DY) {
			if v.Scale() > s.limits.MaxScale {
				_ = v.SetScale(scale)
				_ = v.SetOffset(offset)
				return
			}
			changed = true
		}

	case TypeDragStart:
		var pl PointerPayload
		if !s.decode(msg, &pl) {
			return
		}
		p.PointerPressed(plot.Pt(pl.X, pl.Y))

	case TypeDragMove:
		var pl PointerPayload
		if !s.decode(msg, &pl) {
			return
		}
		changed = p.PointerMoved(plot.Pt(pl.X, pl.Y))

	case TypeDragEnd:
		p.PointerReleased()

	case TypeReset:
		p.ResetView()
		changed = true

	case TypeEquationAdd:
		var pl EquationPayload
		if !s.decode(msg, &pl) {
			return
		}
		if len(p.Equations()) >= s.limits.MaxEquations {
			s.replyError(msg.Seq, fmt.Errorf("too many equations (max %d)", s.limits.MaxEquations))
			return
		}
		eq, err := p.AddEquation(pl.Text)
		if err != nil {
			s.replyError(msg.Seq, err)
			return
		}
		s.reply(TypeEquationAdded, msg.Seq, EquationAddedPayload{
			ID:      eq.ID,
			Display: eq.String(),
			Series:  len(p.Equations()) - 1,
		})
		changed = true

	case TypeEquationRemove:
		var pl EquationRemovePayload
		if !s.decode(msg, &pl) {
			return
		}
		if err := plot.ValidateEquationID(pl.ID); err != nil {
			s.replyError(msg.Seq, err)
			return
		}
		if !p.RemoveEquation(pl.ID) {
			s.replyError(msg.Seq, fmt.Errorf("no equation with id %q", pl.ID))
			return
		}
		changed = true

	case TypeEquationClear:
		p.ClearEquations()
		changed = true

	default:
		s.log.Warn("unknown message type", "type", msg.Type)
		s.replyError(msg.Seq, fmt.Errorf("unknown message type %q", msg.Type))
		return
	}

	if changed {
		s.pushFrame(msg.Seq)
	}
}

func (s *Session) decode(msg *Message, v any) bool {
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		s.log.Warn("invalid payload", "type", msg.Type, "error", err)
		s.replyError(msg.Seq, fmt.Errorf("invalid %s payload: %w", msg.Type, err))
		return false
	}
	return true
}

func (s *Session) pushFrame(seq int64) {
	b, err := s.plotter.Render(s.vp)
	if err != nil {
		s.replyError(seq, err)
		return
	}
	s.reply(TypeFrame, seq, newFramePayload(b, s.plotter.View()))
}

func (s *Session) replyError(seq int64, err error) {
	s.reply(TypeError, seq, newErrorPayload(err))
}

// reply queues a message. When the client does not keep up the message is
// dropped rather than blocking the read loop.
func (s *Session) reply(typ string, seq int64, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("marshal payload", "type", typ, "error", err)
		return
	}
	data, err := json.Marshal(&Message{Type: typ, Seq: seq, Payload: raw})
	if err != nil {
		s.log.Error("marshal message", "type", typ, "error", err)
		return
	}

	select {
	case s.send <- data:
	default:
		s.log.Warn("send buffer full, dropping message", "type", typ)
	}
}

func newErrorPayload(err error) ErrorPayload {
	ep := ErrorPayload{Error: err.Error()}
	var pe *plot.ParseError
	switch {
	case errors.As(err, &pe):
		ep.Kind = pe.Kind.String()
		ep.Token = pe.Token
		ep.Term = pe.Term
	case errors.Is(err, plot.ErrEmptyEquation):
		ep.Kind = "empty equation"
	}
	return ep
}
