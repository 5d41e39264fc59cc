// Package server exposes the plotter over HTTP: equation parsing, PNG
// rendering and interactive WebSocket sessions.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"

	"github.com/gogpu/plot"
	_ "github.com/gogpu/plot/backend/raster"
)

// pngBackend is the registered backend behind /api/plot.png.
const pngBackend = "raster"

// Limits bound the work a single request can cause.
type Limits struct {
	MaxWidth     int
	MaxHeight    int
	MaxScale     float32
	MaxEquations int
}

// DefaultLimits allows 4096x4096 frames, 16 equations and a scale of up
// to one million pixels per unit.
func DefaultLimits() Limits {
	return Limits{MaxWidth: 4096, MaxHeight: 4096, MaxScale: 1e6, MaxEquations: 16}
}

func (l Limits) checkViewport(vp plot.Viewport) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	if vp.Width > l.MaxWidth || vp.Height > l.MaxHeight {
		return fmt.Errorf("viewport %dx%d exceeds %dx%d", vp.Width, vp.Height, l.MaxWidth, l.MaxHeight)
	}
	return nil
}

func (l Limits) checkScale(s float32) error {
	if !(s > plot.MinScale) || s > l.MaxScale {
		return fmt.Errorf("%w: want (%v, %v], got %v", plot.ErrInvalidScale, plot.MinScale, l.MaxScale, s)
	}
	return nil
}

// Options configures a Server.
type Options struct {
	Viewport       plot.Viewport // default frame size
	Scale          float32
	Precision      int
	Theme          plot.Theme
	Limits         Limits
	AllowedOrigins []string
}

// Server routes the HTTP API and WebSocket sessions. It implements
// http.Handler.
type Server struct {
	opts   Options
	router *mux.Router
}

// New creates a server and registers its routes.
func New(opts Options) *Server {
	if opts.Limits == (Limits{}) {
		opts.Limits = DefaultLimits()
	}
	if opts.Scale == 0 {
		opts.Scale = plot.DefaultScale
	}
	if opts.Viewport == (plot.Viewport{}) {
		opts.Viewport = plot.Viewport{Width: 1000, Height: 600, ScaleFactor: 1}
	}
	if len(opts.Theme.Curves) == 0 {
		opts.Theme = plot.DefaultTheme()
	}

	s := &Server{opts: opts, router: mux.NewRouter()}
	s.router.Use(Recovery)
	s.router.Use(RequestLogger)

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/api/parse", s.handleParse).Methods("POST")
	s.router.HandleFunc("/api/plot.png", s.handlePlotPNG).Methods("GET")
	s.router.HandleFunc("/ws", s.handleWebSocket)
	return s
}

// ServeHTTP dispatches to the registered routes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type parseRequest struct {
	Text string `json:"text"`
}

type termJSON struct {
	Coefficient float32 `json:"coefficient"`
	Power       int     `json:"power"`
}

type parseResponse struct {
	ID         string     `json:"id"`
	Display    string     `json:"display"`
	Terms      []termJSON `json:"terms"`
	Simplified string     `json:"simplified"`
	Degree     int        `json:"degree"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMsgSize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	eq, err := plot.NewEquation(req.Text)
	if err != nil {
		plot.Logger().Warn("parse rejected", "text", req.Text, "error", err)
		writeJSON(w, http.StatusBadRequest, newErrorPayload(err))
		return
	}

	resp := parseResponse{
		ID:      eq.ID,
		Display: eq.String(),
		Degree:  eq.Poly.Degree(),
	}
	for _, t := range eq.Poly.Terms() {
		resp.Terms = append(resp.Terms, termJSON{Coefficient: t.Coefficient, Power: t.Power})
	}
	resp.Simplified = plot.NewBuilder().
		WithPrecision(s.opts.Precision).
		AddTerms(eq.Poly.Terms()...).
		Build().
		String()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlotPNG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vp := s.opts.Viewport
	scale := s.opts.Scale
	var offset plot.Point

	var err error
	if vp.Width, err = intParam(q.Get("width"), vp.Width); err != nil {
		badRequest(w, err)
		return
	}
	if vp.Height, err = intParam(q.Get("height"), vp.Height); err != nil {
		badRequest(w, err)
		return
	}
	if scale, err = floatParam(q.Get("scale"), scale); err != nil {
		badRequest(w, err)
		return
	}
	if offset.X, err = floatParam(q.Get("ox"), 0); err != nil {
		badRequest(w, err)
		return
	}
	if offset.Y, err = floatParam(q.Get("oy"), 0); err != nil {
		badRequest(w, err)
		return
	}
	if err := s.opts.Limits.checkViewport(vp); err != nil {
		badRequest(w, err)
		return
	}
	if err := s.opts.Limits.checkScale(scale); err != nil {
		badRequest(w, err)
		return
	}
	eqs := q["eq"]
	if len(eqs) > s.opts.Limits.MaxEquations {
		badRequest(w, fmt.Errorf("too many equations (max %d)", s.opts.Limits.MaxEquations))
		return
	}

	p := plot.NewPlotter(plot.WithScale(scale), plot.WithLabels(q.Get("labels") != "0"))
	if err := p.View().SetOffset(offset); err != nil {
		badRequest(w, err)
		return
	}
	for _, text := range eqs {
		if _, err := p.AddEquation(text); err != nil {
			writeJSON(w, http.StatusBadRequest, newErrorPayload(err))
			return
		}
	}

	batch, err := p.Render(vp)
	if err != nil {
		badRequest(w, err)
		return
	}
	backend := plot.MustBackend(pngBackend).(plot.WriterBackend)
	if themed, ok := backend.(plot.ThemedBackend); ok {
		themed.SetTheme(s.opts.Theme)
	}
	if err := batch.Playback(backend); err != nil {
		plot.Logger().Error("render png", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := backend.WriteTo(w); err != nil {
		plot.Logger().Debug("write png", "error", err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.opts.AllowedOrigins,
	})
	if err != nil {
		plot.Logger().Error("websocket accept", "error", err)
		return
	}

	p := plot.NewPlotter(plot.WithScale(s.opts.Scale))
	sess := newSession(conn, p, s.opts.Viewport, s.opts.Limits)
	sess.log.Info("session opened", "remote", r.RemoteAddr)

	ctx := r.Context()
	go sess.WritePump(ctx)
	sess.ReadPump(ctx)
	sess.log.Info("session closed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func floatParam(s string, def float32) (float32, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("invalid number " + strconv.Quote(s))
	}
	return float32(v), nil
}
