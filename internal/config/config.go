// Package config loads gplot settings from GPLOT_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/gogpu/plot"
)

// Prefix is the environment variable prefix, e.g. GPLOT_WIDTH.
const Prefix = "GPLOT"

// Config holds the settings shared by gplot and gplotd.
type Config struct {
	Width       int     `envconfig:"WIDTH" default:"1000"`
	Height      int     `envconfig:"HEIGHT" default:"600"`
	Scale       float32 `envconfig:"SCALE" default:"50"`
	Precision   int     `envconfig:"PRECISION" default:"4"`
	Title       string  `envconfig:"TITLE" default:"gplot"`
	TPS         int     `envconfig:"TPS" default:"60"`
	LogLevel    string  `envconfig:"LOG_LEVEL" default:"info"`
	Addr        string  `envconfig:"ADDR" default:":8080"`
	CurveColors string  `envconfig:"CURVE_COLORS"`
	Background  string  `envconfig:"BACKGROUND" default:"#000000"`

	// AllowedOrigins are the WebSocket origin patterns gplotd accepts
	// besides the request's own host.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`
}

// Load reads GPLOT_* variables over the defaults and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot: sizes, scale and log level.
func (c *Config) Validate() error {
	if err := (plot.Viewport{Width: c.Width, Height: c.Height}).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !(c.Scale > plot.MinScale) {
		return fmt.Errorf("config: scale must be > %v, got %v", plot.MinScale, c.Scale)
	}
	if c.Precision < 0 {
		return fmt.Errorf("config: precision must be >= 0, got %d", c.Precision)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be > 0, got %d", c.TPS)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Viewport returns the configured initial window size.
func (c *Config) Viewport() plot.Viewport {
	return plot.Viewport{Width: c.Width, Height: c.Height, ScaleFactor: 1}
}

// Theme returns plot.DefaultTheme with the configured background and curve
// palette applied.
func (c *Config) Theme() (plot.Theme, error) {
	th := plot.DefaultTheme()
	if c.Background != "" {
		bg, err := plot.ParseHex(c.Background)
		if err != nil {
			return plot.Theme{}, fmt.Errorf("config: background: %w", err)
		}
		th.Background = bg
	}
	palette, err := plot.ParsePalette(c.CurveColors)
	if err != nil {
		return plot.Theme{}, fmt.Errorf("config: curve colors: %w", err)
	}
	if len(palette) > 0 {
		th.Curves = palette
	}
	return th, nil
}

// PlotterOptions returns the plot options matching the configuration.
func (c *Config) PlotterOptions() []plot.Option {
	return []plot.Option{plot.WithScale(c.Scale)}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}
