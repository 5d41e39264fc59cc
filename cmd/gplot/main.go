// Command gplot plots polynomials in a window or renders them to a PNG file.
//
// Usage:
//
//	gplot [flags] [equation ...]
//
// With no equations on the command line (and without -demo) gplot asks for
// one on stdin. Settings not given as flags are read from GPLOT_*
// environment variables.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/plot"
	_ "github.com/gogpu/plot/backend/raster"
	"github.com/gogpu/plot/backend/window"
	"github.com/gogpu/plot/internal/config"
)

const prompt = "Enter polynomial in the form: 4.2x^2 - 2x + 0.4 (whitespace ignored, exponents must be integers)"

var demoEquations = []string{
	"0.5x^6 + 1.234x^7 - 4x^4 + 3x^2 + x - 1",
	"x^3 - 6x^2 + 11x - 6",
	"-0.25x^2 + 4",
	"2x + 1",
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("gplot", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("gplot", flag.ContinueOnError)
	var (
		pngFile  = fs.String("png", "", "render to this PNG file instead of opening a window")
		demo     = fs.Bool("demo", false, "plot a set of demo equations")
		simplify = fs.Bool("simplify", false, "merge terms sharing a power")
		backend  = fs.String("backend", "raster", "backend used by -png, one of "+strings.Join(plot.Backends(), ", "))
	)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "viewport width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "viewport height in pixels")
	scale := fs.Float64("scale", float64(cfg.Scale), "initial scale in pixels per unit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Scale = float32(*scale)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !plot.IsRegistered(*backend) {
		return fmt.Errorf("unknown backend %q, want one of %s", *backend, strings.Join(plot.Backends(), ", "))
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	plot.SetLogger(logger)

	theme, err := cfg.Theme()
	if err != nil {
		return err
	}

	opts := cfg.PlotterOptions()
	if *simplify {
		opts = append(opts, plot.WithSimplify(cfg.Precision))
	}
	p := plot.NewPlotter(opts...)

	equations := fs.Args()
	if *demo {
		equations = append(equations, demoEquations...)
	}
	if len(equations) == 0 {
		line, err := readEquation(stdin, stdout)
		if err != nil {
			return err
		}
		equations = []string{line}
	}
	for _, text := range equations {
		eq, err := p.AddEquation(text)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Parsed equation: %s\n", eq)
	}

	if *pngFile != "" {
		return renderFile(p, *backend, cfg.Viewport(), theme, *pngFile)
	}

	return window.Run(p, window.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		TPS:    cfg.TPS,
		Theme:  theme,
	})
}

func readEquation(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprintln(stdout, prompt)
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read equation: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func renderFile(p *plot.Plotter, name string, vp plot.Viewport, theme plot.Theme, path string) error {
	be, err := plot.NewBackend(name)
	if err != nil {
		return err
	}
	out, ok := be.(plot.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", name)
	}
	if themed, ok := be.(plot.ThemedBackend); ok {
		themed.SetTheme(theme)
	}

	batch, err := p.Render(vp)
	if err != nil {
		return err
	}
	if err := batch.Playback(out); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := out.SaveToFile(path); err != nil {
		return err
	}
	plot.Logger().Info("plot saved", "backend", name, "file", path, "width", vp.Width, "height", vp.Height, "curves", len(p.Equations()))
	return nil
}
