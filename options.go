package plot

// Option configures a Plotter during creation.
// Use functional options to customize Plotter behavior.
//
// Example:
//
//	// Defaults: scale 50, labels on, terms kept as typed
//	p := plot.NewPlotter()
//
//	// Start zoomed in and merge like terms of every equation
//	p := plot.NewPlotter(plot.WithScale(120), plot.WithSimplify(4))
type Option func(*plotterOptions)

// plotterOptions holds optional configuration for Plotter creation.
type plotterOptions struct {
	scale     float32
	simplify  bool
	precision int
	labels    bool
}

// defaultOptions returns the default plotter options.
func defaultOptions() plotterOptions {
	return plotterOptions{
		scale:     DefaultScale,
		precision: DefaultPrecision,
		labels:    true,
	}
}

// WithScale sets the initial scale in pixels per unit. Values that are not
// finite and positive are ignored.
func WithScale(s float32) Option {
	return func(o *plotterOptions) {
		if isFinite(s) && s > 0 {
			o.scale = s
		}
	}
}

// WithSimplify makes the plotter merge terms sharing a power in every added
// equation, rounding to precision decimal digits.
func WithSimplify(precision int) Option {
	return func(o *plotterOptions) {
		o.simplify = true
		o.precision = max(precision, 0)
	}
}

// WithLabels enables or disables tick labels in rendered batches.
func WithLabels(on bool) Option {
	return func(o *plotterOptions) {
		o.labels = on
	}
}
