package plot

import "errors"

var (
	// ErrInvalidCoefficient is matched by a ParseError whose coefficient
	// token is not a number.
	ErrInvalidCoefficient = errors.New("plot: invalid coefficient")

	// ErrInvalidExponent is matched by a ParseError whose exponent token is
	// not a non-negative integer.
	ErrInvalidExponent = errors.New("plot: invalid exponent")

	// ErrInvalidTerm is matched by a ParseError for a term that does not fit
	// the sign? coefficient? (x (^exponent)?)? grammar.
	ErrInvalidTerm = errors.New("plot: invalid term")

	// ErrEmptyEquation is returned when the input contains no terms.
	ErrEmptyEquation = errors.New("plot: empty equation")

	// ErrInvalidScale is returned when a view scale is not a finite
	// positive number.
	ErrInvalidScale = errors.New("plot: scale must be finite and > 0")

	// ErrInvalidOffset is returned when a view offset is not finite.
	ErrInvalidOffset = errors.New("plot: offset must be finite")

	// ErrInvalidViewport is returned for viewports without a positive area.
	ErrInvalidViewport = errors.New("plot: invalid viewport")
)
