package plot

import (
	"slices"
	"strings"
)

// DefaultPrecision is the number of decimal digits coefficients are rounded
// to when terms are merged by a PolynomialBuilder.
const DefaultPrecision = 4

// Polynomial is a sum of terms.
//
// A Polynomial built by NewPolynomial keeps its terms exactly as given, in
// order. A Polynomial produced by PolynomialBuilder.Build (or Simplify) holds
// at most one term per distinct power, in order of first occurrence.
// The zero value is the empty polynomial, which evaluates to 0.
type Polynomial struct {
	terms     []Term
	precision int
}

// NewPolynomial returns an unsimplified polynomial over the given terms.
// The slice is copied.
func NewPolynomial(terms ...Term) Polynomial {
	return Polynomial{
		terms:     slices.Clone(terms),
		precision: DefaultPrecision,
	}
}

// Terms returns a copy of the terms in display order.
func (p Polynomial) Terms() []Term {
	return slices.Clone(p.terms)
}

// Len returns the number of terms.
func (p Polynomial) Len() int {
	return len(p.terms)
}

// Precision returns the rounding precision used when simplifying.
func (p Polynomial) Precision() int {
	return p.precision
}

// Evaluate returns the sum of coefficient * x^power over all terms.
func (p Polynomial) Evaluate(x float32) float32 {
	var sum float32
	for _, t := range p.terms {
		sum += t.Evaluate(x)
	}
	return sum
}

// IsLinear reports whether no term has a power greater than 1.
// Linear polynomials are fully determined by two samples.
func (p Polynomial) IsLinear() bool {
	for _, t := range p.terms {
		if t.Power > 1 {
			return false
		}
	}
	return true
}

// Degree returns the highest power among the terms, or 0 for the empty
// polynomial. Zero coefficients still count.
func (p Polynomial) Degree() int {
	d := 0
	for _, t := range p.terms {
		d = max(d, t.Power)
	}
	return d
}

// Simplify merges terms that share a power, rounding the sums to the
// polynomial's precision.
func (p Polynomial) Simplify() Polynomial {
	return NewBuilder().WithPrecision(p.precision).AddTerms(p.terms...).Build()
}

// Equal reports whether p and q have the same simplified form.
// Term order does not matter.
func (p Polynomial) Equal(q Polynomial) bool {
	ps, qs := p.Simplify().terms, q.Simplify().terms
	if len(ps) != len(qs) {
		return false
	}
	for _, t := range ps {
		i := slices.IndexFunc(qs, func(u Term) bool { return u.Power == t.Power })
		if i < 0 || qs[i].Coefficient != t.Coefficient {
			return false
		}
	}
	return true
}

// String renders the polynomial as "y = + 4.2x^2 - 2x + 0.4".
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "y = 0"
	}
	var sb strings.Builder
	sb.WriteString("y =")
	for _, t := range p.terms {
		sb.WriteByte(' ')
		t.writeTo(&sb)
	}
	return sb.String()
}
