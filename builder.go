package plot

import "math"

// PolynomialBuilder provides a fluent interface for polynomial construction.
// All methods return the builder for chaining:
//
//	p := plot.NewBuilder().
//		PlusXSquaredTimes(0.5).
//		PlusXSquaredTimes(1).
//		PlusConst(-1).
//		Build() // y = + 1.5x^2 - 1
type PolynomialBuilder struct {
	terms     []Term
	precision int
}

// NewBuilder starts a new polynomial builder with DefaultPrecision.
func NewBuilder() *PolynomialBuilder {
	return &PolynomialBuilder{precision: DefaultPrecision}
}

// WithPrecision sets the number of decimal digits merged coefficients are
// rounded to. Negative values are treated as 0.
func (b *PolynomialBuilder) WithPrecision(digits int) *PolynomialBuilder {
	b.precision = max(digits, 0)
	return b
}

// AddTerm appends a term.
func (b *PolynomialBuilder) AddTerm(t Term) *PolynomialBuilder {
	b.terms = append(b.terms, t)
	return b
}

// AddTerms appends several terms in order.
func (b *PolynomialBuilder) AddTerms(ts ...Term) *PolynomialBuilder {
	b.terms = append(b.terms, ts...)
	return b
}

// PlusConst adds the constant term c.
func (b *PolynomialBuilder) PlusConst(c float32) *PolynomialBuilder {
	return b.AddTerm(NewTerm(c, 0))
}

// PlusXTimes adds c*x.
func (b *PolynomialBuilder) PlusXTimes(c float32) *PolynomialBuilder {
	return b.AddTerm(NewTerm(c, 1))
}

// PlusXSquaredTimes adds c*x^2.
func (b *PolynomialBuilder) PlusXSquaredTimes(c float32) *PolynomialBuilder {
	return b.AddTerm(NewTerm(c, 2))
}

// PlusXCubedTimes adds c*x^3.
func (b *PolynomialBuilder) PlusXCubedTimes(c float32) *PolynomialBuilder {
	return b.AddTerm(NewTerm(c, 3))
}

// PlusX4thTimes adds c*x^4.
func (b *PolynomialBuilder) PlusX4thTimes(c float32) *PolynomialBuilder {
	return b.AddTerm(NewTerm(c, 4))
}

// Build groups the accumulated terms by power, sums each group and rounds
// the sum to the configured precision. Groups keep the position of their
// first term. A group whose coefficients cancel out is kept as a zero term.
func (b *PolynomialBuilder) Build() Polynomial {
	var (
		order []int
		sums  = make(map[int]float64, len(b.terms))
	)
	for _, t := range b.terms {
		if _, seen := sums[t.Power]; !seen {
			order = append(order, t.Power)
		}
		sums[t.Power] += float64(t.Coefficient)
	}

	terms := make([]Term, 0, len(order))
	for _, power := range order {
		terms = append(terms, Term{
			Coefficient: float32(roundTo(sums[power], b.precision)),
			Power:       power,
		})
	}
	return Polynomial{terms: terms, precision: b.precision}
}

// roundTo rounds v to digits decimal places, halves away from zero.
func roundTo(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	r := math.Round(v*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		// v*scale overflowed; v is already far beyond the precision.
		return v
	}
	return r
}
