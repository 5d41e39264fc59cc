package plot

import (
	"strconv"
	"strings"
)

// Term is a single coefficient * x^power summand.
//
// Term is an immutable value: the modifying helpers return a new Term.
type Term struct {
	Coefficient float32
	Power       int
}

// NewTerm creates a term. Negative powers are not supported and panic.
func NewTerm(coefficient float32, power int) Term {
	if power < 0 {
		panic("plot: NewTerm power must be >= 0, got " + strconv.Itoa(power))
	}
	return Term{Coefficient: coefficient, Power: power}
}

// XToThe returns the term x^power with coefficient 1.
func XToThe(power int) Term {
	return NewTerm(1, power)
}

// Times returns a copy of t with its coefficient replaced by c.
//
//	XToThe(3).Times(-2) // -2x^3
func (t Term) Times(c float32) Term {
	t.Coefficient = c
	return t
}

// Evaluate returns coefficient * x^power.
func (t Term) Evaluate(x float32) float32 {
	return t.Coefficient * ipow(x, t.Power)
}

// String renders the term with its sign, e.g. "+ 4.2x^2" or "- 1".
func (t Term) String() string {
	var sb strings.Builder
	t.writeTo(&sb)
	return sb.String()
}

func (t Term) writeTo(sb *strings.Builder) {
	c := t.Coefficient
	if c < 0 {
		sb.WriteString("- ")
		c = -c
	} else {
		sb.WriteString("+ ")
	}
	sb.WriteString(formatCoefficient(c))
	switch t.Power {
	case 0:
	case 1:
		sb.WriteByte('x')
	default:
		sb.WriteString("x^")
		sb.WriteString(strconv.Itoa(t.Power))
	}
}

// formatCoefficient uses the shortest representation that round-trips
// through float32, so 1.234 prints as "1.234" rather than "1.2339999".
func formatCoefficient(c float32) string {
	return strconv.FormatFloat(float64(c), 'g', -1, 32)
}

// ipow computes x^n by repeated squaring. Exact for small integer n,
// unlike math.Pow which goes through exp/log.
func ipow(x float32, n int) float32 {
	result := float32(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}
