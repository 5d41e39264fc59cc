package plot

import (
	"math"
	"testing"
)

func TestTermString(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{NewTerm(4.2, 2), "+ 4.2x^2"},
		{NewTerm(-2, 1), "- 2x"},
		{NewTerm(0.4, 0), "+ 0.4"},
		{NewTerm(-1, 0), "- 1"},
		{NewTerm(0, 3), "+ 0x^3"},
		{XToThe(7).Times(-1.234), "- 1.234x^7"},
	}
	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestNewTermNegativePowerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTerm(1, -1) did not panic")
		}
	}()
	NewTerm(1, -1)
}

func TestIpow(t *testing.T) {
	tests := []struct {
		x    float32
		n    int
		want float32
	}{
		{2, 0, 1},
		{2, 1, 2},
		{2, 10, 1024},
		{-3, 3, -27},
		{0.5, 2, 0.25},
		{0, 0, 1},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := ipow(tt.x, tt.n); got != tt.want {
			t.Errorf("ipow(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
	}
}

func TestPolynomialEvaluate(t *testing.T) {
	p := NewPolynomial(NewTerm(1, 2), NewTerm(-3, 1), NewTerm(2, 0))
	for _, tt := range []struct{ x, want float32 }{
		{0, 2},
		{1, 0},
		{2, 0},
		{3, 2},
		{-1, 6},
	} {
		if got := p.Evaluate(tt.x); got != tt.want {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	var empty Polynomial
	if got := empty.Evaluate(42); got != 0 {
		t.Errorf("empty.Evaluate(42) = %v, want 0", got)
	}
}

func TestPolynomialIsLinear(t *testing.T) {
	tests := []struct {
		p    Polynomial
		want bool
	}{
		{Polynomial{}, true},
		{NewPolynomial(NewTerm(3, 0)), true},
		{NewPolynomial(NewTerm(2, 1), NewTerm(1, 0)), true},
		{NewPolynomial(NewTerm(0, 2), NewTerm(1, 1)), false},
		{NewPolynomial(NewTerm(1, 5)), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsLinear(); got != tt.want {
			t.Errorf("%v IsLinear() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBuilderMergesPowers(t *testing.T) {
	p := NewBuilder().
		PlusXSquaredTimes(0.5).
		PlusXSquaredTimes(1).
		PlusConst(-1).
		Build()

	diff(t, []Term{{1.5, 2}, {-1, 0}}, p.Terms())
	if got, want := p.String(), "y = + 1.5x^2 - 1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderFirstOccurrenceOrder(t *testing.T) {
	p := NewBuilder().
		PlusConst(1).
		PlusX4thTimes(2).
		PlusXTimes(3).
		PlusConst(4).
		PlusXCubedTimes(5).
		PlusX4thTimes(6).
		Build()

	diff(t, []Term{{5, 0}, {8, 4}, {3, 1}, {5, 3}}, p.Terms())
}

func TestBuilderRetainsZeroTerms(t *testing.T) {
	p := NewBuilder().PlusXTimes(2).PlusXTimes(-2).PlusConst(1).Build()
	diff(t, []Term{{0, 1}, {1, 0}}, p.Terms())
	if got, want := p.String(), "y = + 0x + 1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilderRounding(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		coefs     []float32
		want      float32
	}{
		{"tenths", 4, []float32{0.1, 0.2}, 0.3},
		{"four digits", 4, []float32{1.23456}, 1.2346},
		{"one digit", 1, []float32{1.25, 1}, 2.3},
		{"integers", 0, []float32{1.4, 1.4}, 3},
		{"negative precision", -3, []float32{0.6}, 1},
		{"huge", 4, []float32{3e38}, 3e38},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder().WithPrecision(tt.precision)
			for _, c := range tt.coefs {
				b.PlusXTimes(c)
			}
			got := b.Build().Terms()[0].Coefficient
			if math.Abs(float64(got-tt.want)) > 1e-6*math.Max(1, math.Abs(float64(tt.want))) {
				t.Errorf("coefficient = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolynomialSimplifyKeepsOriginal(t *testing.T) {
	p := NewPolynomial(NewTerm(1, 1), NewTerm(2, 1))
	s := p.Simplify()
	diff(t, []Term{{3, 1}}, s.Terms())
	if p.Len() != 2 {
		t.Errorf("Simplify modified the receiver: Len() = %d", p.Len())
	}
}

func TestPolynomialEqual(t *testing.T) {
	a := NewPolynomial(NewTerm(1, 2), NewTerm(1, 2), NewTerm(-1, 0))
	b := NewPolynomial(NewTerm(-1, 0), NewTerm(2, 2))
	c := NewPolynomial(NewTerm(2, 2))
	if !a.Equal(b) {
		t.Errorf("%v should equal %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("%v should not equal %v", a, c)
	}
}

func TestPolynomialTermsIsCopy(t *testing.T) {
	terms := []Term{{1, 1}}
	p := NewPolynomial(terms...)
	terms[0].Coefficient = 99
	got := p.Terms()
	got[0].Coefficient = 42
	diff(t, []Term{{1, 1}}, p.Terms())
}

func TestPolynomialDegree(t *testing.T) {
	if d := (Polynomial{}).Degree(); d != 0 {
		t.Errorf("empty Degree() = %d, want 0", d)
	}
	if d := MustParse("3x^2 + 0x^7 - 1").Degree(); d != 7 {
		t.Errorf("Degree() = %d, want 7", d)
	}
}

func TestPolynomialStringEmpty(t *testing.T) {
	if got := (Polynomial{}).String(); got != "y = 0" {
		t.Errorf("String() = %q, want %q", got, "y = 0")
	}
}
