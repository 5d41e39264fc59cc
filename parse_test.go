package plot

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Term
	}{
		{
			name: "mixed powers",
			in:   "0.5x^6 +1.234x^7 - 4x^4 + 3x^2 +x - 1",
			want: []Term{{0.5, 6}, {1.234, 7}, {-4, 4}, {3, 2}, {1, 1}, {-1, 0}},
		},
		{
			name: "leading minus",
			in:   "-2.1x^3 - 1",
			want: []Term{{-2.1, 3}, {-1, 0}},
		},
		{
			name: "no whitespace",
			in:   "5.2x^3-2x^2+1.9x-3",
			want: []Term{{5.2, 3}, {-2, 2}, {1.9, 1}, {-3, 0}},
		},
		{
			name: "whitespace everywhere",
			in:   "   - \t  4.2x^3 +2x^2  - 3.7 ",
			want: []Term{{-4.2, 3}, {2, 2}, {-3.7, 0}},
		},
		{
			name: "signs without numbers",
			in:   "-x^2 + x",
			want: []Term{{-1, 2}, {1, 1}},
		},
		{
			name: "leading plus",
			in:   "+3",
			want: []Term{{3, 0}},
		},
		{
			name: "whitespace inside term",
			in:   "4 . 2 x ^ 1 0",
			want: []Term{{4.2, 10}},
		},
		{
			name: "exponent without caret",
			in:   "x2",
			want: []Term{{1, 2}},
		},
		{
			name: "same power twice",
			in:   "x^2 + x^2",
			want: []Term{{1, 2}, {1, 2}},
		},
		{
			name: "bare x",
			in:   "x",
			want: []Term{{1, 1}},
		},
		{
			name: "trailing minus",
			in:   "1 -",
			want: []Term{{1, 0}, {-1, 0}},
		},
		{
			name: "trailing plus",
			in:   "x^2 +",
			want: []Term{{1, 2}, {1, 0}},
		},
		{
			name: "doubled sign",
			in:   "--x",
			want: []Term{{-1, 0}, {-1, 1}},
		},
		{
			name: "lone sign",
			in:   " + ",
			want: []Term{{1, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) = %v", tt.in, err)
			}
			diff(t, tt.want, p.Terms())
		})
	}
}

func TestParseSimplified(t *testing.T) {
	p, err := ParseSimplified("0.5x^2 + x^2 - 1 + 2x - x", DefaultPrecision)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Term{{1.5, 2}, {-1, 0}, {1, 1}}, p.Terms())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in       string
		kind     ParseErrorKind
		sentinel error
		token    string
		term     string
	}{
		{"1.2.3x", InvalidCoefficient, ErrInvalidCoefficient, "1.2.3", "1.2.3x"},
		{"x^2.5", InvalidExponent, ErrInvalidExponent, "2.5", "x^2.5"},
		{"3x^ + 1", InvalidExponent, ErrInvalidExponent, "", "3x^"},
		{"2xy", InvalidTerm, ErrInvalidTerm, "y", "2xy"},
		{"x + 2z - 1", InvalidTerm, ErrInvalidTerm, "z", "+2z"},
		{"2 * x", InvalidTerm, ErrInvalidTerm, "*", "2*x"},
		{"x^é", InvalidTerm, ErrInvalidTerm, "é", "x^é"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.in)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error %T is not *ParseError", tt.in, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", pe.Kind, tt.kind)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if pe.Token != tt.token {
				t.Errorf("Token = %q, want %q", pe.Token, tt.token)
			}
			if pe.Term != tt.term {
				t.Errorf("Term = %q, want %q", pe.Term, tt.term)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := Parse(in); !errors.Is(err, ErrEmptyEquation) {
			t.Errorf("Parse(%q) = %v, want ErrEmptyEquation", in, err)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("4.2x^2 - 2q")
	want := `plot: invalid term "q" in term "-2q"`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %s", err, want)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("x^")
}

func TestParseDisplayRoundTrip(t *testing.T) {
	p := MustParse("4.2x^2 - 2x + 0.4")
	if got, want := p.String(), "y = + 4.2x^2 - 2x + 0.4"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	q, err := Parse(p.String()[len("y ="):])
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(q) {
		t.Errorf("re-parsed %v, want %v", q, p)
	}
}
