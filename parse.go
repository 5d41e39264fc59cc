package plot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind uint8

const (
	// InvalidCoefficient means the coefficient token is not a number.
	InvalidCoefficient ParseErrorKind = iota + 1
	// InvalidExponent means the exponent token is missing or not an integer.
	InvalidExponent
	// InvalidTerm means the term does not fit the term grammar.
	InvalidTerm
)

// String returns the kind in the form used by error messages and the
// service API.
func (k ParseErrorKind) String() string {
	switch k {
	case InvalidCoefficient:
		return "invalid coefficient"
	case InvalidExponent:
		return "invalid exponent"
	case InvalidTerm:
		return "invalid term"
	default:
		return "ParseErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError reports a term of an equation that could not be parsed.
// Token is the offending substring and Term the whole failing term, both
// taken from the input with whitespace removed. Offset is the byte offset
// of Term in that whitespace-free input.
type ParseError struct {
	Kind   ParseErrorKind
	Token  string
	Term   string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("plot: %s %q in term %q", e.Kind, e.Token, e.Term)
}

// Unwrap returns the sentinel matching the error kind, so callers can use
// errors.Is(err, ErrInvalidExponent).
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case InvalidCoefficient:
		return ErrInvalidCoefficient
	case InvalidExponent:
		return ErrInvalidExponent
	default:
		return ErrInvalidTerm
	}
}

// Parse converts free-form text such as "4.2x^2 - 2x + 0.4" into a
// polynomial. Whitespace anywhere in the input is ignored.
//
// Each term has the form sign? coefficient? (x (^exponent)?)?. A missing
// coefficient means 1 (-1 after a minus sign), a missing x means power 0 and
// an x without exponent means power 1, so a sign on its own is the constant
// 1 or -1. Terms are returned unsimplified and
// in input order; see ParseSimplified to merge terms sharing a power.
//
// Errors are *ParseError values, or ErrEmptyEquation when text holds no
// terms at all.
func Parse(text string) (Polynomial, error) {
	s := stripSpace(text)
	if s == "" {
		return Polynomial{}, ErrEmptyEquation
	}

	var terms []Term
	for i := 0; i < len(s); {
		t, next, err := scanTerm(s, i)
		if err != nil {
			return Polynomial{}, err
		}
		terms = append(terms, t)
		i = next
	}
	return NewPolynomial(terms...), nil
}

// ParseSimplified parses text and merges terms that share a power,
// rounding to precision decimal digits.
func ParseSimplified(text string, precision int) (Polynomial, error) {
	p, err := Parse(text)
	if err != nil {
		return Polynomial{}, err
	}
	return NewBuilder().WithPrecision(precision).AddTerms(p.terms...).Build(), nil
}

// MustParse is like Parse but panics on error.
// Use only for equations known at compile time.
func MustParse(text string) Polynomial {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// scanTerm reads the term starting at s[start] and returns it along with
// the index of the first byte after it.
func scanTerm(s string, start int) (Term, int, error) {
	i := start
	negative := false
	if s[i] == '+' || s[i] == '-' {
		negative = s[i] == '-'
		i++
	}

	coefStart := i
	i = scanNumber(s, i)
	coefToken := s[coefStart:i]

	power := 0
	caret := false
	expToken := ""
	if i < len(s) && s[i] == 'x' {
		power = 1
		i++
		if i < len(s) && s[i] == '^' {
			caret = true
			i++
		}
		expStart := i
		i = scanNumber(s, i)
		expToken = s[expStart:i]
	}

	if i < len(s) && !isSign(s[i]) {
		_, size := utf8.DecodeRuneInString(s[i:])
		return Term{}, 0, &ParseError{
			Kind:   InvalidTerm,
			Token:  s[i : i+size],
			Term:   s[start:termEnd(s, i)],
			Offset: start,
		}
	}
	whole := s[start:i]

	coefficient := float32(1)
	if coefToken != "" {
		c, err := strconv.ParseFloat(coefToken, 32)
		if err != nil {
			return Term{}, 0, &ParseError{Kind: InvalidCoefficient, Token: coefToken, Term: whole, Offset: start}
		}
		coefficient = float32(c)
	}
	if negative {
		coefficient = -coefficient
	}

	if caret || expToken != "" {
		p, err := strconv.Atoi(expToken)
		if err != nil || p < 0 {
			return Term{}, 0, &ParseError{Kind: InvalidExponent, Token: expToken, Term: whole, Offset: start}
		}
		power = p
	}

	return Term{Coefficient: coefficient, Power: power}, i, nil
}

// scanNumber returns the end of the run of digits and dots starting at i.
// Malformed runs such as "1.2.3" are rejected later by strconv.
func scanNumber(s string, i int) int {
	for i < len(s) && (('0' <= s[i] && s[i] <= '9') || s[i] == '.') {
		i++
	}
	return i
}

// termEnd returns the index of the next sign at or after i, or len(s).
func termEnd(s string, i int) int {
	if j := strings.IndexAny(s[i:], "+-"); j >= 0 {
		return i + j
	}
	return len(s)
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
