package plot

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// EquationIDPrefix is the type prefix of equation identifiers,
// e.g. "eq_01h455vb4pex5vsknk084sn02q".
const EquationIDPrefix = "eq"

// Equation is a plotted polynomial along with the text it came from.
type Equation struct {
	ID     string
	Source string
	Poly   Polynomial
}

// NewEquation parses source and assigns the equation a fresh ID.
func NewEquation(source string) (Equation, error) {
	poly, err := Parse(source)
	if err != nil {
		return Equation{}, err
	}
	return Equation{ID: newEquationID(), Source: source, Poly: poly}, nil
}

// String returns the display form of the polynomial.
func (e Equation) String() string {
	return e.Poly.String()
}

func newEquationID() string {
	return typeid.MustGenerate(EquationIDPrefix).String()
}

// ValidateEquationID checks that id is a well-formed equation identifier.
func ValidateEquationID(id string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("plot: invalid equation id %q: %w", id, err)
	}
	if parsed.Prefix() != EquationIDPrefix {
		return fmt.Errorf("plot: expected prefix %q but got %q in id %q", EquationIDPrefix, parsed.Prefix(), id)
	}
	return nil
}
