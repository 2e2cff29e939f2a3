// Package polynomial evaluates the binomial-expansion polynomial implied by a
// Pascal row: f(z) = Σ coeffs[i]·z^(n-i). Term i has exponent n-i, so index 0
// is the leading term.
//
// Evaluation is pure: it returns the rendered polynomial, the per-term
// breakdown, the total and the independent (x+1)^n check as values, and
// leaves printing to the caller.
package polynomial

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	apperrors "github.com/agbru/pascalcalc/internal/errors"
	"github.com/agbru/pascalcalc/internal/pascal"
)

// DefaultVariable is the variable name used when rendering polynomials.
const DefaultVariable = "x"

// ErrEmptyCoefficients is returned when the evaluator is given a row with no
// coefficients. It is wrapped in an apperrors.ValidationError.
var ErrEmptyCoefficients = errors.New("empty coefficient row")

// Term is one evaluated term coeff·base^exponent.
type Term struct {
	// Index is the position of the coefficient in the row.
	Index int
	// Coefficient is coeffs[Index].
	Coefficient *big.Int
	// Base is the evaluation point x.
	Base int64
	// Exponent is n - Index.
	Exponent int
	// Value is Coefficient·Base^Exponent.
	Value *big.Int
}

// Evaluation holds everything computed for one (row, x) pair.
type Evaluation struct {
	// Degree is n, the highest exponent.
	Degree int
	// X is the evaluation point.
	X int64
	// Polynomial is the rendered right-hand side, e.g. "1x^2 + 2x + 1".
	Polynomial string
	// Terms is the per-term breakdown in index order.
	Terms []Term
	// Total is f(x), the sum of all term values.
	Total *big.Int
	// Verification is (x+1)^n computed directly.
	Verification *big.Int
}

// Verified reports whether Total equals Verification. This holds for every x
// whenever the coefficients are a true binomial row.
func (e Evaluation) Verified() bool {
	return e.Total != nil && e.Verification != nil && e.Total.Cmp(e.Verification) == 0
}

// Evaluate renders the polynomial for coeffs, sums coeffs[i]·x^(n-i) term by
// term in index order, and computes (x+1)^n for comparison.
//
// Parameters:
//   - coeffs: A coefficient row, usually produced by pascal.Generate.
//   - x: The evaluation point.
//
// Returns:
//   - Evaluation: The rendering, breakdown, total and verification value.
//   - error: A ValidationError wrapping ErrEmptyCoefficients if coeffs is empty.
func Evaluate(coeffs pascal.Row, x int64) (Evaluation, error) {
	if err := validate(coeffs); err != nil {
		return Evaluation{}, err
	}

	n := coeffs.Degree()
	xBig := big.NewInt(x)
	total := new(big.Int)
	terms := make([]Term, 0, n+1)

	for i, c := range coeffs {
		k := n - i
		value := new(big.Int).Exp(xBig, big.NewInt(int64(k)), nil)
		value.Mul(value, c)
		total.Add(total, value)
		terms = append(terms, Term{
			Index:       i,
			Coefficient: new(big.Int).Set(c),
			Base:        x,
			Exponent:    k,
			Value:       value,
		})
	}

	return Evaluation{
		Degree:       n,
		X:            x,
		Polynomial:   Render(coeffs, DefaultVariable),
		Terms:        terms,
		Total:        total,
		Verification: Verify(x, n),
	}, nil
}

// Verify returns (x+1)^n. Negative n is treated as 0.
func Verify(x int64, n int) *big.Int {
	base := new(big.Int).Add(big.NewInt(x), big.NewInt(1))
	return new(big.Int).Exp(base, big.NewInt(int64(n)), nil)
}

// Horner evaluates the same polynomial as Evaluate using Horner's rule,
// ((c0·x + c1)·x + c2)·x + ... It shares no arithmetic with Evaluate.
func Horner(coeffs pascal.Row, x int64) (*big.Int, error) {
	if err := validate(coeffs); err != nil {
		return nil, err
	}
	xBig := big.NewInt(x)
	res := new(big.Int).Set(coeffs[0])
	for _, c := range coeffs[1:] {
		res.Mul(res, xBig)
		res.Add(res, c)
	}
	return res, nil
}

// Render formats coeffs as a polynomial in variable, highest exponent first:
// exponent k>1 renders as "c<var>^k", k==1 as "c<var>" and k==0 as "c".
// Terms are joined with " + ". An empty row renders as "".
func Render(coeffs pascal.Row, variable string) string {
	n := coeffs.Degree()
	var b strings.Builder
	for i, c := range coeffs {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(c.String())
		switch k := n - i; {
		case k > 1:
			b.WriteString(variable)
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(k))
		case k == 1:
			b.WriteString(variable)
		}
	}
	return b.String()
}

func validate(coeffs pascal.Row) error {
	if len(coeffs) == 0 {
		return apperrors.NewValidationError("coefficients", "at least one coefficient is required", nil, ErrEmptyCoefficients)
	}
	return nil
}
