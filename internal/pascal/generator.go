package pascal

import (
	"math/big"
)

// Generator produces row n of Pascal's triangle.
type Generator interface {
	// Name returns the registry name of the generator.
	Name() string

	// Generate returns row n. For n < 0 it returns an empty, non-nil Row.
	Generate(n int) Row
}

// RecurrenceGenerator builds row n from row 0 = [1] by Pascal's rule,
// C(i,j) = C(i-1,j-1) + C(i-1,j), keeping only the previous row alive.
// It performs O(n²) big-integer additions and never recomputes a row.
type RecurrenceGenerator struct{}

// Name returns "recurrence".
func (RecurrenceGenerator) Name() string { return "recurrence" }

// Generate returns row n built with the Pascal recurrence.
func (RecurrenceGenerator) Generate(n int) Row {
	if n < 0 {
		return Row{}
	}

	prev := Row{big.NewInt(1)}
	for i := 1; i <= n; i++ {
		// Each row is a fresh slice of fresh integers; prev is only read.
		cur := make(Row, i+1)
		cur[0] = big.NewInt(1)
		for j := 1; j < i; j++ {
			cur[j] = new(big.Int).Add(prev[j-1], prev[j])
		}
		cur[i] = big.NewInt(1)
		prev = cur
	}
	return prev
}

// BinomialGenerator computes every entry independently with
// big.Int.Binomial. It is slower than the recurrence and exists as an
// oracle that shares no code path with it.
type BinomialGenerator struct{}

// Name returns "binomial".
func (BinomialGenerator) Name() string { return "binomial" }

// Generate returns row n computed entry by entry.
func (BinomialGenerator) Generate(n int) Row {
	if n < 0 {
		return Row{}
	}
	row := make(Row, n+1)
	for k := 0; k <= n; k++ {
		row[k] = Coefficient(n, k)
	}
	return row
}

// Generate returns row n using the default RecurrenceGenerator.
func Generate(n int) Row {
	return RecurrenceGenerator{}.Generate(n)
}

// Coefficient returns C(n,k). It is zero when k is outside 0..n or n < 0.
func Coefficient(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
