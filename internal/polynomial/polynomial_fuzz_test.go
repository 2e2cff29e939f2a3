package polynomial

import (
	"testing"

	"github.com/agbru/pascalcalc/internal/pascal"
)

// FuzzEvaluateConsistency verifies that term-by-term evaluation, Horner's
// rule and (x+1)^n agree for binomial rows.
func FuzzEvaluateConsistency(f *testing.F) {
	f.Add(5, int64(2))
	f.Add(0, int64(0))
	f.Add(1, int64(-1))
	f.Add(10, int64(-3))
	f.Add(64, int64(1000))
	f.Add(100, int64(7))

	f.Fuzz(func(t *testing.T, n int, x int64) {
		// Keep iterations quick
		if n < 0 || n > 200 {
			return
		}

		row := pascal.Generate(n)
		eval, err := Evaluate(row, x)
		if err != nil {
			t.Fatalf("Evaluate(n=%d, x=%d) failed: %v", n, x, err)
		}
		if !eval.Verified() {
			t.Errorf("f(%d) = %s, but (%d+1)^%d = %s", x, eval.Total, x, n, eval.Verification)
		}

		h, err := Horner(row, x)
		if err != nil {
			t.Fatalf("Horner(n=%d, x=%d) failed: %v", n, x, err)
		}
		if h.Cmp(eval.Total) != 0 {
			t.Errorf("Horner = %s, term-by-term = %s for n=%d x=%d", h, eval.Total, n, x)
		}
		if len(eval.Terms) != n+1 {
			t.Errorf("got %d terms, want %d", len(eval.Terms), n+1)
		}
	})
}
