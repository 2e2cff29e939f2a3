// Package pascal builds rows of Pascal's triangle with arbitrary-precision
// integers. Row n holds the binomial coefficients C(n,0)..C(n,n), which are
// also the coefficients of the expansion of (x+1)^n.
package pascal

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/zeebo/blake3"
)

// Row is one row of Pascal's triangle, indexed 0..n.
//
// A Row returned by a Generator owns its integers: no *big.Int is shared with
// another row, so callers may keep or modify it freely.
type Row []*big.Int

// Degree returns n for row n, or -1 for the empty row.
func (r Row) Degree() int {
	return len(r) - 1
}

// Central returns the central coefficient C(n, n/2), or nil for the empty row.
// For odd n this is the left one of the two equal middle entries.
func (r Row) Central() *big.Int {
	if len(r) == 0 {
		return nil
	}
	return r[r.Degree()/2]
}

// Equal reports whether both rows hold the same values in the same order.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i].Cmp(other[i]) != 0 {
			return false
		}
	}
	return true
}

// Strings returns the decimal text of each coefficient.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.String()
	}
	return out
}

// String renders the row in Go slice notation, e.g. "[1 5 10 10 5 1]".
func (r Row) String() string {
	return "[" + strings.Join(r.Strings(), " ") + "]"
}

// Digest returns the hex BLAKE3-256 digest of the coefficients' decimal text
// joined by commas. Two rows have the same digest exactly when they are Equal,
// which makes it a compact fingerprint for rows with hundreds of digits.
func (r Row) Digest() string {
	hasher := blake3.New()
	for i, c := range r {
		if i > 0 {
			hasher.Write([]byte{','})
		}
		hasher.Write([]byte(c.String()))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// ParseRow builds a Row from decimal strings. It reports false if any entry
// is not a base-10 integer.
func ParseRow(values []string) (Row, bool) {
	row := make(Row, len(values))
	for i, s := range values {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, false
		}
		row[i] = v
	}
	return row, true
}
