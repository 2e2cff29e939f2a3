package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

// GoldenData represents a single test case in the golden file
type GoldenData struct {
	N            int      `json:"n"`
	Coefficients []string `json:"coefficients"`
	Digest       string   `json:"digest"`
}

func main() {
	outputDir := flag.String("out", "internal/pascal/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "pascal_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	// Small rows, the rows around 2^6 where coefficients outgrow 64 bits,
	// and the timed row.
	targets := []int{0, 1, 2, 3, 5, 10, 20, 34, 50, 64, 67, 100}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, n := range targets {
		row := binomialRow(n)
		data = append(data, GoldenData{
			N:            n,
			Coefficients: row,
			Digest:       rowDigest(row),
		})
		fmt.Printf("Generated row %d\n", n)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// binomialRow computes row n with big.Int.Binomial, entry by entry, without
// going through internal/pascal.
func binomialRow(n int) []string {
	row := make([]string, n+1)
	for k := 0; k <= n; k++ {
		row[k] = new(big.Int).Binomial(int64(n), int64(k)).String()
	}
	return row
}

// rowDigest is the hex BLAKE3-256 of the decimal coefficients joined by ','.
func rowDigest(row []string) string {
	sum := blake3.Sum256([]byte(strings.Join(row, ",")))
	return hex.EncodeToString(sum[:])
}
