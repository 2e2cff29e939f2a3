package pascal

import (
	"fmt"
	"sort"
)

// DefaultAlgorithm is the generator used when none is selected.
const DefaultAlgorithm = "recurrence"

var generators = map[string]Generator{
	RecurrenceGenerator{}.Name(): RecurrenceGenerator{},
	BinomialGenerator{}.Name():   BinomialGenerator{},
}

// Lookup returns the generator registered under name.
//
// Parameters:
//   - name: The registry name ("recurrence" or "binomial").
//
// Returns:
//   - Generator: The registered generator.
//   - error: An error if no generator has that name.
func Lookup(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return g, nil
}

// Names returns the registered generator names, sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
