// File: random.go
// Role: RandomSparse(n, p, rng) constructor for synthetic test/example
// networks.
//
// Adapted from lvlath/builder's RandomSparse constructor: an Erdős–Rényi-like
// generator that includes each admissible ordered pair independently with
// probability p. Generalized from the builder package's Constructor/
// core.Graph plumbing (vertex IDs, weight functions, option structs) down to
// this module's fixed int arena, since digraph.Graph has no vertex catalog
// to populate and no edge weights to assign.
package digraph

import (
	"errors"
	"math/rand"
)

// ErrInvalidProbability indicates p is outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("digraph: probability out of range")

// RandomSparse builds a directed Erdős–Rényi-like graph on n nodes: every
// ordered pair (i,j), i != j, is included independently with probability p.
//
// Determinism: for a fixed rng stream, trial order is i ascending, then j
// ascending (skipping i==j), giving a stable, reproducible trial order.
//
// Complexity: O(n^2) Bernoulli trials + two-path maintenance cost of the
// resulting InsertArc calls.
func RandomSparse(n int, p float64, rng *rand.Rand) (*Graph, error) {
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < p {
				// InsertArc cannot fail here: i != j, and arcs are only
				// ever inserted once per (i,j) by this loop.
				if err = g.InsertArc(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
