package sampler

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ergmee/digraph"
	"github.com/katalvlaran/ergmee/invariant"
	"github.com/katalvlaran/ergmee/stats"
)

// Run executes m Metropolis-Hastings proposals against g, using the bound
// statistic functions fns and current parameter vector theta.
//
// When performMove is false, every accepted move is undone before Run
// returns: g's adjacency and two-path matrices are left bit-identical to
// their state on entry. When true, accepted moves are kept.
//
// Complexity: O(m * cost(fns)) — each Func in fns is itself O(n) in the
// worst case (the triangle/two-path statistics scan a neighbor list), so the
// dominant cost is m * k * n for k bound statistics.
func Run(g *digraph.Graph, fns []stats.Func, theta []float64, m int, performMove bool, rng *rand.Rand) (Result, error) {
	if len(theta) != len(fns) {
		return Result{}, ErrParamLengthMismatch
	}
	n := g.NumNodes()
	if n < 2 {
		return Result{}, ErrTooFewNodes
	}

	k := len(fns)
	addDelta := make([]float64, k)
	delDelta := make([]float64, k)
	delta := make([]float64, k)
	accepted := 0

	for step := 0; step < m; step++ {
		i, j := drawDistinctPair(n, rng)
		isDelete := g.HasArc(i, j)

		if isDelete {
			// Delta is always evaluated with the candidate arc absent.
			if err := g.RemoveArc(i, j); err != nil {
				return Result{}, err
			}
		}

		sign := 1.0
		if isDelete {
			sign = -1
		}

		var total float64
		for l, fn := range fns {
			delta[l] = fn(g, i, j)
			invariant.Check(delta[l] >= 0, "sampler: change statistic evaluated negative")
			total += theta[l] * sign * delta[l]
		}

		u := rng.Float64()
		if u < math.Exp(total) {
			accepted++
			if isDelete {
				for l := range delta {
					delDelta[l] += delta[l]
				}
				if !performMove {
					if err := g.InsertArc(i, j); err != nil {
						return Result{}, err
					}
				}
			} else {
				for l := range delta {
					addDelta[l] += delta[l]
				}
				if performMove {
					if err := g.InsertArc(i, j); err != nil {
						return Result{}, err
					}
				}
			}
			continue
		}

		if isDelete {
			if err := g.InsertArc(i, j); err != nil {
				return Result{}, err
			}
		}
	}

	return Result{
		AcceptanceRate: float64(accepted) / float64(m),
		AddDelta:       addDelta,
		DelDelta:       delDelta,
	}, nil
}
