package estimate

import (
	"context"

	"github.com/katalvlaran/ergmee/digraph"
	"github.com/katalvlaran/ergmee/sampler"
	"github.com/katalvlaran/ergmee/stats"
	"github.com/katalvlaran/ergmee/trace"
)

// Outcome is the result of a completed or cancelled estimation run.
type Outcome struct {
	Theta []float64
	D     []float64
	M1    int
	M     int
}

// Run drives Algorithm S (burn-in) followed by Algorithm EE (equilibrium
// expectation) against g, writing trace rows to thetaWriter and dzaWriter.
// Either writer may be nil to suppress that output.
//
// ctx is checked once per Algorithm EE outer iteration, never inside the
// sampler's M-proposal inner loop. On cancellation, Run returns the best
// theta/D obtained so far alongside ctx.Err().
func Run(ctx context.Context, cfg Config, g *digraph.Graph, fns []stats.Func, thetaWriter *trace.ThetaWriter, dzaWriter *trace.DzAWriter) (Outcome, error) {
	rng := sampler.RNGFromSeed(cfg.Seed)

	density := g.Density()
	n := g.NumNodes()
	m1 := computeM1(cfg, density, n)
	m := computeM(cfg, density, n)

	theta, dMean, err := runS(cfg, g, fns, m1, thetaWriter, rng)
	if err != nil {
		return Outcome{}, err
	}

	theta, err = runEE(ctx, cfg, g, fns, theta, dMean, cfg.MOuter, m, thetaWriter, dzaWriter, rng)
	if err != nil {
		return Outcome{Theta: theta, D: dMean, M1: m1, M: m}, err
	}

	return Outcome{Theta: theta, D: dMean, M1: m1, M: m}, nil
}
