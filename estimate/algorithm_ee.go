package estimate

import (
	"context"
	"math"
	"math/rand"

	"github.com/katalvlaran/ergmee/digraph"
	"github.com/katalvlaran/ergmee/sampler"
	"github.com/katalvlaran/ergmee/stats"
	"github.com/katalvlaran/ergmee/trace"
	"gonum.org/v1/gonum/stat"
)

// runEE executes the equilibrium expectation phase: mOuter outer iterations,
// each running m inner sampler calls with PerformMove=true, rescaling D
// after every outer iteration from the inner thetaHistory's column
// mean/stddev. dzA persists across the entire call, across outer iteration
// boundaries. D is rescaled in place in d, and left unchanged for a
// coordinate whose sigma/|mu| is 0. ctx is checked once per outer
// iteration; on cancellation, runEE returns the theta obtained so far
// alongside ctx.Err(), with d holding the D reached so far.
func runEE(ctx context.Context, cfg Config, g *digraph.Graph, fns []stats.Func, theta, d []float64, mOuter, m int, tw *trace.ThetaWriter, dw *trace.DzAWriter, rng *rand.Rand) ([]float64, error) {
	k := len(fns)
	dzA := make([]float64, k)
	tGlobal := 0

	for touter := 0; touter < mOuter; touter++ {
		select {
		case <-ctx.Done():
			return theta, ctx.Err()
		default:
		}

		thetaHistory := make([][]float64, m)

		for tinner := 0; tinner < m; tinner++ {
			res, err := sampler.Run(g, fns, theta, cfg.SamplerM, true, rng)
			if err != nil {
				return nil, err
			}

			for l := 0; l < k; l++ {
				dzA[l] += res.AddDelta[l] - res.DelDelta[l]
				da := d[l] * cfg.ACA_EE
				step := -sign(dzA[l]) * da * dzA[l] * dzA[l]
				theta[l] += step
			}

			if tw != nil {
				if werr := tw.WriteRow(tGlobal, theta, res.AcceptanceRate); werr != nil {
					return nil, werr
				}
			}
			if dw != nil {
				if werr := dw.WriteRow(tGlobal, dzA); werr != nil {
					return nil, werr
				}
			}

			row := make([]float64, k)
			copy(row, theta)
			thetaHistory[tinner] = row

			tGlobal++
		}

		for l := 0; l < k; l++ {
			col := make([]float64, m)
			for t := 0; t < m; t++ {
				col[t] = thetaHistory[t][l]
			}
			mu, sigma := stat.PopMeanStdDev(col, nil)
			if math.Abs(mu) < 1 {
				mu = 1
			}
			dd := sigma / math.Abs(mu)
			if dd != 0 {
				d[l] *= cfg.CompC / dd
			}
		}
	}

	return theta, nil
}
