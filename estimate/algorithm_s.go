package estimate

import (
	"math/rand"

	"github.com/katalvlaran/ergmee/digraph"
	"github.com/katalvlaran/ergmee/sampler"
	"github.com/katalvlaran/ergmee/stats"
	"github.com/katalvlaran/ergmee/trace"
)

// runS executes the burn-in / derivative-calibration phase for m1 iterations,
// starting from theta=0, and returns the calibrated theta plus Dmean, used
// to seed Algorithm EE's D: SamplerM divided by the summed squared dzA of
// each statistic, or 0 where that sum is 0.
func runS(cfg Config, g *digraph.Graph, fns []stats.Func, m1 int, tw *trace.ThetaWriter, rng *rand.Rand) (theta, dMean []float64, err error) {
	k := len(fns)
	theta = make([]float64, k)
	d0 := make([]float64, k)

	for t := 0; t < m1; t++ {
		res, rerr := sampler.Run(g, fns, theta, cfg.SamplerM, false, rng)
		if rerr != nil {
			return nil, nil, rerr
		}

		for l := 0; l < k; l++ {
			dzA := res.DelDelta[l] - res.AddDelta[l]
			sumDelta := res.AddDelta[l] + res.DelDelta[l]

			d0[l] += dzA * dzA

			var da float64
			if sumDelta != 0 {
				da = cfg.ACA_S / (sumDelta * sumDelta)
			}

			step := sign(dzA) * da * dzA * dzA
			if step > cfg.MaxStepS {
				step = cfg.MaxStepS
			}
			theta[l] += step
		}

		if tw != nil {
			if werr := tw.WriteRow(t-m1, theta, res.AcceptanceRate); werr != nil {
				return nil, nil, werr
			}
		}
	}

	dMean = make([]float64, k)
	for l := range dMean {
		if d0[l] != 0 {
			dMean[l] = float64(cfg.SamplerM) / d0[l]
		}
	}
	return theta, dMean, nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
