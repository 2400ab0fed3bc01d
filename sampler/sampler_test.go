package sampler_test

import (
	"testing"

	"github.com/katalvlaran/ergmee/digraph"
	"github.com/katalvlaran/ergmee/sampler"
	"github.com/katalvlaran/ergmee/stats"
	"github.com/stretchr/testify/require"
)

// Scenario A: two-node graph, no arcs, statistic Arc, theta=0, M=1.
// exp(0)=1 so the single proposal is always accepted; with no arcs present
// it is an add, so the arc count ends up within {0,1} (in fact 1, in
// whichever direction was drawn).
func TestRun_ScenarioA_ZeroThetaAlwaysAccepts(t *testing.T) {
	g, err := digraph.NewGraph(2)
	require.NoError(t, err)
	fns, _, err := stats.Bind([]stats.Kind{stats.Arc}, g, 2.0)
	require.NoError(t, err)

	rng := sampler.RNGFromSeed(1)
	res, err := sampler.Run(g, fns, []float64{0}, 1, true, rng)
	require.NoError(t, err)
	require.Equal(t, float64(1), res.AcceptanceRate)
	require.Contains(t, []int{0, 1}, g.NumArcs())
}

// Property 3: PerformMove=false must leave the graph's observable state
// bit-identical, including two-path matrices, across many proposals.
func TestRun_PerformMoveFalseLeavesStatePristine(t *testing.T) {
	rng := sampler.RNGFromSeed(99)
	g, err := digraph.RandomSparse(10, 0.25, rng)
	require.NoError(t, err)

	fns, _, err := stats.Bind([]stats.Kind{stats.Arc, stats.Reciprocity, stats.AltInStars}, g, 2.0)
	require.NoError(t, err)

	before := snapshot(g)

	_, err = sampler.Run(g, fns, []float64{0.1, 0.2, -0.1}, 200, false, rng)
	require.NoError(t, err)

	require.Equal(t, before, snapshot(g))
}

// Rejects mismatched theta/statistic lengths and under-sized graphs.
func TestRun_RejectsInvalidInputs(t *testing.T) {
	g, err := digraph.NewGraph(2)
	require.NoError(t, err)
	fns, _, err := stats.Bind([]stats.Kind{stats.Arc}, g, 2.0)
	require.NoError(t, err)

	rng := sampler.RNGFromSeed(1)
	_, err = sampler.Run(g, fns, []float64{0, 0}, 1, true, rng)
	require.ErrorIs(t, err, sampler.ErrParamLengthMismatch)

	g1, err := digraph.NewGraph(1)
	require.NoError(t, err)
	_, err = sampler.Run(g1, nil, nil, 1, true, rng)
	require.ErrorIs(t, err, sampler.ErrTooFewNodes)
}

type stateSnapshot struct {
	arcs  [][2]int
	outTP []int64
	inTP  []int64
	mixTP []int64
}

func snapshot(g *digraph.Graph) stateSnapshot {
	n := g.NumNodes()
	var arcs [][2]int
	var outTP, inTP, mixTP []int64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if g.HasArc(i, j) {
				arcs = append(arcs, [2]int{i, j})
			}
			outTP = append(outTP, g.OutTwoPath(i, j))
			inTP = append(inTP, g.InTwoPath(i, j))
			mixTP = append(mixTP, g.MixTwoPath(i, j))
		}
	}
	return stateSnapshot{arcs: arcs, outTP: outTP, inTP: inTP, mixTP: mixTP}
}
