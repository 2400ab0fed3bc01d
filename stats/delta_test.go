package stats_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ergmee/digraph"
	"github.com/katalvlaran/ergmee/stats"
	"github.com/stretchr/testify/require"
)

const lambda = 2.0

func mustBind(t *testing.T, kinds []stats.Kind, g *digraph.Graph) []stats.Func {
	t.Helper()
	fns, names, err := stats.Bind(kinds, g, lambda)
	require.NoError(t, err)
	require.Len(t, names, len(kinds))
	return fns
}

// Scenario A: two-node graph, no arcs, statistic Arc is constant 1.
func TestDelta_ScenarioA_ArcConstant(t *testing.T) {
	g, err := digraph.NewGraph(2)
	require.NoError(t, err)
	fns := mustBind(t, []stats.Kind{stats.Arc}, g)
	require.Equal(t, float64(1), fns[0](g, 0, 1))
}

// Scenario B: three-node path 0->1->2, AltTwoPathsT at candidate (0,2)
// should equal 1 when both summand arms see zero mixed two-paths.
func TestDelta_ScenarioB_AltTwoPathsT(t *testing.T) {
	g, err := digraph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.InsertArc(0, 1))
	require.NoError(t, g.InsertArc(1, 2))

	fns := mustBind(t, []stats.Kind{stats.AltTwoPathsT}, g)
	require.InDelta(t, 1.0, fns[0](g, 0, 2), 1e-9)
}

// Scenario C: reciprocal pair {0<->1}; Reciprocity Δ is 1 whenever the
// reverse arc is present, 0 when it is absent for an unrelated pair.
func TestDelta_ScenarioC_Reciprocity(t *testing.T) {
	g, err := digraph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.InsertArc(0, 1))
	require.NoError(t, g.InsertArc(1, 0))

	fns := mustBind(t, []stats.Kind{stats.Reciprocity}, g)
	require.Equal(t, float64(1), fns[0](g, 1, 0))
	require.Equal(t, float64(0), fns[0](g, 1, 2))
}

// Scenario E: binary attribute all ones, Sender Δ is always 1.
func TestDelta_ScenarioE_SenderAllOnes(t *testing.T) {
	g, err := digraph.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.SetBinAttr([]int{1, 1, 1}))

	fns := mustBind(t, []stats.Kind{stats.Sender}, g)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			require.Equal(t, float64(1), fns[0](g, i, j))
		}
	}
}

// Scenario F: categorical attribute with two evenly-split categories,
// Matching depends only on cat[i]==cat[j], independent of graph state.
func TestDelta_ScenarioF_MatchingIgnoresGraphState(t *testing.T) {
	g, err := digraph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.SetCatAttr([]int{0, 0, 1, 1}))

	fns := mustBind(t, []stats.Kind{stats.Matching}, g)
	before := fns[0](g, 0, 2)
	require.NoError(t, g.InsertArc(1, 3))
	after := fns[0](g, 0, 2)
	require.Equal(t, before, after)
	require.Equal(t, float64(0), before)
	require.Equal(t, float64(1), fns[0](g, 0, 1))
}

// Boundary 7: on an empty graph, degree-based statistics are zero and
// AltKTrianglesT with Mix[i,j]=0 reduces to lambda*(1-1) = 0.
func TestDelta_EmptyGraphBoundaries(t *testing.T) {
	g, err := digraph.NewGraph(5)
	require.NoError(t, err)

	fns := mustBind(t, []stats.Kind{
		stats.AltInStars, stats.AltOutStars, stats.AltKTrianglesT,
	}, g)
	for _, fn := range fns {
		v := fn(g, 0, 1)
		require.False(t, math.IsNaN(v))
		require.False(t, math.IsInf(v, 0))
		require.Equal(t, float64(0), v)
	}
}

// Bind rejects attribute-dependent statistics when the table is absent.
func TestBind_RequiresAttributeTables(t *testing.T) {
	g, err := digraph.NewGraph(3)
	require.NoError(t, err)

	_, _, err = stats.Bind([]stats.Kind{stats.Sender}, g, lambda)
	require.ErrorIs(t, err, stats.ErrAttributeRequired)

	_, _, err = stats.Bind([]stats.Kind{stats.Matching}, g, lambda)
	require.ErrorIs(t, err, stats.ErrAttributeRequired)
}

// bruteForceAltInStars recomputes the alternating in-star statistic
// directly from degree, independent of the closure under test.
func bruteForceAltInStars(g *digraph.Graph, j int) float64 {
	return lambda * (1 - math.Pow(1-1/lambda, float64(g.InDegree(j))))
}

func TestDelta_AltInStars_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, err := digraph.RandomSparse(9, 0.3, rng)
	require.NoError(t, err)

	fns := mustBind(t, []stats.Kind{stats.AltInStars}, g)
	for j := 0; j < g.NumNodes(); j++ {
		for i := 0; i < g.NumNodes(); i++ {
			if i == j {
				continue
			}
			require.InDelta(t, bruteForceAltInStars(g, j), fns[0](g, i, j), 1e-9)
		}
	}
}

func TestKind_StringAndParseRoundTrip(t *testing.T) {
	for k := stats.Arc; k <= stats.MismatchingReciprocity; k++ {
		name := k.String()
		require.NotEqual(t, "Kind(?)", name)
		parsed, err := stats.ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
}
