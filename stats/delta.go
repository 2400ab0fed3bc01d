package stats

import (
	"math"

	"github.com/katalvlaran/ergmee/digraph"
)

// Func computes one change statistic Δ_ℓ(G, i, j): the contribution arc i->j
// would make to the statistic ℓ if present, evaluated against the graph's
// *current* state (the sampler evaluates Δ with the candidate arc removed
// when toggling a deletion, so every Func here only ever reads state, never
// the candidate arc itself).
type Func func(g *digraph.Graph, i, j int) float64

func deltaArc(_ *digraph.Graph, _, _ int) float64 {
	return 1
}

func deltaReciprocity(g *digraph.Graph, i, j int) float64 {
	if g.HasArc(j, i) {
		return 1
	}
	return 0
}

func altStarTerm(lambda float64, degree int) float64 {
	return lambda * (1 - math.Pow(1-1/lambda, float64(degree)))
}

func newAltInStars(lambda float64) Func {
	return func(g *digraph.Graph, i, j int) float64 {
		return altStarTerm(lambda, g.InDegree(j))
	}
}

func newAltOutStars(lambda float64) Func {
	return func(g *digraph.Graph, i, j int) float64 {
		return altStarTerm(lambda, g.OutDegree(i))
	}
}

func newAltKTrianglesT(lambda float64) Func {
	decay := 1 - 1/lambda
	return func(g *digraph.Graph, i, j int) float64 {
		var sum float64
		for _, v := range g.OutNeighbors(i) {
			if v == i || v == j {
				continue
			}
			if g.HasArc(j, v) {
				sum += math.Pow(decay, float64(g.MixTwoPath(i, v)))
			}
		}
		for _, v := range g.InNeighbors(i) {
			if v == i || v == j {
				continue
			}
			if g.HasArc(v, j) {
				sum += math.Pow(decay, float64(g.MixTwoPath(v, j)))
			}
		}
		sum += lambda * (1 - math.Pow(decay, float64(g.MixTwoPath(i, j))))
		return sum
	}
}

func newAltKTrianglesC(lambda float64) Func {
	decay := 1 - 1/lambda
	return func(g *digraph.Graph, i, j int) float64 {
		var sum float64
		for _, v := range g.InNeighbors(i) {
			if v == i || v == j {
				continue
			}
			if g.HasArc(j, v) {
				sum += math.Pow(decay, float64(g.MixTwoPath(i, v)))
				sum += math.Pow(decay, float64(g.MixTwoPath(v, j)))
			}
		}
		sum += lambda * (1 - math.Pow(decay, float64(g.MixTwoPath(j, i))))
		return sum
	}
}

func newAltTwoPathsT(lambda float64) Func {
	decay := 1 - 1/lambda
	return func(g *digraph.Graph, i, j int) float64 {
		var sum float64
		for _, v := range g.OutNeighbors(j) {
			if v == i || v == j {
				continue
			}
			sum += math.Pow(decay, float64(g.MixTwoPath(i, v)))
		}
		for _, v := range g.InNeighbors(i) {
			if v == i || v == j {
				continue
			}
			sum += math.Pow(decay, float64(g.MixTwoPath(v, j)))
		}
		return sum
	}
}

func newAltTwoPathsD(lambda float64) Func {
	decay := 1 - 1/lambda
	return func(g *digraph.Graph, i, j int) float64 {
		var sum float64
		for _, v := range g.OutNeighbors(i) {
			if v == i || v == j {
				continue
			}
			sum += math.Pow(decay, float64(g.OutTwoPath(j, v)))
		}
		return sum
	}
}

func newAltTwoPathsTD(lambda float64) Func {
	t := newAltTwoPathsT(lambda)
	d := newAltTwoPathsD(lambda)
	return func(g *digraph.Graph, i, j int) float64 {
		return 0.5 * (t(g, i, j) + d(g, i, j))
	}
}

func deltaSender(g *digraph.Graph, i, _ int) float64 {
	return float64(g.BinAttr[i])
}

func deltaReceiver(g *digraph.Graph, _, j int) float64 {
	return float64(g.BinAttr[j])
}

func deltaInteraction(g *digraph.Graph, i, j int) float64 {
	return float64(g.BinAttr[i] * g.BinAttr[j])
}

func deltaMatching(g *digraph.Graph, i, j int) float64 {
	if g.CatAttr[i] == g.CatAttr[j] {
		return 1
	}
	return 0
}

func deltaMatchingReciprocity(g *digraph.Graph, i, j int) float64 {
	if g.CatAttr[i] == g.CatAttr[j] && g.HasArc(j, i) {
		return 1
	}
	return 0
}

func deltaMismatching(g *digraph.Graph, i, j int) float64 {
	if g.CatAttr[i] != g.CatAttr[j] {
		return 1
	}
	return 0
}

func deltaMismatchingReciprocity(g *digraph.Graph, i, j int) float64 {
	if g.CatAttr[i] != g.CatAttr[j] && g.HasArc(j, i) {
		return 1
	}
	return 0
}
