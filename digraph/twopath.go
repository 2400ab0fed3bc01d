package digraph

// twoPathMatrices holds the three n×n signed two-path counters, each a
// flat row-major []int64 backing slice (adapted from lvlath/matrix.Dense's
// layout, generalized from float64 to int64 for exact counting). Diagonals
// are always zero and are never written.
type twoPathMatrices struct {
	n   int
	out []int64 // OutTwoPath: shared in-neighbor (common sender) counts
	in  []int64 // InTwoPath: shared out-neighbor (common receiver) counts
	mix []int64 // MixTwoPath: directed two-path counts, asymmetric
}

func newTwoPathMatrices(n int) *twoPathMatrices {
	return &twoPathMatrices{
		n:   n,
		out: make([]int64, n*n),
		in:  make([]int64, n*n),
		mix: make([]int64, n*n),
	}
}

func (m *twoPathMatrices) idx(u, v int) int {
	return u*m.n + v
}

// OutTwoPath returns OutTwoPath[u,v]: the count of w with arcs w->u, w->v.
// Complexity: O(1).
func (g *Graph) OutTwoPath(u, v int) int64 {
	g.checkNode(u)
	g.checkNode(v)
	return g.twoPath.out[g.twoPath.idx(u, v)]
}

// InTwoPath returns InTwoPath[u,v]: the count of w with arcs u->w, v->w.
// Complexity: O(1).
func (g *Graph) InTwoPath(u, v int) int64 {
	g.checkNode(u)
	g.checkNode(v)
	return g.twoPath.in[g.twoPath.idx(u, v)]
}

// MixTwoPath returns MixTwoPath[u,v]: the count of w with arcs u->w, w->v.
// MixTwoPath is not symmetric.
// Complexity: O(1).
func (g *Graph) MixTwoPath(u, v int) int64 {
	g.checkNode(u)
	g.checkNode(v)
	return g.twoPath.mix[g.twoPath.idx(u, v)]
}

// updateTwoPath applies the critical invariant update on toggle of arc i->j
// with sign s (+1 for insert, -1 for remove). Must be called after the
// adjacency mutation for the toggled arc (insert: after adding to out/in;
// remove: after deleting from out/in), so that HasArc below reflects the
// post-toggle state for every v outside {i,j}.
//
// The four branches below incrementally maintain all three matrices in a
// single O(n) sweep rather than recomputing each from scratch.
func (g *Graph) updateTwoPath(i, j int, s int64) {
	tp := g.twoPath
	for v := 0; v < g.n; v++ {
		if v == i || v == j {
			continue
		}
		if g.HasArc(i, v) {
			tp.out[tp.idx(v, j)] += s
			tp.out[tp.idx(j, v)] += s
		}
		if g.HasArc(v, j) {
			tp.in[tp.idx(v, i)] += s
			tp.in[tp.idx(i, v)] += s
		}
		if g.HasArc(v, i) {
			tp.mix[tp.idx(v, j)] += s
		}
		if g.HasArc(j, v) {
			tp.mix[tp.idx(i, v)] += s
		}
	}
}
