package digraph

// Graph is a directed graph on nodes 0..n-1 with two-path accounting.
//
// out[i] and in[j] are kept exactly synchronized: an arc i->j exists iff
// j is in out[i] iff i is in in[j]. Self-loops and parallel arcs are never
// permitted. twoPath mirrors the adjacency under every InsertArc/RemoveArc.
//
// BinAttr and CatAttr are optional per-node attribute vectors, nil when
// not loaded; statistics that require one must not be bound unless it is
// present (see package stats).
type Graph struct {
	n       int
	numArcs int
	out     []map[int]struct{}
	in      []map[int]struct{}
	twoPath *twoPathMatrices

	BinAttr []int
	CatAttr []int
}

// NewGraph allocates an empty Graph on n nodes (no arcs, no attributes).
// Complexity: O(n) for the adjacency slices, O(n^2) for the two-path
// matrices (the dominant allocation).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	g := &Graph{
		n:       n,
		out:     make([]map[int]struct{}, n),
		in:      make([]map[int]struct{}, n),
		twoPath: newTwoPathMatrices(n),
	}
	for i := 0; i < n; i++ {
		g.out[i] = make(map[int]struct{})
		g.in[i] = make(map[int]struct{})
	}
	return g, nil
}

// NumNodes returns the fixed node count.
// Complexity: O(1).
func (g *Graph) NumNodes() int {
	return g.n
}

// NumArcs returns the current arc count.
// Complexity: O(1).
func (g *Graph) NumArcs() int {
	return g.numArcs
}

// Density returns |arcs| / (n*(n-1)).
// Complexity: O(1).
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}
	return float64(g.numArcs) / float64(g.n*(g.n-1))
}

// checkNode panics with ErrNodeOutOfRange-carrying message if i is outside
// [0, n). Node bounds are an implementation precondition (the sampler only
// ever draws indices in range), not a user-facing error path.
func (g *Graph) checkNode(i int) {
	if i < 0 || i >= g.n {
		panic(ErrNodeOutOfRange)
	}
}
