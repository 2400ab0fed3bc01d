// File: arcs.go
// Role: Arc lifecycle & queries: InsertArc/RemoveArc/HasArc/degrees/neighbors.
// Determinism: OutNeighbors/InNeighbors return indices sorted ascending.
//
// Adapted from lvlath/core's methods_edges.go / methods_adjacent.go split,
// generalized from string-keyed multi/mixed/loop-capable edges to a plain
// simple digraph on an int arena: no multi-edges, no loops, no per-edge
// directedness.
package digraph

import "sort"

// InsertArc adds the arc i->j and updates the two-path matrices.
//
// Preconditions: i != j (else ErrSelfLoop); arc absent (else ErrArcExists).
// Complexity: O(n) for the two-path update (dominates the O(1) adjacency
// insert).
func (g *Graph) InsertArc(i, j int) error {
	g.checkNode(i)
	g.checkNode(j)
	if i == j {
		return ErrSelfLoop
	}
	if g.HasArc(i, j) {
		return ErrArcExists
	}

	g.out[i][j] = struct{}{}
	g.in[j][i] = struct{}{}
	g.numArcs++

	g.updateTwoPath(i, j, +1)
	return nil
}

// RemoveArc deletes the arc i->j and updates the two-path matrices.
//
// Precondition: arc present (else ErrArcNotFound).
// Complexity: O(n), dominated by the two-path update.
func (g *Graph) RemoveArc(i, j int) error {
	g.checkNode(i)
	g.checkNode(j)
	if !g.HasArc(i, j) {
		return ErrArcNotFound
	}

	delete(g.out[i], j)
	delete(g.in[j], i)
	g.numArcs--

	g.updateTwoPath(i, j, -1)
	return nil
}

// HasArc reports whether i->j currently exists.
// Complexity: O(1).
func (g *Graph) HasArc(i, j int) bool {
	g.checkNode(i)
	g.checkNode(j)
	_, ok := g.out[i][j]
	return ok
}

// OutDegree returns |Out[i]|.
// Complexity: O(1).
func (g *Graph) OutDegree(i int) int {
	g.checkNode(i)
	return len(g.out[i])
}

// InDegree returns |In[j]|.
// Complexity: O(1).
func (g *Graph) InDegree(j int) int {
	g.checkNode(j)
	return len(g.in[j])
}

// OutNeighbors returns the out-neighbors of i, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) OutNeighbors(i int) []int {
	g.checkNode(i)
	out := make([]int, 0, len(g.out[i]))
	for v := range g.out[i] {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// InNeighbors returns the in-neighbors of j, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) InNeighbors(j int) []int {
	g.checkNode(j)
	out := make([]int, 0, len(g.in[j]))
	for v := range g.in[j] {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
