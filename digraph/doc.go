// Package digraph is the mutable directed-graph store for ERGM estimation.
//
// Nodes are dense integers 0..n-1, fixed at construction — there is no
// AddVertex/RemoveVertex; the arena size is decided once when the graph is
// loaded. Graph keeps out- and in-adjacency in lockstep, plus three n×n
// signed two-path count matrices (OutTwoPath, InTwoPath, MixTwoPath) that
// the change-statistics library in package stats reads directly.
//
// Graph is single-threaded cooperative: unlike lvlath/core.Graph, it holds
// no locks. One estimation run owns a Graph exclusively from load to
// return, and the sampler's hot loop is run sequentially, so mutex
// acquisition on every InsertArc/RemoveArc would be pure overhead.
package digraph
