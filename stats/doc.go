// Package stats implements the change-statistic library: one Func per
// named Kind, each computing the contribution arc i->j would make to a
// structural or attribute-based statistic against a digraph.Graph's current
// state. Bind resolves a Kind list into concrete Funcs once, up front, so
// the sampler's inner loop never pays interface-dispatch cost.
package stats
