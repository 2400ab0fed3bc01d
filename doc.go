// Package ergmee fits exponential random graph model parameters to a
// directed network via the equilibrium expectation algorithm.
//
// The module is organized under:
//
//	digraph/   — directed graph store with incremental two-path accounting
//	stats/     — change-statistic library (Arc, Reciprocity, alternating stars, ...)
//	sampler/   — Metropolis-Hastings basic sampler
//	estimate/  — burn-in calibration (Algorithm S) and equilibrium expectation (Algorithm EE)
//	ioformats/ — Pajek-like network and attribute file loaders
//	trace/     — theta/dzA trace file writers
//	invariant/ — panic-based assertion helper for programming-fault checks
//	cmd/ergmee — CLI driver
//
//	go get github.com/katalvlaran/ergmee
package ergmee
