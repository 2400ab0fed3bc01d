package sampler

import "errors"

// ErrParamLengthMismatch indicates theta and the bound statistic list have
// different lengths.
var ErrParamLengthMismatch = errors.New("sampler: theta length does not match statistic count")

// ErrTooFewNodes indicates a graph with fewer than 2 nodes was given to a
// sampler that must draw two distinct proposal endpoints.
var ErrTooFewNodes = errors.New("sampler: graph must have at least 2 nodes")
