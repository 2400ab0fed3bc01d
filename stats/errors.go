package stats

import "errors"

// ErrAttributeRequired indicates a requested Kind needs a binary or
// categorical attribute table that the graph does not carry.
var ErrAttributeRequired = errors.New("stats: statistic requires an attribute table that is not loaded")

// ErrUnknownKind indicates a Kind value outside the declared enum range.
var ErrUnknownKind = errors.New("stats: unknown statistic kind")
