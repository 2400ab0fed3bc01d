package digraph

import "errors"

// Sentinel errors for digraph operations. Callers should branch with
// errors.Is rather than string comparison.
var (
	// ErrInvalidSize indicates a non-positive node count was requested.
	ErrInvalidSize = errors.New("digraph: node count must be > 0")

	// ErrNodeOutOfRange indicates a node index outside [0, n).
	ErrNodeOutOfRange = errors.New("digraph: node index out of range")

	// ErrSelfLoop indicates an arc was requested from a node to itself.
	ErrSelfLoop = errors.New("digraph: self-loops are not permitted")

	// ErrArcExists indicates InsertArc was called for an arc already present.
	ErrArcExists = errors.New("digraph: arc already exists")

	// ErrArcNotFound indicates RemoveArc (or an operation requiring
	// presence) was called for an arc that is absent.
	ErrArcNotFound = errors.New("digraph: arc not found")

	// ErrAttributeLengthMismatch indicates an attribute vector's length
	// does not equal the node count.
	ErrAttributeLengthMismatch = errors.New("digraph: attribute length does not match node count")

	// ErrBadBinaryValue indicates a binary attribute token outside {0,1}.
	ErrBadBinaryValue = errors.New("digraph: binary attribute value must be 0 or 1")
)
