// Package ioformats loads the Pajek-like network file and the plain
// attribute file formats consumed by the estimation driver.
package ioformats

import "errors"

// ErrMalformedHeader indicates the network file's *vertices line is
// missing, unparseable, or not the first non-empty line, or that an arc
// line does not consist of exactly two fields.
var ErrMalformedHeader = errors.New("ioformats: malformed network header")

// ErrNodeIndexOutOfRange indicates an arc line references a 1-based node
// index outside [1, n] or with i == j.
var ErrNodeIndexOutOfRange = errors.New("ioformats: node index out of range")

// ErrAttributeCountMismatch indicates an attribute file has more or fewer
// value tokens than the graph's node count.
var ErrAttributeCountMismatch = errors.New("ioformats: attribute token count does not match node count")

// ErrNonIntegerToken indicates a value token could not be parsed as an
// integer, or (in an attribute file) parsed as a negative integer.
var ErrNonIntegerToken = errors.New("ioformats: non-integer token")

// ErrBadBinaryToken indicates a binary attribute token outside {0,1}.
var ErrBadBinaryToken = errors.New("ioformats: binary attribute token must be 0 or 1")
