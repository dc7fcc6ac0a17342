package build

import "errors"

// Sentinel errors for graph construction. Callers branch with errors.Is.
var (
	// ErrUnknownEndpoint indicates an edge spec names a key with no node
	// spec.
	ErrUnknownEndpoint = errors.New("build: edge endpoint not in node set")

	// ErrDuplicateKey indicates two node specs share a key.
	ErrDuplicateKey = errors.New("build: duplicate node key")

	// ErrTooFewNodes indicates a generator size below the topology's
	// minimum.
	ErrTooFewNodes = errors.New("build: parameter too small")
)
