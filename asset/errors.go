package asset

import "errors"

// Sentinel errors returned by graph operations.
var (
	// ErrNodeNotFound indicates an operation addressed a node ID absent
	// from the graph.
	ErrNodeNotFound = errors.New("node not found")

	// ErrUnknownType indicates a type ID the registry does not define.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownProperty indicates a property the node's type does not
	// declare.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrInvalidContainment indicates a placement the registry's
	// parent/child rules forbid.
	ErrInvalidContainment = errors.New("invalid containment")

	// ErrTypeMismatch indicates a value whose kind or count does not
	// match the property declaration.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDanglingReference indicates a reference value naming a node
	// absent from the graph.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrReferencedNode indicates a delete without cascade on a node
	// that still has children or inbound references.
	ErrReferencedNode = errors.New("node is referenced")
)
