package asset

import "github.com/google/uuid"

// NodeID uniquely identifies a node within a graph. IDs are opaque;
// insertion order, not ID order, determines iteration order.
type NodeID string

// NewNodeID generates a unique node ID.
func NewNodeID() NodeID {
	return NodeID(uuid.New().String())
}
