package asset

import "github.com/c360studio/roxmodel/schema"

// Node is one element of an asset graph. Parent is empty for roots;
// Children holds direct children in insertion order. Properties maps
// property names to their values; absent entries and entries with an
// empty slice both mean the property is unset.
//
// Fields are exported for reading; the store codec owns the wire
// shape. Mutation goes through the graph's guarded operations only.
type Node struct {
	ID         NodeID
	Type       schema.ID
	Parent     NodeID
	Children   []NodeID
	Properties map[string][]Value
}

// Values returns the values set for one property, nil if unset.
func (n *Node) Values(name string) []Value {
	return n.Properties[name]
}

// First returns the first value of a property, false if unset.
func (n *Node) First(name string) (Value, bool) {
	vals := n.Properties[name]
	if len(vals) == 0 {
		return Value{}, false
	}
	return vals[0], true
}
