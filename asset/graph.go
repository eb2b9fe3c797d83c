package asset

import (
	"fmt"
	"iter"
	"slices"

	"github.com/c360studio/roxmodel/schema"
)

// Graph is a single-writer arena of nodes checked against one
// registry. The zero value is unusable; construct with NewGraph or
// RestoreGraph.
type Graph struct {
	reg   *schema.Registry
	nodes map[NodeID]*Node
	order []NodeID
	roots []NodeID
}

// NewGraph creates an empty graph bound to the given registry.
func NewGraph(reg *schema.Registry) *Graph {
	return &Graph{
		reg:   reg,
		nodes: make(map[NodeID]*Node),
	}
}

// RestoreGraph rebuilds a graph from decoded node records, in record
// order. Child lists are derived from the records' parent fields, so
// any Children on the input are ignored. Structural defects the graph
// cannot represent (duplicate IDs, a parent no record declares) fail
// here; semantic defects (unknown types, dangling references, cycles)
// restore fine and are reported by validation.
func RestoreGraph(reg *schema.Registry, nodes []*Node) (*Graph, error) {
	g := NewGraph(reg)
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("restore graph: node with empty id")
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("restore graph: duplicate node id %s", n.ID)
		}
		g.nodes[n.ID] = &Node{
			ID:         n.ID,
			Type:       n.Type,
			Parent:     n.Parent,
			Properties: cloneProperties(n.Properties),
		}
		g.order = append(g.order, n.ID)
	}
	for _, id := range g.order {
		n := g.nodes[id]
		if n.Parent == "" {
			g.roots = append(g.roots, id)
			continue
		}
		p, ok := g.nodes[n.Parent]
		if !ok {
			return nil, fmt.Errorf("restore graph: node %s: parent: %w: %s", id, ErrNodeNotFound, n.Parent)
		}
		p.Children = append(p.Children, id)
	}
	return g, nil
}

// Registry returns the registry this graph is checked against.
func (g *Graph) Registry() *schema.Registry {
	return g.reg
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.order)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Roots returns the parentless nodes in insertion order.
func (g *Graph) Roots() []*Node {
	out := make([]*Node, 0, len(g.roots))
	for _, id := range g.roots {
		out = append(out, g.nodes[id])
	}
	return out
}

// ListChildren returns the direct children of a node in insertion
// order as a lazy, restartable sequence. A missing node yields an
// empty sequence. Mutating the graph mid-iteration is undefined.
func (g *Graph) ListChildren(id NodeID) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n, ok := g.nodes[id]
		if !ok {
			return
		}
		for _, cid := range n.Children {
			if !yield(g.nodes[cid]) {
				return
			}
		}
	}
}

func cloneProperties(props map[string][]Value) map[string][]Value {
	out := make(map[string][]Value, len(props))
	for name, vals := range props {
		if len(vals) == 0 {
			continue
		}
		out[name] = slices.Clone(vals)
	}
	return out
}
