package asset

import (
	"fmt"
	"slices"

	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/vocabulary"
)

// CreateNode adds a node of the given type under the given parent, or
// as a root when parent is empty. All checks run before any write.
func (g *Graph) CreateNode(typeID schema.ID, parent NodeID) (*Node, error) {
	def, ok := g.reg.Get(typeID)
	if !ok {
		return nil, fmt.Errorf("create node: %w: %s", ErrUnknownType, typeID)
	}
	if parent == "" {
		if !def.RootCapable() {
			return nil, fmt.Errorf("create node: %w: %s cannot be a root", ErrInvalidContainment, typeID)
		}
	} else {
		p, ok := g.nodes[parent]
		if !ok {
			return nil, fmt.Errorf("create node: parent: %w: %s", ErrNodeNotFound, parent)
		}
		if _, ok := g.reg.Get(p.Type); !ok {
			return nil, fmt.Errorf("create node: parent: %w: %s", ErrUnknownType, p.Type)
		}
		if !g.reg.AllowedChild(p.Type, typeID) {
			return nil, fmt.Errorf("create node: %w: %s does not allow %s", ErrInvalidContainment, p.Type, typeID)
		}
	}

	n := &Node{
		ID:         NewNodeID(),
		Type:       typeID,
		Parent:     parent,
		Properties: make(map[string][]Value),
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	if parent == "" {
		g.roots = append(g.roots, n.ID)
	} else {
		g.nodes[parent].Children = append(g.nodes[parent].Children, n.ID)
	}
	return n, nil
}

// MoveNode reparents a node, with the same containment checks as
// CreateNode. An empty newParent detaches the node to a root. Placing
// a node under itself or any of its own descendants is invalid, so
// moves can never introduce a cycle.
func (g *Graph) MoveNode(id, newParent NodeID) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("move node: %w: %s", ErrNodeNotFound, id)
	}
	def, ok := g.reg.Get(n.Type)
	if !ok {
		return fmt.Errorf("move node: %w: %s", ErrUnknownType, n.Type)
	}
	if newParent == "" {
		if !def.RootCapable() {
			return fmt.Errorf("move node: %w: %s cannot be a root", ErrInvalidContainment, n.Type)
		}
	} else {
		p, ok := g.nodes[newParent]
		if !ok {
			return fmt.Errorf("move node: parent: %w: %s", ErrNodeNotFound, newParent)
		}
		if id == newParent || g.inSubtree(newParent, id) {
			return fmt.Errorf("move node: %w: cannot place %s under its own subtree", ErrInvalidContainment, id)
		}
		if _, ok := g.reg.Get(p.Type); !ok {
			return fmt.Errorf("move node: parent: %w: %s", ErrUnknownType, p.Type)
		}
		if !g.reg.AllowedChild(p.Type, n.Type) {
			return fmt.Errorf("move node: %w: %s does not allow %s", ErrInvalidContainment, p.Type, n.Type)
		}
	}

	if n.Parent == newParent {
		return nil
	}
	g.detach(n)
	n.Parent = newParent
	if newParent == "" {
		g.roots = append(g.roots, id)
	} else {
		g.nodes[newParent].Children = append(g.nodes[newParent].Children, id)
	}
	return nil
}

// SetProperty replaces the values of one property. Zero values clears
// it. All checks run before any write: the property must be declared
// by the node's type, value kinds and count must match the
// declaration, and reference values must name live nodes.
func (g *Graph) SetProperty(id NodeID, name string, values ...Value) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("set property %q: %w: %s", name, ErrNodeNotFound, id)
	}
	def, ok := g.reg.Get(n.Type)
	if !ok {
		return fmt.Errorf("set property %q: %w: %s", name, ErrUnknownType, n.Type)
	}
	prop := def.Property(name)
	if prop == nil {
		return fmt.Errorf("set property %q: %w: %s does not declare it", name, ErrUnknownProperty, n.Type)
	}
	if prop.Cardinality == schema.CardinalitySingle && len(values) > 1 {
		return fmt.Errorf("set property %q: %w: single cardinality, got %d values",
			name, ErrTypeMismatch, len(values))
	}
	for _, v := range values {
		if v.Kind != prop.Kind {
			return fmt.Errorf("set property %q: %w: want %s, got %s", name, ErrTypeMismatch, prop.Kind, v.Kind)
		}
		if v.Kind == vocabulary.KindReference {
			if _, ok := g.nodes[v.Ref]; !ok {
				return fmt.Errorf("set property %q: %w: %s", name, ErrDanglingReference, v.Ref)
			}
		}
	}

	if len(values) == 0 {
		delete(n.Properties, name)
		return nil
	}
	n.Properties[name] = slices.Clone(values)
	return nil
}

// ClearProperty removes all values of one property.
func (g *Graph) ClearProperty(id NodeID, name string) error {
	return g.SetProperty(id, name)
}

// DeleteNode removes a node. Without cascade it fails while the node
// has children or any other node references it. With cascade it
// removes the whole subtree and clears every reference from surviving
// nodes into the deleted set.
func (g *Graph) DeleteNode(id NodeID, cascade bool) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("delete node: %w: %s", ErrNodeNotFound, id)
	}

	if !cascade {
		if len(n.Children) > 0 {
			return fmt.Errorf("delete node %s: %w: has %d children", id, ErrReferencedNode, len(n.Children))
		}
		if by := g.referrer(id); by != "" {
			return fmt.Errorf("delete node %s: %w: referenced by %s", id, ErrReferencedNode, by)
		}
		g.detach(n)
		g.remove(id)
		return nil
	}

	doomed := make(map[NodeID]bool)
	g.collectSubtree(id, doomed)
	for _, oid := range g.order {
		if !doomed[oid] {
			clearRefsInto(g.nodes[oid], doomed)
		}
	}
	g.detach(n)
	for _, oid := range slices.Clone(g.order) {
		if doomed[oid] {
			g.remove(oid)
		}
	}
	return nil
}

// inSubtree reports whether ancestor lies on id's parent chain. The
// step cap keeps the walk finite on restored graphs whose parent
// links cycle.
func (g *Graph) inSubtree(id, ancestor NodeID) bool {
	cur := g.nodes[id]
	for steps := 0; cur != nil && cur.Parent != "" && steps <= len(g.nodes); steps++ {
		if cur.Parent == ancestor {
			return true
		}
		cur = g.nodes[cur.Parent]
	}
	return false
}

// referrer returns the first node in insertion order holding a
// reference to target, or "" if none does.
func (g *Graph) referrer(target NodeID) NodeID {
	for _, oid := range g.order {
		if oid == target {
			continue
		}
		for _, vals := range g.nodes[oid].Properties {
			for _, v := range vals {
				if v.Kind == vocabulary.KindReference && v.Ref == target {
					return oid
				}
			}
		}
	}
	return ""
}

// collectSubtree marks id and everything below it. The visited check
// keeps the walk finite on restored graphs whose parent links cycle.
func (g *Graph) collectSubtree(id NodeID, into map[NodeID]bool) {
	if into[id] {
		return
	}
	into[id] = true
	for _, cid := range g.nodes[id].Children {
		g.collectSubtree(cid, into)
	}
}

func (g *Graph) remove(id NodeID) {
	delete(g.nodes, id)
	g.order = removeID(g.order, id)
}

// detach unlinks a node from its parent's child list or from the root
// list; the node itself stays in the graph.
func (g *Graph) detach(n *Node) {
	if n.Parent == "" {
		g.roots = removeID(g.roots, n.ID)
		return
	}
	if p, ok := g.nodes[n.Parent]; ok {
		p.Children = removeID(p.Children, n.ID)
	}
}

func removeID(ids []NodeID, id NodeID) []NodeID {
	i := slices.Index(ids, id)
	if i < 0 {
		return ids
	}
	return slices.Delete(ids, i, i+1)
}

func clearRefsInto(n *Node, doomed map[NodeID]bool) {
	for name, vals := range n.Properties {
		kept := slices.DeleteFunc(slices.Clone(vals), func(v Value) bool {
			return v.Kind == vocabulary.KindReference && doomed[v.Ref]
		})
		if len(kept) == 0 {
			delete(n.Properties, name)
		} else {
			n.Properties[name] = kept
		}
	}
}
