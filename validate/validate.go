package validate

import (
	"fmt"
	"slices"

	"github.com/c360studio/roxmodel/asset"
	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/vocabulary"
)

// Validate checks a graph against a registry and returns every
// violation found. The result order is deterministic: nodes in graph
// insertion order, each node's structural violations before its
// property violations, declared properties in declaration order, then
// undeclared ones sorted by name. An empty list means the graph is
// well formed.
func Validate(reg *schema.Registry, g *asset.Graph) List {
	v := &validator{
		reg:     reg,
		g:       g,
		cycleAt: make(map[asset.NodeID]bool),
	}
	v.detectCycles()
	for _, n := range g.Nodes() {
		if v.cycleAt[n.ID] {
			v.add(n.ID, "", KindCycleDetected, "parent chain loops back through this node")
		}
		v.checkStructure(n)
		v.checkProperties(n)
	}
	return v.out
}

type validator struct {
	reg     *schema.Registry
	g       *asset.Graph
	out     List
	cycleAt map[asset.NodeID]bool
}

func (v *validator) add(node asset.NodeID, property string, kind Kind, format string, args ...any) {
	v.out = append(v.out, Violation{
		Node:     node,
		Property: property,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	})
}

// detectCycles walks every parent chain with three-color marking:
// unvisited, visiting within the current walk, and done. Hitting a
// visiting node closes a loop; each cycle is recorded once, at the
// node that closed it.
func (v *validator) detectCycles() {
	const (
		visiting uint8 = iota + 1
		done
	)
	states := make(map[asset.NodeID]uint8)
	for _, n := range v.g.Nodes() {
		if states[n.ID] != 0 {
			continue
		}
		var chain []asset.NodeID
		cur := n.ID
		for {
			if states[cur] == done {
				break
			}
			if states[cur] == visiting {
				v.cycleAt[cur] = true
				break
			}
			states[cur] = visiting
			chain = append(chain, cur)
			node, ok := v.g.Node(cur)
			if !ok || node.Parent == "" {
				break
			}
			if _, ok := v.g.Node(node.Parent); !ok {
				break
			}
			cur = node.Parent
		}
		for _, id := range chain {
			states[id] = done
		}
	}
}

func (v *validator) checkStructure(n *asset.Node) {
	def, known := v.reg.Get(n.Type)
	if !known {
		v.add(n.ID, "", KindUnknownType, "type %s is not in the registry", n.Type)
	}

	if n.Parent == "" {
		if known && !def.RootCapable() {
			v.add(n.ID, "", KindInvalidContainment, "%s cannot be a root", n.Type)
		}
	} else if parent, ok := v.g.Node(n.Parent); !ok {
		v.add(n.ID, "", KindInvalidContainment, "parent %s is not in the graph", n.Parent)
	} else if !slices.Contains(parent.Children, n.ID) {
		v.add(n.ID, "", KindInvalidContainment, "parent %s does not list this node as a child", n.Parent)
	} else if _, pknown := v.reg.Get(parent.Type); pknown && known && !v.reg.AllowedChild(parent.Type, n.Type) {
		v.add(n.ID, "", KindInvalidContainment, "%s does not allow %s", parent.Type, n.Type)
	}

	for _, cid := range n.Children {
		child, ok := v.g.Node(cid)
		if !ok {
			v.add(n.ID, "", KindInvalidContainment, "child list names %s, which is not in the graph", cid)
			continue
		}
		if child.Parent != n.ID {
			v.add(n.ID, "", KindInvalidContainment, "child %s points at parent %s", cid, child.Parent)
		}
	}
}

func (v *validator) checkProperties(n *asset.Node) {
	def, known := v.reg.Get(n.Type)
	if !known {
		// No declaration to check against; the unknown type violation
		// already covers the node.
		return
	}

	for i := range def.Properties {
		prop := &def.Properties[i]
		vals := n.Values(prop.Name)
		if len(vals) == 0 {
			if prop.Required {
				v.add(n.ID, prop.Name, KindMissingRequiredProperty, "required property is not set")
			}
			continue
		}
		if prop.Cardinality == schema.CardinalitySingle && len(vals) > 1 {
			v.add(n.ID, prop.Name, KindTypeMismatch, "%d values on a single-cardinality property", len(vals))
		}
		for _, val := range vals {
			if val.Kind != prop.Kind {
				v.add(n.ID, prop.Name, KindTypeMismatch, "want %s, got %s", prop.Kind, val.Kind)
				continue
			}
			if val.Kind != vocabulary.KindReference {
				continue
			}
			target, ok := v.g.Node(val.Ref)
			if !ok {
				v.add(n.ID, prop.Name, KindDanglingReference, "references %s, which is not in the graph", val.Ref)
				continue
			}
			if prop.RefType != "" && target.Type != prop.RefType {
				v.add(n.ID, prop.Name, KindTypeMismatch, "references a %s, want %s", target.Type, prop.RefType)
			}
		}
	}

	var extra []string
	for name := range n.Properties {
		if def.Property(name) == nil {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	for _, name := range extra {
		v.add(n.ID, name, KindUnknownProperty, "%s does not declare this property", n.Type)
	}
}
