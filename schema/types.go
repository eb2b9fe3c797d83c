package schema

import (
	"slices"

	"github.com/c360studio/roxmodel/vocabulary"
)

// Cardinality states how many values a property admits on one node.
type Cardinality string

const (
	// CardinalitySingle admits at most one value.
	CardinalitySingle Cardinality = "single"

	// CardinalityMultiple admits any number of values.
	CardinalityMultiple Cardinality = "multiple"
)

// IsValid checks if the cardinality is a known value.
func (c Cardinality) IsValid() bool {
	switch c {
	case CardinalitySingle, CardinalityMultiple:
		return true
	}
	return false
}

// String returns the string representation of the cardinality.
func (c Cardinality) String() string {
	return string(c)
}

// PropertyDefinition describes one property slot of a type: its value
// kind, the target type for references, how many values it admits, and
// whether a valid node must carry it. IRI is the standard-vocabulary
// identifier resolved during build, empty when no registered predicate
// covers the property.
type PropertyDefinition struct {
	Name        string               `json:"name"`
	Kind        vocabulary.ValueKind `json:"kind"`
	RefType     ID                   `json:"ref_type,omitempty"`
	Cardinality Cardinality          `json:"cardinality"`
	Required    bool                 `json:"required"`
	IRI         string               `json:"iri,omitempty"`
}

// TypeDefinition is one fully linked type in the registry. Parents and
// Children together form the containment hierarchy: a node of this type
// may sit under a node of any type in Parents, and may contain nodes of
// any type in Children. Both lists include bridge-derived links.
//
// NodeKind, NodeID, and IRI carry source metadata when the vocabulary
// provides it and are zero otherwise.
type TypeDefinition struct {
	ID         ID                   `json:"id"`
	Vocabulary string               `json:"vocabulary"`
	Label      string               `json:"label"`
	Properties []PropertyDefinition `json:"properties,omitempty"`
	Parents    []ID                 `json:"parents,omitempty"`
	Children   []ID                 `json:"children,omitempty"`
	NodeKind   vocabulary.NodeKind  `json:"node_kind,omitempty"`
	NodeID     uint32               `json:"node_id,omitempty"`
	IRI        string               `json:"iri,omitempty"`
}

// Property returns the named property definition, or nil if the type
// does not declare it.
func (t *TypeDefinition) Property(name string) *PropertyDefinition {
	for i := range t.Properties {
		if t.Properties[i].Name == name {
			return &t.Properties[i]
		}
	}
	return nil
}

// RootCapable reports whether nodes of this type may sit at the top of
// an asset graph. Only types with no declared parents qualify.
func (t *TypeDefinition) RootCapable() bool {
	return len(t.Parents) == 0
}

// AllowsParent reports whether this type may be placed under the given
// parent type.
func (t *TypeDefinition) AllowsParent(parent ID) bool {
	return slices.Contains(t.Parents, parent)
}

// AllowsChild reports whether the given child type may be placed under
// this type.
func (t *TypeDefinition) AllowsChild(child ID) bool {
	return slices.Contains(t.Children, child)
}
