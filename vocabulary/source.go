package vocabulary

// Source is one fully parsed vocabulary source. It is a plain value:
// safe to share, never mutated after parsing.
type Source struct {
	// Name is the vocabulary name, used as the namespace prefix for
	// every class the source declares.
	Name string

	// Classes holds the class records in declaration order.
	Classes []ClassRecord
}

// Class returns the record for a local class name, or nil.
func (s *Source) Class(local string) *ClassRecord {
	for i := range s.Classes {
		if s.Classes[i].Local == local {
			return &s.Classes[i]
		}
	}
	return nil
}

// ClassRecord is the raw declaration of one class: its local name, the
// local names of its allowed parents, and its properties in declaration
// order.
type ClassRecord struct {
	// Local is the class name, unique within the source.
	Local string

	// Parents lists allowed parent classes by local name. Empty means
	// the class may sit at the root of an asset graph.
	Parents []string

	// Properties holds the declared properties in row order.
	Properties []PropertyRecord

	// NodeKind is the optional OPC UA node kind from the node_kind
	// column. Zero when the source declared none.
	NodeKind NodeKind

	// NodeID is the optional numeric OPC UA NodeId from the node_id
	// column. Zero when the source declared none.
	NodeID uint32
}

// PropertyRecord is the raw declaration of one property.
type PropertyRecord struct {
	// Name is the property name, unique within its class.
	Name string

	// Kind is the parsed property_kind expression.
	Kind KindExpr

	// Required marks the property as mandatory for valid instances.
	Required bool
}
