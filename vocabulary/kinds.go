package vocabulary

import (
	"fmt"
	"strings"
)

// ValueKind classifies the values a declared property may hold.
type ValueKind string

const (
	// KindString is a literal UTF-8 string.
	KindString ValueKind = "string"

	// KindNumber is a literal numeric value.
	KindNumber ValueKind = "number"

	// KindDate is a literal calendar date (2006-01-02).
	KindDate ValueKind = "date"

	// KindReference is a reference to another node by identifier.
	KindReference ValueKind = "ref"
)

// IsValid checks whether the value kind is a known kind.
func (k ValueKind) IsValid() bool {
	switch k {
	case KindString, KindNumber, KindDate, KindReference:
		return true
	}
	return false
}

// String returns the string representation of the value kind.
func (k ValueKind) String() string {
	return string(k)
}

// NodeKind classifies an OPC UA node carried by a vocabulary source.
// The zero value means the source declared none.
type NodeKind string

const (
	// NodeKindObject is an instantiable object node.
	NodeKindObject NodeKind = "Object"

	// NodeKindObjectType is a type node in the object-type hierarchy.
	NodeKindObjectType NodeKind = "ObjectType"

	// NodeKindVariable is a variable node.
	NodeKindVariable NodeKind = "Variable"

	// NodeKindMethod is a method node.
	NodeKindMethod NodeKind = "Method"
)

// IsValid checks whether the node kind is a known kind.
func (k NodeKind) IsValid() bool {
	switch k {
	case NodeKindObject, NodeKindObjectType, NodeKindVariable, NodeKindMethod:
		return true
	}
	return false
}

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	return string(k)
}

// KindExpr is a parsed property_kind expression: a value kind, the ref
// target when the kind is a reference, and the cardinality flag.
type KindExpr struct {
	// Kind is the declared value kind.
	Kind ValueKind

	// Ref is the reference target for KindReference: either a local
	// class name or a vocab-prefixed name (dcat:Dataset). Empty for
	// literal kinds.
	Ref string

	// Multiple is true when the expression carried a '*' suffix.
	Multiple bool
}

// ParseKindExpr parses a property_kind cell. The grammar is
// string|number|date|ref(Target) with an optional trailing '*'.
func ParseKindExpr(s string) (KindExpr, error) {
	expr := KindExpr{}
	raw := strings.TrimSpace(s)
	if raw == "" {
		return expr, fmt.Errorf("empty kind expression: %w", ErrMalformedVocabulary)
	}

	if strings.HasSuffix(raw, "*") {
		expr.Multiple = true
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "*"))
	}

	if target, ok := strings.CutPrefix(raw, "ref("); ok {
		target, ok = strings.CutSuffix(target, ")")
		if !ok {
			return KindExpr{}, fmt.Errorf("unterminated ref target in %q: %w", s, ErrMalformedVocabulary)
		}
		target = strings.TrimSpace(target)
		if target == "" {
			return KindExpr{}, fmt.Errorf("empty ref target in %q: %w", s, ErrMalformedVocabulary)
		}
		if strings.Count(target, ":") > 1 {
			return KindExpr{}, fmt.Errorf("ref target %q has more than one namespace separator: %w", target, ErrMalformedVocabulary)
		}
		expr.Kind = KindReference
		expr.Ref = target
		return expr, nil
	}

	kind := ValueKind(raw)
	if !kind.IsValid() || kind == KindReference {
		return KindExpr{}, fmt.Errorf("unknown kind expression %q: %w", s, ErrMalformedVocabulary)
	}
	expr.Kind = kind
	return expr, nil
}

// String renders the expression back into the source grammar.
func (e KindExpr) String() string {
	var sb strings.Builder
	if e.Kind == KindReference {
		sb.WriteString("ref(")
		sb.WriteString(e.Ref)
		sb.WriteString(")")
	} else {
		sb.WriteString(string(e.Kind))
	}
	if e.Multiple {
		sb.WriteString("*")
	}
	return sb.String()
}
