package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c360studio/roxmodel/asset"
)

// Kind classifies a violation.
type Kind string

const (
	// KindMissingRequiredProperty flags a required property with no
	// values. An empty values slice counts as missing.
	KindMissingRequiredProperty Kind = "missing_required_property"

	// KindTypeMismatch flags a value whose kind, count, or reference
	// target type contradicts the property declaration.
	KindTypeMismatch Kind = "type_mismatch"

	// KindInvalidContainment flags a parent/child placement the
	// registry does not allow, or an inconsistent parent/child link.
	KindInvalidContainment Kind = "invalid_containment"

	// KindDanglingReference flags a reference to a node absent from
	// the graph.
	KindDanglingReference Kind = "dangling_reference"

	// KindCycleDetected flags a parent chain that loops.
	KindCycleDetected Kind = "cycle_detected"

	// KindUnknownType flags a node whose type the registry lacks.
	KindUnknownType Kind = "unknown_type"

	// KindUnknownProperty flags a set property the node's type does
	// not declare.
	KindUnknownProperty Kind = "unknown_property"
)

// IsValid checks if the kind is a known value.
func (k Kind) IsValid() bool {
	switch k {
	case KindMissingRequiredProperty, KindTypeMismatch, KindInvalidContainment,
		KindDanglingReference, KindCycleDetected, KindUnknownType, KindUnknownProperty:
		return true
	}
	return false
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Violation is one defect found in a graph.
type Violation struct {
	// Node is the node the violation was found on.
	Node asset.NodeID `json:"node"`

	// Property names the offending property, empty for structural
	// violations.
	Property string `json:"property,omitempty"`

	// Kind classifies the violation.
	Kind Kind `json:"kind"`

	// Message describes the violation.
	Message string `json:"message"`
}

// String renders the violation for display.
func (v Violation) String() string {
	if v.Property != "" {
		return fmt.Sprintf("%s: node %s property %q: %s", v.Kind, v.Node, v.Property, v.Message)
	}
	return fmt.Sprintf("%s: node %s: %s", v.Kind, v.Node, v.Message)
}

// List is the full set of violations found in one validation pass, in
// deterministic order. A non-empty list is an error.
type List []Violation

// Error implements the error interface.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no violations"
	case 1:
		return fmt.Sprintf("1 violation: %s", l[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d violations:", len(l))
	for _, v := range l {
		b.WriteString("\n  ")
		b.WriteString(v.String())
	}
	return b.String()
}

// Err returns the list as an error, or nil when it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// ByKind returns the violations of one kind, preserving order.
func (l List) ByKind(kind Kind) List {
	var out List
	for _, v := range l {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

// AsList unwraps a List from an error chain.
func AsList(err error) (List, bool) {
	var list List
	if errors.As(err, &list) {
		return list, true
	}
	return nil, false
}
