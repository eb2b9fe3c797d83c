package engine

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/c360studio/roxmodel/asset"
	"github.com/c360studio/roxmodel/export"
	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/store"
	"github.com/c360studio/roxmodel/validate"
)

// Session is one editing session over a single asset graph. A session
// has a single writer; it is not safe for concurrent use.
type Session struct {
	name string
	kind AssetKind
	g    *asset.Graph
	eng  *Engine
}

// Name returns the asset name the session was opened under.
func (s *Session) Name() string {
	return s.name
}

// Kind returns the asset kind recorded for this session.
func (s *Session) Kind() AssetKind {
	return s.kind
}

// Len returns the number of nodes in the session's graph.
func (s *Session) Len() int {
	return s.g.Len()
}

// CreateNode creates a node of the given type, under parent or as a
// root when parent is empty.
func (s *Session) CreateNode(typeID schema.ID, parent asset.NodeID) (*asset.Node, error) {
	return s.g.CreateNode(typeID, parent)
}

// MoveNode reparents a node, subject to the same containment checks
// as creation.
func (s *Session) MoveNode(id, newParent asset.NodeID) error {
	return s.g.MoveNode(id, newParent)
}

// SetProperty replaces the values of one property on one node.
func (s *Session) SetProperty(id asset.NodeID, name string, values ...asset.Value) error {
	return s.g.SetProperty(id, name, values...)
}

// ClearProperty removes a property from a node.
func (s *Session) ClearProperty(id asset.NodeID, name string) error {
	return s.g.ClearProperty(id, name)
}

// DeleteNode removes a node, or its whole subtree with cascade.
func (s *Session) DeleteNode(id asset.NodeID, cascade bool) error {
	return s.g.DeleteNode(id, cascade)
}

// Node returns one node by ID.
func (s *Session) Node(id asset.NodeID) (*asset.Node, bool) {
	return s.g.Node(id)
}

// Roots returns the root nodes in insertion order.
func (s *Session) Roots() []*asset.Node {
	return s.g.Roots()
}

// ListChildren returns the direct children of a node in insertion
// order.
func (s *Session) ListChildren(id asset.NodeID) iter.Seq[*asset.Node] {
	return s.g.ListChildren(id)
}

// Validate reports every violation in the session's graph.
func (s *Session) Validate() validate.List {
	return validate.Validate(s.eng.reg, s.g)
}

// Save validates and persists the graph, returning the file name the
// store chose. A graph with violations never reaches disk; the
// violation list comes back as the error and unwraps via
// validate.AsList.
func (s *Session) Save(ctx context.Context) (string, error) {
	if err := s.Validate().Err(); err != nil {
		return "", fmt.Errorf("save %s: %w", s.name, err)
	}
	return s.eng.store.Save(ctx, s.g, store.Manifest{
		Name: s.name,
		Kind: string(s.kind),
	})
}

// Export validates the graph and writes it to w as RDF. Like Save, a
// graph with violations is refused.
func (s *Session) Export(w io.Writer, opts export.Options) error {
	if err := s.Validate().Err(); err != nil {
		return fmt.Errorf("export %s: %w", s.name, err)
	}
	return export.NewExporter(s.g).Export(w, opts)
}
