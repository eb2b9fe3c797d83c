// Package export serializes asset graphs as RDF. Output is blank-node
// free: every node is addressed by a urn:rox subject, types and
// properties map to their standard catalog and robotics IRIs, and
// numbers and dates carry xsd datatypes. Turtle, N-Triples, and
// JSON-LD serializations share the same statement set per profile.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/c360studio/roxmodel/asset"
	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/vocabulary"
	"github.com/c360studio/roxmodel/vocabulary/dcat"
	"github.com/c360studio/roxmodel/vocabulary/opcua"
)

// Namespace anchors identifiers that have no standard IRI: node
// subjects, and the fallbacks for unregistered types and properties.
const Namespace = "urn:rox:"

// PartPredicate links a parent node to each of its children when the
// profile includes the placement hierarchy.
const PartPredicate = dcat.TermsNamespace + "hasPart"

const (
	rdfTypeIRI   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	xsdNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// Options selects the serialization format and the statement profile.
type Options struct {
	// Format is the output serialization. Empty means Turtle.
	Format Format

	// Profile selects which statements are written. Empty means
	// minimal.
	Profile Profile
}

// Exporter serializes one asset graph. It expects a graph that has
// passed validation; nodes that slipped through with unknown types or
// properties still serialize, under urn:rox fallback IRIs.
type Exporter struct {
	g        *asset.Graph
	reg      *schema.Registry
	prefixes map[string]string
}

// NewExporter creates an exporter over the given graph.
func NewExporter(g *asset.Graph) *Exporter {
	return &Exporter{
		g:        g,
		reg:      g.Registry(),
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the namespace prefixes written ahead of
// Turtle output and into the JSON-LD context.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":   "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"xsd":   xsdNamespace,
		"dct":   dcat.TermsNamespace,
		"dcat":  dcat.Namespace,
		"foaf":  dcat.FoafNamespace,
		"vcard": dcat.VcardNamespace,
		"rob":   opcua.Namespace,
		"di":    opcua.DINamespace,
	}
}

// Export writes the graph to w in the requested format.
func (e *Exporter) Export(w io.Writer, opts Options) error {
	if opts.Format == "" {
		opts.Format = FormatTurtle
	}
	profile := GetProfileConfig(opts.Profile)

	var out string
	switch opts.Format {
	case FormatTurtle:
		out = e.toTurtle(profile)
	case FormatNTriples:
		out = e.toNTriples(profile)
	case FormatJSONLD:
		var err error
		out, err = e.toJSONLD(profile)
		if err != nil {
			return fmt.Errorf("marshal json-ld: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}

	_, err := io.WriteString(w, out)
	return err
}

// toTurtle serializes to Turtle format.
func (e *Exporter) toTurtle(profile ProfileConfig) string {
	w := NewTurtleWriter(e.prefixes)
	w.WritePrefixes()

	for _, n := range e.g.Nodes() {
		stmts := e.nodeStatements(n)
		parts := e.childSubjects(n, profile)

		w.WriteSubject(subjectIRI(n.ID))
		w.WriteType(e.typeIRI(n.Type), len(stmts) == 0 && len(parts) == 0)
		for i, st := range stmts {
			w.WriteStatement(st.predicate, turtleObject(st.value), i == len(stmts)-1 && len(parts) == 0)
		}
		for i, child := range parts {
			w.WriteStatement(PartPredicate, "<"+child+">", i == len(parts)-1)
		}
		w.WriteBlank()
	}

	return w.String()
}

// toNTriples serializes to N-Triples format.
func (e *Exporter) toNTriples(profile ProfileConfig) string {
	var w NTriplesWriter

	for _, n := range e.g.Nodes() {
		subject := subjectIRI(n.ID)
		w.WriteTypeTriple(subject, e.typeIRI(n.Type))
		for _, st := range e.nodeStatements(n) {
			w.WriteTriple(subject, st.predicate, ntriplesObject(st.value))
		}
		for _, child := range e.childSubjects(n, profile) {
			w.WriteTriple(subject, PartPredicate, "<"+child+">")
		}
	}

	return w.String()
}

// toJSONLD serializes to JSON-LD format.
func (e *Exporter) toJSONLD(profile ProfileConfig) (string, error) {
	doc := JSONLDDocument{
		Context: e.prefixes,
		Graph:   make([]JSONLDNode, 0, e.g.Len()),
	}

	for _, n := range e.g.Nodes() {
		props := make(map[string]any)
		for _, st := range e.nodeStatements(n) {
			obj := jsonldObject(st.value)
			switch prev := props[st.predicate].(type) {
			case nil:
				props[st.predicate] = obj
			case []any:
				props[st.predicate] = append(prev, obj)
			default:
				props[st.predicate] = []any{prev, obj}
			}
		}
		if parts := e.childSubjects(n, profile); len(parts) > 0 {
			refs := make([]any, 0, len(parts))
			for _, child := range parts {
				refs = append(refs, map[string]any{"@id": child})
			}
			props[PartPredicate] = refs
		}

		doc.Graph = append(doc.Graph, JSONLDNode{
			ID:         subjectIRI(n.ID),
			Type:       []string{e.typeIRI(n.Type)},
			Properties: props,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// statement is one predicate/object pair ready for serialization.
type statement struct {
	predicate string
	value     asset.Value
}

// nodeStatements returns the property statements for one node:
// declared properties in declaration order, then any undeclared ones
// sorted by name. Values keep their stored order.
func (e *Exporter) nodeStatements(n *asset.Node) []statement {
	def, _ := e.reg.Get(n.Type)

	var stmts []statement
	if def != nil {
		for i := range def.Properties {
			p := &def.Properties[i]
			for _, v := range n.Properties[p.Name] {
				stmts = append(stmts, statement{predicate: propertyIRI(p), value: v})
			}
		}
	}

	var extra []string
	for name := range n.Properties {
		if def == nil || def.Property(name) == nil {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	for _, name := range extra {
		for _, v := range n.Properties[name] {
			stmts = append(stmts, statement{predicate: Namespace + "prop:" + name, value: v})
		}
	}

	return stmts
}

// childSubjects returns the subject IRIs of n's children when the
// profile includes the placement hierarchy.
func (e *Exporter) childSubjects(n *asset.Node, profile ProfileConfig) []string {
	if !profile.IncludeHierarchy || len(n.Children) == 0 {
		return nil
	}
	out := make([]string, 0, len(n.Children))
	for _, cid := range n.Children {
		out = append(out, subjectIRI(cid))
	}
	return out
}

// typeIRI resolves the class IRI for a type, falling back to the
// urn:rox namespace for types without source metadata.
func (e *Exporter) typeIRI(t schema.ID) string {
	if def, ok := e.reg.Get(t); ok && def.IRI != "" {
		return def.IRI
	}
	return Namespace + "type:" + string(t)
}

// propertyIRI resolves the predicate IRI for a declared property.
// Bridge properties carry no registered predicate and fall back to
// the urn:rox namespace.
func propertyIRI(p *schema.PropertyDefinition) string {
	if p.IRI != "" {
		return p.IRI
	}
	return Namespace + "prop:" + p.Name
}

// subjectIRI returns the IRI addressing a node.
func subjectIRI(id asset.NodeID) string {
	return Namespace + string(id)
}

// turtleObject formats a value as a Turtle object term.
func turtleObject(v asset.Value) string {
	switch v.Kind {
	case vocabulary.KindString:
		return "\"" + escapeString(v.Str) + "\""
	case vocabulary.KindNumber:
		return fmt.Sprintf("\"%s\"^^xsd:decimal", formatNumber(v.Num))
	case vocabulary.KindDate:
		return fmt.Sprintf("\"%s\"^^xsd:date", v.Time.Format(asset.DateLayout))
	case vocabulary.KindReference:
		return "<" + subjectIRI(v.Ref) + ">"
	}
	return "\"" + escapeString(v.String()) + "\""
}

// ntriplesObject formats a value as an N-Triples object term. Datatype
// IRIs are written in full because N-Triples has no prefixes.
func ntriplesObject(v asset.Value) string {
	switch v.Kind {
	case vocabulary.KindString:
		return "\"" + escapeString(v.Str) + "\""
	case vocabulary.KindNumber:
		return fmt.Sprintf("\"%s\"^^<%sdecimal>", formatNumber(v.Num), xsdNamespace)
	case vocabulary.KindDate:
		return fmt.Sprintf("\"%s\"^^<%sdate>", v.Time.Format(asset.DateLayout), xsdNamespace)
	case vocabulary.KindReference:
		return "<" + subjectIRI(v.Ref) + ">"
	}
	return "\"" + escapeString(v.String()) + "\""
}

// jsonldObject formats a value as a JSON-LD object. Strings and
// numbers stay native; dates and references become typed objects.
func jsonldObject(v asset.Value) any {
	switch v.Kind {
	case vocabulary.KindString:
		return v.Str
	case vocabulary.KindNumber:
		return v.Num
	case vocabulary.KindDate:
		return map[string]any{"@value": v.Time.Format(asset.DateLayout), "@type": "xsd:date"}
	case vocabulary.KindReference:
		return map[string]any{"@id": subjectIRI(v.Ref)}
	}
	return v.String()
}

// formatNumber renders a float in its shortest exact decimal form.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
