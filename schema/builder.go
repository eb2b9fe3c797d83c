package schema

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	semvocab "github.com/c360studio/semstreams/vocabulary"

	"github.com/c360studio/roxmodel/vocabulary"
)

// Builder assembles a Registry from one or more vocabulary sources.
// Sources are merged in the order they were added; the resulting type
// order is source order, then row order within each source.
type Builder struct {
	sources   []*vocabulary.Source
	bridges   []BridgeRule
	classIRIs map[string]map[string]string
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		classIRIs: make(map[string]map[string]string),
	}
}

// AddSource adds a parsed vocabulary source to the merge set.
func (b *Builder) AddSource(src *vocabulary.Source) *Builder {
	b.sources = append(b.sources, src)
	return b
}

// WithBridges adds bridge rules to apply after linking.
func (b *Builder) WithBridges(rules ...BridgeRule) *Builder {
	b.bridges = append(b.bridges, rules...)
	return b
}

// WithClassIRIs supplies canonical class IRIs for one vocabulary,
// keyed by local class name. Matched by label during enrichment.
func (b *Builder) WithClassIRIs(vocab string, iris map[string]string) *Builder {
	b.classIRIs[vocab] = iris
	return b
}

// Build merges the added sources into an immutable Registry.
//
// Phase one registers every class of every source under its namespaced
// ID and fails on duplicates with ErrMalformedVocabulary. Phase two
// resolves parent links and reference targets, derives the child
// table, and applies the bridge rules; any name that resolves to
// nothing fails with ErrUnresolvedReference. No partial registry is
// ever returned.
func (b *Builder) Build() (*Registry, error) {
	if len(b.sources) == 0 {
		return nil, fmt.Errorf("build registry: no vocabulary sources")
	}

	types := make(map[ID]*TypeDefinition)
	records := make(map[ID]*vocabulary.ClassRecord)
	var order []ID

	// Phase one: register every class under its namespaced ID.
	seen := make(map[string]bool)
	for _, src := range b.sources {
		if seen[src.Name] {
			return nil, fmt.Errorf("build registry: %w: vocabulary %q added twice",
				vocabulary.ErrMalformedVocabulary, src.Name)
		}
		seen[src.Name] = true
		for i := range src.Classes {
			rec := &src.Classes[i]
			id := MakeID(src.Name, rec.Local)
			if _, dup := types[id]; dup {
				return nil, fmt.Errorf("build registry: %w: duplicate type %s",
					vocabulary.ErrMalformedVocabulary, id)
			}
			types[id] = &TypeDefinition{
				ID:         id,
				Vocabulary: src.Name,
				Label:      rec.Local,
				NodeKind:   rec.NodeKind,
				NodeID:     rec.NodeID,
			}
			records[id] = rec
			order = append(order, id)
		}
	}

	// Phase two: resolve parents and reference targets.
	for _, id := range order {
		t := types[id]
		for _, parent := range records[id].Parents {
			pid := MakeID(t.Vocabulary, parent)
			if _, ok := types[pid]; !ok {
				return nil, fmt.Errorf("link %s: %w: parent %s", id, ErrUnresolvedReference, pid)
			}
			t.Parents = append(t.Parents, pid)
		}
		for _, prop := range records[id].Properties {
			def, err := resolveProperty(types, t, prop)
			if err != nil {
				return nil, err
			}
			t.Properties = append(t.Properties, def)
		}
	}

	// Derive the child table from the resolved parent links.
	for _, id := range order {
		for _, pid := range types[id].Parents {
			p := types[pid]
			if !slices.Contains(p.Children, id) {
				p.Children = append(p.Children, id)
			}
		}
	}

	for _, rule := range b.bridges {
		if err := applyBridge(types, rule); err != nil {
			return nil, err
		}
	}

	b.enrich(types, order)

	reg := &Registry{types: types, order: order}
	version, err := fingerprint(reg)
	if err != nil {
		return nil, fmt.Errorf("build registry: fingerprint: %w", err)
	}
	reg.version = version
	return reg, nil
}

// resolveProperty converts a raw property record into a linked
// definition. A bare ref target names a class in the same vocabulary;
// a prefixed target ("dcat:Dataset") names another vocabulary.
func resolveProperty(types map[ID]*TypeDefinition, t *TypeDefinition, prop vocabulary.PropertyRecord) (PropertyDefinition, error) {
	def := PropertyDefinition{
		Name:        prop.Name,
		Kind:        prop.Kind.Kind,
		Cardinality: CardinalitySingle,
		Required:    prop.Required,
	}
	if prop.Kind.Multiple {
		def.Cardinality = CardinalityMultiple
	}
	if prop.Kind.Kind == vocabulary.KindReference {
		tid := MakeID(t.Vocabulary, prop.Kind.Ref)
		if strings.Contains(prop.Kind.Ref, ":") {
			tid = ID(prop.Kind.Ref)
		}
		if _, ok := types[tid]; !ok {
			return PropertyDefinition{}, fmt.Errorf("link %s.%s: %w: target %s",
				t.ID, prop.Name, ErrUnresolvedReference, tid)
		}
		def.RefType = tid
	}
	return def, nil
}

// applyBridge wires one rule into the linked type set.
func applyBridge(types map[ID]*TypeDefinition, rule BridgeRule) error {
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("%w: %v", vocabulary.ErrMalformedVocabulary, err)
	}
	from, ok := types[rule.From]
	if !ok {
		return fmt.Errorf("bridge %s -> %s: %w: %s", rule.From, rule.To, ErrUnresolvedReference, rule.From)
	}
	to, ok := types[rule.To]
	if !ok {
		return fmt.Errorf("bridge %s -> %s: %w: %s", rule.From, rule.To, ErrUnresolvedReference, rule.To)
	}

	switch rule.Mode {
	case BridgeContainment:
		if !slices.Contains(from.Children, to.ID) {
			from.Children = append(from.Children, to.ID)
		}
		if !slices.Contains(to.Parents, from.ID) {
			to.Parents = append(to.Parents, from.ID)
		}
	case BridgeReference:
		if from.Property(rule.Property) != nil {
			return fmt.Errorf("bridge %s -> %s: %w: property %q already declared on %s",
				rule.From, rule.To, vocabulary.ErrMalformedVocabulary, rule.Property, rule.From)
		}
		from.Properties = append(from.Properties, PropertyDefinition{
			Name:        rule.Property,
			Kind:        vocabulary.KindReference,
			RefType:     to.ID,
			Cardinality: CardinalityMultiple,
		})
	}
	return nil
}

// enrich attaches canonical IRIs from the supplied class tables and
// the registered predicate metadata. Types and properties without a
// registered counterpart keep an empty IRI.
func (b *Builder) enrich(types map[ID]*TypeDefinition, order []ID) {
	for _, id := range order {
		t := types[id]
		if iris, ok := b.classIRIs[t.Vocabulary]; ok {
			t.IRI = iris[t.Label]
		}
		for i := range t.Properties {
			p := &t.Properties[i]
			meta := semvocab.GetPredicateMetadata(vocabulary.PredicateName(t.Vocabulary, t.Label, p.Name))
			if meta != nil && meta.StandardIRI != "" {
				p.IRI = meta.StandardIRI
			}
		}
	}
}

// fingerprint computes the registry version over the canonical JSON
// dump of the ordered type definitions. Two registries built from the
// same sources and bridges share a fingerprint.
func fingerprint(reg *Registry) (string, error) {
	data, err := json.Marshal(reg.Types())
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(hash[:]), nil
}
