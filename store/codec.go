package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/c360studio/roxmodel/asset"
	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/vocabulary"
)

// File format markers stamped into every manifest.
const (
	// FormatName identifies asset files written by this package.
	FormatName = "rox-asset"

	// FormatVersion is the current file format revision. Decoding
	// refuses every other revision.
	FormatVersion = 1
)

// xsdDate tags date literals in the wire form.
const xsdDate = "xsd:date"

// Manifest is the first line of every asset file. Encode stamps
// Format, Version, Schema and Roots from the graph; Name, Kind and
// SavedAt belong to the caller.
type Manifest struct {
	// Format is always FormatName.
	Format string `json:"format"`

	// Version is the file format revision.
	Version int `json:"version"`

	// Schema is the fingerprint of the registry the graph was built
	// against.
	Schema string `json:"schema"`

	// Name is the human-chosen asset name.
	Name string `json:"name"`

	// Kind labels what the asset describes (raw-data, model,
	// software-service).
	Kind string `json:"kind"`

	// SavedAt records when the file was written.
	SavedAt time.Time `json:"saved_at"`

	// Roots lists the graph's root node ids in insertion order.
	Roots []asset.NodeID `json:"roots"`
}

// nodeRecord is the wire form of one node, one JSON line per record.
// Property values are JSON-LD flavored: strings and numbers are
// native JSON, references are {"@id": ...} and dates are
// {"@value": ..., "@type": "xsd:date"}, so records decode without
// consulting the registry.
type nodeRecord struct {
	ID         asset.NodeID                 `json:"id"`
	Type       schema.ID                    `json:"type"`
	Parent     asset.NodeID                 `json:"parent,omitempty"`
	Properties map[string][]json.RawMessage `json:"properties,omitempty"`
}

type refObject struct {
	ID string `json:"@id"`
}

type dateObject struct {
	Value string `json:"@value"`
	Type  string `json:"@type"`
}

// typedObject covers both object forms while decoding.
type typedObject struct {
	ID    string `json:"@id"`
	Value string `json:"@value"`
	Type  string `json:"@type"`
}

// Codec translates between asset graphs and their line-oriented JSON
// file form. The zero value is ready to use.
type Codec struct{}

// Encode writes the manifest line followed by one record per node, in
// graph insertion order. Format, Version, Schema and Roots on meta
// are overwritten from the graph before writing.
func (Codec) Encode(w io.Writer, g *asset.Graph, meta Manifest) error {
	meta.Format = FormatName
	meta.Version = FormatVersion
	meta.Schema = g.Registry().Version()
	meta.Roots = rootIDs(g)

	enc := json.NewEncoder(w)
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	for _, n := range g.Nodes() {
		rec, err := encodeNode(n)
		if err != nil {
			return fmt.Errorf("encode node %s: %w", n.ID, err)
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode node %s: %w", n.ID, err)
		}
	}
	return nil
}

// Decode reads a file produced by Encode and rebuilds the graph
// against reg. Decoding is a whole-batch transaction: the manifest
// must carry this package's format marker and the registry's
// fingerprint, every record must parse, and every reference value
// must land on a record in the same file. Any failure returns no
// graph. Semantic defects a graph can represent (unknown types,
// missing required properties, cycles) decode fine; the validator
// reports those.
func (Codec) Decode(r io.Reader, reg *schema.Registry) (*asset.Graph, Manifest, error) {
	dec := json.NewDecoder(r)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, Manifest{}, fmt.Errorf("manifest: %w: %v", ErrCorruptAsset, err)
	}
	if m.Format != FormatName {
		return nil, Manifest{}, fmt.Errorf("manifest: %w: format %q", ErrCorruptAsset, m.Format)
	}
	if m.Version != FormatVersion {
		return nil, Manifest{}, fmt.Errorf("manifest: %w: file revision %d, this build reads %d", ErrSchemaVersionMismatch, m.Version, FormatVersion)
	}
	if m.Schema != reg.Version() {
		return nil, Manifest{}, fmt.Errorf("manifest: %w: file written against a different vocabulary fingerprint", ErrSchemaVersionMismatch)
	}

	var nodes []*asset.Node
	for line := 2; ; line++ {
		var rec nodeRecord
		if err := dec.Decode(&rec); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, Manifest{}, fmt.Errorf("line %d: %w: %v", line, ErrCorruptAsset, err)
		}
		n, err := decodeNode(rec)
		if err != nil {
			return nil, Manifest{}, fmt.Errorf("line %d: %w: %v", line, ErrCorruptAsset, err)
		}
		nodes = append(nodes, n)
	}

	g, err := asset.RestoreGraph(reg, nodes)
	if err != nil {
		return nil, Manifest{}, fmt.Errorf("%w: %v", ErrCorruptAsset, err)
	}
	if err := checkRefs(g); err != nil {
		return nil, Manifest{}, err
	}
	return g, m, nil
}

func rootIDs(g *asset.Graph) []asset.NodeID {
	roots := g.Roots()
	ids := make([]asset.NodeID, 0, len(roots))
	for _, n := range roots {
		ids = append(ids, n.ID)
	}
	return ids
}

func encodeNode(n *asset.Node) (nodeRecord, error) {
	rec := nodeRecord{ID: n.ID, Type: n.Type, Parent: n.Parent}
	if len(n.Properties) == 0 {
		return rec, nil
	}
	rec.Properties = make(map[string][]json.RawMessage, len(n.Properties))
	for name, vals := range n.Properties {
		raws := make([]json.RawMessage, 0, len(vals))
		for _, v := range vals {
			raw, err := encodeValue(v)
			if err != nil {
				return nodeRecord{}, fmt.Errorf("property %s: %w", name, err)
			}
			raws = append(raws, raw)
		}
		rec.Properties[name] = raws
	}
	return rec, nil
}

func encodeValue(v asset.Value) (json.RawMessage, error) {
	switch v.Kind {
	case vocabulary.KindString:
		return json.Marshal(v.Str)
	case vocabulary.KindNumber:
		// NaN and infinities have no JSON form and fail here.
		return json.Marshal(v.Num)
	case vocabulary.KindDate:
		return json.Marshal(dateObject{Value: v.Time.Format(asset.DateLayout), Type: xsdDate})
	case vocabulary.KindReference:
		return json.Marshal(refObject{ID: string(v.Ref)})
	default:
		return nil, fmt.Errorf("value of unknown kind %q", v.Kind)
	}
}

func decodeNode(rec nodeRecord) (*asset.Node, error) {
	if rec.ID == "" {
		return nil, fmt.Errorf("record without id")
	}
	if rec.Type == "" {
		return nil, fmt.Errorf("record %s without type", rec.ID)
	}
	n := &asset.Node{ID: rec.ID, Type: rec.Type, Parent: rec.Parent}
	if len(rec.Properties) == 0 {
		return n, nil
	}
	n.Properties = make(map[string][]asset.Value, len(rec.Properties))
	for name, raws := range rec.Properties {
		vals := make([]asset.Value, 0, len(raws))
		for i, raw := range raws {
			v, err := decodeValue(raw)
			if err != nil {
				return nil, fmt.Errorf("property %s value %d: %w", name, i, err)
			}
			vals = append(vals, v)
		}
		n.Properties[name] = vals
	}
	return n, nil
}

func decodeValue(raw json.RawMessage) (asset.Value, error) {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return asset.Value{}, fmt.Errorf("empty value")
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return asset.Value{}, err
		}
		return asset.StringValue(s), nil
	case '{':
		var obj typedObject
		if err := json.Unmarshal(b, &obj); err != nil {
			return asset.Value{}, err
		}
		switch {
		case obj.ID != "":
			return asset.RefValue(asset.NodeID(obj.ID)), nil
		case obj.Type == xsdDate:
			t, err := time.Parse(asset.DateLayout, obj.Value)
			if err != nil {
				return asset.Value{}, fmt.Errorf("date %q: %v", obj.Value, err)
			}
			return asset.DateValue(t), nil
		default:
			return asset.Value{}, fmt.Errorf("object value is neither a reference nor an %s literal", xsdDate)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return asset.Value{}, err
		}
		return asset.NumberValue(f), nil
	default:
		// Booleans, nulls and arrays have no value form. Unmarshaling
		// null into a float succeeds silently, so dispatch on the
		// first byte instead of trying.
		return asset.Value{}, fmt.Errorf("value %s is not a string, number, date or reference", b)
	}
}

// checkRefs verifies every reference value lands on a node in the
// decoded batch. Property names are scanned in sorted order so the
// first failure reported is deterministic.
func checkRefs(g *asset.Graph) error {
	for _, n := range g.Nodes() {
		names := make([]string, 0, len(n.Properties))
		for name := range n.Properties {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			for _, v := range n.Properties[name] {
				if v.Kind != vocabulary.KindReference {
					continue
				}
				if _, ok := g.Node(v.Ref); !ok {
					return fmt.Errorf("node %s property %s: %w: %s is not in this file", n.ID, name, asset.ErrDanglingReference, v.Ref)
				}
			}
		}
	}
	return nil
}
