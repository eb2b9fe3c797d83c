package vocabulary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Canonical column names. Column order in the file is free; names are
// the contract.
const (
	colClassID      = "class_id"
	colParentID     = "parent_id"
	colPropertyName = "property_name"
	colPropertyKind = "property_kind"
	colRequired     = "required"
	colNodeKind     = "node_kind"
	colNodeID       = "node_id"
)

// LoadFile parses the vocabulary source at path under the given name.
func LoadFile(name, path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary %s: %w", name, err)
	}
	defer f.Close()

	src, err := ParseSource(name, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// ParseSource parses one CSV vocabulary source. The name becomes the
// namespace prefix for every class; parsing is two-pass so a parent_id
// may name a class declared further down the file.
func ParseSource(name string, r io.Reader) (*Source, error) {
	if !validSourceName(name) {
		return nil, fmt.Errorf("invalid vocabulary name %q: %w", name, ErrMalformedVocabulary)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: missing header row: %w", name, ErrMalformedVocabulary)
		}
		return nil, fmt.Errorf("%s: read header: %v: %w", name, err, ErrMalformedVocabulary)
	}
	cols, err := parseHeader(name, header)
	if err != nil {
		return nil, err
	}

	// Pass one: collect every class record in declaration order.
	byLocal := make(map[string]*ClassRecord)
	var order []string
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", name, err, ErrMalformedVocabulary)
		}

		local := strings.TrimSpace(record[cols.classID])
		if local == "" {
			return nil, rowErr(name, row, "empty class_id")
		}
		if strings.ContainsAny(local, ": \t") {
			return nil, rowErr(name, row, "class_id %q contains reserved characters", local)
		}

		rec, ok := byLocal[local]
		if !ok {
			rec = &ClassRecord{Local: local}
			byLocal[local] = rec
			order = append(order, local)
		}

		if parent := strings.TrimSpace(record[cols.parentID]); parent != "" {
			if !slices.Contains(rec.Parents, parent) {
				rec.Parents = append(rec.Parents, parent)
			}
		}

		if err := applyNodeColumns(rec, record, cols, name, row); err != nil {
			return nil, err
		}

		propName := strings.TrimSpace(record[cols.propertyName])
		propKind := strings.TrimSpace(record[cols.propertyKind])
		if propName == "" {
			// Existence-only row: registers the class and its parent.
			if propKind != "" {
				return nil, rowErr(name, row, "property_kind %q without property_name", propKind)
			}
			continue
		}
		if propKind == "" {
			return nil, rowErr(name, row, "property %q has no property_kind", propName)
		}

		expr, err := ParseKindExpr(propKind)
		if err != nil {
			return nil, rowErr(name, row, "property %q: %v", propName, unwrapMalformed(err))
		}
		required, err := parseRequired(strings.TrimSpace(record[cols.required]))
		if err != nil {
			return nil, rowErr(name, row, "property %q: %v", propName, err)
		}
		for _, p := range rec.Properties {
			if p.Name == propName {
				return nil, rowErr(name, row, "duplicate property %q on class %q", propName, local)
			}
		}
		rec.Properties = append(rec.Properties, PropertyRecord{
			Name:     propName,
			Kind:     expr,
			Required: required,
		})
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("%s: no class rows: %w", name, ErrMalformedVocabulary)
	}

	// Pass two: every parent must be declared somewhere in this source.
	for _, local := range order {
		for _, parent := range byLocal[local].Parents {
			if _, ok := byLocal[parent]; !ok {
				return nil, fmt.Errorf("%s: class %q names undeclared parent %q: %w",
					name, local, parent, ErrMalformedVocabulary)
			}
		}
	}

	src := &Source{Name: name, Classes: make([]ClassRecord, 0, len(order))}
	for _, local := range order {
		src.Classes = append(src.Classes, *byLocal[local])
	}
	return src, nil
}

// columns maps canonical column names to field positions. The two
// optional node columns are -1 when the header omits them.
type columns struct {
	classID      int
	parentID     int
	propertyName int
	propertyKind int
	required     int
	nodeKind     int
	nodeID       int
}

func parseHeader(name string, header []string) (columns, error) {
	cols := columns{classID: -1, parentID: -1, propertyName: -1, propertyKind: -1, required: -1, nodeKind: -1, nodeID: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case colClassID:
			cols.classID = i
		case colParentID:
			cols.parentID = i
		case colPropertyName:
			cols.propertyName = i
		case colPropertyKind:
			cols.propertyKind = i
		case colRequired:
			cols.required = i
		case colNodeKind:
			cols.nodeKind = i
		case colNodeID:
			cols.nodeID = i
		default:
			return cols, fmt.Errorf("%s: unknown column %q: %w", name, h, ErrMalformedVocabulary)
		}
	}
	for col, idx := range map[string]int{
		colClassID:      cols.classID,
		colParentID:     cols.parentID,
		colPropertyName: cols.propertyName,
		colPropertyKind: cols.propertyKind,
		colRequired:     cols.required,
	} {
		if idx < 0 {
			return cols, fmt.Errorf("%s: missing column %q: %w", name, col, ErrMalformedVocabulary)
		}
	}
	return cols, nil
}

func applyNodeColumns(rec *ClassRecord, record []string, cols columns, name string, row int) error {
	if cols.nodeKind >= 0 {
		if cell := strings.TrimSpace(record[cols.nodeKind]); cell != "" {
			kind := NodeKind(cell)
			if !kind.IsValid() {
				return rowErr(name, row, "unknown node_kind %q", cell)
			}
			if rec.NodeKind != "" && rec.NodeKind != kind {
				return rowErr(name, row, "class %q declares conflicting node_kind values", rec.Local)
			}
			rec.NodeKind = kind
		}
	}
	if cols.nodeID >= 0 {
		if cell := strings.TrimSpace(record[cols.nodeID]); cell != "" {
			id, err := strconv.ParseUint(cell, 10, 32)
			if err != nil {
				return rowErr(name, row, "bad node_id %q", cell)
			}
			if rec.NodeID != 0 && rec.NodeID != uint32(id) {
				return rowErr(name, row, "class %q declares conflicting node_id values", rec.Local)
			}
			rec.NodeID = uint32(id)
		}
	}
	return nil
}

func parseRequired(cell string) (bool, error) {
	switch strings.ToLower(cell) {
	case "", "false":
		return false, nil
	case "true":
		return true, nil
	}
	return false, fmt.Errorf("bad required value %q", cell)
}

func rowErr(name string, row int, format string, args ...any) error {
	return fmt.Errorf("%s row %d: %s: %w", name, row, fmt.Sprintf(format, args...), ErrMalformedVocabulary)
}

// unwrapMalformed strips the sentinel suffix so rowErr can re-wrap it
// once with row context.
func unwrapMalformed(err error) string {
	return strings.TrimSuffix(err.Error(), ": "+ErrMalformedVocabulary.Error())
}

func validSourceName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
