package validate

import (
	"fmt"
	"reflect"
	"slices"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/c360studio/roxmodel/asset"
	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/schema/schematest"
)

func TestValidateEmptyGraph(t *testing.T) {
	reg := schematest.Registry(t)
	list := Validate(reg, asset.NewGraph(reg))
	if len(list) != 0 {
		t.Errorf("empty graph = %v, want no violations", list)
	}
}

func TestValidateCleanGraph(t *testing.T) {
	reg := schematest.Registry(t)
	g := asset.NewGraph(reg)

	catalog, err := g.CreateNode("dcat:Catalog", "")
	if err != nil {
		t.Fatalf("create catalog: %v", err)
	}
	if err := g.SetProperty(catalog.ID, "title", asset.StringValue("plant catalog")); err != nil {
		t.Fatalf("set title: %v", err)
	}
	dataset, err := g.CreateNode("dcat:Dataset", catalog.ID)
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}
	if err := g.SetProperty(dataset.ID, "title", asset.StringValue("weld telemetry")); err != nil {
		t.Fatalf("set title: %v", err)
	}
	if err := g.SetProperty(dataset.ID, "description", asset.StringValue("six-axis weld cell")); err != nil {
		t.Fatalf("set description: %v", err)
	}

	if list := Validate(reg, g); len(list) != 0 {
		t.Errorf("clean graph = %v, want no violations", list)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	reg := schematest.Registry(t)
	g := asset.NewGraph(reg)
	catalog, _ := g.CreateNode("dcat:Catalog", "")
	if err := g.SetProperty(catalog.ID, "title", asset.StringValue("c")); err != nil {
		t.Fatalf("set title: %v", err)
	}
	dataset, _ := g.CreateNode("dcat:Dataset", catalog.ID)

	list := Validate(reg, g)
	if len(list) != 2 {
		t.Fatalf("violations = %v, want 2", list)
	}
	// Declaration order: title before description.
	if list[0].Property != "title" || list[1].Property != "description" {
		t.Errorf("order = %s, %s; want title, description", list[0].Property, list[1].Property)
	}
	for _, v := range list {
		if v.Kind != KindMissingRequiredProperty || v.Node != dataset.ID {
			t.Errorf("violation = %+v", v)
		}
	}
}

func TestValidateRequiredEmptySlice(t *testing.T) {
	reg := schematest.Registry(t)
	g := asset.NewGraph(reg)
	catalog, _ := g.CreateNode("dcat:Catalog", "")
	// An empty values slice counts as missing.
	catalog.Properties["title"] = []asset.Value{}

	list := Validate(reg, g).ByKind(KindMissingRequiredProperty)
	if len(list) != 1 || list[0].Property != "title" {
		t.Errorf("violations = %v, want missing title", list)
	}
}

func TestValidateTypeMismatches(t *testing.T) {
	reg := schematest.Registry(t)
	g, err := asset.RestoreGraph(reg, []*asset.Node{
		{ID: "c", Type: "dcat:Catalog", Properties: map[string][]asset.Value{
			"title": {asset.StringValue("c")},
		}},
		{ID: "d", Type: "dcat:Dataset", Parent: "c", Properties: map[string][]asset.Value{
			// Wrong kind.
			"title": {asset.NumberValue(7)},
			// Two values on single cardinality.
			"description": {asset.StringValue("a"), asset.StringValue("b")},
			// Reference to the wrong target type.
			"contact_point": {asset.RefValue("d")},
		}},
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	list := Validate(reg, g).ByKind(KindTypeMismatch)
	if len(list) != 3 {
		t.Fatalf("type mismatches = %v, want 3", list)
	}
	byProp := map[string]Violation{}
	for _, v := range list {
		byProp[v.Property] = v
	}
	if _, ok := byProp["title"]; !ok {
		t.Error("no mismatch for wrong-kind title")
	}
	if _, ok := byProp["description"]; !ok {
		t.Error("no mismatch for cardinality overflow")
	}
	if _, ok := byProp["contact_point"]; !ok {
		t.Error("no mismatch for wrong reference target type")
	}
}

func TestValidateDanglingReference(t *testing.T) {
	reg := schematest.Registry(t)
	g, err := asset.RestoreGraph(reg, []*asset.Node{
		{ID: "c", Type: "dcat:Catalog", Properties: map[string][]asset.Value{
			"title":     {asset.StringValue("c")},
			"publisher": {asset.RefValue("gone")},
		}},
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	list := Validate(reg, g).ByKind(KindDanglingReference)
	if len(list) != 1 || list[0].Property != "publisher" {
		t.Errorf("violations = %v, want dangling publisher", list)
	}
}

func TestValidateInvalidContainment(t *testing.T) {
	reg := schematest.Registry(t)
	g, err := asset.RestoreGraph(reg, []*asset.Node{
		{ID: "c", Type: "dcat:Catalog", Properties: map[string][]asset.Value{
			"title": {asset.StringValue("c")},
		}},
		// Distributions belong under datasets, not catalogs.
		{ID: "x", Type: "dcat:Distribution", Parent: "c", Properties: map[string][]asset.Value{
			"access_url": {asset.StringValue("https://example.com/x")},
		}},
		// Datasets are not root capable.
		{ID: "d", Type: "dcat:Dataset", Properties: map[string][]asset.Value{
			"title":       {asset.StringValue("d")},
			"description": {asset.StringValue("d")},
		}},
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	list := Validate(reg, g).ByKind(KindInvalidContainment)
	if len(list) != 2 {
		t.Fatalf("violations = %v, want 2", list)
	}
	if list[0].Node != "x" || list[1].Node != "d" {
		t.Errorf("violations on %s, %s; want x, d", list[0].Node, list[1].Node)
	}
}

func TestValidateCycleDetected(t *testing.T) {
	reg := schematest.Registry(t)
	g, err := asset.RestoreGraph(reg, []*asset.Node{
		{ID: "a", Type: "dcat:Dataset", Parent: "b"},
		{ID: "b", Type: "dcat:Dataset", Parent: "a"},
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	list := Validate(reg, g).ByKind(KindCycleDetected)
	if len(list) != 1 {
		t.Fatalf("cycle violations = %v, want exactly one per cycle", list)
	}
	if list[0].Node != "a" {
		t.Errorf("cycle reported at %s, want a (first record on the loop)", list[0].Node)
	}
}

func TestValidateUnknownTypeAndProperty(t *testing.T) {
	reg := schematest.Registry(t)
	g, err := asset.RestoreGraph(reg, []*asset.Node{
		{ID: "m", Type: "legacy:Machine", Properties: map[string][]asset.Value{
			"anything": {asset.StringValue("x")},
		}},
		{ID: "c", Type: "dcat:Catalog", Properties: map[string][]asset.Value{
			"title": {asset.StringValue("c")},
			"zzz":   {asset.StringValue("1")},
			"aaa":   {asset.StringValue("2")},
		}},
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	list := Validate(reg, g)

	unknownType := list.ByKind(KindUnknownType)
	if len(unknownType) != 1 || unknownType[0].Node != "m" {
		t.Errorf("unknown type = %v", unknownType)
	}
	// Unknown-type nodes get no property diagnostics.
	for _, v := range list {
		if v.Node == "m" && v.Kind != KindUnknownType {
			t.Errorf("extra violation on unknown-type node: %+v", v)
		}
	}

	unknownProp := list.ByKind(KindUnknownProperty)
	if len(unknownProp) != 2 {
		t.Fatalf("unknown properties = %v, want 2", unknownProp)
	}
	// Undeclared properties are reported sorted by name.
	if unknownProp[0].Property != "aaa" || unknownProp[1].Property != "zzz" {
		t.Errorf("order = %s, %s; want aaa, zzz", unknownProp[0].Property, unknownProp[1].Property)
	}
}

func dumpGraph(g *asset.Graph) map[asset.NodeID]asset.Node {
	out := make(map[asset.NodeID]asset.Node, g.Len())
	for _, n := range g.Nodes() {
		cp := asset.Node{
			ID:         n.ID,
			Type:       n.Type,
			Parent:     n.Parent,
			Children:   slices.Clone(n.Children),
			Properties: make(map[string][]asset.Value, len(n.Properties)),
		}
		for name, vals := range n.Properties {
			cp.Properties[name] = slices.Clone(vals)
		}
		out[n.ID] = cp
	}
	return out
}

// TestValidatePurity is a property-based test using rapid. It checks
// that validating an arbitrary restored graph never mutates it and
// that repeated runs return the identical list.
func TestValidatePurity(t *testing.T) {
	reg := schematest.Registry(t)
	typeIDs := []schema.ID{
		"dcat:Catalog", "dcat:Dataset", "dcat:Distribution", "dcat:Agent",
		"opcua:MotionDeviceSystemType", "opcua:MotionDeviceType", "legacy:Machine",
	}
	propNames := []string{"title", "description", "keyword", "publisher", "manufacturer", "zzz"}

	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 12).Draw(rt, "count")
		records := make([]*asset.Node, 0, count)
		ids := make([]asset.NodeID, 0, count)
		for i := 0; i < count; i++ {
			id := asset.NodeID(fmt.Sprintf("n%d", i))
			rec := &asset.Node{ID: id, Type: rapid.SampledFrom(typeIDs).Draw(rt, "type")}
			if len(ids) > 0 && rapid.Bool().Draw(rt, "hasParent") {
				rec.Parent = rapid.SampledFrom(ids).Draw(rt, "parent")
			}
			if rapid.Bool().Draw(rt, "hasProps") {
				name := rapid.SampledFrom(propNames).Draw(rt, "prop")
				rec.Properties = map[string][]asset.Value{name: {randomValue(rt, ids)}}
			}
			records = append(records, rec)
			ids = append(ids, id)
		}

		g, err := asset.RestoreGraph(reg, records)
		if err != nil {
			rt.Fatalf("restore: %v", err)
		}

		before := dumpGraph(g)
		first := Validate(reg, g)
		second := Validate(reg, g)

		if !reflect.DeepEqual(first, second) {
			rt.Fatalf("repeated validation diverged:\n%v\nvs\n%v", first, second)
		}
		if !reflect.DeepEqual(before, dumpGraph(g)) {
			rt.Fatal("validation mutated the graph")
		}
	})
}

func randomValue(rt *rapid.T, ids []asset.NodeID) asset.Value {
	switch rapid.IntRange(0, 3).Draw(rt, "valueKind") {
	case 0:
		return asset.StringValue(rapid.StringMatching(`[a-z]{1,6}`).Draw(rt, "str"))
	case 1:
		return asset.NumberValue(float64(rapid.IntRange(-50, 50).Draw(rt, "num")))
	case 2:
		days := rapid.IntRange(0, 100).Draw(rt, "days")
		return asset.DateValue(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days))
	default:
		targets := append(slices.Clone(ids), "ghost")
		return asset.RefValue(rapid.SampledFrom(targets).Draw(rt, "ref"))
	}
}
