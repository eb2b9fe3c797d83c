package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/c360studio/roxmodel/vocabulary"
)

// Two small fixture vocabularies: a machine hierarchy and a document
// hierarchy with a cross-vocabulary reference into the first.
const machinesCSV = `class_id,parent_id,property_name,property_kind,required
Cell,,label,string,true
Robot,Cell,serial,string,true
Robot,Cell,payload,number,
Robot,Cell,docked_at,ref(Cell),
Arm,Robot,reach,number,
Tool,Arm,,,
`

const docsCSV = `class_id,parent_id,property_name,property_kind,required
Library,,title,string,true
Doc,Library,title,string,true
Doc,Library,tags,string*,
Doc,Library,about,ref(mach:Robot),
Note,Doc,body,string,
`

func parseFixture(t *testing.T, name, csv string) *vocabulary.Source {
	t.Helper()
	src, err := vocabulary.ParseSource(name, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse fixture %s: %v", name, err)
	}
	return src
}

func buildFixture(t *testing.T, bridges ...BridgeRule) *Registry {
	t.Helper()
	reg, err := NewBuilder().
		AddSource(parseFixture(t, "mach", machinesCSV)).
		AddSource(parseFixture(t, "docs", docsCSV)).
		WithBridges(bridges...).
		Build()
	if err != nil {
		t.Fatalf("build fixture registry: %v", err)
	}
	return reg
}

func TestBuildMergesSources(t *testing.T) {
	reg := buildFixture(t)

	if got := reg.Len(); got != 7 {
		t.Fatalf("Len() = %d, want 7", got)
	}

	wantOrder := []ID{"mach:Cell", "mach:Robot", "mach:Arm", "mach:Tool",
		"docs:Library", "docs:Doc", "docs:Note"}
	types := reg.Types()
	for i, want := range wantOrder {
		if types[i].ID != want {
			t.Errorf("Types()[%d] = %v, want %v", i, types[i].ID, want)
		}
	}

	robot, ok := reg.Get("mach:Robot")
	if !ok {
		t.Fatal("mach:Robot not registered")
	}
	if robot.Vocabulary != "mach" || robot.Label != "Robot" {
		t.Errorf("Robot vocabulary/label = %q/%q", robot.Vocabulary, robot.Label)
	}
	if len(robot.Parents) != 1 || robot.Parents[0] != "mach:Cell" {
		t.Errorf("Robot parents = %v, want [mach:Cell]", robot.Parents)
	}
	if len(robot.Children) != 1 || robot.Children[0] != "mach:Arm" {
		t.Errorf("Robot children = %v, want [mach:Arm]", robot.Children)
	}

	serial := robot.Property("serial")
	if serial == nil {
		t.Fatal("Robot has no serial property")
	}
	if !serial.Required || serial.Kind != vocabulary.KindString || serial.Cardinality != CardinalitySingle {
		t.Errorf("serial = %+v, want required single string", serial)
	}
}

func TestBuildResolvesReferenceTargets(t *testing.T) {
	reg := buildFixture(t)

	// Bare target resolves within the same vocabulary.
	robot, _ := reg.Get("mach:Robot")
	docked := robot.Property("docked_at")
	if docked == nil {
		t.Fatal("Robot has no docked_at property")
	}
	if docked.Kind != vocabulary.KindReference || docked.RefType != "mach:Cell" {
		t.Errorf("docked_at = kind %v ref %v, want ref mach:Cell", docked.Kind, docked.RefType)
	}

	// Prefixed target resolves across vocabularies.
	doc, _ := reg.Get("docs:Doc")
	about := doc.Property("about")
	if about == nil {
		t.Fatal("Doc has no about property")
	}
	if about.RefType != "mach:Robot" {
		t.Errorf("about ref type = %v, want mach:Robot", about.RefType)
	}

	tags := doc.Property("tags")
	if tags == nil || tags.Cardinality != CardinalityMultiple {
		t.Errorf("tags = %+v, want multiple cardinality", tags)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*Registry, error)
		sentinel error
		contains string
	}{
		{
			name: "no sources",
			build: func() (*Registry, error) {
				return NewBuilder().Build()
			},
			contains: "no vocabulary sources",
		},
		{
			name: "vocabulary added twice",
			build: func() (*Registry, error) {
				a := &vocabulary.Source{Name: "mach", Classes: []vocabulary.ClassRecord{{Local: "A"}}}
				b := &vocabulary.Source{Name: "mach", Classes: []vocabulary.ClassRecord{{Local: "B"}}}
				return NewBuilder().AddSource(a).AddSource(b).Build()
			},
			sentinel: vocabulary.ErrMalformedVocabulary,
			contains: "added twice",
		},
		{
			name: "duplicate type ID",
			build: func() (*Registry, error) {
				src := &vocabulary.Source{Name: "mach", Classes: []vocabulary.ClassRecord{{Local: "A"}, {Local: "A"}}}
				return NewBuilder().AddSource(src).Build()
			},
			sentinel: vocabulary.ErrMalformedVocabulary,
			contains: "duplicate type mach:A",
		},
		{
			name: "unresolved parent",
			build: func() (*Registry, error) {
				src := &vocabulary.Source{Name: "mach", Classes: []vocabulary.ClassRecord{
					{Local: "A", Parents: []string{"Missing"}},
				}}
				return NewBuilder().AddSource(src).Build()
			},
			sentinel: ErrUnresolvedReference,
			contains: "mach:Missing",
		},
		{
			name: "unresolved cross-vocabulary ref",
			build: func() (*Registry, error) {
				// docs references mach:Robot, but mach is not added.
				return NewBuilder().AddSource(parseFixture(t, "docs", docsCSV)).Build()
			},
			sentinel: ErrUnresolvedReference,
			contains: "mach:Robot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := tt.build()
			if err == nil {
				t.Fatalf("Build() succeeded with %d types, want error", reg.Len())
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("error %v does not wrap %v", err, tt.sentinel)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestBuildContainmentBridge(t *testing.T) {
	without := buildFixture(t)
	if without.AllowedChild("mach:Robot", "docs:Doc") {
		t.Fatal("cross-vocabulary containment allowed without a bridge")
	}

	with := buildFixture(t, BridgeRule{From: "mach:Robot", To: "docs:Doc", Mode: BridgeContainment})
	if !with.AllowedChild("mach:Robot", "docs:Doc") {
		t.Fatal("containment bridge did not allow docs:Doc under mach:Robot")
	}
	doc, _ := with.Get("docs:Doc")
	if !doc.AllowsParent("mach:Robot") {
		t.Error("docs:Doc parents missing mach:Robot after containment bridge")
	}
	// The declared parent link is untouched.
	if !doc.AllowsParent("docs:Library") {
		t.Error("docs:Doc lost its declared parent docs:Library")
	}
}

func TestBuildReferenceBridge(t *testing.T) {
	reg := buildFixture(t, BridgeRule{From: "mach:Robot", Property: "manual", To: "docs:Doc", Mode: BridgeReference})

	robot, _ := reg.Get("mach:Robot")
	manual := robot.Property("manual")
	if manual == nil {
		t.Fatal("reference bridge did not add manual property")
	}
	if manual.Kind != vocabulary.KindReference || manual.RefType != "docs:Doc" {
		t.Errorf("manual = kind %v ref %v, want ref docs:Doc", manual.Kind, manual.RefType)
	}
	if manual.Cardinality != CardinalityMultiple || manual.Required {
		t.Errorf("manual = %+v, want optional multiple", manual)
	}
}

func TestBuildBridgeErrors(t *testing.T) {
	tests := []struct {
		name     string
		rule     BridgeRule
		sentinel error
	}{
		{
			name:     "unknown from type",
			rule:     BridgeRule{From: "mach:Missing", To: "docs:Doc", Mode: BridgeContainment},
			sentinel: ErrUnresolvedReference,
		},
		{
			name:     "unknown to type",
			rule:     BridgeRule{From: "mach:Robot", To: "docs:Missing", Mode: BridgeContainment},
			sentinel: ErrUnresolvedReference,
		},
		{
			name:     "property collides with declared property",
			rule:     BridgeRule{From: "mach:Robot", Property: "serial", To: "docs:Doc", Mode: BridgeReference},
			sentinel: vocabulary.ErrMalformedVocabulary,
		},
		{
			name:     "reference without property name",
			rule:     BridgeRule{From: "mach:Robot", To: "docs:Doc", Mode: BridgeReference},
			sentinel: vocabulary.ErrMalformedVocabulary,
		},
		{
			name:     "containment with property name",
			rule:     BridgeRule{From: "mach:Robot", Property: "x", To: "docs:Doc", Mode: BridgeContainment},
			sentinel: vocabulary.ErrMalformedVocabulary,
		},
		{
			name:     "unknown mode",
			rule:     BridgeRule{From: "mach:Robot", To: "docs:Doc", Mode: "overlay"},
			sentinel: vocabulary.ErrMalformedVocabulary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder().
				AddSource(parseFixture(t, "mach", machinesCSV)).
				AddSource(parseFixture(t, "docs", docsCSV)).
				WithBridges(tt.rule).
				Build()
			if err == nil {
				t.Fatal("Build() succeeded, want error")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error %v does not wrap %v", err, tt.sentinel)
			}
		})
	}
}

func TestVersionFingerprint(t *testing.T) {
	a := buildFixture(t)
	b := buildFixture(t)

	if a.Version() != b.Version() {
		t.Errorf("identical builds disagree: %s vs %s", a.Version(), b.Version())
	}
	if !strings.HasPrefix(a.Version(), "sha256:") {
		t.Errorf("Version() = %q, want sha256: prefix", a.Version())
	}
	if len(a.Version()) != len("sha256:")+64 {
		t.Errorf("Version() length = %d, want full hex digest", len(a.Version()))
	}

	bridged := buildFixture(t, BridgeRule{From: "mach:Robot", To: "docs:Doc", Mode: BridgeContainment})
	if bridged.Version() == a.Version() {
		t.Error("bridged registry shares fingerprint with unbridged registry")
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	reg, err := NewDefaultRegistry()
	if err != nil {
		t.Fatalf("NewDefaultRegistry: %v", err)
	}

	dataset, ok := reg.Get("dcat:Dataset")
	if !ok {
		t.Fatal("dcat:Dataset not registered")
	}
	if dataset.IRI == "" {
		t.Error("dcat:Dataset has no class IRI")
	}
	if title := dataset.Property("title"); title == nil || title.IRI == "" {
		t.Errorf("dcat:Dataset title = %+v, want registered predicate IRI", title)
	}

	system, ok := reg.Get("opcua:MotionDeviceSystemType")
	if !ok {
		t.Fatal("opcua:MotionDeviceSystemType not registered")
	}
	if system.NodeKind != vocabulary.NodeKindObjectType {
		t.Errorf("system node kind = %v, want ObjectType", system.NodeKind)
	}
	if system.NodeID != 1002 {
		t.Errorf("system node id = %d, want 1002", system.NodeID)
	}

	// The built-in bridge table connects the vocabularies.
	if !reg.AllowedChild("opcua:ControllerType", "dcat:Dataset") {
		t.Error("default registry does not allow datasets under controllers")
	}
	if described := system.Property("described_by"); described == nil || described.RefType != "dcat:Dataset" {
		t.Errorf("described_by = %+v, want ref dcat:Dataset", described)
	}
}
