package assets

import (
	"testing"

	"github.com/c360studio/roxmodel/vocabulary"
)

func TestCatalog(t *testing.T) {
	src, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	if src.Name != CatalogName {
		t.Errorf("Name = %q, want %q", src.Name, CatalogName)
	}
	if len(src.Classes) != 6 {
		t.Errorf("len(Classes) = %d, want 6", len(src.Classes))
	}

	dataset := src.Class("Dataset")
	if dataset == nil {
		t.Fatal("Class(Dataset) = nil")
	}
	if len(dataset.Parents) != 1 || dataset.Parents[0] != "Catalog" {
		t.Errorf("Dataset.Parents = %v, want [Catalog]", dataset.Parents)
	}

	var title, keyword, distribution *vocabulary.PropertyRecord
	for i := range dataset.Properties {
		switch dataset.Properties[i].Name {
		case "title":
			title = &dataset.Properties[i]
		case "keyword":
			keyword = &dataset.Properties[i]
		case "distribution":
			distribution = &dataset.Properties[i]
		}
	}
	if title == nil || !title.Required || title.Kind.Kind != vocabulary.KindString {
		t.Errorf("Dataset.title = %+v, want required string", title)
	}
	if keyword == nil || !keyword.Kind.Multiple {
		t.Errorf("Dataset.keyword = %+v, want multiple", keyword)
	}
	if distribution == nil || distribution.Kind.Kind != vocabulary.KindReference || distribution.Kind.Ref != "Distribution" {
		t.Errorf("Dataset.distribution = %+v, want ref(Distribution)", distribution)
	}

	// The owner block may sit under a catalog or a dataset.
	agent := src.Class("Agent")
	if agent == nil {
		t.Fatal("Class(Agent) = nil")
	}
	if len(agent.Parents) != 2 {
		t.Errorf("Agent.Parents = %v, want two parents", agent.Parents)
	}
}

func TestRobotics(t *testing.T) {
	src, err := Robotics()
	if err != nil {
		t.Fatalf("Robotics() error: %v", err)
	}
	if src.Name != RoboticsName {
		t.Errorf("Name = %q, want %q", src.Name, RoboticsName)
	}
	if len(src.Classes) != 10 {
		t.Errorf("len(Classes) = %d, want 10", len(src.Classes))
	}

	system := src.Class("MotionDeviceSystemType")
	if system == nil {
		t.Fatal("Class(MotionDeviceSystemType) = nil")
	}
	if len(system.Parents) != 0 {
		t.Errorf("system.Parents = %v, want root-capable", system.Parents)
	}
	if system.NodeKind != vocabulary.NodeKindObjectType || system.NodeID != 1002 {
		t.Errorf("system node metadata = %s/%d, want ObjectType/1002", system.NodeKind, system.NodeID)
	}

	device := src.Class("MotionDeviceType")
	if device == nil {
		t.Fatal("Class(MotionDeviceType) = nil")
	}
	required := 0
	for _, p := range device.Properties {
		if p.Required {
			required++
		}
	}
	// manufacturer, model, serial_number
	if required != 3 {
		t.Errorf("MotionDeviceType required properties = %d, want 3", required)
	}

	// Power train registers with no properties of its own.
	pt := src.Class("PowerTrainType")
	if pt == nil {
		t.Fatal("Class(PowerTrainType) = nil")
	}
	if len(pt.Properties) != 0 {
		t.Errorf("PowerTrainType.Properties = %v, want none", pt.Properties)
	}
}
