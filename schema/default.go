package schema

import (
	"fmt"

	"github.com/c360studio/roxmodel/vocabulary/assets"
	"github.com/c360studio/roxmodel/vocabulary/dcat"
	"github.com/c360studio/roxmodel/vocabulary/opcua"
)

// NewDefaultRegistry builds the registry from the embedded vocabulary
// sources and the built-in bridge table. Used when no configuration
// overrides the vocabulary paths.
func NewDefaultRegistry() (*Registry, error) {
	catalog, err := assets.Catalog()
	if err != nil {
		return nil, fmt.Errorf("load embedded catalog vocabulary: %w", err)
	}
	robotics, err := assets.Robotics()
	if err != nil {
		return nil, fmt.Errorf("load embedded robotics vocabulary: %w", err)
	}
	return NewBuilder().
		AddSource(catalog).
		AddSource(robotics).
		WithBridges(DefaultBridges()...).
		WithClassIRIs(assets.CatalogName, dcat.ClassIRIs).
		WithClassIRIs(assets.RoboticsName, opcua.ClassIRIs).
		Build()
}
