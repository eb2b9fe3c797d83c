// Package schematest provides prebuilt registries for tests.
// It builds from the embedded vocabulary sources so every package can
// share one canonical type system without repeating fixture CSV.
package schematest

import (
	"testing"

	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/vocabulary/assets"
)

// Registry builds the default registry: embedded vocabularies plus the
// built-in bridge table. Fails the test if the build fails.
func Registry(tb testing.TB) *schema.Registry {
	tb.Helper()
	reg, err := schema.NewDefaultRegistry()
	if err != nil {
		tb.Fatalf("build default registry: %v", err)
	}
	return reg
}

// RegistryNoBridges builds the embedded vocabularies without bridge
// rules, for exercising cross-vocabulary rejection paths.
func RegistryNoBridges(tb testing.TB) *schema.Registry {
	tb.Helper()
	catalog, err := assets.Catalog()
	if err != nil {
		tb.Fatalf("load embedded catalog vocabulary: %v", err)
	}
	robotics, err := assets.Robotics()
	if err != nil {
		tb.Fatalf("load embedded robotics vocabulary: %v", err)
	}
	reg, err := schema.NewBuilder().AddSource(catalog).AddSource(robotics).Build()
	if err != nil {
		tb.Fatalf("build registry: %v", err)
	}
	return reg
}
