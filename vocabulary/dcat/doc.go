// Package dcat provides well-known predicate metadata for the
// data-catalog vocabulary.
//
// The default catalog vocabulary describes digital assets with DCAT v3
// terms: catalogs, datasets, distributions, data services, catalog
// records, and the agents responsible for them. This package registers
// metadata for every property of those classes with the semstreams
// vocabulary registry so the schema merger can attach canonical W3C
// IRIs to merged type definitions and the RDF exporter can emit
// standards-aligned statements.
//
// Predicates follow the registry convention for vocabulary sources:
// <vocab>.<snake_case class>.<property>, e.g. "dcat.dataset.title".
// Importing the package registers everything in init(); a blank import
// is enough:
//
//	import _ "github.com/c360studio/roxmodel/vocabulary/dcat"
package dcat
