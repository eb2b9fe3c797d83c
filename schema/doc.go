// Package schema merges parsed vocabulary sources into a single
// immutable type registry that the rest of the system consults.
//
// A Registry is produced by a Builder in two phases. The first phase
// registers every class from every source under a namespaced ID
// ("dcat:Dataset", "opcua:AxisType") and fails on duplicates. The
// second phase resolves parent links and reference targets across
// sources, derives the child table, and applies the configured bridge
// rules that connect the vocabularies. Any unresolved name aborts the
// build: a Registry either contains a fully linked type system or does
// not exist.
//
// Registries are read-only after Build returns. Lookups hand out
// shared pointers into the registry, so callers must not mutate the
// returned definitions. The zero-configuration path is NewDefaultRegistry,
// which builds from the embedded vocabulary sources and the built-in
// bridge table; Global exposes that same registry as a process-wide
// singleton for command wiring.
package schema
