// Package asset holds the instance model: nodes typed by the schema
// registry, arranged in a containment forest, carrying property
// values.
//
// A Graph is a single-writer arena. Every mutation is guarded: all
// checks run before the first write, so a failed operation leaves the
// graph exactly as it was. Accessors hand out live pointers for
// reading; callers mutate only through CreateNode, MoveNode,
// SetProperty, ClearProperty, and DeleteNode. That keeps the
// structural invariants: each non-root node appears in exactly one
// child list, child lists and parent fields agree, and parent links
// form a forest.
//
// Graphs restored from disk (RestoreGraph) may reference types or
// properties the running registry lacks; such graphs load structurally
// and are diagnosed by the validate package rather than rejected
// blind.
package asset
