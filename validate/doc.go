// Package validate checks an asset graph against its type registry
// and reports everything wrong with it as a list of violations.
//
// Validation is pure: it never mutates the graph, and the same graph
// and registry always produce the same list in the same order (graph
// insertion order, then property declaration order). An empty list
// means the graph is well formed; a non-empty List doubles as an error
// so callers can refuse to act on a broken graph.
//
// The guarded graph operations keep in-process graphs clean, so most
// violations come from graphs restored from disk: files written
// against other registries, hand-edited records, or references whose
// targets were removed.
package validate
