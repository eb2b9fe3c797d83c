// Package engine is the facade over the description engine: it boots
// the type registry from the configured vocabulary sources, opens the
// asset store, and hands out editing sessions.
//
// A Session wraps one asset graph and forwards the guarded mutation
// operations. Save and Export validate first; a graph with violations
// never reaches disk or an export stream. External surfaces (the CLI
// first of all) are expected to go through this package rather than
// assembling the core packages themselves.
package engine
