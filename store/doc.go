// Package store persists asset graphs as line-oriented JSON files.
//
// Each file holds one graph: a manifest line followed by one
// self-contained record per node, in graph insertion order. Writes go
// through a temp file and an atomic rename, so a reader of the store
// directory sees the previous file or the new one, never a torn mix.
// Decoding is a whole-batch transaction: a corrupt or mismatched file
// yields an error and no graph at all.
package store
