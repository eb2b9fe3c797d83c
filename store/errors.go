package store

import "errors"

// Load-site errors. All are recoverable at the call site; a bad file
// on disk never aborts the process.
var (
	// ErrCorruptAsset is returned when a stored file is structurally
	// unreadable: bad JSON, a wrong format marker, a record without an
	// id or type, a duplicate id, or a parent no record declares.
	ErrCorruptAsset = errors.New("corrupt asset file")

	// ErrSchemaVersionMismatch is returned when a stored file was
	// written under a different file format revision or a different
	// vocabulary fingerprint than the running registry.
	ErrSchemaVersionMismatch = errors.New("schema version mismatch")

	// ErrAssetNotFound is returned when no stored file matches the
	// requested asset name.
	ErrAssetNotFound = errors.New("asset not found")
)
