package schema

import "errors"

// ErrUnresolvedReference indicates that linking failed because a
// parent, reference target, or bridge endpoint names a type that no
// loaded vocabulary declares. It is fatal: the registry is not built.
var ErrUnresolvedReference = errors.New("unresolved reference")
