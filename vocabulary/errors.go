package vocabulary

import "errors"

// ErrMalformedVocabulary indicates a vocabulary source that cannot be
// parsed: a missing or unknown column, a bad row, or a reference to a
// parent class the source never declares. Callers treat it as fatal at
// startup; no partial Source is ever returned alongside it.
var ErrMalformedVocabulary = errors.New("malformed vocabulary")
