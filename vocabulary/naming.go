package vocabulary

import (
	"strings"
	"unicode"
)

// PredicateName returns the global predicate registry key for a class
// property: <vocab>.<snake_case class>.<property>. Well-known predicate
// packages register metadata under these names, and the schema merger
// looks IRIs up by the same convention, so the two sides never need to
// know about each other directly.
func PredicateName(vocab, class, property string) string {
	var sb strings.Builder
	sb.WriteString(vocab)
	sb.WriteByte('.')
	sb.WriteString(snakeCase(class))
	sb.WriteByte('.')
	sb.WriteString(property)
	return sb.String()
}

func snakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
