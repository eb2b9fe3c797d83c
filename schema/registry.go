package schema

import "strings"

// Registry is a fully linked, read-only type system. Lookups return
// shared pointers into the registry; callers must not mutate them.
type Registry struct {
	types   map[ID]*TypeDefinition
	order   []ID
	version string
}

// Get returns the type registered under the given ID.
func (r *Registry) Get(id ID) (*TypeDefinition, bool) {
	t, ok := r.types[id]
	return t, ok
}

// Types returns every registered type in registration order: source
// order, then row order within each source.
func (r *Registry) Types() []*TypeDefinition {
	out := make([]*TypeDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.types[id])
	}
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}

// Version returns the registry fingerprint, "sha256:" followed by the
// hex digest of the canonical type dump. Saved assets carry it so a
// load against a different type system is detected.
func (r *Registry) Version() string {
	return r.version
}

// RootTypes returns the types whose nodes may sit at the top of an
// asset graph, in registration order.
func (r *Registry) RootTypes() []*TypeDefinition {
	var out []*TypeDefinition
	for _, id := range r.order {
		if t := r.types[id]; t.RootCapable() {
			out = append(out, t)
		}
	}
	return out
}

// ByVocabulary returns the types of one vocabulary in registration order.
func (r *Registry) ByVocabulary(vocab string) []*TypeDefinition {
	var out []*TypeDefinition
	for _, id := range r.order {
		if t := r.types[id]; t.Vocabulary == vocab {
			out = append(out, t)
		}
	}
	return out
}

// AllowedChild reports whether a node of the child type may be placed
// under a node of the parent type. Unregistered IDs are never allowed.
func (r *Registry) AllowedChild(parent, child ID) bool {
	p, ok := r.types[parent]
	if !ok {
		return false
	}
	return p.AllowsChild(child)
}

// Path returns the hierarchy path from a root type down to the given
// type, following first-declared parents. The path ends with id
// itself; an unregistered id yields nil.
func (r *Registry) Path(id ID) []ID {
	if _, ok := r.types[id]; !ok {
		return nil
	}
	var path []ID
	visited := make(map[ID]bool)
	for cur := id; !visited[cur]; {
		visited[cur] = true
		path = append([]ID{cur}, path...)
		t := r.types[cur]
		if len(t.Parents) == 0 {
			break
		}
		cur = t.Parents[0]
	}
	return path
}

// Search returns the types whose ID, label, or hierarchy path contains
// the term, case-insensitively, in registration order. Empty terms
// match nothing.
func (r *Registry) Search(term string) []*TypeDefinition {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []*TypeDefinition
	for _, id := range r.order {
		t := r.types[id]
		if strings.Contains(strings.ToLower(string(t.ID)), term) ||
			strings.Contains(strings.ToLower(t.Label), term) ||
			strings.Contains(strings.ToLower(r.pathString(id)), term) {
			out = append(out, t)
		}
	}
	return out
}

// pathString renders the hierarchy path as "Root > ... > Local".
func (r *Registry) pathString(id ID) string {
	path := r.Path(id)
	labels := make([]string, 0, len(path))
	for _, pid := range path {
		labels = append(labels, r.types[pid].Label)
	}
	return strings.Join(labels, " > ")
}
