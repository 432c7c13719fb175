package util

// SVSet is a string-keyed set that also remembers a value for each member,
// e.g. a name mapped to its assigned id. It exists for
// internal/loader's name-resolution bookkeeping -- a name is either absent,
// or present with exactly one value attached.
type SVSet[V any] map[string]V

// NewSVSet returns an empty SVSet.
func NewSVSet[V any]() SVSet[V] {
	return SVSet[V]{}
}

// Set assigns val to name, adding name to the set if it wasn't already a
// member.
func (s SVSet[V]) Set(name string, val V) {
	s[name] = val
}

// Get returns the value assigned to name, or the zero value of V if name
// isn't in the set.
func (s SVSet[V]) Get(name string) V {
	return s[name]
}

// Has reports whether name is a member of the set.
func (s SVSet[V]) Has(name string) bool {
	_, ok := s[name]
	return ok
}
