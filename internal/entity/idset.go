package entity

import "sort"

// IDSet is an immutable set of identifiers. The zero value is an empty set.
// Every "mutation" returns a new set and leaves the receiver untouched.
type IDSet struct {
	m map[string]struct{}
}

// NewIDSet builds a set from ids, ignoring empty strings and duplicates.
func NewIDSet(ids ...string) IDSet {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		m[id] = struct{}{}
	}
	return IDSet{m: m}
}

// WithAdded returns the union of s and {id}.
func (s IDSet) WithAdded(id string) IDSet {
	if id == "" || s.Has(id) {
		return s
	}
	m := make(map[string]struct{}, len(s.m)+1)
	for k := range s.m {
		m[k] = struct{}{}
	}
	m[id] = struct{}{}
	return IDSet{m: m}
}

// Union returns a new set holding the members of both sets.
func (s IDSet) Union(other IDSet) IDSet {
	if other.Len() == 0 {
		return s
	}
	if s.Len() == 0 {
		return other
	}
	m := make(map[string]struct{}, len(s.m)+len(other.m))
	for k := range s.m {
		m[k] = struct{}{}
	}
	for k := range other.m {
		m[k] = struct{}{}
	}
	return IDSet{m: m}
}

// Has reports membership.
func (s IDSet) Has(id string) bool {
	_, ok := s.m[id]
	return ok
}

// Len returns the number of members.
func (s IDSet) Len() int { return len(s.m) }

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
