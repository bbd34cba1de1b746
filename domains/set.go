// Package domains holds the ordered reference list of known-good email
// domains used for typo detection.
//
// A Set is built once and never mutated. Its iteration order is part of its
// identity: when several entries are equally close to a candidate, the
// matcher picks the one that comes first.
package domains

import (
	"iter"
	"slices"
)

// Set is an immutable, ordered, deduplicated collection of domains.
// The zero value is an empty set.
type Set struct {
	list  []string
	index map[string]struct{}
}

// New builds a Set from list, keeping the first occurrence of any duplicate.
// Entries are stored verbatim: no trimming, no case folding.
func New(list []string) *Set {
	s := &Set{
		list:  make([]string, 0, len(list)),
		index: make(map[string]struct{}, len(list)),
	}
	for _, d := range list {
		if _, dup := s.index[d]; dup {
			continue
		}
		s.index[d] = struct{}{}
		s.list = append(s.list, d)
	}
	return s
}

// Contains reports whether domain is in the set (exact, case-sensitive).
func (s *Set) Contains(domain string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[domain]
	return ok
}

// Len returns the number of distinct domains.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}

// All yields the domains in canonical order.
func (s *Set) All() iter.Seq[string] {
	if s == nil {
		return func(func(string) bool) {}
	}
	return slices.Values(s.list)
}

// List returns a copy of the domains in canonical order.
func (s *Set) List() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.list)
}
