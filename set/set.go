package set

import "iter"

// Set is an unordered collection of unique elements of type K.
// Construct with New; a nil Set supports reads (Has, Len) but not Add.
type Set[K comparable] map[K]struct{}

// New returns a Set containing the given items (duplicates collapse).
func New[K comparable](items ...K) Set[K] {
	s := make(Set[K], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts k into the set. Adding an existing element is a no-op.
func (s Set[K]) Add(k K) {
	s[k] = struct{}{}
}

// Has reports whether k is a member of the set.
func (s Set[K]) Has(k K) bool {
	_, ok := s[k]

	return ok
}

// Len returns the number of elements in the set.
func (s Set[K]) Len() int {
	return len(s)
}

// Elems returns the elements as a slice in unspecified order.
func (s Set[K]) Elems() []K {
	out := make([]K, 0, len(s))
	for k := range s {
		out = append(out, k)
	}

	return out
}

// All returns an iterator over the elements in unspecified order.
func (s Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s {
			if !yield(k) {
				return
			}
		}
	}
}

// Equal reports whether s and other contain exactly the same elements.
func (s Set[K]) Equal(other Set[K]) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}

	return true
}
