// Package set provides a minimal generic hash set over comparable elements.
//
// It is the output currency of dsu.DisjointSet.Sets: each disjoint group of
// elements is returned as a set.Set. The package is deliberately small —
// membership, insertion, iteration and equality — because that is all the
// decomposition (and its callers) need.
//
// A Set is a plain map under the hood; the zero value of the type is nil and
// not usable, always construct via New.
//
// Complexity: Add/Has O(1) expected; Elems/All/Equal O(n).
//
// Not safe for concurrent use without external synchronization.
package set
