// Package dsu defines the DisjointSet type, its constructors, and the single
// sentinel error of the package.
package dsu

import (
	"errors"
	"iter"
)

// ErrFinalized indicates a mutating call on a registry already consumed by
// Sets. Pure reads (Contains, Len, Count) never return it.
var ErrFinalized = errors.New("dsu: registry finalized by Sets")

// node is one entry of the registry's dense index space.
// parent == own index marks a root; rank is meaningful only at roots and
// upper-bounds the height of the tree hanging below.
type node struct {
	parent int
	rank   int
}

// DisjointSet tracks a partition of elements of type K into disjoint groups.
// Elements enter the registry on first mention — via Link, IsLinked, or
// Insert — and are never removed. The zero value is not usable; construct
// with New, FromPairs, or FromSeq.
//
// Fields:
//
//	ids    — element → dense internal index, assigned on first sighting.
//	elems  — index → element, in insertion order (reverse of ids).
//	nodes  — parent/rank entry per index; see node.
//	sealed — set once Sets has consumed the registry.
type DisjointSet[K comparable] struct {
	ids    map[K]int
	elems  []K
	nodes  []node
	sealed bool
}

// New returns an empty registry for elements of type K.
//
// Complexity: O(1).
func New[K comparable]() *DisjointSet[K] {
	return &DisjointSet[K]{ids: make(map[K]int)}
}

// FromPairs builds a registry by calling Link once per pair, in slice order.
// Equivalent to starting from New and linking sequentially; no additional
// algorithmic content.
//
// Complexity: O(len(pairs)·α(n)) amortized.
func FromPairs[K comparable](pairs [][2]K) *DisjointSet[K] {
	d := New[K]()
	for _, p := range pairs {
		// Link on a fresh registry cannot fail; the error is structurally nil.
		_ = d.Link(p[0], p[1])
	}

	return d
}

// FromSeq builds a registry by calling Link once per yielded pair, in
// iteration order.
//
// Complexity: O(pairs·α(n)) amortized.
func FromSeq[K comparable](seq iter.Seq2[K, K]) *DisjointSet[K] {
	d := New[K]()
	for a, b := range seq {
		_ = d.Link(a, b)
	}

	return d
}
