// Package dsu implements the registry operations: insertion, linking,
// connectivity queries, and the final decomposition into element sets.
package dsu

import "github.com/katalvlaran/lvlset/set"

// Insert registers k as a singleton group if unseen. The returned bool
// reports whether k was new; inserting a known element has no effect.
// Returns ErrFinalized after Sets has consumed the registry.
//
// Complexity: O(1) amortized.
func (d *DisjointSet[K]) Insert(k K) (bool, error) {
	if d.sealed {
		return false, ErrFinalized
	}
	if _, ok := d.ids[k]; ok {
		// Idempotent: already known, nothing changes.
		return false, nil
	}
	d.add(k)

	return true, nil
}

// Contains reports whether k has ever been seen by the registry.
// Unlike IsLinked, this never inserts and never compresses.
//
// Complexity: O(1) expected.
func (d *DisjointSet[K]) Contains(k K) bool {
	_, ok := d.ids[k]

	return ok
}

// Link declares a and b members of the same group, inserting either element
// if unseen. Self-links are legal and produce (at most) a singleton.
// Returns ErrFinalized after Sets has consumed the registry.
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[K]) Link(a, b K) error {
	if d.sealed {
		return ErrFinalized
	}
	// Resolve both elements to indices first: even a merged-away no-op
	// union must still register fresh elements (that is the contract).
	ia := d.idOrAdd(a)
	ib := d.idOrAdd(b)
	d.union(ia, ib)

	return nil
}

// IsLinked reports whether a and b currently belong to the same group.
// Both arguments are inserted if unseen, so querying two distinct unknown
// elements returns false and leaves behind two singletons; querying an
// unknown element against itself returns true. The walk compresses paths —
// this query mutates internal state on purpose.
// Returns ErrFinalized after Sets has consumed the registry.
//
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[K]) IsLinked(a, b K) (bool, error) {
	if d.sealed {
		return false, ErrFinalized
	}
	ia := d.idOrAdd(a)
	ib := d.idOrAdd(b)

	return d.find(ia) == d.find(ib), nil
}

// Len returns the number of distinct elements the registry has seen.
//
// Complexity: O(1).
func (d *DisjointSet[K]) Len() int {
	return len(d.nodes)
}

// Count returns the current number of disjoint groups (equal to Len before
// any effective Link, shrinking by one per merging Link).
//
// Complexity: O(n).
func (d *DisjointSet[K]) Count() int {
	roots := 0
	for i := range d.nodes {
		if d.nodes[i].parent == i {
			roots++
		}
	}

	return roots
}

// Sets decomposes the registry into its disjoint groups and seals it.
// Every element seen appears in exactly one returned set. Groups are
// ordered by first discovery of their root during the final sweep (an
// implementation detail — deterministic, but not part of the contract);
// order within a group is inherently unordered.
//
// After a successful call the registry is finalized: Link, IsLinked,
// Insert, and any further Sets return ErrFinalized, while Contains, Len,
// and Count keep answering.
//
// Complexity: O(n·α(n)) time, O(n) memory for the output.
func (d *DisjointSet[K]) Sets() ([]set.Set[K], error) {
	if d.sealed {
		return nil, ErrFinalized
	}
	d.sealed = true

	// One find per index fully compresses every chain, then indices group
	// by root and map back to their original element values.
	pos := make(map[int]int, len(d.nodes)) // root index → slot in out
	var out []set.Set[K]
	for i := range d.nodes {
		root := d.find(i)
		p, ok := pos[root]
		if !ok {
			p = len(out)
			pos[root] = p
			out = append(out, set.New[K]())
		}
		out[p].Add(d.elems[i])
	}

	return out, nil
}

// add assigns the next dense index to k and records it as its own root with
// rank 0. Caller guarantees k is unseen.
func (d *DisjointSet[K]) add(k K) int {
	idx := len(d.nodes)
	d.ids[k] = idx
	d.elems = append(d.elems, k)
	d.nodes = append(d.nodes, node{parent: idx})

	return idx
}

// idOrAdd resolves k to its index, inserting it first if unseen.
func (d *DisjointSet[K]) idOrAdd(k K) int {
	if idx, ok := d.ids[k]; ok {
		return idx
	}

	return d.add(k)
}

// find returns the root of i's tree. Two-pass iterative walk: locate the
// root, then repoint every node on the path directly at it (full path
// compression). Never touches ranks.
func (d *DisjointSet[K]) find(i int) int {
	// Pass 1: follow parents to the root (self-parented node).
	root := i
	for d.nodes[root].parent != root {
		root = d.nodes[root].parent
	}
	// Pass 2: rewrite every visited parent to the root.
	for i != root {
		i, d.nodes[i].parent = d.nodes[i].parent, root
	}

	return root
}

// union merges the groups containing indices a and b by rank.
// Equal ranks attach b's root under a's root and bump the surviving rank —
// a fixed tie-break, so merge results are deterministic.
func (d *DisjointSet[K]) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		// Already one group; no-op.
		return
	}
	switch {
	case d.nodes[ra].rank < d.nodes[rb].rank:
		d.nodes[ra].parent = rb
	case d.nodes[ra].rank > d.nodes[rb].rank:
		d.nodes[rb].parent = ra
	default:
		d.nodes[rb].parent = ra
		d.nodes[ra].rank++
	}
}
