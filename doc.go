// Package lvlset is your in-memory companion for incremental connectivity:
// a disjoint-set (union-find) structure over any comparable element type.
//
// 🚀 What is lvlset?
//
//	A small, focused library for discovering groups as connections appear:
//		• Link two elements at any time — no prior bound on how many exist
//		• Ask "same group?" in amortized near-constant time
//		• Decompose the final partition into plain element sets
//		• Union by rank + full path compression: the classic optimal pairing
//
// ✨ Why choose lvlset?
//
//   - Beginner-friendly – three verbs (Link, IsLinked, Sets) cover the API
//   - Generic – elements are any comparable Go type: strings, ints, UUIDs…
//   - Honest contracts – the mutating query and the consuming decomposition
//     are documented, deliberate design, not surprises
//   - Pure Go core – no cgo, no reflection
//
// Everything lives in two subpackages:
//
//	dsu/ — the DisjointSet registry: Link, IsLinked, Insert, Contains, Sets
//	set/ — the minimal generic Set type that Sets() hands back
//
// Quick ASCII example:
//
//	    a───b        d───e        f
//	    │
//	    c
//
//	three links in, three groups out: {a,b,c}, {d,e}, {f}.
//
// Dive into dsu's package docs for the full contract, and the examples/
// directory for runnable demos.
//
//	go get github.com/katalvlaran/lvlset
package lvlset
