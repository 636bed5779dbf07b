// Package dsu provides an incremental disjoint-set (union-find) structure
// over arbitrary comparable elements.
//
// What & Why
//
//   - What is a disjoint set?
//     A partition of elements into non-overlapping groups, supporting two
//     core operations: declare two elements connected (Link) and ask whether
//     two elements are connected (IsLinked). The partition is exactly the
//     set of equivalence classes of "has the same representative root".
//
//   - Why it matters:
//
//   - Connectivity tracking: merge network hosts, grid cells, graph vertices
//     or account identifiers as connections are discovered, with no prior
//     bound on how many elements will appear.
//
//   - Kruskal-style algorithms: union-find is the cycle detector inside MST
//     construction and many clustering methods.
//
//   - Deduplication: group records that transitively share any identifier.
//
// Structure
//
// DisjointSet[K] maps each distinct element to a dense internal index on
// first sighting (insertion order, stable for the registry's lifetime,
// never reused) and keeps one node per index holding a parent pointer and a
// rank. A node whose parent is itself is a root — the representative of its
// group. Two elements are linked iff find on their indices reaches the same
// root.
//
//   - find: walks parent pointers to the root, then rewrites every visited
//     node's parent to point directly at that root (full path compression).
//     Ranks are never changed by find.
//
//   - union: attaches the lower-rank root under the higher-rank one; on a
//     rank tie the second root goes under the first and the surviving
//     root's rank grows by one. Union by rank bounds tree height to
//     O(log n); combined with path compression the amortized cost per
//     operation is the inverse-Ackermann bound — effectively constant.
//
// Contract notes
//
//   - IsLinked INSERTS unseen arguments (each becomes a fresh singleton) and
//     compresses paths while answering. A read-shaped query that mutates is
//     intentional — the structure is incremental precisely because querying
//     also registers elements. Use Contains for a pure, non-inserting probe.
//
//   - Sets finalizes the registry: it decomposes the partition into
//     set.Set groups and seals the registry. After Sets, the mutating
//     operations (Link, IsLinked, Insert) and a second Sets return
//     ErrFinalized; pure reads (Contains, Len, Count) remain valid. Before
//     sealing, every operation is total — ErrFinalized is the only error
//     this package can produce.
//
//   - No removal or split: the structure is append-only. No concurrency:
//     a registry is exclusively owned by one caller at a time.
//
// Complexity
//
//   - Link / IsLinked / Insert / Contains: O(α(n)) amortized, effectively
//     constant; Len: O(1); Count: O(n); Sets: O(n·α(n)).
//   - Memory: O(n) for n distinct elements seen.
//
// GoDoc Summary
//
//   - New[K]() *DisjointSet[K] — empty registry.
//   - FromPairs(pairs) / FromSeq(seq) — bulk construction, one Link per pair
//     in order.
//   - Link(a, b) error — insert both, merge their groups.
//   - IsLinked(a, b) (bool, error) — insert both, compare roots.
//   - Insert(k) (bool, error) — register k as a singleton; reports first
//     sighting.
//   - Contains(k) bool — non-inserting membership probe.
//   - Len() int / Count() int — elements seen / current number of groups.
//   - Sets() ([]set.Set[K], error) — decompose and seal.
//
// For usage, see example_test.go in this package.
package dsu
