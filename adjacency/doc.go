// Package adjacency defines the mutable adjacency-list graph consumed by
// the edgewalk package.
//
// What
//
//   - Graph[K] maps a node label to the ordered sequence of its neighbours.
//   - An undirected edge {u,v} is stored twice: v in g[u] and u in g[v].
//   - Helpers add, query and remove single adjacency entries, so an edge can
//     be "consumed" from one or both sides.
//
// Determinism
//
//	Map iteration order never leaks out of this package: every operation
//	that enumerates nodes walks SortedKeys(), and adjacency sequences keep
//	their insertion order.
//
// Ownership
//
//	Graph is a plain map and is NOT safe for concurrent use. Algorithms that
//	mutate it expect exclusive access; take a Clone() when the caller must
//	keep the original.
//
// Complexity (V = keys, D = max degree)
//
//   - Contains / RemoveOne: O(D)
//   - SortedKeys:           O(V log V)
//   - Clone / Entries:      O(V + E)
//   - Validate:             O(V·D)
package adjacency
