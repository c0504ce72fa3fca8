// File: graph.go
// Role: Query and mutation primitives over Graph.
// Policy:
//   - Removals touch exactly one adjacency entry; callers decide whether an
//     edge is consumed from one side or both.
//   - Enumeration is always in ascending label order.

package adjacency

import (
	"fmt"
	"slices"
)

// AddVertex ensures u is a key of g, with an empty sequence if it is new.
func (g Graph[K]) AddVertex(u K) {
	if _, ok := g[u]; !ok {
		g[u] = []K{}
	}
}

// AddEdge appends v to g[u] and u to g[v].
// For a self-loop both entries land in g[u].
func (g Graph[K]) AddEdge(u, v K) {
	g[u] = append(g[u], v)
	g[v] = append(g[v], u)
}

// HasVertex reports whether u is a key of g.
func (g Graph[K]) HasVertex(u K) bool {
	_, ok := g[u]

	return ok
}

// Neighbors returns a copy of u's adjacency sequence, or nil if u is unknown.
func (g Graph[K]) Neighbors(u K) []K {
	if nbrs, ok := g[u]; ok {
		return slices.Clone(nbrs)
	}

	return nil
}

// Degree returns the number of entries left in u's adjacency sequence.
func (g Graph[K]) Degree(u K) int {
	return len(g[u])
}

// SortedKeys returns all node labels in ascending order.
// Complexity: O(V log V).
func (g Graph[K]) SortedKeys() []K {
	keys := make([]K, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Contains reports whether v occurs in u's adjacency sequence.
// Unknown u yields false.
func (g Graph[K]) Contains(u, v K) bool {
	return slices.Contains(g[u], v)
}

// RemoveOne deletes the first occurrence of v from u's adjacency sequence.
// It reports false, leaving g untouched, when v is not adjacent to u.
func (g Graph[K]) RemoveOne(u, v K) bool {
	nbrs, ok := g[u]
	if !ok {
		return false
	}
	i := slices.Index(nbrs, v)
	if i < 0 {
		return false
	}
	g[u] = slices.Delete(nbrs, i, i+1)

	return true
}

// Entries returns the total number of adjacency entries across all nodes.
// For a symmetric graph this is twice the edge count.
func (g Graph[K]) Entries() int {
	n := 0
	for _, nbrs := range g {
		n += len(nbrs)
	}

	return n
}

// EdgeCount returns Entries()/2, the number of undirected edges when g is symmetric.
func (g Graph[K]) EdgeCount() int {
	return g.Entries() / 2
}

// Clone returns a deep copy of g. Mutating the clone never affects g.
// A nil graph clones to nil.
func (g Graph[K]) Clone() Graph[K] {
	if g == nil {
		return nil
	}
	c := make(Graph[K], len(g))
	for k, nbrs := range g {
		c[k] = append(make([]K, 0, len(nbrs)), nbrs...)
	}

	return c
}

// Equal reports whether g and other hold the same keys with identical sequences.
func (g Graph[K]) Equal(other Graph[K]) bool {
	if len(g) != len(other) {
		return false
	}
	for k, nbrs := range g {
		o, ok := other[k]
		if !ok || !slices.Equal(nbrs, o) {
			return false
		}
	}

	return true
}

// Validate checks the symmetric-storage invariant: for every pair (u,v),
// v occurs in g[u] exactly as many times as u occurs in g[v].
// The first violation, in ascending (u,v) order, is wrapped in ErrAsymmetric.
func (g Graph[K]) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	for _, u := range g.SortedKeys() {
		seen := make(map[K]bool, len(g[u]))
		nbrs := slices.Clone(g[u])
		slices.Sort(nbrs)
		for _, v := range nbrs {
			if seen[v] {
				continue
			}
			seen[v] = true
			fwd, rev := count(g[u], v), count(g[v], u)
			if fwd != rev {
				return fmt.Errorf("%w: %v lists %v %d time(s), %v lists %v %d time(s)",
					ErrAsymmetric, u, v, fwd, v, u, rev)
			}
		}
	}

	return nil
}

// count returns the number of occurrences of x in s.
func count[K comparable](s []K, x K) int {
	n := 0
	for _, y := range s {
		if y == x {
			n++
		}
	}

	return n
}
