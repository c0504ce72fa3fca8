package adjacency

import (
	"cmp"
	"errors"
)

// Sentinel errors for adjacency graphs.
var (
	// ErrNilGraph indicates a nil Graph was supplied where a value is required.
	ErrNilGraph = errors.New("adjacency: graph is nil")

	// ErrAsymmetric indicates that some entry v in g[u] has no matching u in g[v].
	ErrAsymmetric = errors.New("adjacency: graph is not symmetric")
)

// Graph is an undirected graph stored as ordered adjacency sequences.
//
// Each undirected edge {u,v} appears once in g[u] and once in g[v].
// A self-loop {u,u} appears twice in g[u].
type Graph[K cmp.Ordered] map[K][]K

// New returns an empty Graph.
func New[K cmp.Ordered]() Graph[K] {
	return make(Graph[K])
}

// FromEdges builds a Graph by adding every edge in order.
// Adjacency sequences therefore follow the order edges are listed.
func FromEdges[K cmp.Ordered](edges ...[2]K) Graph[K] {
	g := New[K]()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	return g
}
