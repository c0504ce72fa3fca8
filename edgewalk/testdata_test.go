package edgewalk_test

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/edgewalk/adjacency"
)

// graph1 is the five-node sample: A:[B,C,D] B:[A,D,C] C:[A,B,D,E] D:[A,B,C,E] E:[C,D].
func graph1() adjacency.Graph[string] {
	return adjacency.Graph[string]{
		"A": {"B", "C", "D"},
		"B": {"A", "D", "C"},
		"C": {"A", "B", "D", "E"},
		"D": {"A", "B", "C", "E"},
		"E": {"C", "D"},
	}
}

// graph2 extends graph1's shape with a degree-2 node F joined to A and B.
func graph2() adjacency.Graph[string] {
	return adjacency.Graph[string]{
		"A": {"B", "C", "D", "F"},
		"B": {"A", "C", "D", "F"},
		"C": {"A", "B", "D", "E"},
		"D": {"A", "B", "C", "E"},
		"E": {"C", "D"},
		"F": {"A", "B"},
	}
}

// star is a hub H with leaves a, b, c. Upper-case sorts first.
func star() adjacency.Graph[string] {
	return adjacency.Graph[string]{
		"H": {"a", "b", "c"},
		"a": {"H"},
		"b": {"H"},
		"c": {"H"},
	}
}

// randomGraph builds a symmetric multigraph on n integer nodes with m edges,
// seeded for reproducibility. Self-loops are skipped.
func randomGraph(seed int64, n, m int) adjacency.Graph[int] {
	r := rand.New(rand.NewSource(seed))
	g := adjacency.New[int]()
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for added := 0; added < m; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		g.AddEdge(u, v)
		added++
	}

	return g
}

// edgeKey is an unordered pair key.
func edgeKey[K int | string](u, v K) string {
	a, b := label(u), label(v)
	if a > b {
		a, b = b, a
	}

	return a + "|" + b
}

func label[K int | string](x K) string {
	switch v := any(x).(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	}

	return ""
}

// multiplicity counts undirected edges in a symmetric graph by unordered pair.
func multiplicity[K int | string](g adjacency.Graph[K]) map[string]int {
	m := make(map[string]int)
	for u, nbrs := range g {
		for _, v := range nbrs {
			m[edgeKey(u, v)]++
		}
	}
	for k := range m {
		m[k] /= 2
	}

	return m
}

// overusedEdges returns the unordered pairs of consecutive path nodes that are
// used more often than the original graph holds them.
func overusedEdges[K int | string](orig adjacency.Graph[K], path []K) []string {
	have := multiplicity(orig)
	used := make(map[string]int)
	var bad []string
	for i := 0; i+1 < len(path); i++ {
		k := edgeKey(path[i], path[i+1])
		used[k]++
		if used[k] > have[k] {
			bad = append(bad, k)
		}
	}

	return bad
}
