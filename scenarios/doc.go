// Package scenarios holds the sample graphs the walk is demonstrated on,
// embedded as YAML, plus a loader for user-supplied scenario files.
//
// A scenario file looks like:
//
//	name: graph2
//	start: A
//	edge_count: 11
//	adjacency:
//	  A: [B, C, D, F]
//	  ...
//
// Adjacency order matters: it fixes the order candidates are offered to the walk.
package scenarios
