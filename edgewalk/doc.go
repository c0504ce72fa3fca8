// Package edgewalk computes a walk over an undirected adjacency graph that
// consumes each edge at most once, starting from a designated node.
//
// What
//
//	The walk runs in three phases over an adjacency.Graph:
//
//	  1. Seeding: the candidate queue is the start node followed by every
//	     adjacency entry of every node, nodes taken in ascending label
//	     order. This is a deterministic candidate ordering derived from
//	     sorted labels, not a breadth-first search from start;
//	     WithBreadthFirstSeeding switches to a true breadth-first order.
//	  2. Consumption: candidates are popped FIFO. A candidate v is accepted
//	     when the tail k of the path lists v and v lists k; the edge is then
//	     removed from both sequences and v is appended. Rejected candidates
//	     are skipped without backtracking.
//	  3. Completion: while the path is shorter than edgeCount, the tail's
//	     remaining adjacency is drained front to back onto the path. By
//	     default only the tail's side is removed; WithSymmetricCompletion
//	     removes the reverse entry too and moves the tail after each step,
//	     turning the completion into a proper walk.
//
//	The Result carries the path, the number of node keys enumerated while
//	seeding (Expanded) and an Incomplete flag for walks that starved before
//	reaching edgeCount. Result.Sequence returns the flat transport form in
//	which Expanded trails the path; Split undoes it.
//
// Ownership
//
//	Walk clones the input and never mutates it; the consumed clone is
//	returned as Result.Remaining. WalkInPlace mutates the caller's graph, so
//	a second WalkInPlace on the same graph sees only what the first left.
//
// Termination
//
//	Phase 3 stops on the first pass that appends nothing, and is capped at
//	Entries()+1 passes (or WithMaxPasses). edgeCount only bounds phase 3; it
//	is not checked against the graph's real edge count.
//
// Complexity (V = keys, E = edges, D = max degree)
//
//   - Time:   O(V log V + E·D)
//   - Memory: O(V + E) for the queue and path
//
// Usage
//
//	res, err := edgewalk.Walk(g, "A", 9,
//	    edgewalk.WithLogger(log.WithField("graph", "graph1")),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrNegativeEdgeCount,
//	    // ErrOptionViolation, ErrAsymmetricGraph or a context error
//	}
//	fmt.Println(res.Path, res.Expanded, res.Incomplete)
package edgewalk
