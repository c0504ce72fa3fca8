// Package edgewalk is the root of a small toolkit for walking undirected
// graphs while consuming each edge at most once.
//
// Packages:
//
//	adjacency/     — Graph[K]: ordered adjacency sequences, symmetric-edge helpers, Validate
//	edgewalk/      — the three-phase walk (seeding, consumption, bounded completion)
//	scenarios/     — embedded sample graphs and a YAML scenario loader
//	report/        — closed/open classification and text or YAML summaries
//	cmd/edgewalk/  — command-line front end (run, list)
//
// Quick ASCII example:
//
//	A───B
//	│ ╲ │
//	C───D
//
// Walking from A with edge count 6, the seeded phase follows A B D A C and
// the completion phase appends D, using every edge once.
//
//	go install github.com/katalvlaran/edgewalk/cmd/edgewalk@latest
//	edgewalk run            # walk graph1 and graph2
//	edgewalk run -o yaml graph2 --symmetric
package edgewalk
