// Package edgewalk provides tunable options, sentinel errors and the result
// type for the edge-consuming walk.
package edgewalk

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/edgewalk/adjacency"
	"github.com/sirupsen/logrus"
)

// Sentinel errors for walk execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("edgewalk: graph is nil")

	// ErrStartVertexNotFound is returned when the start label is not a key of the graph.
	ErrStartVertexNotFound = errors.New("edgewalk: start vertex not found")

	// ErrNegativeEdgeCount is returned when edgeCount < 0.
	ErrNegativeEdgeCount = errors.New("edgewalk: edge count cannot be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("edgewalk: invalid option supplied")

	// ErrAsymmetricGraph is returned by WithValidation when the input breaks
	// the symmetric-storage invariant.
	ErrAsymmetricGraph = errors.New("edgewalk: asymmetric input graph")

	// ErrMalformedSequence is returned by Split for input that does not end in an int
	// or holds a non-label element.
	ErrMalformedSequence = errors.New("edgewalk: malformed result sequence")
)

// Phase identifies a stage of the walk. It is attached to log entries.
type Phase int

const (
	// PhaseSeeding builds the candidate queue.
	PhaseSeeding Phase = iota
	// PhaseConsumption pops candidates and consumes symmetric edges.
	PhaseConsumption
	// PhaseCompletion greedily drains the tail's adjacency.
	PhaseCompletion
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseSeeding:
		return "seeding"
	case PhaseConsumption:
		return "consumption"
	case PhaseCompletion:
		return "completion"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Option configures the walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters that customize a walk.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// Logger receives Debug entries for phase changes, skips and stalls.
	Logger logrus.FieldLogger

	// SymmetricCompletion makes phase 3 remove the reverse entry as well and
	// advance the tail after every step, so the completion is a true walk.
	SymmetricCompletion bool

	// MaxPasses caps phase-3 passes. Zero derives the cap from the
	// remaining adjacency (Entries()+1).
	MaxPasses int

	// Validate rejects asymmetric input with ErrAsymmetricGraph.
	Validate bool

	// BreadthFirst seeds the queue in breadth-first order from the start
	// node instead of ascending label order. Unreachable nodes are not
	// enumerated and do not count towards Result.Expanded.
	BreadthFirst bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns background context, the logrus standard logger,
// one-sided completion, a derived pass cap and no input validation.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: logrus.StandardLogger(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSymmetricCompletion removes both sides of every edge drained in phase 3
// and follows each drained edge, so no edge can be walked twice.
func WithSymmetricCompletion() Option {
	return func(o *Options) { o.SymmetricCompletion = true }
}

// WithMaxPasses caps the number of phase-3 passes.
//
//	n > 0:  at most n passes
//	n == 0: derived cap (remaining entries + 1)
//	n < 0:  ErrOptionViolation
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPasses cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

// WithValidation checks the input with adjacency.Graph.Validate before walking.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}

// WithBreadthFirstSeeding replaces the sorted-label candidate order with a
// breadth-first enumeration from the start node, neighbours taken in stored order.
func WithBreadthFirstSeeding() Option {
	return func(o *Options) { o.BreadthFirst = true }
}

// Result holds the outcome of a walk.
type Result[K cmp.Ordered] struct {
	// Path is the walk, starting at the start node.
	Path []K

	// Expanded is the number of node keys enumerated while seeding: every
	// key by default, the reachable ones under WithBreadthFirstSeeding.
	Expanded int

	// Incomplete is set when phase 3 ended with len(Path) < edgeCount.
	Incomplete bool

	// Consumed counts edges removed from both sides during phase 2.
	Consumed int

	// Skipped counts phase-2 candidates that were rejected.
	Skipped int

	// Drained counts nodes appended during phase 3.
	Drained int

	// Remaining is the adjacency left after the walk.
	Remaining adjacency.Graph[K]
}

// Sequence returns Path followed by Expanded as a trailing int.
func (r *Result[K]) Sequence() []any {
	seq := make([]any, 0, len(r.Path)+1)
	for _, k := range r.Path {
		seq = append(seq, k)
	}

	return append(seq, r.Expanded)
}

// Closed reports whether the path ends where it started.
func (r *Result[K]) Closed() bool {
	return len(r.Path) > 1 && r.Path[0] == r.Path[len(r.Path)-1]
}

// Split pops the trailing expanded count off a Sequence and returns the path.
func Split[K cmp.Ordered](seq []any) ([]K, int, error) {
	if len(seq) == 0 {
		return nil, 0, fmt.Errorf("%w: empty sequence", ErrMalformedSequence)
	}
	last := len(seq) - 1
	n, ok := seq[last].(int)
	if !ok {
		return nil, 0, fmt.Errorf("%w: trailing element is %T, want int", ErrMalformedSequence, seq[last])
	}
	path := make([]K, 0, last)
	for i, x := range seq[:last] {
		k, ok := x.(K)
		if !ok {
			return nil, 0, fmt.Errorf("%w: element %d is %T", ErrMalformedSequence, i, x)
		}
		path = append(path, k)
	}

	return path, n, nil
}
