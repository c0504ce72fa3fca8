package edgewalk

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/edgewalk/adjacency"
	"github.com/sirupsen/logrus"
)

// attempt is the outcome of offering one candidate to the path tail.
type attempt int

const (
	accepted attempt = iota
	// tail does not list the candidate
	missingForward
	// candidate does not list the tail
	missingReverse
)

func (a attempt) String() string {
	switch a {
	case accepted:
		return "accepted"
	case missingForward:
		return "missing forward entry"
	default:
		return "missing reverse entry"
	}
}

// walker encapsulates mutable walk state.
type walker[K cmp.Ordered] struct {
	graph adjacency.Graph[K]
	opts  Options
	ctx   context.Context
	log   logrus.FieldLogger
	queue []K
	res   *Result[K]
}

// Walk runs the edge-consuming walk on a private copy of g, so the caller's
// graph is left intact. The consumed copy is returned as Result.Remaining.
// See WalkInPlace for errors.
func Walk[K cmp.Ordered](g adjacency.Graph[K], start K, edgeCount int, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return WalkInPlace(g.Clone(), start, edgeCount, opts...)
}

// WalkInPlace runs the edge-consuming walk directly on g, removing every
// consumed entry from it. Result.Remaining is g itself.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrNegativeEdgeCount,
// ErrOptionViolation, ErrAsymmetricGraph (WithValidation only), or the
// context error if the walk is cancelled.
func WalkInPlace[K cmp.Ordered](g adjacency.Graph[K], start K, edgeCount int, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if edgeCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeEdgeCount, edgeCount)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}
	if o.Validate {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAsymmetricGraph, err)
		}
	}

	w := &walker[K]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		log:   o.Logger,
		res:   &Result[K]{Remaining: g},
	}
	w.seed(start)
	if err := w.consume(); err != nil {
		return nil, err
	}
	if err := w.complete(edgeCount); err != nil {
		return nil, err
	}

	return w.res, nil
}

// seed fills the candidate queue with start followed by every adjacency entry
// of every key in seeding order, then moves the queue head onto the path.
func (w *walker[K]) seed(start K) {
	keys := w.graph.SortedKeys()
	if w.opts.BreadthFirst {
		keys = breadthFirst(w.graph, start)
	}
	w.queue = make([]K, 0, w.graph.Entries()+1)
	w.queue = append(w.queue, start)
	for _, k := range keys {
		w.queue = append(w.queue, w.graph[k]...)
		w.res.Expanded++
	}
	w.res.Path = make([]K, 0, len(w.queue))
	w.res.Path = append(w.res.Path, w.dequeue())

	w.log.WithFields(logrus.Fields{
		"phase":     PhaseSeeding,
		"expanded":  w.res.Expanded,
		"queue_len": len(w.queue),
	}).Debug("candidate queue seeded")
}

// breadthFirst lists the keys reachable from start in visit order.
func breadthFirst[K cmp.Ordered](g adjacency.Graph[K], start K) []K {
	order := []K{start}
	visited := map[K]bool{start: true}
	for i := 0; i < len(order); i++ {
		for _, nbr := range g[order[i]] {
			if visited[nbr] || !g.HasVertex(nbr) {
				continue
			}
			visited[nbr] = true
			order = append(order, nbr)
		}
	}

	return order
}

// consume pops candidates FIFO and extends the path along edges that are
// still present on both sides.
func (w *walker[K]) consume() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		k := w.tail()
		v := w.dequeue()
		if a := w.try(k, v); a != accepted {
			w.res.Skipped++
			w.log.WithFields(logrus.Fields{
				"phase":  PhaseConsumption,
				"tail":   k,
				"vertex": v,
				"reason": a,
			}).Debug("candidate skipped")
			continue
		}
		w.graph.RemoveOne(k, v)
		w.graph.RemoveOne(v, k)
		w.res.Path = append(w.res.Path, v)
		w.res.Consumed++
	}

	w.log.WithFields(logrus.Fields{
		"phase":    PhaseConsumption,
		"path_len": len(w.res.Path),
		"consumed": w.res.Consumed,
		"skipped":  w.res.Skipped,
	}).Debug("candidate queue exhausted")

	return nil
}

// try checks both directions of the edge k–v without mutating the graph.
func (w *walker[K]) try(k, v K) attempt {
	if !w.graph.Contains(k, v) {
		return missingForward
	}
	if !w.graph.Contains(v, k) {
		return missingReverse
	}

	return accepted
}

// complete drains the tail's adjacency until the path reaches edgeCount,
// the tail starves, or the pass cap is hit.
func (w *walker[K]) complete(edgeCount int) error {
	limit := w.opts.MaxPasses
	if limit == 0 {
		limit = w.graph.Entries() + 1
	}

	for pass := 0; len(w.res.Path) < edgeCount; pass++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if pass >= limit {
			w.log.WithFields(logrus.Fields{
				"phase":    PhaseCompletion,
				"passes":   pass,
				"path_len": len(w.res.Path),
			}).Debug("pass cap reached")
			break
		}
		last := w.tail()
		if w.drain(last, edgeCount) == 0 {
			w.log.WithFields(logrus.Fields{
				"phase":    PhaseCompletion,
				"tail":     last,
				"path_len": len(w.res.Path),
				"want":     edgeCount,
			}).Debug("tail starved")
			break
		}
	}
	w.res.Incomplete = len(w.res.Path) < edgeCount

	return nil
}

// drain appends last's remaining neighbours front to back, stopping at
// edgeCount. It returns how many nodes were appended.
//
// One-sided mode keeps last fixed for the whole pass. Symmetric mode takes a
// single step, so the next pass continues from the node just reached.
func (w *walker[K]) drain(last K, edgeCount int) int {
	added := 0
	for len(w.graph[last]) > 0 && len(w.res.Path) < edgeCount {
		next := w.graph[last][0]
		w.graph.RemoveOne(last, next)
		w.res.Path = append(w.res.Path, next)
		added++
		if w.opts.SymmetricCompletion {
			w.graph.RemoveOne(next, last)
			break
		}
	}
	w.res.Drained += added

	return added
}

// dequeue pops the queue head.
func (w *walker[K]) dequeue() K {
	v := w.queue[0]
	w.queue = w.queue[1:]

	return v
}

// tail returns the current end of the path.
func (w *walker[K]) tail() K {
	return w.res.Path[len(w.res.Path)-1]
}
