// Package search defines the best-first search driver contract (spec.md
// §6) and ships a concrete priority-queue implementation of it. The
// planner is written against the Driver interface so a caller may supply
// a different search strategy (IDA*, beam search, ...) without touching
// planner code.
package search

import (
	"container/heap"
	"context"
	"time"

	"github.com/mictra/shrdlite-course-project/internal/coreerrors"
	"github.com/mictra/shrdlite-course-project/internal/logging"
	"github.com/mictra/shrdlite-course-project/internal/stategraph"
	"go.uber.org/zap"
)

// SuccessorFunc expands a node into its outgoing edges.
type SuccessorFunc func(*stategraph.Node) []stategraph.Edge

// GoalFunc reports whether a node satisfies the search's goal.
type GoalFunc func(*stategraph.Node) bool

// HeuristicFunc estimates the remaining cost from a node to the nearest
// goal. For the driver to return optimal-cost paths, it must be
// admissible: it must never overestimate.
type HeuristicFunc func(*stategraph.Node) float64

// Result is the outcome of a successful search.
type Result struct {
	Path []*stategraph.Node
	Cost float64
}

// Driver is the external best-first search collaborator's interface
// (spec.md §6). Successors and NodeEquals are exposed for callers that
// want to drive the graph themselves (e.g. for testing); Search is the
// entry point the planner uses.
type Driver interface {
	Successors(n *stategraph.Node) []stategraph.Edge
	NodeEquals(a, b *stategraph.Node) bool
	Search(ctx context.Context, successors SuccessorFunc, start *stategraph.Node, isGoal GoalFunc, heuristic HeuristicFunc, timeout time.Duration) (*Result, error)
}

// BestFirstDriver is a priority-queue (A*-style) implementation of
// Driver: it always expands the frontier node with the lowest
// g(n) + h(n), breaking ties in insertion order.
type BestFirstDriver struct {
	log *zap.SugaredLogger
	// OnExpand, if set, is invoked once per node popped off the
	// frontier with the expansion count and remaining frontier size.
	// The planner never sets it; a caller that wants a search trace
	// sets it on the driver it hands to planner.New.
	OnExpand func(expanded, frontierSize int)
}

// NewBestFirstDriver builds a BestFirstDriver logging through base (nil
// is accepted and discards all output).
func NewBestFirstDriver(base *zap.Logger) *BestFirstDriver {
	return &BestFirstDriver{log: logging.Named(base, logging.CategorySearch)}
}

func (d *BestFirstDriver) Successors(n *stategraph.Node) []stategraph.Edge {
	return stategraph.Successors(n)
}

func (d *BestFirstDriver) NodeEquals(a, b *stategraph.Node) bool {
	return a.Equal(b)
}

type frontierItem struct {
	node     *stategraph.Node
	g        float64
	f        float64
	parent   *frontierItem
	seq      int // insertion order, for stable tie-breaking
	heapIdx  int
}

type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].heapIdx = i
	f[j].heapIdx = j
}
func (f *frontier) Push(x interface{}) {
	item := x.(*frontierItem)
	item.heapIdx = len(*f)
	*f = append(*f, item)
}
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

// Search runs best-first search from start until isGoal is satisfied or
// timeout elapses, returning the lowest-cost path found. It fails with a
// *coreerrors.CoreError of kind SearchTimeout or NoPlan per spec.md §7.
func (d *BestFirstDriver) Search(
	ctx context.Context,
	successors SuccessorFunc,
	start *stategraph.Node,
	isGoal GoalFunc,
	heuristic HeuristicFunc,
	timeout time.Duration,
) (*Result, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	startItem := &frontierItem{node: start, g: 0, f: heuristic(start), seq: 0}
	fr := frontier{startItem}
	heap.Init(&fr)

	closed := make(map[string]float64)
	seq := 1
	expanded := 0

	for fr.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, coreerrors.Wrap(coreerrors.SearchTimeout, ctx.Err(), "search timed out after %s", timeout)
		default:
		}

		current := heap.Pop(&fr).(*frontierItem)
		key := current.node.Key()
		if bestG, ok := closed[key]; ok && bestG <= current.g {
			continue
		}
		closed[key] = current.g
		expanded++
		if d.OnExpand != nil {
			d.OnExpand(expanded, fr.Len())
		}

		if isGoal(current.node) {
			return &Result{Path: reconstruct(current), Cost: current.g}, nil
		}

		for _, edge := range successors(current.node) {
			childKey := edge.To.Key()
			g := current.g + edge.Cost
			if bestG, ok := closed[childKey]; ok && bestG <= g {
				continue
			}
			item := &frontierItem{
				node:   edge.To,
				g:      g,
				f:      g + heuristic(edge.To),
				parent: current,
				seq:    seq,
			}
			seq++
			heap.Push(&fr, item)
		}
	}

	return nil, coreerrors.New(coreerrors.NoPlan, "search exhausted the frontier without reaching a goal")
}

func reconstruct(item *frontierItem) []*stategraph.Node {
	var path []*stategraph.Node
	for it := item; it != nil; it = it.parent {
		path = append([]*stategraph.Node{it.node}, path...)
	}
	return path
}
