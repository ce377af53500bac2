package rewrite

import (
	"container/heap"
	"context"
)

// epsilon is the tolerance within which two edge costs are considered
// tied for priority-queue ordering purposes; ties are then broken by
// Expr's total order so that the queue is fully deterministic.
const epsilon = 1e-9

// edge is one entry of the search frontier: a candidate expression and
// the combined heuristic cost of reaching it.
type edge struct {
	cost float64
	expr Expr
}

// edgeHeap is a container/heap.Interface over edges ordered so that
// heap.Pop returns the edge with the largest cost first, breaking
// near-ties by Expr.Less for determinism.
type edgeHeap []edge

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	diff := h[i].cost - h[j].cost
	if diff > epsilon || diff < -epsilon {
		return h[i].cost > h[j].cost
	}
	return h[i].expr.Less(h[j].expr)
}

func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x interface{}) {
	*h = append(*h, x.(edge))
}

func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Progress reports the search engine's internal state, emitted through
// a Rewriter's progress hook every ProgressInterval iterations. The
// source this rewriter is modeled on warns that memory may grow
// rapidly during a search; Progress exists so a caller can surface
// that growth instead of discovering it only when the process runs
// out of memory.
type Progress struct {
	Iteration    int
	FrontierSize int
	VisitedSize  int
}

// ProgressInterval is how often (in search iterations) a Rewriter
// invokes its progress hook at a fixed cadence.
const ProgressInterval = 1000

// Rewriter performs best-first search over the rewrite relation
// induced by its installed rules. A Rewriter is single-threaded and
// blocking: Prove owns all of its search-local state exclusively for
// the duration of one call, and no operation inside it may suspend
// except for the cooperative context check at the top of the loop.
// Rule insertion and proving must not interleave — build the rule set
// up front, then call Prove.
type Rewriter struct {
	table      *Table
	rules      *RuleSet
	heuristics *HeuristicSet
	maxIter    int
	onProgress func(Progress)
}

// NewRewriter creates a Rewriter backed by table, with the given
// iteration budget. Prove runs at most maxIter+1 iterations, so a zero
// maxIter still pops and expands start once. A negative maxIter makes
// Prove fail before popping anything, even when start equals goal.
func NewRewriter(table *Table, maxIter int) *Rewriter {
	return &Rewriter{
		table:      table,
		rules:      NewRuleSet(),
		heuristics: NewHeuristicSet(),
		maxIter:    maxIter,
	}
}

// AddRule installs rule. Installing an equiv axiom as two rules (one
// per direction) is the caller's job (see the kb loader in package
// sexpr) — Rewriter itself just appends whatever it is given, in
// order, without deduplication.
func (r *Rewriter) AddRule(rule Rule) {
	r.rules.Add(rule)
}

// AddHeuristic registers a weighted heuristic with default (+1)
// polarity.
func (r *Rewriter) AddHeuristic(weight float64, h Heuristic) {
	r.heuristics.Register(weight, h)
}

// AddSignedHeuristic registers a weighted heuristic with an explicit
// polarity; see HeuristicSet.RegisterSigned.
func (r *Rewriter) AddSignedHeuristic(weight, sign float64, h Heuristic) {
	r.heuristics.RegisterSigned(weight, sign, h)
}

// OnProgress installs a hook invoked every ProgressInterval
// iterations with a snapshot of the search's internal state. Passing
// nil disables progress reporting.
func (r *Rewriter) OnProgress(hook func(Progress)) {
	r.onProgress = hook
}

// RuleCount returns the number of installed rules.
func (r *Rewriter) RuleCount() int { return r.rules.Len() }

// Expand exposes the rewriter's own rule set through the package-level
// Expand function, for callers (tests, diagnostics) that want the set
// of one-step rewrites of e without running a full search.
func (r *Rewriter) Expand(e Expr) []Expr {
	return Expand(r.table, r.rules, e)
}

// Prove searches for a path of rewrites from start to goal. It returns
// the path (start, ..., goal) and true on success. There are exactly
// three ways it can fail and return (nil, false): the iteration budget
// is exhausted, the frontier is exhausted before the goal is reached,
// or ctx is canceled. If start equals goal (and maxIter is not
// negative), Prove returns the one-element path {start} immediately — this is success, not a
// failure mode, even though the search loop never actually expands
// anything.
//
// Given the same rules, heuristics, start, goal, and tie-break order,
// Prove is deterministic.
func (r *Rewriter) Prove(ctx context.Context, start, goal Expr) ([]Expr, bool) {
	parents := make(map[Expr]Expr, 1024)
	visited := make(map[Expr]struct{}, 1024)
	frontier := &edgeHeap{{cost: 0, expr: start}}
	heap.Init(frontier)
	visited[start] = struct{}{}

	var curr Expr
	found := false

	for k := 0; ; k++ {
		if k > r.maxIter {
			return nil, false
		}
		if err := ctx.Err(); err != nil {
			return nil, false
		}
		if frontier.Len() == 0 {
			return nil, false
		}

		curr = heap.Pop(frontier).(edge).expr
		if curr.Equal(goal) {
			found = true
			break
		}

		for _, candidate := range r.Expand(curr) {
			if _, seen := visited[candidate]; seen {
				continue
			}
			cost := r.heuristics.Combine(candidate, goal)
			visited[candidate] = struct{}{}
			parents[candidate] = curr
			heap.Push(frontier, edge{cost: cost, expr: candidate})
		}

		if r.onProgress != nil && (k+1)%ProgressInterval == 0 {
			r.onProgress(Progress{
				Iteration:    k + 1,
				FrontierSize: frontier.Len(),
				VisitedSize:  len(visited),
			})
		}
	}

	if !found {
		return nil, false
	}
	return reconstructPath(parents, start, curr), true
}

// reconstructPath walks parents from curr back to start, which has no
// entry in parents, then reverses the accumulated path.
func reconstructPath(parents map[Expr]Expr, start, curr Expr) []Expr {
	path := []Expr{curr}
	for {
		parent, ok := parents[curr]
		if !ok {
			break
		}
		path = append(path, parent)
		curr = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
