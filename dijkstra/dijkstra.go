package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search computes the minimum cost from the grid's Start cell (facing
// Options.StartFacing) to any state located on a goal position.
//
// Returns:
//
//   - *Result with Best == NoPath when no goal can be reached (not an error).
//   - err: ErrNilGrid, ErrOptionViolation or ErrGoalOutOfGrid for invalid input.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4 × passable cells
//   - Space: O(S)
func Search(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Resolve goal set
	goals := cfg.Goals
	if len(goals) == 0 {
		goals = g.Goals()
	}
	goalSet := make(map[gridgraph.Position]bool, len(goals))
	for _, p := range goals {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %s", ErrGoalOutOfGrid, p)
		}
		goalSet[p] = true
	}

	// 3) Prepare runner; 4 states per cell is the upper bound.
	n := 4 * g.Size()
	r := &runner{
		g:     g,
		opts:  cfg,
		goals: goalSet,
		dist:  make(map[State]int64, n),
		prev:  make(map[State][]State, n),
		done:  make(map[State]bool, n),
		pq:    make(statePQ, 0, n),
		best:  NoPath,
	}

	start := State{Pos: g.Start(), Facing: cfg.StartFacing}
	r.init(start)
	r.process()

	cfg.Logger.Debug().
		Int64("best", r.best).
		Int("explored", r.explored).
		Int("recorded", len(r.dist)).
		Int("goal_states", len(r.goalStates)).
		Msg("maze search finished")

	return &Result{
		Start:      start,
		Best:       r.best,
		Dist:       r.dist,
		Prev:       r.prev,
		GoalStates: r.goalStates,
		Explored:   r.explored,
	}, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g          *gridgraph.Grid             // Read-only input grid
	opts       Options                     // Configuration options
	goals      map[gridgraph.Position]bool // Goal positions
	dist       map[State]int64             // Best known distance per state
	prev       map[State][]State           // Predecessors achieving dist
	done       map[State]bool              // Finalized states
	pq         statePQ                     // Min-heap of *stateItem
	best       int64                       // Best goal score so far
	goalStates []State                     // Goal states at best
	explored   int                         // Finalized state count
}

// init records the start state at distance 0 and seeds the heap.
func (r *runner) init(start State) {
	heap.Init(&r.pq)
	r.opts.OnRelax(start, NoPath, 0)
	r.dist[start] = 0
	heap.Push(&r.pq, &stateItem{state: start, dist: 0})
}

// process pops states in increasing distance until the heap is empty or
// the next distance exceeds the best goal score or MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		u, d := item.state, item.dist

		// Skip stale heap entries.
		if r.done[u] {
			continue
		}
		if d > r.best || d > r.opts.MaxDistance {
			break
		}
		r.done[u] = true
		r.explored++

		if r.goals[u.Pos] {
			if d < r.best {
				r.best = d
				r.goalStates = r.goalStates[:0]
			}
			r.goalStates = append(r.goalStates, u)
			continue
		}
		r.relax(u, d)
	}
}

// relax tries the three transitions out of u: forward, clockwise and
// counter-clockwise.
func (r *runner) relax(u State, d int64) {
	if next, ok := r.g.Step(u.Pos, u.Facing); ok && r.g.Passable(next) {
		r.offer(u, State{Pos: next, Facing: u.Facing}, d, r.opts.StepCost)
	}
	r.offer(u, State{Pos: u.Pos, Facing: u.Facing.Clockwise()}, d, r.opts.TurnPenalty)
	r.offer(u, State{Pos: u.Pos, Facing: u.Facing.CounterClockwise()}, d, r.opts.TurnPenalty)
}

// offer records the transition u→v of weight w when it does not worsen
// v's distance and stays within the best score and MaxDistance.
func (r *runner) offer(u, v State, d, w int64) {
	if w > NoPath-d {
		return
	}
	nd := d + w
	if nd > r.best || nd > r.opts.MaxDistance {
		return
	}
	old, seen := r.dist[v]
	switch {
	case !seen || nd < old:
		if !seen {
			old = NoPath
		}
		r.opts.OnRelax(v, old, nd)
		r.dist[v] = nd
		r.prev[v] = []State{u}
		heap.Push(&r.pq, &stateItem{state: v, dist: nd})
	case nd == old:
		r.prev[v] = append(r.prev[v], u)
	}
}

// stateItem represents a state and its distance at push time.
type stateItem struct {
	state State
	dist  int64
}

// statePQ is a min-heap of *stateItem ordered by dist ascending.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
