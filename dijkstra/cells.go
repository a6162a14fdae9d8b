package dijkstra

import (
	"sort"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// OptimalCells returns every grid position lying on at least one path of
// cost Best, sorted row-major. It walks the predecessor sets backwards from
// each goal state reached at Best. Empty when no goal was reached.
//
// Complexity: O(S) over the recorded states.
func (r *Result) OptimalCells() []gridgraph.Position {
	if !r.Reachable() {
		return nil
	}
	seen := make(map[State]bool, len(r.Dist))
	cells := make(map[gridgraph.Position]bool)
	stack := append([]State(nil), r.GoalStates...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true
		cells[s.Pos] = true
		stack = append(stack, r.Prev[s]...)
	}
	return sortedPositions(cells)
}

// CandidateCells projects every recorded state whose distance does not
// exceed Best onto its position, sorted row-major.
//
// This filter is a superset of OptimalCells: a state can be reached
// cheaply without any best-score continuation to a goal. Empty when no
// goal was reached.
func (r *Result) CandidateCells() []gridgraph.Position {
	if !r.Reachable() {
		return nil
	}
	cells := make(map[gridgraph.Position]bool)
	for s, d := range r.Dist {
		if d <= r.Best {
			cells[s.Pos] = true
		}
	}
	return sortedPositions(cells)
}

// Path returns one optimal path as a sequence of states from Start to the
// first goal state, following the first recorded predecessor of each state.
// Nil when no goal was reached.
func (r *Result) Path() []State {
	if !r.Reachable() || len(r.GoalStates) == 0 {
		return nil
	}
	var path []State
	seen := make(map[State]bool)
	for s := r.GoalStates[0]; ; {
		path = append(path, s)
		seen[s] = true
		if s == r.Start {
			break
		}
		preds := r.Prev[s]
		if len(preds) == 0 || seen[preds[0]] {
			return nil
		}
		s = preds[0]
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// sortedPositions flattens a position set in row-major order.
func sortedPositions(set map[gridgraph.Position]bool) []gridgraph.Position {
	out := make([]gridgraph.Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
