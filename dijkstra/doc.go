// Package dijkstra implements a facing-aware Dijkstra search on maze grids.
//
// Overview:
//
//   - The search space is State = (position, facing), not position alone.
//     A state moves one cell forward at StepCost or rotates in place,
//     clockwise or counter-clockwise, at TurnPenalty. A reversal is two
//     rotations.
//   - States are processed in order of increasing distance from a min-heap,
//     so the result is optimal for any ratio between step cost and turn
//     penalty.
//   - Ties are kept: a transition reaching a state at exactly its recorded
//     distance adds a predecessor. OptimalCells walks those predecessor
//     sets back from every goal state at the best score.
//   - CandidateCells is the cheaper distance filter (every state with
//     distance ≤ Best). It over-approximates OptimalCells when a state is
//     reached cheaply but has no best-score continuation.
//
// Implementation notes:
//
//   - Goal states are terminal; nothing is relaxed out of them.
//   - The search stops once the minimum distance in the heap exceeds the
//     best goal score (or MaxDistance).
//   - “Lazy” decrease-key: duplicates are pushed into the heap and stale
//     entries are skipped on pop.
//
// Complexity:
//
//	- Time:  O(S log S)   where S = 4 × |passable cells|
//	   • Each state is finalized once; each has at most 3 outgoing transitions.
//	- Space: O(S)
//	   • Distance table, predecessor sets and the lazy heap.
//
// Options:
//
//	- TurnPenalty:  cost per 90° rotation (default 1000, must be ≥ 0).
//	- StepCost:     cost per forward move (default 1, must be > 0).
//	- StartFacing:  heading of the start state (default East).
//	- Goals:        goal positions (default: every Goal cell of the grid).
//	- MaxDistance:  states costlier than this are not explored.
//	- OnRelax:      hook called whenever a state's distance is lowered.
//	- Logger:       zerolog logger for search summaries (default Nop).
//
// Errors (sentinel):
//
//	- ErrNilGrid          if the grid pointer is nil.
//	- ErrOptionViolation  if an option carries an invalid value.
//	- ErrGoalOutOfGrid    if a goal given by WithGoal lies outside the grid.
//
// An unreachable goal is not an error: Result.Best is NoPath and
// Result.Cost wraps gridgraph.ErrUnreachable.
//
// Usage:
//
//	g, _ := gridgraph.ParseString(maze)
//	res, err := dijkstra.Search(g, dijkstra.WithTurnPenalty(1000))
//	fmt.Println(res.Best, len(res.OptimalCells()))
package dijkstra
