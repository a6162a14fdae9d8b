// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted step counts, parent links, and visit order.
//
// What
//
//   - Explore passable cells in non-decreasing step count from a start cell.
//   - Returns a Result with the visit Order and per-cell depth and parent,
//     queried through DistanceTo, PathTo and Table.
//   - WithFilterNeighbor vetoes individual moves, which lets callers lay
//     temporary walls over a grid without rebuilding it.
//   - WithOnVisit observes each cell as it is reached; returning Stop ends
//     the walk early, any other error aborts it.
//
// Determinism
//
//	Neighbours are expanded in N, E, S, W order, so the visit sequence is
//	fully reproducible.
//
// Complexity (C = Width × Height)
//
//   - Time:   O(C)
//   - Memory: O(C) for the queue, depth and parent tables
//
// Usage
//
//	res, err := bfs.BFS(g, g.Start())
//	steps, ok := res.DistanceTo(g.Goal())
//
//	// cells with a fall index below n are walls for this walk
//	steps, err := bfs.ShortestPath(g, from, to,
//	    bfs.WithContext(ctx),
//	    bfs.WithFilterNeighbor(func(_, to gridgraph.Position) bool { return fell[to] >= n }),
//	)
//
// Errors
//
//   - ErrGridNil         if the grid pointer is nil.
//   - ErrStartOutOfGrid  if the start lies outside the grid.
//   - ErrStartBlocked    if the start is a wall.
//   - gridgraph.ErrUnreachable (wrapped) from PathTo and ShortestPath.
//   - The context error on cancellation, and wrapped OnVisit errors.
package bfs
