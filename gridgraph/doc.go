// Package gridgraph treats a rectangular text maze as a graph of cells,
// providing the shared data model for the grid searches in this module.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell built from '.', '#', 'S' and 'E'.
//   - Position and Facing address cells and headings; Step moves one cell
//     with bounds checking done by the grid, never by the caller.
//   - Region flood-fills the passable cells reachable from a position.
//   - WallsBetween counts the fewest walls to knock down between two cells.
//   - Render draws the grid back to text, optionally marking cells.
//
// Why:
//
//   - Mazes with rotation cost (see package dijkstra).
//   - Unweighted escape and race-track problems (see packages bfs, racetrack, memspace).
//
// Complexity:
//
//   - Parse:   O(W×H), Memory: O(W×H).
//   - Region:  O(W×H×4), Memory: O(W×H).
//   - WallsBetween: O(W×H×4) with a 0-1 deque, Memory: O(W×H).
//   - Render:  O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCharacter: a character outside ".#SE" (wrapped in *ParseError).
//   - ErrMissingStart / ErrMultipleStart: zero or several 'S' cells.
//   - ErrMissingGoal: no 'E' cell.
//   - ErrOutOfGrid: a position argument lies outside the grid.
//   - ErrUnreachable: shared by the searches when no goal can be reached.
package gridgraph
