package gridgraph

import (
	"fmt"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrMissingStart / ErrMultipleStart unless exactly one Start exists,
// and ErrMissingGoal if no Goal exists.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{
		Width:  w,
		Height: h,
		cells:  make([][]Cell, h),
	}
	starts := 0
	for r := 0; r < h; r++ {
		g.cells[r] = make([]Cell, w)
		copy(g.cells[r], cells[r])
		for c, cell := range cells[r] {
			switch cell {
			case Start:
				starts++
				g.start = Position{Row: r, Col: c}
			case Goal:
				g.goals = append(g.goals, Position{Row: r, Col: c})
			case Open, Wall:
			default:
				return nil, fmt.Errorf("%w: cell value %d at %d,%d", ErrInvalidCharacter, cell, r, c)
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrMissingStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStart, starts)
	case len(g.goals) == 0:
		return nil, ErrMissingGoal
	}

	return g, nil
}

// FromWalls builds a rows×cols grid of Open cells with the given walls,
// a Start at start and a Goal at goal. Walls outside the grid are ignored.
// A wall on start or goal removes that cell, so NewGrid's
// ErrMissingStart / ErrMissingGoal are returned in that case.
func FromWalls(rows, cols int, walls []Position, start, goal Position) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	inside := func(p Position) bool {
		return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
	}
	if inside(start) {
		cells[start.Row][start.Col] = Start
	}
	if inside(goal) {
		cells[goal.Row][goal.Col] = Goal
	}
	for _, p := range walls {
		if inside(p) {
			cells[p.Row][p.Col] = Wall
		}
	}

	return NewGrid(cells)
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Position) Cell {
	return g.cells[p.Row][p.Col]
}

// Passable reports whether p is in bounds and not a Wall.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] != Wall
}

// Start returns the position of the Start cell.
func (g *Grid) Start() Position { return g.start }

// Goals returns the positions of every Goal cell in row-major order.
func (g *Grid) Goals() []Position {
	out := make([]Position, len(g.goals))
	copy(out, g.goals)
	return out
}

// Goal returns the first Goal cell in row-major order.
func (g *Grid) Goal() Position { return g.goals[0] }

// IsGoal reports whether p is a Goal cell.
func (g *Grid) IsGoal(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Goal
}

// Step moves one cell from p in heading f.
// ok is false when the destination lies outside the grid.
func (g *Grid) Step(p Position, f Facing) (next Position, ok bool) {
	dr, dc := f.Delta()
	next = Position{Row: p.Row + dr, Col: p.Col + dc}
	return next, g.InBounds(next)
}

// Neighbors returns the passable orthogonal neighbors of p in N, E, S, W order.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, f := range Facings {
		if q, ok := g.Step(p, f); ok && g.cells[q.Row][q.Col] != Wall {
			out = append(out, q)
		}
	}
	return out
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.Width, Col: idx % g.Width}
}

// Size returns the number of cells, Width×Height.
func (g *Grid) Size() int { return g.Width * g.Height }

// PassableCells returns every non-wall position in row-major order.
func (g *Grid) PassableCells() []Position {
	var out []Position
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.cells[r][c] != Wall {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}
