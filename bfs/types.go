package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")
	// ErrStartOutOfGrid is returned when the start position is outside the grid.
	ErrStartOutOfGrid = errors.New("bfs: start position outside grid")
	// ErrStartBlocked is returned when the start position is a wall.
	ErrStartBlocked = errors.New("bfs: start position is a wall")

	// Stop may be returned by a Visitor to end the walk early.
	// BFS then returns the partial Result and a nil error.
	Stop = errors.New("bfs: stop walk")
)

// Filter reports whether the move from one passable cell to a passable
// neighbour may be taken.
type Filter func(from, to gridgraph.Position) bool

// Visitor is called once for each reached cell, in visit order.
type Visitor func(p gridgraph.Position, depth int) error

type config struct {
	ctx    context.Context
	filter Filter
	visit  Visitor
	logger zerolog.Logger
}

func newConfig(opts []Option) config {
	c := config{
		ctx:    context.Background(),
		filter: func(_, _ gridgraph.Position) bool { return true },
		visit:  func(gridgraph.Position, int) error { return nil },
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option configures a walk.
type Option func(*config)

// WithContext makes the walk honour ctx cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithFilterNeighbor skips every move for which fn returns false.
func WithFilterNeighbor(fn Filter) Option {
	return func(c *config) {
		if fn != nil {
			c.filter = fn
		}
	}
}

// WithOnVisit registers fn to run on each reached cell.
func WithOnVisit(fn Visitor) Option {
	return func(c *config) {
		if fn != nil {
			c.visit = fn
		}
	}
}

// WithLogger sets the logger used for the walk summary.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Result is the outcome of a walk. Depth and parent are indexed by
// gridgraph.Grid.Index; -1 marks an unreached cell or a missing parent.
type Result struct {
	Start gridgraph.Position
	Order []gridgraph.Position

	grid   *gridgraph.Grid
	depth  []int
	parent []int
}

// DistanceTo returns the number of steps from the start to dest.
// ok is false when dest was not reached.
func (r *Result) DistanceTo(dest gridgraph.Position) (steps int, ok bool) {
	if !r.grid.InBounds(dest) {
		return 0, false
	}
	d := r.depth[r.grid.Index(dest)]
	return d, d >= 0
}

// PathTo returns the cells from the start to dest, both included.
// The error wraps gridgraph.ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Position) ([]gridgraph.Position, error) {
	d, ok := r.DistanceTo(dest)
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %s: %w", dest, gridgraph.ErrUnreachable)
	}
	path := make([]gridgraph.Position, d+1)
	for i, at := d, r.grid.Index(dest); i >= 0; i, at = i-1, r.parent[at] {
		path[i] = r.grid.Coordinate(at)
	}
	return path, nil
}

// Table returns the depth of every cell as a Height×Width table;
// unreached cells hold -1.
func (r *Result) Table() [][]int {
	table := make([][]int, r.grid.Height)
	for row := range table {
		table[row] = append([]int(nil), r.depth[row*r.grid.Width:(row+1)*r.grid.Width]...)
	}
	return table
}
