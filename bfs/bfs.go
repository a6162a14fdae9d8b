package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// walker holds the mutable state of one walk.
type walker struct {
	grid  *gridgraph.Grid
	cfg   config
	queue []int
	res   *Result
}

// BFS walks the passable cells of g reachable from start.
// Returns ErrGridNil, ErrStartOutOfGrid or ErrStartBlocked for invalid input,
// the context error on cancellation, or a wrapped Visitor error.
// A Visitor returning Stop ends the walk with the partial Result and no error.
func BFS(g *gridgraph.Grid, start gridgraph.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfGrid, start)
	}
	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}

	n := g.Size()
	w := &walker{
		grid:  g,
		cfg:   newConfig(opts),
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]gridgraph.Position, 0, n),
			grid:   g,
			depth:  make([]int, n),
			parent: make([]int, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = -1
		w.res.parent[i] = -1
	}

	w.reach(g.Index(start), 0, -1)
	err := w.loop()
	if errors.Is(err, Stop) {
		err = nil
	}
	w.cfg.logger.Debug().
		Stringer("start", start).
		Int("visited", len(w.res.Order)).
		Err(err).
		Msg("grid bfs finished")

	return w.res, err
}

// reach records cell i at depth d with parent p and queues it.
func (w *walker) reach(i, d, p int) {
	w.res.depth[i] = d
	w.res.parent[i] = p
	w.queue = append(w.queue, i)
}

// loop drains the queue, visiting each cell and queueing its unseen
// neighbours that pass the filter.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.cfg.ctx.Done():
			return w.cfg.ctx.Err()
		default:
		}

		i := w.queue[head]
		u, d := w.grid.Coordinate(i), w.res.depth[i]
		w.res.Order = append(w.res.Order, u)
		if err := w.cfg.visit(u, d); err != nil {
			if errors.Is(err, Stop) {
				return err
			}
			return fmt.Errorf("bfs: OnVisit error at %s: %w", u, err)
		}

		for _, v := range w.grid.Neighbors(u) {
			j := w.grid.Index(v)
			if w.res.depth[j] < 0 && w.cfg.filter(u, v) {
				w.reach(j, d+1, i)
			}
		}
	}
	return nil
}

// Distances runs BFS from start and returns the step count to every cell
// as a Height×Width table; unreached cells hold -1.
func Distances(g *gridgraph.Grid, start gridgraph.Position, opts ...Option) ([][]int, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}
	return res.Table(), nil
}

// ShortestPath returns the number of steps from start to goal. The walk
// stops as soon as goal is visited. The error wraps
// gridgraph.ErrUnreachable when goal is not reached.
func ShortestPath(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) (int, error) {
	stopAtGoal := func(c *config) {
		inner := c.visit
		c.visit = func(p gridgraph.Position, d int) error {
			if err := inner(p, d); err != nil {
				return err
			}
			if p == goal {
				return Stop
			}
			return nil
		}
	}
	res, err := BFS(g, start, append(opts[:len(opts):len(opts)], stopAtGoal)...)
	if err != nil {
		return 0, err
	}
	steps, ok := res.DistanceTo(goal)
	if !ok {
		return 0, fmt.Errorf("bfs: %s from %s: %w", goal, start, gridgraph.ErrUnreachable)
	}
	return steps, nil
}
