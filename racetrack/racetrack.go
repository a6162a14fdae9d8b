// Package racetrack counts shortcut "cheats" on a single-lane maze race.
//
// A cheat lets the racer pass through walls once: it starts on a track
// cell p, ends on a track cell q at Manhattan distance m (2 ≤ m ≤ duration)
// and costs m steps. Its saving is the honest race time minus
// dS[p] + m + dE[q], where dS is the BFS distance from the start and dE
// the BFS distance to the goal. Two cheats are the same when they share
// both p and q.
//
// A race has exactly one finish: New rejects grids with several goal
// cells with ErrMultipleGoals.
package racetrack

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrBadDuration indicates a cheat duration below 1.
	ErrBadDuration = errors.New("racetrack: cheat duration must be at least 1")
	// ErrMultipleGoals indicates a track with more than one goal cell.
	ErrMultipleGoals = errors.New("racetrack: track must have exactly one goal")
)

// Track holds the two BFS distance fields of a race.
type Track struct {
	grid      *gridgraph.Grid
	fromStart [][]int
	toGoal    [][]int
	base      int
}

// New measures the race on g from its Start to its Goal.
// Returns ErrMultipleGoals when g has more than one goal cell, or an error
// wrapping gridgraph.ErrUnreachable when the goal cannot be reached
// without cheating.
func New(g *gridgraph.Grid, opts ...bfs.Option) (*Track, error) {
	if goals := g.Goals(); len(goals) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleGoals, len(goals))
	}
	fromStart, err := bfs.Distances(g, g.Start(), opts...)
	if err != nil {
		return nil, fmt.Errorf("racetrack: distances from start: %w", err)
	}
	goal := g.Goal()
	base := fromStart[goal.Row][goal.Col]
	if base < 0 {
		return nil, fmt.Errorf("racetrack: %w", gridgraph.ErrUnreachable)
	}
	toGoal, err := bfs.Distances(g, goal, opts...)
	if err != nil {
		return nil, fmt.Errorf("racetrack: distances to goal: %w", err)
	}
	return &Track{grid: g, fromStart: fromStart, toGoal: toGoal, base: base}, nil
}

// Base returns the honest race time in steps.
func (t *Track) Base() int { return t.base }

// Tally maps each positive saving to the number of distinct cheats of
// at most duration steps that achieve it.
func (t *Track) Tally(duration int) (map[int]int, error) {
	if duration < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDuration, duration)
	}
	tally := make(map[int]int)
	for r := 0; r < t.grid.Height; r++ {
		for c := 0; c < t.grid.Width; c++ {
			ds := t.fromStart[r][c]
			if ds < 0 {
				continue
			}
			t.cheatsFrom(gridgraph.Position{Row: r, Col: c}, ds, duration, tally)
		}
	}
	return tally, nil
}

// cheatsFrom adds every cheat starting at p (reached after ds steps) to tally.
func (t *Track) cheatsFrom(p gridgraph.Position, ds, duration int, tally map[int]int) {
	for dr := -duration; dr <= duration; dr++ {
		rem := duration - abs(dr)
		for dc := -rem; dc <= rem; dc++ {
			m := abs(dr) + abs(dc)
			if m < 2 {
				continue
			}
			q := gridgraph.Position{Row: p.Row + dr, Col: p.Col + dc}
			if !t.grid.InBounds(q) {
				continue
			}
			de := t.toGoal[q.Row][q.Col]
			if de < 0 {
				continue
			}
			if saving := t.base - (ds + m + de); saving > 0 {
				tally[saving]++
			}
		}
	}
}

// Count returns how many cheats of at most duration steps save at least
// threshold steps.
func (t *Track) Count(duration, threshold int) (int, error) {
	tally, err := t.Tally(duration)
	if err != nil {
		return 0, err
	}
	n := 0
	for saving, k := range tally {
		if saving >= threshold {
			n += k
		}
	}
	return n, nil
}

// Saving is one row of a sorted tally.
type Saving struct {
	Steps int
	Count int
}

// Sorted flattens a tally in increasing saving order.
func Sorted(tally map[int]int) []Saving {
	out := make([]Saving, 0, len(tally))
	for s, k := range tally {
		out = append(out, Saving{Steps: s, Count: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Steps < out[j].Steps })
	return out
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
