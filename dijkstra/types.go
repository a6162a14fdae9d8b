package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// NoPath is the Best score reported when no goal state is reachable.
const NoPath int64 = math.MaxInt64

const (
	// DefaultTurnPenalty is the cost of one 90° rotation.
	DefaultTurnPenalty int64 = 1000
	// DefaultStepCost is the cost of one forward move.
	DefaultStepCost int64 = 1
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrGoalOutOfGrid indicates that a requested goal lies outside the grid.
	ErrGoalOutOfGrid = errors.New("dijkstra: goal position outside grid")
)

// State is a grid position together with a heading; the unit of search.
type State struct {
	Pos    gridgraph.Position
	Facing gridgraph.Facing
}

// String formats s as "row,col/Facing".
func (s State) String() string {
	return fmt.Sprintf("%s/%s", s.Pos, s.Facing)
}

// Options configures the behavior of Search.
type Options struct {
	TurnPenalty int64                         // Cost per 90° rotation
	StepCost    int64                         // Cost per forward move
	StartFacing gridgraph.Facing              // Heading of the start state
	Goals       []gridgraph.Position          // Goal positions; nil means the grid's Goal cells
	MaxDistance int64                         // Maximum distance to explore
	OnRelax     func(s State, old, new int64) // Called when dist[s] is lowered
	Logger      zerolog.Logger                // Debug summaries

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the defaults:
//   - TurnPenalty: 1000
//   - StepCost:    1
//   - StartFacing: East
//   - Goals:       nil (every Goal cell)
//   - MaxDistance: NoPath (no cap)
//   - OnRelax:     no-op
//   - Logger:      zerolog.Nop()
func DefaultOptions() Options {
	return Options{
		TurnPenalty: DefaultTurnPenalty,
		StepCost:    DefaultStepCost,
		StartFacing: gridgraph.East,
		MaxDistance: NoPath,
		OnRelax:     func(State, int64, int64) {},
		Logger:      zerolog.Nop(),
	}
}

// WithTurnPenalty sets the cost of one 90° rotation.
// Negative values are recorded as ErrOptionViolation.
func WithTurnPenalty(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: TurnPenalty cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TurnPenalty = n
	}
}

// WithStepCost sets the cost of one forward move.
// Values ≤ 0 are recorded as ErrOptionViolation.
func WithStepCost(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: StepCost must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.StepCost = n
	}
}

// WithStartFacing sets the heading of the start state.
func WithStartFacing(f gridgraph.Facing) Option {
	return func(o *Options) {
		if f > gridgraph.West {
			o.err = fmt.Errorf("%w: unknown facing %d", ErrOptionViolation, f)
			return
		}
		o.StartFacing = f
	}
}

// WithGoal restricts the search to the given goal position.
// Repeated use adds further goals.
func WithGoal(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Goals = append(o.Goals, p)
	}
}

// WithMaxDistance stops exploring states whose distance exceeds max.
// Negative values are recorded as ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithOnRelax registers a callback run each time a state's recorded
// distance is lowered. old is NoPath for a first discovery.
func WithOnRelax(fn func(s State, old, new int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithLogger sets the logger used for search summaries.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result holds the outcome of a search.
//
//   - Start:      the start state.
//   - Best:       minimal cost over every goal state, or NoPath.
//   - Dist:       distance table; every state recorded during the search.
//   - Prev:       for each state, every predecessor achieving its minimal distance.
//   - GoalStates: goal states reached at cost Best.
//   - Explored:   number of states finalized.
type Result struct {
	Start      State
	Best       int64
	Dist       map[State]int64
	Prev       map[State][]State
	GoalStates []State
	Explored   int
}

// Reachable reports whether some goal state was reached.
func (r *Result) Reachable() bool { return r.Best != NoPath }

// Cost returns Best, or gridgraph.ErrUnreachable when no goal was reached.
func (r *Result) Cost() (int64, error) {
	if !r.Reachable() {
		return NoPath, gridgraph.ErrUnreachable
	}
	return r.Best, nil
}
