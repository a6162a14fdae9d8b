// Package memspace simulates bytes falling into a square memory grid and
// measures the escape route from the top-left corner to the bottom-right one.
//
// Byte coordinates are read as "X,Y" where X is the column and Y the row.
// Every fallen byte turns its cell into a wall; the route is an ordinary
// 4-neighbour BFS over the remaining cells.
package memspace

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrBadCoordinate indicates an input line that is not "X,Y" with X, Y ≥ 0.
	ErrBadCoordinate = errors.New("memspace: malformed byte coordinate")
	// ErrBadSize indicates a grid side below 2.
	ErrBadSize = errors.New("memspace: grid side must be at least 2")
	// ErrOutOfRange indicates a byte that falls outside the grid.
	ErrOutOfRange = errors.New("memspace: byte outside grid")
	// ErrByteCount indicates a prefix length outside [0, len(bytes)].
	ErrByteCount = errors.New("memspace: byte count out of range")
	// ErrNeverBlocked indicates the exit stays reachable after every byte fell.
	ErrNeverBlocked = errors.New("memspace: exit is never blocked")
)

// Parse reads one "X,Y" coordinate per line. Blank lines are skipped.
func Parse(r io.Reader) ([]gridgraph.Position, error) {
	var out []gridgraph.Position
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil || x < 0 || y < 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		out = append(out, gridgraph.Position{Row: y, Col: x})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("memspace: read input: %w", err)
	}
	return out, nil
}

// Option configures a Space.
type Option func(*Space)

// WithLogger sets the logger used for search summaries.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Space) { s.logger = l }
}

// WithContext makes every walk honour ctx cancellation.
func WithContext(ctx context.Context) Option {
	return func(s *Space) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// never is the fall index of a cell no byte lands on.
const never = math.MaxInt

// Space is a size×size memory grid together with its falling-byte schedule.
//
// The grid itself carries no walls. fell holds, per grid index, the
// schedule position of the first byte landing there; a walk after n bytes
// treats every cell with fell < n as a wall.
type Space struct {
	size   int
	bytes  []gridgraph.Position
	grid   *gridgraph.Grid
	fell   []int
	ctx    context.Context
	logger zerolog.Logger
}

// New builds a Space. A size of 0 infers the side from the largest
// coordinate in bytes. The byte slice is copied.
func New(size int, bytes []gridgraph.Position, opts ...Option) (*Space, error) {
	if size == 0 {
		for _, b := range bytes {
			size = max(size, b.Row+1, b.Col+1)
		}
	}
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	for i, b := range bytes {
		if b.Row >= size || b.Col >= size {
			return nil, fmt.Errorf("%w: byte %d at %d,%d in %d×%d", ErrOutOfRange, i, b.Col, b.Row, size, size)
		}
	}

	exit := gridgraph.Position{Row: size - 1, Col: size - 1}
	g, err := gridgraph.FromWalls(size, size, nil, gridgraph.Position{}, exit)
	if err != nil {
		return nil, fmt.Errorf("memspace: build grid: %w", err)
	}
	fell := make([]int, g.Size())
	for i := range fell {
		fell[i] = never
	}
	for i, b := range bytes {
		if at := g.Index(b); fell[at] == never {
			fell[at] = i
		}
	}

	s := &Space{
		size:   size,
		bytes:  append([]gridgraph.Position(nil), bytes...),
		grid:   g,
		fell:   fell,
		ctx:    context.Background(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Size returns the side length of the grid.
func (s *Space) Size() int { return s.size }

// Len returns the number of scheduled bytes.
func (s *Space) Len() int { return len(s.bytes) }

// ShortestPath returns the minimum number of steps from the top-left entry
// to the bottom-right exit after the first n bytes fell. The error wraps
// gridgraph.ErrUnreachable when no route is left, including when a byte
// landed on the entry or the exit.
func (s *Space) ShortestPath(n int) (int, error) {
	if n < 0 || n > len(s.bytes) {
		return 0, fmt.Errorf("%w: %d of %d", ErrByteCount, n, len(s.bytes))
	}
	entry := s.grid.Start()
	if s.fell[s.grid.Index(entry)] < n {
		return 0, fmt.Errorf("memspace: byte on entry %s: %w", entry, gridgraph.ErrUnreachable)
	}
	return bfs.ShortestPath(s.grid, entry, s.grid.Goal(),
		bfs.WithContext(s.ctx),
		bfs.WithFilterNeighbor(func(_, to gridgraph.Position) bool {
			return s.fell[s.grid.Index(to)] >= n
		}),
	)
}

// FirstBlocking returns the first byte whose fall cuts the entry off from
// the exit, together with its index in the schedule.
func (s *Space) FirstBlocking() (gridgraph.Position, int, error) {
	var searchErr error
	blocked := func(n int) bool {
		_, err := s.ShortestPath(n)
		switch {
		case err == nil:
			return false
		case errors.Is(err, gridgraph.ErrUnreachable):
			return true
		default:
			if searchErr == nil {
				searchErr = err
			}
			return false
		}
	}
	// reachability only ever shrinks as bytes fall, so the predicate is monotone
	n := sort.Search(len(s.bytes)+1, blocked)
	if searchErr != nil {
		return gridgraph.Position{}, 0, searchErr
	}
	if n > len(s.bytes) || n == 0 {
		return gridgraph.Position{}, 0, ErrNeverBlocked
	}
	b := s.bytes[n-1]
	s.logger.Debug().
		Int("index", n-1).
		Int("x", b.Col).
		Int("y", b.Row).
		Msg("first blocking byte")
	return b, n - 1, nil
}
