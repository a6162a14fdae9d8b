package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// pos is shorthand for a grid position.
func pos(r, c int) gridgraph.Position { return gridgraph.Position{Row: r, Col: c} }

// mustGrid parses a maze or fails the test.
func mustGrid(t testing.TB, s string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, pos(0, 0)); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g := mustGrid(t, "S#E\n")
	if _, err := bfs.BFS(g, pos(4, 0)); !errors.Is(err, bfs.ErrStartOutOfGrid) {
		t.Errorf("outside start: want ErrStartOutOfGrid, got %v", err)
	}
	if _, err := bfs.BFS(g, pos(0, 1)); !errors.Is(err, bfs.ErrStartBlocked) {
		t.Errorf("wall start: want ErrStartBlocked, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers a one-cell region.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(mustGrid(t, "S#E\n"), pos(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []gridgraph.Position{pos(0, 0)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d, ok := res.DistanceTo(pos(0, 0)); !ok || d != 0 {
		t.Errorf("DistanceTo(start) = %d, %v; want 0, true", d, ok)
	}
	if _, ok := res.DistanceTo(pos(0, 2)); ok {
		t.Error("DistanceTo(goal) reported reachable across a wall")
	}
	if _, ok := res.DistanceTo(pos(5, 5)); ok {
		t.Error("DistanceTo(outside) reported reachable")
	}
}

// TestBFS_Layers checks depths and visit order on an open 3×3 grid.
func TestBFS_Layers(t *testing.T) {
	res, err := bfs.BFS(mustGrid(t, "S..\n...\n..E\n"), pos(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if got, _ := res.DistanceTo(pos(r, c)); got != r+c {
				t.Errorf("DistanceTo(%d,%d) = %d; want %d", r, c, got, r+c)
			}
		}
	}
	want := []gridgraph.Position{pos(0, 0), pos(0, 1), pos(1, 0), pos(0, 2), pos(1, 1), pos(2, 0), pos(1, 2), pos(2, 1), pos(2, 2)}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain moves.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := mustGrid(t, "S..E\n")
	res, _ := bfs.BFS(g, pos(0, 0),
		bfs.WithFilterNeighbor(func(from, to gridgraph.Position) bool {
			return !(from == pos(0, 1) && to == pos(0, 2))
		}),
	)
	if want := []gridgraph.Position{pos(0, 0), pos(0, 1)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisit records every visit with its depth.
func TestBFS_OnVisit(t *testing.T) {
	var seen []string
	_, err := bfs.BFS(mustGrid(t, "S.E\n"), pos(0, 0),
		bfs.WithOnVisit(func(p gridgraph.Position, d int) error {
			seen = append(seen, fmt.Sprintf("%s@%d", p, d))
			return nil
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"0,0@0", "0,1@1", "0,2@2"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("visits = %v; want %v", seen, want)
	}
}

// TestBFS_OnVisitError aborts the walk and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(mustGrid(t, "S.E\n"), pos(0, 0),
		bfs.WithOnVisit(func(p gridgraph.Position, _ int) error {
			if p == pos(0, 1) {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestBFS_Stop ends the walk early without an error.
func TestBFS_Stop(t *testing.T) {
	res, err := bfs.BFS(mustGrid(t, "S...E\n"), pos(0, 0),
		bfs.WithOnVisit(func(p gridgraph.Position, _ int) error {
			if p == pos(0, 1) {
				return bfs.Stop
			}
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("Stop surfaced as error: %v", err)
	}
	if want := []gridgraph.Position{pos(0, 0), pos(0, 1)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(mustGrid(t, "S.E\n"), pos(0, 0), bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_PathTo covers both reachable and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := mustGrid(t, "S.#\n#.#\n#.E\n")
	res, err := bfs.BFS(g, g.Start())
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(g.Goal())
	if err != nil {
		t.Fatal(err)
	}
	want := []gridgraph.Position{pos(0, 0), pos(0, 1), pos(1, 1), pos(2, 1), pos(2, 2)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo = %v; want %v", path, want)
	}
	if p, err := res.PathTo(g.Start()); err != nil || len(p) != 1 {
		t.Errorf("PathTo(start) = %v, %v; want single cell", p, err)
	}

	blocked := mustGrid(t, "S#E\n")
	res, _ = bfs.BFS(blocked, blocked.Start())
	if _, err := res.PathTo(blocked.Goal()); !errors.Is(err, gridgraph.ErrUnreachable) {
		t.Errorf("PathTo(unreachable) error = %v; want ErrUnreachable", err)
	}
}

// TestDistances_Table fills unreached cells with -1.
func TestDistances_Table(t *testing.T) {
	g := mustGrid(t, "S.#E\n..#.\n")
	table, err := bfs.Distances(g, g.Start())
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]int{{0, 1, -1, -1}, {1, 2, -1, -1}}; !reflect.DeepEqual(table, want) {
		t.Errorf("Distances = %v; want %v", table, want)
	}
}

// TestShortestPath counts steps or reports ErrUnreachable.
func TestShortestPath(t *testing.T) {
	g := mustGrid(t, "S.#\n#.#\n#.E\n")
	if n, err := bfs.ShortestPath(g, g.Start(), g.Goal()); err != nil || n != 4 {
		t.Errorf("ShortestPath = %d, %v; want 4, nil", n, err)
	}
	if n, err := bfs.ShortestPath(g, g.Start(), g.Start()); err != nil || n != 0 {
		t.Errorf("ShortestPath(start, start) = %d, %v; want 0, nil", n, err)
	}
	blocked := mustGrid(t, "S#E\n")
	if _, err := bfs.ShortestPath(blocked, blocked.Start(), blocked.Goal()); !errors.Is(err, gridgraph.ErrUnreachable) {
		t.Errorf("ShortestPath(blocked) error = %v; want ErrUnreachable", err)
	}
}

// TestShortestPath_StopsAtGoal leaves cells beyond the goal unvisited.
func TestShortestPath_StopsAtGoal(t *testing.T) {
	g := mustGrid(t, "S.E....\n")
	visited := 0
	n, err := bfs.ShortestPath(g, g.Start(), g.Goal(),
		bfs.WithOnVisit(func(gridgraph.Position, int) error { visited++; return nil }),
	)
	if err != nil || n != 2 {
		t.Fatalf("ShortestPath = %d, %v; want 2, nil", n, err)
	}
	if visited != 3 {
		t.Errorf("visited %d cells; want 3", visited)
	}
}

// TestShortestPath_Filter treats filtered cells as walls.
func TestShortestPath_Filter(t *testing.T) {
	g := mustGrid(t, "S..\n...\n..E\n")
	walls := map[gridgraph.Position]bool{pos(0, 1): true, pos(1, 1): true, pos(2, 1): true}
	_, err := bfs.ShortestPath(g, g.Start(), g.Goal(),
		bfs.WithFilterNeighbor(func(_, to gridgraph.Position) bool { return !walls[to] }),
	)
	if !errors.Is(err, gridgraph.ErrUnreachable) {
		t.Errorf("want ErrUnreachable, got %v", err)
	}
}
