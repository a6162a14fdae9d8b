package gridgraph

import (
	"container/list"
	"fmt"
)

// WallsBetween finds a route from one cell to another that knocks down as
// few walls as possible. Stepping onto a passable cell is free; stepping
// onto a Wall costs 1. The from cell itself is never counted.
// Returns the route (from and to included) and the number of walls on it.
//
// Behavior:
//  1. Validate both positions.
//  2. 0-1 BFS from `from`:
//     • Moving into a passable cell → cost 0 (pushed to the front)
//     • Moving into a wall          → cost 1 (pushed to the back)
//  3. Stop when `to` leaves the deque.
//  4. Rebuild the route from the predecessor table.
//
// Every in-bounds pair is connected once walls may be broken, so the only
// error is ErrOutOfGrid.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for distance and predecessor tables.
func (g *Grid) WallsBetween(from, to Position) (path []Position, walls int, err error) {
	for _, p := range []Position{from, to} {
		if !g.InBounds(p) {
			return nil, 0, fmt.Errorf("%w: %s in %d×%d", ErrOutOfGrid, p, g.Height, g.Width)
		}
	}

	n := g.Size()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.Index(from), g.Index(to)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		up := g.Coordinate(u)
		for _, f := range Facings {
			vp, ok := g.Step(up, f)
			if !ok {
				continue
			}
			v := g.Index(vp)
			step := 0
			if g.cells[vp.Row][vp.Col] == Wall {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		path = append(path, g.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst], nil
}
