// Package gridpath is a toolkit for grid maze pathfinding puzzles.
//
// The library is organized into focused subpackages:
//
//	gridgraph/   maze text parsing, cells, positions, facings and rendering
//	dijkstra/    facing-aware cheapest route search with turn penalties,
//	             plus the set of cells lying on any optimal route
//	bfs/         unweighted breadth-first search with hooks and depth limits
//	racetrack/   shortcut ("cheat") counting on single-lane race tracks
//	memspace/    escape routes through a grid filling with falling bytes
//
// The gridpath command in cmd/gridpath exposes each puzzle as a subcommand:
//
//	gridpath maze -i maze.txt
//	lowest score: 7036
//	optimal path cells: 45
//
// Quick start:
//
//	g, _ := gridgraph.ParseString("S..\n##E\n")
//	res, _ := dijkstra.Search(g)
//	fmt.Println(res.Best, len(res.OptimalCells())) // 1003 4
package gridpath
