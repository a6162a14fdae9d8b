package gridgraph

import (
	"fmt"
	"strings"
)

// Cell is the content of a single grid square.
type Cell uint8

const (
	// Open is a passable empty cell ('.').
	Open Cell = iota
	// Wall is an impassable cell ('#').
	Wall
	// Start is the single starting cell ('S'); passable.
	Start
	// Goal is a target cell ('E'); passable.
	Goal
)

// cellRunes maps each Cell to its text form.
var cellRunes = [...]rune{Open: '.', Wall: '#', Start: 'S', Goal: 'E'}

// Rune returns the character used for c in maze text.
func (c Cell) Rune() rune {
	if int(c) < len(cellRunes) {
		return cellRunes[c]
	}
	return '?'
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// CellFromRune converts a maze character to a Cell.
func CellFromRune(r rune) (Cell, bool) {
	switch r {
	case '.':
		return Open, true
	case '#':
		return Wall, true
	case 'S':
		return Start, true
	case 'E':
		return Goal, true
	}
	return 0, false
}

// Position addresses a cell by 0-based row and column.
type Position struct {
	Row, Col int
}

// String formats p as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Facing is one of the four compass headings.
type Facing uint8

const (
	North Facing = iota
	East
	South
	West
)

// Facings lists every heading in clockwise order starting from North.
var Facings = [4]Facing{North, East, South, West}

// facingOffsets holds (dRow, dCol) per Facing.
var facingOffsets = [4][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Clockwise returns the heading after one 90° clockwise rotation.
func (f Facing) Clockwise() Facing { return (f + 1) % 4 }

// CounterClockwise returns the heading after one 90° counter-clockwise
// rotation, which equals three clockwise rotations.
func (f Facing) CounterClockwise() Facing { return (f + 3) % 4 }

// Delta returns the row and column offsets of one step in heading f.
func (f Facing) Delta() (dRow, dCol int) {
	d := facingOffsets[f%4]
	return d[0], d[1]
}

// String implements fmt.Stringer.
func (f Facing) String() string {
	switch f {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Facing(%d)", uint8(f))
}

// ParseFacing accepts a heading name or its initial letter, case-insensitive.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("gridgraph: unknown facing %q", s)
}

// Grid is an immutable rectangular maze.
// Width and Height define dimensions; cells[row][col] holds the parsed content.
// start and goals are located once during construction.
type Grid struct {
	Width, Height int
	cells         [][]Cell
	start         Position
	goals         []Position
}
