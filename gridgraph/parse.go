package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a maze, one row per line, using '.', '#', 'S' and 'E'.
// Both "\n" and "\r\n" line endings are accepted; trailing blank lines
// are ignored, while a blank line between rows is ErrNonRectangular.
// A character outside the alphabet yields a *ParseError wrapping
// ErrInvalidCharacter. Structural errors are those of NewGrid.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var rows [][]Cell
	blank := 0
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		if blank > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrNonRectangular, line)
		}
		blank = 0
		row := make([]Cell, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			cell, ok := CellFromRune(ch)
			if !ok {
				return nil, &ParseError{Line: line, Column: col, Char: ch, Err: ErrInvalidCharacter}
			}
			row = append(row, cell)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d",
				ErrNonRectangular, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}

	return NewGrid(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}
