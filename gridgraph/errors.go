package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidCharacter indicates a character outside the maze alphabet.
	ErrInvalidCharacter = errors.New("gridgraph: invalid maze character")
	// ErrMissingStart indicates the grid has no Start cell.
	ErrMissingStart = errors.New("gridgraph: grid has no start cell")
	// ErrMultipleStart indicates the grid has more than one Start cell.
	ErrMultipleStart = errors.New("gridgraph: grid has more than one start cell")
	// ErrMissingGoal indicates the grid has no Goal cell.
	ErrMissingGoal = errors.New("gridgraph: grid has no goal cell")
	// ErrUnreachable indicates that no goal can be reached from the start.
	ErrUnreachable = errors.New("gridgraph: goal is unreachable")
	// ErrOutOfGrid indicates a position outside the grid boundaries.
	ErrOutOfGrid = errors.New("gridgraph: position outside grid")
)

// ParseError locates a malformed character in the input text.
// Line and Column are 1-based.
type ParseError struct {
	Line   int
	Column int
	Char   rune
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %q: %v", e.Line, e.Column, e.Char, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
