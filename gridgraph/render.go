package gridgraph

import "strings"

// Render writes the grid back in maze text, one row per line with a
// trailing newline. Cells whose position is in marks are drawn with mark
// unless they are Start or Goal, which keep their own letter.
func (g *Grid) Render(marks map[Position]bool, mark rune) string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	g.RenderFunc(&b, func(p Position, c Cell) string {
		if marks[p] && c != Start && c != Goal {
			return string(mark)
		}
		return string(c.Rune())
	})
	return b.String()
}

// RenderFunc writes every cell through draw, row by row, ending each row
// with a newline. It lets callers style individual cells.
func (g *Grid) RenderFunc(b *strings.Builder, draw func(p Position, c Cell) string) {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			b.WriteString(draw(Position{Row: r, Col: c}, g.cells[r][c]))
		}
		b.WriteByte('\n')
	}
}
