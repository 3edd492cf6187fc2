// Package render turns layouts into plain ASCII boards for humans. The
// output is unstyled text; the CLI prints it as-is and the TUI wraps it
// in its own styling.
package render

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/warden/internal/puzzle"
)

// Letter returns the display rune for a block: 'Z' for the prisoner,
// otherwise a letter derived from the block ID so the same logical
// block keeps its letter across every board of a solution.
func Letter(b puzzle.Block) rune {
	if b.Kind == puzzle.TilePrisoner {
		return 'Z'
	}
	return rune('A' + b.ID%26)
}

// Board renders a layout as a walled ASCII grid, two characters per
// tile. The wall is open at the prisoner's exit: the right edge of its
// row for a horizontal prisoner, the bottom edge of its column for a
// vertical one.
func Board(l puzzle.Layout) string {
	var cells [puzzle.Size][puzzle.Size]rune
	for r := range cells {
		for c := range cells[r] {
			cells[r][c] = ' '
		}
	}
	for _, b := range l.Blocks() {
		ch := Letter(b)
		for i := 0; i < b.Length; i++ {
			if b.Horizontal {
				cells[b.Row][b.Col+i] = ch
			} else {
				cells[b.Row+i][b.Col] = ch
			}
		}
	}

	exitRow, exitCol := -1, -1
	if p, ok := l.Prisoner(); ok {
		if p.Horizontal {
			exitRow = p.Row
		} else {
			exitCol = p.Col
		}
	}

	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("-", 3*puzzle.Size) + "+\n")
	for r := 0; r < puzzle.Size; r++ {
		sb.WriteRune('|')
		for c := 0; c < puzzle.Size; c++ {
			ch := cells[r][c]
			sb.WriteRune(ch)
			sb.WriteRune(ch)
			sb.WriteRune(' ')
		}
		if r == exitRow {
			sb.WriteString(" \n")
		} else {
			sb.WriteString("|\n")
		}
	}
	sb.WriteRune('+')
	for c := 0; c < puzzle.Size; c++ {
		if c == exitCol {
			sb.WriteString("   ")
		} else {
			sb.WriteString("---")
		}
	}
	sb.WriteString("+\n")
	return sb.String()
}

// MoveLabel formats a move using the moved block's display letter, e.g.
// "C right". The layout supplies the letter; the sentinel renders as
// "start".
func MoveLabel(l puzzle.Layout, m puzzle.Move) string {
	if m.IsSentinel() {
		return "start"
	}
	b, ok := l.Block(m.BlockID)
	if !ok {
		return m.String()
	}
	return fmt.Sprintf("%c %s", Letter(b), m.Dir)
}
