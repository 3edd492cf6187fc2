package solver

import "github.com/papapumpkin/warden/internal/puzzle"

// Escaped reports whether the prisoner has a clear run from its far
// edge to the exit boundary: the right edge of its row for a horizontal
// prisoner, the bottom edge of its column for a vertical one. A layout
// without a prisoner is a broken input that a correct classifier can
// never produce, so it panics rather than fabricating an answer.
func Escaped(board puzzle.Board, l puzzle.Layout) bool {
	p, ok := l.Prisoner()
	if !ok {
		panic("solver: layout has no prisoner block")
	}

	if p.Horizontal {
		for col := p.Col + p.Length; col < puzzle.Size; col++ {
			if board.Occupied(p.Row, col) {
				return false
			}
		}
		return true
	}
	for row := p.Row + p.Length; row < puzzle.Size; row++ {
		if board.Occupied(row, p.Col) {
			return false
		}
	}
	return true
}
