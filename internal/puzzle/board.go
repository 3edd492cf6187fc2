package puzzle

import "fmt"

// Board is the rendered per-cell view of a Layout. It is a comparable
// value, so it serves directly as the deduplication and history key
// during search: two layouts that stamp identical cells with identical
// kinds render to equal boards.
type Board [Size * Size]TileKind

// At returns the tile kind at the given cell.
func (b Board) At(row, col int) TileKind {
	return b[row*Size+col]
}

// Occupied reports whether the given cell holds any block body.
func (b Board) Occupied(row, col int) bool {
	return b.At(row, col) != TileEmpty
}

// Key returns a stable hex encoding of the board, suitable as a
// primary key in external storage.
func (b Board) Key() string {
	return fmt.Sprintf("%x", b[:])
}
