// Package puzzle models a 6×6 sliding-block escape puzzle: rectangular
// blocks on a fixed grid, one of them the prisoner that must reach the
// exit edge. Layouts are value types; every transformation returns a
// fresh copy, so two layouts never share mutable state.
package puzzle

// Size is the board edge length in tiles.
const Size = 6

// TileKind is the occupancy class of a single grid cell. It is always
// derived from a Layout, never stored on its own.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileBlock
	TilePrisoner
)

// Direction is one of the four axis-aligned slide directions.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Opposite returns the reverse direction, used to undo a move while
// backtracking through search history.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the row/column displacement of a one-tile slide.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "down"
	}
}

// Block is one rectangular piece. Row/Col is the top-left cell;
// Horizontal, Kind and Length are fixed for the block's lifetime. The
// ID re-identifies the same logical block across layouts and carries no
// positional meaning.
type Block struct {
	ID         int
	Row, Col   int
	Horizontal bool
	Kind       TileKind
	Length     int
}

// IDAllocator hands out monotonically increasing block IDs. Each
// construction site owns its own allocator, so runs are independent and
// reproducible.
type IDAllocator struct {
	next int
}

// NewIDAllocator returns an allocator starting at ID 0.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next unused ID.
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}
