// Package solver searches the state space of a sliding-block puzzle for
// a shortest escape sequence. It is a breadth-first search over rendered
// boards: the frontier holds layouts, visited/history are keyed by the
// board value, and the recorded moves are replayed in reverse to
// reconstruct the path once a goal board is reached.
package solver

import "github.com/papapumpkin/warden/internal/puzzle"

// Step pairs a layout with the move that produced it. The initial step
// of a solution carries the sentinel move.
type Step struct {
	Layout puzzle.Layout
	Move   puzzle.Move
}

// Successors enumerates every layout reachable from l by sliding exactly
// one block one tile. A slide is legal iff the single cell past the
// block's leading edge is in bounds and empty on the rendered board.
// Each candidate is an independent copy; generating a successor never
// touches l. A block parked against a wall simply contributes no
// candidate on that side.
func Successors(l puzzle.Layout, board puzzle.Board) []Step {
	var out []Step

	emit := func(id int, dir puzzle.Direction) {
		out = append(out, Step{
			Layout: l.MoveBlock(id, dir),
			Move:   puzzle.Move{BlockID: id, Dir: dir},
		})
	}

	for _, b := range l.Blocks() {
		if b.Horizontal {
			if b.Col > 0 && !board.Occupied(b.Row, b.Col-1) {
				emit(b.ID, puzzle.Left)
			}
			if b.Col+b.Length < puzzle.Size && !board.Occupied(b.Row, b.Col+b.Length) {
				emit(b.ID, puzzle.Right)
			}
		} else {
			if b.Row > 0 && !board.Occupied(b.Row-1, b.Col) {
				emit(b.ID, puzzle.Up)
			}
			if b.Row+b.Length < puzzle.Size && !board.Occupied(b.Row+b.Length, b.Col) {
				emit(b.ID, puzzle.Down)
			}
		}
	}
	return out
}
