package solver

import (
	"slices"

	"github.com/papapumpkin/warden/internal/puzzle"
)

// reconstruct walks the history map backward from the goal layout to the
// initial one. Each iteration looks up the current board's producing
// move, records the current layout, then applies the move's inverse to
// a working copy to obtain the predecessor. The walk must hit the
// sentinel within the number of recorded states; anything else means
// the history map is corrupt, which is a programming error, not a
// recoverable condition.
func reconstruct(goal puzzle.Layout, history map[puzzle.Board]puzzle.Move) []Step {
	steps := make([]Step, 0, 8)

	cur := goal.Clone()
	board := cur.Render()
	for i := 0; ; i++ {
		if i > len(history) {
			panic("solver: history walk did not reach the initial state")
		}
		move, ok := history[board]
		if !ok {
			panic("solver: board missing from search history")
		}

		steps = append(steps, Step{Layout: cur, Move: move})
		if move.IsSentinel() {
			break
		}

		inv := move.Inverse()
		cur = cur.MoveBlock(inv.BlockID, inv.Dir)
		board = cur.Render()
	}

	slices.Reverse(steps)
	return steps
}
