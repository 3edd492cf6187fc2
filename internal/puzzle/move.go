package puzzle

import "fmt"

// Move records a single-tile slide: which block moved, and where. The
// sentinel marks "initial state, not reached via a move".
type Move struct {
	BlockID int
	Dir     Direction
}

// sentinelID marks the history entry for the initial board.
const sentinelID = -1

// Sentinel returns the move stored for the initial state.
func Sentinel() Move {
	return Move{BlockID: sentinelID}
}

// IsSentinel reports whether m marks the initial state.
func (m Move) IsSentinel() bool {
	return m.BlockID == sentinelID
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{BlockID: m.BlockID, Dir: m.Dir.Opposite()}
}

func (m Move) String() string {
	if m.IsSentinel() {
		return "start"
	}
	return fmt.Sprintf("block %d %s", m.BlockID, m.Dir)
}
