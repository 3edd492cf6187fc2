package solver

import (
	"time"

	"github.com/papapumpkin/warden/internal/puzzle"
)

// Outcome is the solver's verdict for a starting layout.
type Outcome string

const (
	OutcomeSolved     Outcome = "solved"
	OutcomeUnsolvable Outcome = "unsolvable"
)

// Stats summarizes the work a search did.
type Stats struct {
	Expanded int           // states dequeued and examined
	Visited  int           // distinct boards reached
	Duration time.Duration // wall time of the search
}

// Result is the outcome of a search. Steps is the ordered solution from
// the initial layout to the goal layout (each step paired with the move
// that produced it); it is nil when the puzzle is unsolvable.
type Result struct {
	Outcome Outcome
	Steps   []Step
	Stats   Stats
}

// Moves returns the number of slides in the solution.
func (r Result) Moves() int {
	if len(r.Steps) == 0 {
		return 0
	}
	return len(r.Steps) - 1
}

// Solve runs a breadth-first search from the given starting layout.
//
// The frontier is a FIFO queue of layouts. Every reached board is
// recorded exactly once: visited is marked and the producing move is
// stored at enqueue time, so the first (and therefore shortest) path to
// a board wins and no board is ever expanded twice. The search is
// synchronous and exhaustive; it terminates either at a goal board or
// when the finite state space is used up.
func Solve(initial puzzle.Layout) Result {
	start := time.Now()

	first := initial.Render()
	history := map[puzzle.Board]puzzle.Move{first: puzzle.Sentinel()}
	visited := map[puzzle.Board]bool{first: true}
	frontier := []puzzle.Layout{initial}

	expanded := 0
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		board := cur.Render()
		expanded++

		if Escaped(board, cur) {
			return Result{
				Outcome: OutcomeSolved,
				Steps:   reconstruct(cur, history),
				Stats: Stats{
					Expanded: expanded,
					Visited:  len(visited),
					Duration: time.Since(start),
				},
			}
		}

		for _, cand := range Successors(cur, board) {
			next := cand.Layout.Render()
			if visited[next] {
				continue
			}
			visited[next] = true
			history[next] = cand.Move
			frontier = append(frontier, cand.Layout)
		}
	}

	return Result{
		Outcome: OutcomeUnsolvable,
		Stats: Stats{
			Expanded: expanded,
			Visited:  len(visited),
			Duration: time.Since(start),
		},
	}
}
