package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warden/internal/config"
	"github.com/papapumpkin/warden/internal/render"
	"github.com/papapumpkin/warden/internal/solver"
	"github.com/papapumpkin/warden/internal/tui"
	"github.com/papapumpkin/warden/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play <puzzle.toml>",
	Short: "Solve a puzzle and step through the solution interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(); err != nil {
		return err
	}
	printer := ui.New()

	layout, name, err := loadPuzzle(args[0], printer)
	if err != nil {
		return err
	}
	if name == "" {
		name = filepath.Base(args[0])
	}

	printer.SolveStart(name)
	res := solver.Solve(layout)
	if res.Outcome == solver.OutcomeUnsolvable {
		printer.Unsolvable(res.Stats.Expanded, res.Stats.Duration)
		return nil
	}
	printer.Solved(res.Moves(), res.Stats.Expanded, res.Stats.Duration)

	frames := make([]tui.Frame, 0, len(res.Steps))
	for _, step := range res.Steps {
		frames = append(frames, tui.Frame{
			Board: render.Board(step.Layout),
			Label: render.MoveLabel(step.Layout, step.Move),
		})
	}
	return tui.Run(name, frames)
}
