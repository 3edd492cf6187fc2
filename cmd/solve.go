package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warden/internal/config"
	"github.com/papapumpkin/warden/internal/history"
	"github.com/papapumpkin/warden/internal/puzzle"
	"github.com/papapumpkin/warden/internal/render"
	"github.com/papapumpkin/warden/internal/solver"
	"github.com/papapumpkin/warden/internal/telemetry"
	"github.com/papapumpkin/warden/internal/ui"
)

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle.toml>",
	Short: "Solve a puzzle and print the move sequence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		return solveFile(args[0], quiet)
	},
}

func init() {
	solveCmd.Flags().BoolP("quiet", "q", false, "print only the move list, not each board")
	rootCmd.AddCommand(solveCmd)
}

// loadPuzzle reads a manifest and runs the boundary validation the
// solver itself assumes has already happened.
func loadPuzzle(path string, printer *ui.Printer) (puzzle.Layout, string, error) {
	layout, name, err := puzzle.LoadFile(path)
	if err != nil {
		return puzzle.Layout{}, "", err
	}
	if errs := puzzle.Validate(layout); len(errs) > 0 {
		printer.ValidateResult(name, layout.Len(), errs)
		return puzzle.Layout{}, "", errors.New("invalid puzzle layout")
	}
	return layout, name, nil
}

// openEmitter opens the telemetry stream configured in cfg, or returns
// a nil (no-op) emitter when telemetry is disabled.
func openEmitter(cfg config.Config) *telemetry.Emitter {
	if cfg.TelemetryPath == "" {
		return nil
	}
	em, err := telemetry.NewEmitter(cfg.TelemetryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry disabled: %v\n", err)
		return nil
	}
	return em
}

func solveFile(path string, quiet bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printer := ui.New()

	layout, name, err := loadPuzzle(path, printer)
	if err != nil {
		return err
	}
	if name == "" {
		name = filepath.Base(path)
	}

	em := openEmitter(cfg)
	defer em.Close()

	printer.SolveStart(name)
	_ = em.Emit(telemetry.Event{Timestamp: time.Now(), Kind: telemetry.KindSolveStart, Puzzle: name})

	res := solver.Solve(layout)

	_ = em.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindSolveDone,
		Puzzle:    name,
		Data: map[string]any{
			"outcome":     string(res.Outcome),
			"moves":       res.Moves(),
			"expanded":    res.Stats.Expanded,
			"visited":     res.Stats.Visited,
			"duration_ms": res.Stats.Duration.Milliseconds(),
		},
	})

	recordSolve(cfg, printer, name, layout, res)

	if res.Outcome == solver.OutcomeUnsolvable {
		printer.Unsolvable(res.Stats.Expanded, res.Stats.Duration)
		return nil
	}

	for i, step := range res.Steps {
		label := render.MoveLabel(step.Layout, step.Move)
		printer.Step(i, res.Moves(), label)
		if !quiet {
			fmt.Fprint(os.Stdout, render.Board(step.Layout))
		}
	}
	printer.Solved(res.Moves(), res.Stats.Expanded, res.Stats.Duration)
	return nil
}

// recordSolve upserts the result into the history store. History is
// best-effort; a storage failure is reported but never fails the solve.
func recordSolve(cfg config.Config, printer *ui.Printer, name string, layout puzzle.Layout, res solver.Result) {
	ctx := context.Background()
	store, err := history.Open(ctx, filepath.Join(cfg.DataDir, "history.db"))
	if err != nil {
		printer.Info(fmt.Sprintf("history unavailable: %v", err))
		return
	}
	defer store.Close()

	key := layout.Render().Key()
	if prev, ok, err := store.Lookup(ctx, key); err == nil && ok && prev.Outcome == string(solver.OutcomeSolved) {
		printer.PreviouslySolved(prev.Moves, prev.SolvedAt)
	}

	rec := history.Record{
		BoardKey:   key,
		Name:       name,
		Outcome:    string(res.Outcome),
		Moves:      res.Moves(),
		Expanded:   res.Stats.Expanded,
		DurationMS: res.Stats.Duration.Milliseconds(),
	}
	if err := store.Record(ctx, rec); err != nil {
		printer.Info(fmt.Sprintf("history write failed: %v", err))
	}
}
