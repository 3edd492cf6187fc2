package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warden/internal/config"
	"github.com/papapumpkin/warden/internal/telemetry"
	"github.com/papapumpkin/warden/internal/ui"
	"github.com/papapumpkin/warden/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <puzzle.toml>",
	Short: "Re-solve a puzzle every time its file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().BoolP("quiet", "q", false, "print only the move list, not each board")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printer := ui.New()
	em := openEmitter(cfg)
	defer em.Close()

	// Solve once up front; an invalid manifest is reported but keeps the
	// watch alive so the user can fix the file.
	if err := solveFile(path, quiet); err != nil {
		printer.Error(err.Error())
	}

	w, err := watch.New(path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	printer.WatchStart(path)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-interrupt:
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			printer.WatchChange(change.File)
			_ = em.Emit(telemetry.Event{
				Timestamp: time.Now(),
				Kind:      telemetry.KindWatchChange,
				Puzzle:    change.File,
			})
			if err := solveFile(change.File, quiet); err != nil {
				printer.Error(err.Error())
			}
		}
	}
}
