package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warden/internal/config"
	"github.com/papapumpkin/warden/internal/history"
	"github.com/papapumpkin/warden/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := history.Open(ctx, filepath.Join(cfg.DataDir, "history.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(ctx)
	if err != nil {
		return err
	}

	printer := ui.New()
	printer.HistoryHeader(len(records))
	out := cmd.OutOrStdout()
	for _, r := range records {
		name := r.Name
		if name == "" {
			name = r.BoardKey[:8]
		}
		fmt.Fprintf(out, "%-24s %-11s %4d moves  %7d states  %6dms  %s\n",
			name, r.Outcome, r.Moves, r.Expanded, r.DurationMS,
			r.SolvedAt.Format(time.DateOnly))
	}
	return nil
}
