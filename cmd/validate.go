package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/warden/internal/puzzle"
	"github.com/papapumpkin/warden/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <puzzle.toml>",
	Short: "Check a puzzle manifest against the layout invariants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printer := ui.New()

		layout, name, err := puzzle.LoadFile(args[0])
		if err != nil {
			return err
		}
		if name == "" {
			name = filepath.Base(args[0])
		}

		errs := puzzle.Validate(layout)
		printer.ValidateResult(name, layout.Len(), errs)
		if len(errs) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
