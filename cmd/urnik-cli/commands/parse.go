package commands

import (
	"fmt"
	"os"

	"urnik-backend/internal/scrapers/fri"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <page.html>",
	Short: "Runs the extractor on a saved allocations page.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		blocks, err := fri.ParseTimetable(file)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		return writeTimetable(cmd.OutOrStdout(), blocks, *asJson)
	},
}
