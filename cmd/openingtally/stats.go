package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discochess/openingtally/internal/extract"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about the input files",
	Long: `Parse the matching input files and report per-file and total game
counts without writing any summary files.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	src, err := openSource(ctx)
	if err != nil {
		return fmt.Errorf("opening input %q: %w", inputPath, err)
	}
	defer src.Close()

	names, err := src.List(ctx)
	if err != nil {
		return fmt.Errorf("listing %s: %w", src.Name(), err)
	}
	if len(names) == 0 {
		fmt.Printf("No PGN files found in %s.\n", src.Name())
		return nil
	}

	var totalGames, totalMoves int
	for _, name := range names {
		rc, err := src.Open(ctx, name)
		if err != nil {
			return fmt.Errorf("opening %s: %w", name, err)
		}
		records, err := extract.Games(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}

		fmt.Printf("  %-40s %d game(s)\n", name, len(records))
		totalGames += len(records)
		for _, r := range records {
			totalMoves += r.Moves
		}
	}

	fmt.Printf("Input:         %s\n", src.Name())
	fmt.Printf("Files:         %d\n", len(names))
	fmt.Printf("Games:         %d\n", totalGames)
	if totalGames > 0 {
		fmt.Printf("Average moves: %.1f\n", float64(totalMoves)/float64(totalGames))
	}

	return nil
}
