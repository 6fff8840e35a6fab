package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/openingtally"
	"github.com/discochess/openingtally/internal/stats"
	statslogger "github.com/discochess/openingtally/internal/stats/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Parse all input files and write summary CSVs",
	Long: `Parse every game from the matching input files and write three
summaries to the output directory:

- opening_summary.csv: games per opening across the whole table
- error_summary.csv: top result breakdowns by opening and by ECO code

Both breakdowns share one filename; the by-ECO report is written second
and is the one left on disk.

Examples:
  # Tally ./pgn into the current directory
  openingtally run

  # Tally a bucket, keeping the top 25 pairs per breakdown
  openingtally run --input s3://my-bucket/archives --top 25 --output ./reports`,
	RunE: runRun,
}

var (
	outputDir string
	topN      int
)

func init() {
	runCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "directory to write summary files to")
	runCmd.Flags().IntVar(&topN, "top", 10, "pairs to keep per breakdown (0 keeps everything)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()
	}

	src, err := openSource(ctx)
	if err != nil {
		return fmt.Errorf("opening input %q: %w", inputPath, err)
	}

	var collector stats.Collector = stats.NewNoop()
	if verbose {
		collector = statslogger.New(logger.Named("stats"))
	}

	pipeline, err := openingtally.New(
		openingtally.WithSource(src),
		openingtally.WithOutputDir(outputDir),
		openingtally.WithTopN(topN),
		openingtally.WithStats(collector),
		openingtally.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("creating pipeline: %w", err)
	}
	defer pipeline.Close()

	report, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d PGN file(s):\n", len(report.Files))
	for _, name := range report.Files {
		fmt.Printf("  %s (%d games)\n", name, report.FileGames[name])
	}
	fmt.Printf("Total games:    %d\n", report.TotalGames)
	fmt.Printf("Average moves:  %.1f\n", report.AvgMoves)
	fmt.Printf("Summaries written to %s\n", outputDir)

	return nil
}
