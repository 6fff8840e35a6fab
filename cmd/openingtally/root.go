package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/discochess/openingtally/internal/source"
	"github.com/discochess/openingtally/internal/source/dirsource"
	"github.com/discochess/openingtally/internal/source/gcssource"
	"github.com/discochess/openingtally/internal/source/s3source"
)

var (
	// Global flags.
	inputPath string
	suffix    string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "openingtally",
	Short: "Ranked opening-frequency summaries from PGN game archives",
	Long: `Openingtally parses archives of chess games in PGN notation, tallies
openings, classification codes and results, and writes ranked frequency
summaries as CSV files.

Inputs can be a local directory or an S3/GCS bucket, with plain,
gzipped or zstd-compressed PGN files.

Examples:
  # Tally a local directory of PGN files
  openingtally run --input ./pgn

  # Tally a bucket of compressed archives
  openingtally run --input gs://my-bucket/archives

  # Inspect input files without writing summaries
  openingtally stats --input ./pgn`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "./pgn", "input directory, s3:// or gs:// URL")
	rootCmd.PersistentFlags().StringVar(&suffix, "suffix", ".pgn", "input file suffix to match")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// openSource builds an input source from the --input flag.
// Paths starting with s3:// or gs:// select the matching bucket backend;
// everything else is a local directory.
func openSource(ctx context.Context) (source.Source, error) {
	switch {
	case strings.HasPrefix(inputPath, "s3://"):
		bucket, prefix, err := parseBucketPath(inputPath, "s3://")
		if err != nil {
			return nil, err
		}
		return s3source.New(ctx, bucket, suffix, s3source.WithPrefix(prefix))
	case strings.HasPrefix(inputPath, "gs://"):
		bucket, prefix, err := parseBucketPath(inputPath, "gs://")
		if err != nil {
			return nil, err
		}
		return gcssource.New(ctx, bucket, suffix, gcssource.WithPrefix(prefix))
	default:
		return dirsource.New(inputPath, suffix)
	}
}

// parseBucketPath parses "<scheme>bucket/prefix" into bucket and prefix.
func parseBucketPath(path, scheme string) (bucket, prefix string, err error) {
	path = strings.TrimPrefix(path, scheme)
	parts := strings.SplitN(path, "/", 2)
	if len(parts) == 0 || parts[0] == "" {
		return "", "", fmt.Errorf("invalid %s path: missing bucket name", strings.TrimSuffix(scheme, "://"))
	}

	bucket = parts[0]
	if len(parts) > 1 {
		prefix = strings.TrimSuffix(parts[1], "/")
	}

	return bucket, prefix, nil
}
