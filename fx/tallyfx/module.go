// Package tallyfx provides an fx module for a directory-backed tally pipeline.
package tallyfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/openingtally"
	"github.com/discochess/openingtally/internal/source/dirsource"
	"github.com/discochess/openingtally/internal/stats"
	"github.com/discochess/openingtally/internal/stats/logger"
)

// Config holds configuration for the tally pipeline.
type Config struct {
	// InputDir is the directory containing PGN files.
	InputDir string

	// OutputDir is where summary files are written.
	// Default is the current working directory.
	OutputDir string

	// Suffix is the input file suffix to match. Default is ".pgn".
	Suffix string

	// TopN is how many pairs each breakdown keeps. Default is 10.
	TopN int
}

// Module provides a directory-backed tally pipeline.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("openingtally",
	fx.Provide(
		newStatsCollector,
		newPipeline,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("openingtally.stats"))
}

// Params holds dependencies for creating the pipeline.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided pipeline.
type Result struct {
	fx.Out

	Pipeline *openingtally.Pipeline
}

func newPipeline(p Params) (Result, error) {
	suffix := p.Config.Suffix
	if suffix == "" {
		suffix = ".pgn"
	}
	outputDir := p.Config.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	topN := p.Config.TopN
	if topN <= 0 {
		topN = 10
	}

	src, err := dirsource.New(p.Config.InputDir, suffix)
	if err != nil {
		return Result{}, err
	}

	pipeline, err := openingtally.New(
		openingtally.WithSource(src),
		openingtally.WithOutputDir(outputDir),
		openingtally.WithTopN(topN),
		openingtally.WithStats(p.Collector),
		openingtally.WithLogger(p.Logger.Named("openingtally")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return pipeline.Close()
		},
	})

	return Result{Pipeline: pipeline}, nil
}
