// Package openingtally builds ranked opening-frequency summaries from
// archives of PGN chess games.
//
// Example usage:
//
//	src, err := dirsource.New("./pgn", ".pgn")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pipeline, err := openingtally.New(openingtally.WithSource(src))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pipeline.Close()
//
//	report, err := pipeline.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Tallied %d games\n", report.TotalGames)
package openingtally

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/discochess/openingtally/internal/export"
	"github.com/discochess/openingtally/internal/extract"
	"github.com/discochess/openingtally/internal/source"
	"github.com/discochess/openingtally/internal/stats"
	"github.com/discochess/openingtally/internal/tally"
)

// Summary file names, written into the configured output directory.
// Both breakdowns share BreakdownFile, so the by-ECO report written
// second is the one that survives a run.
const (
	OpeningSummaryFile = "opening_summary.csv"
	BreakdownFile      = "error_summary.csv"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrNoSource indicates no input source was provided.
	ErrNoSource = errors.New("openingtally: no source provided")

	// ErrNoFiles indicates the source listed no matching input files.
	ErrNoFiles = errors.New("openingtally: no PGN files found")

	// ErrNoGames indicates no games were parsed across all inputs.
	ErrNoGames = errors.New("openingtally: no games parsed")
)

// Pipeline ingests PGN games from a source and writes ranked frequency
// summaries as CSV files. Inputs are processed strictly one at a time,
// in the order the source lists them.
type Pipeline struct {
	source    source.Source
	topN      int
	outputDir string
	stats     stats.Collector
	logger    *zap.Logger
}

// New creates a new Pipeline with the given options.
// A source is required; everything else has defaults.
func New(opts ...Option) (*Pipeline, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if cfg.source == nil {
		return nil, ErrNoSource
	}

	return &Pipeline{
		source:    cfg.source,
		topN:      cfg.topN,
		outputDir: cfg.outputDir,
		stats:     cfg.stats,
		logger:    cfg.logger,
	}, nil
}

// Run executes the pipeline once: list inputs, parse every game into an
// in-memory table, then write the three summary files. It fails without
// writing summaries when no inputs match or no games parse; any other
// I/O or parse failure propagates immediately.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	log := p.logger.With(zap.String("run_id", uuid.NewString()))

	names, err := p.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", p.source.Name(), err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFiles, p.source.Name())
	}
	p.stats.IncCounter(stats.MetricFilesDiscovered, int64(len(names)))
	log.Info("discovered inputs",
		zap.String("source", p.source.Name()),
		zap.Int("files", len(names)),
	)

	var table []Record
	fileGames := make(map[string]int, len(names))
	for _, name := range names {
		records, err := p.parseInput(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		fileGames[name] = len(records)
		p.stats.IncCounter(stats.MetricGamesParsed, int64(len(records)))
		for _, r := range records {
			p.stats.ObserveHistogram(stats.MetricGameMoves, float64(r.Moves))
		}
		log.Info("parsed input", zap.String("file", name), zap.Int("games", len(records)))

		table = append(table, records...)
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("%w from %s", ErrNoGames, p.source.Name())
	}
	p.stats.SetGauge(stats.MetricTableSize, int64(len(table)))

	moves := make([]float64, len(table))
	for i, r := range table {
		moves[i] = float64(r.Moves)
	}
	report := &Report{
		Files:      names,
		FileGames:  fileGames,
		TotalGames: len(table),
		AvgMoves:   stat.Mean(moves, nil),
		Columns:    extract.Columns,
	}
	log.Info("built record table",
		zap.Int("games", report.TotalGames),
		zap.Strings("columns", report.Columns),
		zap.Float64("avg_moves", report.AvgMoves),
	)

	counts := tally.ByOpening(table)
	openingPath := filepath.Join(p.outputDir, OpeningSummaryFile)
	if err := export.OpeningCounts(openingPath, counts); err != nil {
		return nil, err
	}
	p.stats.IncCounter(stats.MetricRecordsExported, int64(len(counts)))

	breakdownPath := filepath.Join(p.outputDir, BreakdownFile)
	byOpening := tally.Breakdown(table, tally.OpeningKey, p.topN)
	if err := export.Breakdown(breakdownPath, "Opening", byOpening); err != nil {
		return nil, err
	}
	p.stats.IncCounter(stats.MetricRecordsExported, int64(len(byOpening)))

	byECO := tally.Breakdown(table, tally.ECOKey, p.topN)
	if err := export.Breakdown(breakdownPath, "ECO", byECO); err != nil {
		return nil, err
	}
	p.stats.IncCounter(stats.MetricRecordsExported, int64(len(byECO)))

	log.Info("wrote summaries",
		zap.String("openings", openingPath),
		zap.String("breakdown", breakdownPath),
	)

	return report, nil
}

// parseInput opens one named input and parses every game from it.
func (p *Pipeline) parseInput(ctx context.Context, name string) ([]Record, error) {
	rc, err := p.source.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return extract.Games(rc)
}

// Close releases the pipeline's input source.
func (p *Pipeline) Close() error {
	return p.source.Close()
}
