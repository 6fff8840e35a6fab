package openingtally

import (
	"go.uber.org/zap"

	"github.com/discochess/openingtally/internal/source"
	"github.com/discochess/openingtally/internal/stats"
)

// Option configures a Pipeline.
type Option interface {
	apply(*options)
}

// options holds the pipeline configuration.
type options struct {
	source    source.Source
	topN      int
	outputDir string
	stats     stats.Collector
	logger    *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		topN:      10,
		outputDir: ".",
		stats:     stats.NewNoop(),
		logger:    zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithSource sets the input backend to read PGN streams from.
func WithSource(s source.Source) Option {
	return optionFunc(func(o *options) {
		o.source = s
	})
}

// WithTopN sets how many (category, result) pairs each breakdown keeps.
// Default is 10. Zero or negative keeps everything.
func WithTopN(n int) Option {
	return optionFunc(func(o *options) {
		o.topN = n
	})
}

// WithOutputDir sets the directory summary files are written to.
// Default is the current working directory.
func WithOutputDir(dir string) Option {
	return optionFunc(func(o *options) {
		o.outputDir = dir
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
