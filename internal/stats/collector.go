// Package stats provides a unified interface for collecting pipeline metrics.
package stats

// Metric names used throughout the pipeline.
const (
	MetricFilesDiscovered = "openingtally_files_discovered_total"
	MetricGamesParsed     = "openingtally_games_parsed_total"
	MetricRecordsExported = "openingtally_records_exported_total"
	MetricTableSize       = "openingtally_table_size"
	MetricGameMoves       = "openingtally_game_moves"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
