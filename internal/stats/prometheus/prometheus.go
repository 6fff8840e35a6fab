// Package prometheus provides a Prometheus-based stats collector.
package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/discochess/openingtally/internal/stats"
)

// Collector implements stats.Collector with a fixed set of pre-registered
// Prometheus metrics. Observations for unknown metric names are dropped.
type Collector struct {
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// moveBuckets covers typical main-line lengths in half-moves.
var moveBuckets = []float64{10, 20, 40, 60, 80, 100, 150, 200}

// New creates a new Prometheus collector and registers the pipeline
// metrics. If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) (*Collector, error) {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	c := &Collector{
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}

	for _, name := range []string{
		stats.MetricFilesDiscovered,
		stats.MetricGamesParsed,
		stats.MetricRecordsExported,
	} {
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: name})
		if err := register(registry, counter, &counter); err != nil {
			return nil, fmt.Errorf("registering %s: %w", name, err)
		}
		c.counters[name] = counter
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: stats.MetricTableSize,
		Help: stats.MetricTableSize,
	})
	if err := register(registry, gauge, &gauge); err != nil {
		return nil, fmt.Errorf("registering %s: %w", stats.MetricTableSize, err)
	}
	c.gauges[stats.MetricTableSize] = gauge

	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    stats.MetricGameMoves,
		Help:    stats.MetricGameMoves,
		Buckets: moveBuckets,
	})
	if err := register(registry, histogram, &histogram); err != nil {
		return nil, fmt.Errorf("registering %s: %w", stats.MetricGameMoves, err)
	}
	c.histograms[stats.MetricGameMoves] = histogram

	return c, nil
}

// register registers m, reusing an already-registered collector of the
// same name when one exists.
func register[M prometheus.Collector](registry prometheus.Registerer, m M, out *M) error {
	if err := registry.Register(m); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return err
		}
		existing, ok := are.ExistingCollector.(M)
		if !ok {
			return err
		}
		*out = existing
	}
	return nil
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	if counter, ok := c.counters[name]; ok {
		counter.Add(float64(delta))
	}
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	if gauge, ok := c.gauges[name]; ok {
		gauge.Set(float64(value))
	}
}

// ObserveHistogram records a value in a histogram.
func (c *Collector) ObserveHistogram(name string, value float64) {
	if histogram, ok := c.histograms[name]; ok {
		histogram.Observe(value)
	}
}
