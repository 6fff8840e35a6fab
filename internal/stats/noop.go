package stats

// Noop discards every metric. It backs pipelines built without a
// collector, so callers never have to nil-check before recording.
type Noop struct{}

// Compile-time check that Noop implements Collector.
var _ Collector = (*Noop)(nil)

// NewNoop creates a collector that drops everything it is given.
func NewNoop() *Noop {
	return &Noop{}
}

// IncCounter discards the increment.
func (n *Noop) IncCounter(name string, delta int64) {}

// SetGauge discards the value.
func (n *Noop) SetGauge(name string, value int64) {}

// ObserveHistogram discards the observation.
func (n *Noop) ObserveHistogram(name string, value float64) {}
