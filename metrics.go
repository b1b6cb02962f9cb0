package thomasq

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each constrained search.
	// trials is the number of candidates drawn, duration the total time
	// taken, status the final outcome tag.
	RecordSearch(op Operation, trials int, duration time.Duration, status Status)

	// RecordGenerate is called after each bank generation.
	// produced is the number of calculations collected, requested the
	// target count, err is nil when the bank is complete.
	RecordGenerate(op Operation, produced, requested int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(Operation, int, time.Duration, Status)       {}
func (NoopMetricsCollector) RecordGenerate(Operation, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount        atomic.Int64
	SearchExhausted    atomic.Int64
	SearchInvalid      atomic.Int64
	SearchTrials       atomic.Int64
	SearchTotalNanos   atomic.Int64
	GenerateCount      atomic.Int64
	GenerateIncomplete atomic.Int64
	GenerateItems      atomic.Int64
	GenerateTotalNanos atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ Operation, trials int, duration time.Duration, status Status) {
	b.SearchCount.Add(1)
	b.SearchTrials.Add(int64(trials))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	switch status {
	case StatusExhausted:
		b.SearchExhausted.Add(1)
	case StatusInvalidInput:
		b.SearchInvalid.Add(1)
	}
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(_ Operation, produced, _ int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateItems.Add(int64(produced))
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateIncomplete.Add(1)
	}
}
