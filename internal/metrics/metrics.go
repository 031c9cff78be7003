package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Allocation metrics
	Allocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "something_allocations_total",
			Help: "Total number of buffer allocation requests",
		},
		[]string{"outcome"},
	)

	AllocatedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "something_allocated_bytes_total",
			Help: "Total number of bytes handed out in buffers",
		},
	)

	LiveBuffers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "something_live_buffers",
			Help: "Number of buffers allocated and not yet released",
		},
	)

	// Line metrics
	LinesRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "something_lines_read_total",
			Help: "Total number of lines read from input, by how the read ended",
		},
		[]string{"ending"},
	)

	FormatTruncations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "something_format_truncations_total",
			Help: "Total number of formatted strings shortened to fit their buffer",
		},
	)

	// Combiner metrics
	StateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "something_state_transitions_total",
			Help: "Total number of combiner state transitions",
		},
		[]string{"state"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"

	EndingNewline = "newline"
	EndingLimit   = "limit"
	EndingEOF     = "eof"
	EndingError   = "error"
)

// RecordAllocation tracks the outcome of a single allocation request
func RecordAllocation(size int, err error) {
	if err != nil {
		Allocations.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	Allocations.WithLabelValues(OutcomeSuccess).Inc()
	AllocatedBytes.Add(float64(size))
	LiveBuffers.Inc()
}

// WriteTextfile dumps the default registry in the node_exporter textfile format
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
