// Package metrics provides Prometheus instrumentation for headerlines components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Teardown stages reported by header lines and blocks.
const (
	StageLine      = "line"
	StageBlankLine = "blank_line"
	StageFlush     = "flush"
)

// Registry holds all metric instances for headerlines components.
type Registry struct {
	// Header Metrics
	HeaderLines      *prometheus.CounterVec
	HeaderBlocks     *prometheus.CounterVec
	TeardownFailures *prometheus.CounterVec
	RejectedWrites   *prometheus.CounterVec

	// Sink Metrics
	SinkWrites       *prometheus.CounterVec
	SinkBytesWritten *prometheus.CounterVec
	SinkFlushes      *prometheus.CounterVec
	SinkErrors       *prometheus.CounterVec
}

// DefaultRegistry is the registry used when a component is given none explicitly.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	config := DefaultConfig()
	config.Registry = reg
	return NewRegistryWithConfig(config)
}

// NewRegistryWithConfig creates a metrics registry honoring the namespace and
// constant labels in config.
func NewRegistryWithConfig(config Config) *Registry {
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	if config.Namespace == "" {
		config.Namespace = DefaultNamespace
	}

	factory := promauto.With(config.Registry)
	ns, labels := config.Namespace, config.Labels

	return &Registry{
		HeaderLines: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "header",
				Name:        "lines_total",
				Help:        "Total number of header lines started",
				ConstLabels: labels,
			},
			[]string{"block_name"},
		),

		HeaderBlocks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "header",
				Name:        "blocks_total",
				Help:        "Total number of header blocks terminated",
				ConstLabels: labels,
			},
			[]string{"block_name"},
		),

		TeardownFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "header",
				Name:        "teardown_failures_total",
				Help:        "Total number of discarded sink failures during line or block termination",
				ConstLabels: labels,
			},
			[]string{"block_name", "stage"},
		),

		RejectedWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "header",
				Name:        "rejected_writes_total",
				Help:        "Total number of line writes refused for containing a line terminator",
				ConstLabels: labels,
			},
			[]string{"block_name"},
		),

		SinkWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "sink",
				Name:        "writes_total",
				Help:        "Total number of sink write calls",
				ConstLabels: labels,
			},
			[]string{"sink_name"},
		),

		SinkBytesWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "sink",
				Name:        "bytes_written_total",
				Help:        "Total bytes accepted by sinks",
				ConstLabels: labels,
			},
			[]string{"sink_name"},
		),

		SinkFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "sink",
				Name:        "flushes_total",
				Help:        "Total number of sink flushes",
				ConstLabels: labels,
			},
			[]string{"sink_name"},
		),

		SinkErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "sink",
				Name:        "errors_total",
				Help:        "Total number of sink write or flush errors",
				ConstLabels: labels,
			},
			[]string{"sink_name", "op"},
		),
	}
}
