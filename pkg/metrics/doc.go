// Package metrics provides Prometheus instrumentation for headerlines components.
//
// Header blocks and instrumented sinks record counters into a Registry. Nothing
// is recorded unless a Registry is supplied, so the formatter itself stays a
// plain forwarding layer by default.
//
// # Quick Start
//
//	reg := metrics.NewRegistry(prometheus.NewRegistry())
//
//	config := header.DefaultConfig()
//	config.Name = "api"
//	config.Metrics = reg
//
//	b := header.NewWithConfig(bufio.NewWriter(conn), config)
//	defer b.End()
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # Available Metrics
//
// ## Header Metrics
//
//   - headerlines_header_lines_total: Header lines started, per block name
//   - headerlines_header_blocks_total: Header blocks terminated, per block name
//   - headerlines_header_teardown_failures_total: Sink failures discarded while
//     terminating a line ("line"), writing the blank line ("blank_line") or
//     flushing ("flush")
//   - headerlines_header_rejected_writes_total: Writes refused by the
//     embedded-terminator check
//
// ## Sink Metrics
//
//   - headerlines_sink_writes_total: Write calls forwarded to the sink
//   - headerlines_sink_bytes_written_total: Bytes the sink reported as written
//   - headerlines_sink_flushes_total: Flush calls forwarded to the sink
//   - headerlines_sink_errors_total: Failed writes or flushes, labeled by op
//
// # Custom Namespace
//
//	reg := metrics.NewRegistryWithConfig(metrics.Config{
//		Registry:  prometheus.NewRegistry(),
//		Namespace: "myapp",
//		Labels:    prometheus.Labels{"version": "1.0"},
//	})
package metrics
