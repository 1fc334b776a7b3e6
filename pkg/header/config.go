package header

import (
	"github.com/vnykmshr/headerlines/pkg/metrics"
)

// DefaultName labels metrics of blocks and lines configured without a name.
const DefaultName = "default"

// Config holds configuration options for header blocks and lines.
type Config struct {
	// Name labels the metrics recorded for this block.
	// Default: "default"
	Name string

	// RejectTerminators enables the embedded terminator check. When set, a
	// write that would put a CRLF inside a line returns ErrEmbeddedTerminator
	// and nothing reaches the sink.
	// Default: false
	RejectTerminators bool

	// Metrics receives line, block and teardown counters. Nil disables metrics.
	Metrics *metrics.Registry

	// OnTeardownError is called with each sink failure discarded while
	// terminating a line or block. stage is one of metrics.StageLine,
	// metrics.StageBlankLine or metrics.StageFlush.
	OnTeardownError func(stage string, err error)
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Name: DefaultName,
	}
}

func (c *Config) normalize() {
	if c.Name == "" {
		c.Name = DefaultName
	}
}

func (c *Config) lineStarted() {
	if c.Metrics != nil {
		c.Metrics.HeaderLines.WithLabelValues(c.Name).Inc()
	}
}

func (c *Config) blockEnded() {
	if c.Metrics != nil {
		c.Metrics.HeaderBlocks.WithLabelValues(c.Name).Inc()
	}
}

func (c *Config) writeRejected() {
	if c.Metrics != nil {
		c.Metrics.RejectedWrites.WithLabelValues(c.Name).Inc()
	}
}

func (c *Config) teardownFailed(stage string, err error) {
	if c.Metrics != nil {
		c.Metrics.TeardownFailures.WithLabelValues(c.Name, stage).Inc()
	}
	if c.OnTeardownError != nil {
		c.OnTeardownError(stage, err)
	}
}
