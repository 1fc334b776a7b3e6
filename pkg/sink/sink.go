package sink

import (
	"bufio"
	"io"
	"sync"

	"github.com/vnykmshr/headerlines/pkg/header"
	"github.com/vnykmshr/headerlines/pkg/metrics"
)

// DefaultBufferSize is the buffer size used by NewBuffered when size <= 0.
const DefaultBufferSize = 4096

// DefaultName labels an instrumented sink created without a name.
const DefaultName = "default"

// Stats holds counters for an instrumented sink.
type Stats struct {
	// BytesWritten is the total number of bytes the sink accepted.
	BytesWritten int64

	// WriteCount is the total number of write operations.
	WriteCount int64

	// FlushCount is the total number of flush operations.
	FlushCount int64

	// ErrorCount is the total number of failed writes and flushes.
	ErrorCount int64
}

// Instrumented forwards writes and flushes to another sink unchanged while
// counting them.
type Instrumented struct {
	sink     header.Sink
	name     string
	registry *metrics.Registry

	stats   Stats
	statsMu sync.RWMutex
}

// Instrument wraps s. Counters are kept in Stats and, when registry is not
// nil, recorded under the sink_name label name.
func Instrument(s header.Sink, name string, registry *metrics.Registry) *Instrumented {
	if name == "" {
		name = DefaultName
	}
	return &Instrumented{sink: s, name: name, registry: registry}
}

// Write implements io.Writer.
func (i *Instrumented) Write(p []byte) (int, error) {
	n, err := i.sink.Write(p)

	i.updateStats(func(s *Stats) {
		s.WriteCount++
		s.BytesWritten += int64(n)
		if err != nil {
			s.ErrorCount++
		}
	})
	if i.registry != nil {
		i.registry.SinkWrites.WithLabelValues(i.name).Inc()
		i.registry.SinkBytesWritten.WithLabelValues(i.name).Add(float64(n))
		if err != nil {
			i.registry.SinkErrors.WithLabelValues(i.name, "write").Inc()
		}
	}

	return n, err
}

// Flush implements header.Sink.
func (i *Instrumented) Flush() error {
	err := i.sink.Flush()

	i.updateStats(func(s *Stats) {
		s.FlushCount++
		if err != nil {
			s.ErrorCount++
		}
	})
	if i.registry != nil {
		i.registry.SinkFlushes.WithLabelValues(i.name).Inc()
		if err != nil {
			i.registry.SinkErrors.WithLabelValues(i.name, "flush").Inc()
		}
	}

	return err
}

// Name returns the sink_name label.
func (i *Instrumented) Name() string {
	return i.name
}

// Stats returns a snapshot of the counters.
func (i *Instrumented) Stats() Stats {
	i.statsMu.RLock()
	defer i.statsMu.RUnlock()
	return i.stats
}

func (i *Instrumented) updateStats(updater func(*Stats)) {
	i.statsMu.Lock()
	defer i.statsMu.Unlock()
	updater(&i.stats)
}

// Buffered is a bufio.Writer whose Flush also flushes the destination when
// the destination can be flushed.
type Buffered struct {
	*bufio.Writer
	dest header.Sink
}

// NewBuffered creates a Buffered sink over w with the given buffer size.
func NewBuffered(w io.Writer, size int) *Buffered {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffered{
		Writer: bufio.NewWriterSize(w, size),
		dest:   header.AsSink(w),
	}
}

// Flush writes buffered bytes to the destination, then flushes it.
func (b *Buffered) Flush() error {
	if err := b.Writer.Flush(); err != nil {
		return err
	}
	return b.dest.Flush()
}
