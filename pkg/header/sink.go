package header

import (
	"context"
	"io"
)

// Sink is the destination header bytes are written into. *bufio.Writer
// satisfies it directly.
type Sink interface {
	io.Writer

	// Flush pushes any buffered bytes towards the underlying transport.
	Flush() error
}

// AsSink adapts w to a Sink.
//
// Writers that already implement Sink are returned unchanged. A Flush() method
// without a result (http.Flusher) or a Flush(context.Context) error method is
// used for flushing; any other writer gets a no-op Flush.
func AsSink(w io.Writer) Sink {
	switch f := w.(type) {
	case Sink:
		return f
	case interface{ Flush() }:
		return funcSink{Writer: w, flush: func() error {
			f.Flush()
			return nil
		}}
	case interface{ Flush(context.Context) error }:
		return funcSink{Writer: w, flush: func() error {
			return f.Flush(context.Background())
		}}
	default:
		return funcSink{Writer: w, flush: func() error { return nil }}
	}
}

type funcSink struct {
	io.Writer
	flush func() error
}

func (s funcSink) Flush() error {
	return s.flush()
}
