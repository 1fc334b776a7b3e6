package header

import (
	"bytes"
	"fmt"

	gferrors "github.com/vnykmshr/headerlines/pkg/common/errors"
	"github.com/vnykmshr/headerlines/pkg/metrics"
)

// CRLF terminates every header line, and on its own ends the header block.
const CRLF = "\r\n"

var crlf = []byte(CRLF)

// ErrEnded is returned when writing to or flushing a line that has ended.
var ErrEnded = fmt.Errorf("header line has ended: %w", gferrors.ErrClosed)

// ErrEmbeddedTerminator is returned by Write when Config.RejectTerminators is
// set and the written bytes would place a CRLF inside the line.
var ErrEmbeddedTerminator = gferrors.NewValidationError("header", "line", "CRLF", "contains a line terminator").
	WithHint("write each header field as its own line")

// Line writes one header line. Bytes are forwarded to the sink unmodified;
// End appends the CRLF.
//
// The content written must not contain CRLF. This is not checked unless the
// line was created with Config.RejectTerminators.
type Line struct {
	sink   Sink
	config *Config
	block  *Block
	stage  string
	ended  bool
	lastCR bool
}

// NewLine starts a single header line over sink with default configuration.
// Callers must arrange for End to run, usually with defer.
func NewLine(sink Sink) *Line {
	return NewLineWithConfig(sink, DefaultConfig())
}

// NewLineWithConfig starts a single header line over sink.
func NewLineWithConfig(sink Sink, config Config) *Line {
	config.normalize()
	return &Line{sink: sink, config: &config, stage: metrics.StageLine}
}

// WriteLine runs fn with a new line over sink and ends the line once fn
// returns, fails or panics. It returns fn's error.
func WriteLine(sink Sink, fn func(*Line) error) error {
	l := NewLine(sink)
	defer l.End()
	return fn(l)
}

// Write forwards p to the sink and returns the sink's result.
func (l *Line) Write(p []byte) (int, error) {
	if l.ended {
		return 0, ErrEnded
	}
	if l.config.RejectTerminators && l.wouldTerminate(p) {
		l.config.writeRejected()
		return 0, ErrEmbeddedTerminator
	}

	n, err := l.sink.Write(p)
	if n > 0 {
		l.lastCR = p[n-1] == '\r'
	}
	return n, err
}

// WriteString writes s to the line.
func (l *Line) WriteString(s string) (int, error) {
	return l.Write([]byte(s))
}

// Flush flushes the sink.
func (l *Line) Flush() error {
	if l.ended {
		return ErrEnded
	}
	return l.sink.Flush()
}

// End terminates the line with CRLF. Only the first call writes; a sink
// failure is discarded.
func (l *Line) End() {
	if l.ended {
		return
	}
	l.ended = true
	if l.block != nil && l.block.current == l {
		l.block.current = nil
	}

	if _, err := l.sink.Write(crlf); err != nil {
		l.config.teardownFailed(l.stage, err)
	}
}

// Ended reports whether End has run.
func (l *Line) Ended() bool {
	return l.ended
}

// wouldTerminate reports whether writing p would form a CRLF inside the line,
// including a CR left at the end of the previous write.
func (l *Line) wouldTerminate(p []byte) bool {
	if len(p) == 0 {
		return false
	}
	if l.lastCR && p[0] == '\n' {
		return true
	}
	return bytes.Contains(p, crlf)
}
