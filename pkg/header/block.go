package header

import (
	"fmt"
	"strings"

	"github.com/vnykmshr/headerlines/pkg/metrics"
)

// Block writes a header section: any number of lines followed by an empty
// line. The sink belongs to the block until End, and is lent to one Line at a
// time.
type Block struct {
	sink    Sink
	config  *Config
	current *Line
	lines   int
	ended   bool
}

// New creates a block writing into sink with default configuration.
// Callers must arrange for End to run, usually with defer.
func New(sink Sink) *Block {
	return NewWithConfig(sink, DefaultConfig())
}

// NewWithConfig creates a block writing into sink.
func NewWithConfig(sink Sink, config Config) *Block {
	config.normalize()
	return &Block{sink: sink, config: &config}
}

// Write runs fn with a new block over sink and ends the block once fn
// returns, fails or panics. It returns fn's error.
func Write(sink Sink, fn func(*Block) error) error {
	return WriteWithConfig(sink, DefaultConfig(), fn)
}

// WriteWithConfig is Write with an explicit configuration.
func WriteWithConfig(sink Sink, config Config, fn func(*Block) error) error {
	b := NewWithConfig(sink, config)
	defer b.End()
	return fn(b)
}

// Line starts a new header line. A line still open from a previous call is
// ended first. Once the block has ended, the returned line is already ended
// and rejects writes with ErrEnded.
func (b *Block) Line() *Line {
	if b.ended {
		return &Line{sink: b.sink, config: b.config, stage: metrics.StageLine, ended: true}
	}
	if b.current != nil {
		b.current.End()
	}

	l := &Line{sink: b.sink, config: b.config, block: b, stage: metrics.StageLine}
	b.current = l
	b.lines++
	b.config.lineStarted()
	return l
}

// Linef writes one complete line formatted with fmt.Sprintf. With
// Config.RejectTerminators, a line containing CRLF is refused before it is
// started, so no empty line reaches the sink.
func (b *Block) Linef(format string, args ...any) error {
	line := fmt.Sprintf(format, args...)
	if b.config.RejectTerminators && !b.ended && strings.Contains(line, CRLF) {
		b.config.writeRejected()
		return ErrEmbeddedTerminator
	}

	l := b.Line()
	defer l.End()
	_, err := l.WriteString(line)
	return err
}

// WriteLine runs fn with a new line and ends the line once fn returns, fails
// or panics. It returns fn's error.
func (b *Block) WriteLine(fn func(*Line) error) error {
	l := b.Line()
	defer l.End()
	return fn(l)
}

// End ends any open line, writes the empty line that closes the header and
// flushes the sink. Only the first call has an effect; sink failures are
// discarded.
func (b *Block) End() {
	if b.ended {
		return
	}
	if b.current != nil {
		b.current.End()
	}
	b.ended = true

	blank := &Line{sink: b.sink, config: b.config, stage: metrics.StageBlankLine}
	blank.End()

	if err := b.sink.Flush(); err != nil {
		b.config.teardownFailed(metrics.StageFlush, err)
	}
	b.config.blockEnded()
}

// Ended reports whether End has run.
func (b *Block) Ended() bool {
	return b.ended
}

// Lines returns the number of content lines started, not counting the
// closing empty line.
func (b *Block) Lines() int {
	return b.lines
}
