package testutil

import (
	"bytes"
	"errors"
	"sync"
)

// ErrSimulated is returned by MockSink when configured with SetErrorOnNth.
var ErrSimulated = errors.New("simulated error")

// MockSink is a test sink that records written bytes and can simulate write
// and flush failures.
type MockSink struct {
	buf         *bytes.Buffer
	mu          sync.Mutex
	errorOnNth  int
	writeCount  int
	flushCount  int
	shouldError bool
	err         error
	flushErr    error
}

// NewMockSink creates a new MockSink.
func NewMockSink() *MockSink {
	return &MockSink{
		buf: &bytes.Buffer{},
	}
}

// Write records p unless a failure is configured for this call.
func (ms *MockSink) Write(p []byte) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.writeCount++

	if ms.shouldError {
		return 0, ms.err
	}

	if ms.errorOnNth > 0 && ms.writeCount == ms.errorOnNth {
		return 0, ErrSimulated
	}

	return ms.buf.Write(p)
}

// Flush counts the call and returns the configured flush error, if any.
func (ms *MockSink) Flush() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.flushCount++
	return ms.flushErr
}

// String returns the current buffer contents.
func (ms *MockSink) String() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.buf.String()
}

// Len returns the current buffer length.
func (ms *MockSink) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.buf.Len()
}

// WriteCount returns the number of Write calls.
func (ms *MockSink) WriteCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.writeCount
}

// FlushCount returns the number of Flush calls.
func (ms *MockSink) FlushCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.flushCount
}

// SetErrorOnNth configures the sink to fail the nth write.
func (ms *MockSink) SetErrorOnNth(n int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.errorOnNth = n
}

// SetAlwaysError configures every write to fail with err.
func (ms *MockSink) SetAlwaysError(err error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.shouldError = true
	ms.err = err
}

// SetFlushError configures every flush to fail with err.
func (ms *MockSink) SetFlushError(err error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.flushErr = err
}

// Reset clears the buffer and resets counters and failures.
func (ms *MockSink) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.buf.Reset()
	ms.writeCount = 0
	ms.flushCount = 0
	ms.shouldError = false
	ms.errorOnNth = 0
	ms.err = nil
	ms.flushErr = nil
}
