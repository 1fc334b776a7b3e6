package header

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/vnykmshr/headerlines/internal/testutil"
)

type contextFlushWriter struct {
	bytes.Buffer
	flushes int
	err     error
}

func (w *contextFlushWriter) Flush(ctx context.Context) error {
	if ctx == nil {
		return errors.New("nil context")
	}
	w.flushes++
	return w.err
}

func TestAsSink(t *testing.T) {
	t.Run("sink unchanged", func(t *testing.T) {
		bw := bufio.NewWriter(&bytes.Buffer{})
		if s, ok := AsSink(bw).(*bufio.Writer); !ok || s != bw {
			t.Fatal("AsSink should return a Sink unchanged")
		}
	})

	t.Run("plain writer", func(t *testing.T) {
		var buf bytes.Buffer
		s := AsSink(&buf)

		_, err := s.Write([]byte("abc"))
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, s.Flush())
		testutil.AssertEqual(t, buf.String(), "abc")
	})

	t.Run("http flusher", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s := AsSink(rec)

		_, err := s.Write([]byte("abc"))
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, s.Flush())
		testutil.AssertEqual(t, rec.Flushed, true)
	})

	t.Run("context flusher", func(t *testing.T) {
		w := &contextFlushWriter{}
		s := AsSink(w)

		testutil.AssertNoError(t, s.Flush())
		testutil.AssertEqual(t, w.flushes, 1)

		boom := errors.New("flush failed")
		w.err = boom
		testutil.AssertEqual(t, s.Flush(), boom)
	})
}

func TestBlockOverAdaptedSink(t *testing.T) {
	var buf bytes.Buffer

	err := Write(AsSink(&buf), func(b *Block) error {
		if err := b.Linef("HTTP/1.1 200 OK"); err != nil {
			return err
		}
		return b.Linef("Host: iana.org")
	})
	testutil.AssertNoError(t, err)
	buf.WriteString("hello")

	testutil.AssertOutput(t, buf.String(), "HTTP/1.1 200 OK\r\nHost: iana.org\r\n\r\nhello")
}
