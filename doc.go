/*
Package headerlines provides a Go library for writing the header section of
CRLF-delimited responses, such as HTTP/1.x, into any writer.

Headers (pkg/header):
  - Line: one header line, terminated with CRLF when it ends
  - Block: a sequence of lines closed by an empty line and a flush
  - Write, WriteLine: scoped forms that terminate even on error or panic

Sinks (pkg/sink):
  - NewBuffered: buffered connection sink whose Flush reaches the transport
  - Instrument: counting wrapper feeding Prometheus metrics

Observability (pkg/metrics):
  - Registry: Prometheus counters for lines, blocks, teardown failures and sinks

Example usage:

	import (
		"github.com/vnykmshr/headerlines/pkg/header"
		"github.com/vnykmshr/headerlines/pkg/sink"
	)

	out := sink.NewBuffered(conn, 0)
	header.Write(out, func(b *header.Block) error {
		b.Linef("HTTP/1.1 200 OK")
		return b.Linef("Content-Length: %d", len(body))
	})
	out.Write(body)
	out.Flush()
*/
package headerlines
