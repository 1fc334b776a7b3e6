/*
Package sink provides header.Sink implementations for connecting header blocks
to real transports.

NewBuffered puts a buffer in front of a connection so a whole header reaches
the network in one write when the block ends:

	bs := sink.NewBuffered(conn, 4096)
	header.Write(bs, func(b *header.Block) error {
		return b.Linef("HTTP/1.1 204 No Content")
	})

Instrument counts writes, bytes, flushes and errors without changing what the
wrapped sink returns:

	s := sink.Instrument(sink.NewBuffered(conn, 0), "conn", metrics.DefaultRegistry)

	stats := s.Stats()
	fmt.Printf("Written: %d bytes in %d writes\n", stats.BytesWritten, stats.WriteCount)
*/
package sink
