/*
Package header formats the header section of a CRLF-delimited response, such as
an HTTP/1.x response header, into any Sink.

Every line is terminated with CRLF and the section is closed with an empty
line, even when the caller returns early or panics, as long as End runs. Both
Line and Block end exactly once; repeated End calls do nothing.

# Quick Start

	bw := bufio.NewWriter(conn)

	b := header.New(bw)
	fmt.Fprintf(b.Line(), "HTTP/1.1 %d %s", 200, "OK")
	fmt.Fprintf(b.Line(), "Content-Length: %d", len(body))
	b.End() // "\r\n" and flush

	bw.Write(body)
	bw.Flush()

Each call to Line ends the line returned by the previous call, so lines never
interleave. The final empty line is written by End.

# Scoped Forms

The closure forms end the line or block after the function returns, returns
an error, or panics:

	err := header.Write(bw, func(b *header.Block) error {
		if err := b.Linef("HTTP/1.1 200 OK"); err != nil {
			return err
		}
		return b.WriteLine(func(l *header.Line) error {
			_, err := io.WriteString(l, "Host: iana.org")
			return err
		})
	})

The same holds with defer:

	b := header.New(bw)
	defer b.End()

# Errors

Write and Flush return whatever the sink returns. The CRLF written by End,
the empty line and the final flush never report errors: a failing sink
leaves truncated output but control returns normally. Use
Config.OnTeardownError or Config.Metrics to observe those failures.

Writing to a line that has ended returns ErrEnded.

# Line Content

Content must not contain CRLF. By default this is the caller's
responsibility. Set Config.RejectTerminators to have Write return
ErrEmbeddedTerminator instead:

	config := header.DefaultConfig()
	config.RejectTerminators = true
	b := header.NewWithConfig(bw, config)

# Sinks

*bufio.Writer is a Sink. Other writers can be adapted with AsSink, which
uses their Flush method when there is one.
*/
package header
