package stream

import (
	"context"
	"io"

	"github.com/boreq/ircstream/encode"
	"github.com/boreq/ircstream/irc/protocol"
	"github.com/boreq/ircstream/transport/line"
)

// Wrap wraps a connection and returns channels which can be used to receive
// and send IRC protocol messages. The connection is closed after the context
// is closed. The receiving channel is closed when the connection can no
// longer be read from.
func Wrap(ctx context.Context, conn io.ReadWriteCloser, cs *encode.Charset) (<-chan *protocol.Message, chan<- *protocol.Message) {
	in := make(chan *protocol.Message)
	out := make(chan *protocol.Message)

	go func() {
		<-ctx.Done()
		if err := conn.Close(); err != nil {
			log.Debugf("close failed: %s", err)
		}
	}()

	// Read
	go func() {
		defer close(in)
		decoder := protocol.NewDecoder(conn, line.WithCharset(cs))
		for {
			msg, err := decoder.Decode()
			if err != nil {
				if err != io.EOF {
					log.Debugf("read failed: %s", err)
				}
				return
			}
			select {
			case in <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Write
	go func() {
		encoder := protocol.NewEncoder(conn, cs)
		for {
			select {
			case msg := <-out:
				if err := encoder.Encode(msg); err != nil {
					log.Debugf("write failed: %s", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return in, out
}
