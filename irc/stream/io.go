package stream

import (
	"io"

	"github.com/boreq/ircstream/encode"
	"github.com/boreq/ircstream/irc/protocol"
	"github.com/boreq/ircstream/transport/line"
)

// NewReader returns a decoder reading messages from r. Empty lines are
// skipped and a final line without a terminator is decoded once r returns
// io.EOF.
func NewReader(r io.Reader, options ...line.Option) protocol.Decoder {
	return protocol.NewDecoder(r, options...)
}

// NewWriter returns an encoder writing complete lines to w in the given
// charset. A nil charset means UTF-8.
func NewWriter(w io.Writer, cs *encode.Charset) protocol.Encoder {
	return protocol.NewEncoder(w, cs)
}
