package protocol

import (
	"io"

	"github.com/boreq/ircstream/encode"
	"github.com/boreq/ircstream/transport/line"
	"github.com/pkg/errors"
)

// NewEncoder creates an encoder which writes messages encoded in the given
// charset. A nil charset means UTF-8.
func NewEncoder(writer io.Writer, cs *encode.Charset) Encoder {
	if cs == nil {
		cs = encode.UTF8()
	}
	rv := &encoder{
		writer: writer,
		cs:     cs,
	}
	return rv
}

type encoder struct {
	writer io.Writer
	cs     *encode.Charset
}

func (e *encoder) Encode(msg *Message) error {
	if msg == nil {
		return errors.Wrap(line.ErrUnsupportedInput, "received a nil message")
	}
	_, err := e.writer.Write(msg.MarshalEncoded(e.cs))
	return errors.Wrap(err, "could not write the message")
}
