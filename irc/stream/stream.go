// Package stream composes the line framer and the message codec into push
// style transforms. A Decoder turns arbitrary chunks of received data into
// messages, an Encoder turns messages into data ready to be sent. The two
// directions are independent and each of them owns its own state.
package stream

import (
	"github.com/boreq/ircstream/encode"
	"github.com/boreq/ircstream/irc/protocol"
	"github.com/boreq/ircstream/transport/line"
	"github.com/boreq/ircstream/utils"
	"github.com/pkg/errors"
)

var log = utils.GetLogger("stream")

// ErrUnsupportedInput is returned when a value passed to Push has a type
// which can not be processed.
var ErrUnsupportedInput = line.ErrUnsupportedInput

// NewDecoder creates a decoder. The options configure the underlying line
// framer.
func NewDecoder(options ...line.Option) *Decoder {
	rv := &Decoder{
		framer: line.New(options...),
	}
	return rv
}

// Decoder converts chunks of data into messages. It must not be used by
// multiple goroutines at the same time.
type Decoder struct {
	framer *line.Framer
}

// Push accepts a byte slice or a string and returns the messages completed by
// it in the order in which they were received. Empty lines are skipped.
func (d *Decoder) Push(chunk interface{}) ([]*protocol.Message, error) {
	lines, err := d.framer.Push(chunk)
	if err != nil {
		return nil, err
	}

	var rv []*protocol.Message
	for _, l := range lines {
		if l == "" {
			continue
		}
		rv = append(rv, protocol.UnmarshalMessage(l))
	}
	return rv, nil
}

// Remainder returns the received data which doesn't form a complete line yet.
func (d *Decoder) Remainder() string {
	return d.framer.Remainder()
}

// NewEncoder creates an encoder producing data in the given charset. A nil
// charset means UTF-8.
func NewEncoder(cs *encode.Charset) *Encoder {
	if cs == nil {
		cs = encode.UTF8()
	}
	rv := &Encoder{
		cs: cs,
	}
	return rv
}

// Encoder converts messages into data ready to be sent.
type Encoder struct {
	cs *encode.Charset
}

// Push accepts a message or a string. Messages are encoded as complete lines,
// strings are sent as they are, only converted to the configured charset.
func (e *Encoder) Push(v interface{}) ([]byte, error) {
	switch msg := v.(type) {
	case *protocol.Message:
		if msg == nil {
			return nil, errors.Wrap(ErrUnsupportedInput, "received a nil message")
		}
		return msg.MarshalEncoded(e.cs), nil
	case protocol.Message:
		return msg.MarshalEncoded(e.cs), nil
	case string:
		return e.cs.Encode(msg), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedInput, "expected a message or a string, received %T", v)
	}
}
