package protocol

import (
	"strconv"
	"strings"

	"github.com/boreq/ircstream/encode"
)

// Message represents a single message exchanged using the IRC protocol.
type Message struct {
	Tags    Tags
	Sender  *Sender // nil if the message didn't carry a prefix
	Command string
	Params  []string
}

// Marshal encodes a message as specified by the IRC protocol. The returned
// line doesn't include the line terminator.
func (msg *Message) Marshal() string {
	b := &strings.Builder{}

	// Tags
	if msg.Tags.Len() > 0 {
		b.WriteByte('@')
		for _, tag := range msg.Tags.All() {
			b.WriteString(tag.Key)
			if !tag.Flag {
				b.WriteByte('=')
				b.WriteString(tag.Value)
			}
			b.WriteByte(';')
		}
		b.WriteByte(' ')
	}

	// Sender
	if msg.Sender != nil {
		b.WriteString(msg.Sender.Marshal())
		b.WriteByte(' ')
	}

	// Command
	b.WriteString(msg.Command)

	// Params
	for i, param := range msg.Params {
		b.WriteByte(' ')
		if i == len(msg.Params)-1 && needsTrailingMarker(param) {
			b.WriteByte(':')
		}
		b.WriteString(param)
	}

	return b.String()
}

// String returns the message as a complete protocol line terminated with
// CRLF.
func (msg *Message) String() string {
	return msg.Marshal() + "\r\n"
}

// MarshalEncoded returns the complete protocol line encoded using the
// provided charset. A nil charset means UTF-8.
func (msg *Message) MarshalEncoded(cs *encode.Charset) []byte {
	if cs == nil {
		cs = encode.UTF8()
	}
	return cs.Encode(msg.String())
}

// needsTrailingMarker returns true if the last parameter has to be prefixed
// with a colon to be decoded back into the same value.
func needsTrailingMarker(param string) bool {
	return param == "" || param[0] == ':' || strings.Contains(param, " ")
}

// Copy returns a deep copy of the message.
func (msg *Message) Copy() *Message {
	rv := &Message{
		Tags:    msg.Tags.Copy(),
		Command: msg.Command,
	}
	if msg.Sender != nil {
		sender := *msg.Sender
		rv.Sender = &sender
	}
	if msg.Params != nil {
		rv.Params = append([]string{}, msg.Params...)
	}
	return rv
}

// Numeric returns the numeric reply code if the command is a three digit
// numeric reply.
func (msg *Message) Numeric() (int, bool) {
	if len(msg.Command) != 3 {
		return 0, false
	}
	for i := 0; i < len(msg.Command); i++ {
		if msg.Command[i] < '0' || msg.Command[i] > '9' {
			return 0, false
		}
	}
	code, err := strconv.Atoi(msg.Command)
	return code, err == nil
}
