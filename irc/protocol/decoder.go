package protocol

import (
	"io"

	"github.com/boreq/ircstream/transport/line"
)

const readBufferSize = 4096

// NewDecoder creates a decoder which reads lines from the reader. Empty
// lines are skipped. A final line which isn't terminated is still decoded
// when the reader returns io.EOF.
func NewDecoder(reader io.Reader, options ...line.Option) Decoder {
	rv := &decoder{
		reader: reader,
		framer: line.New(options...),
		buf:    make([]byte, readBufferSize),
	}
	return rv
}

type decoder struct {
	reader  io.Reader
	framer  *line.Framer
	buf     []byte
	pending []string
	err     error
}

func (d *decoder) Decode() (*Message, error) {
	for {
		for len(d.pending) > 0 {
			l := d.pending[0]
			d.pending = d.pending[1:]
			if l != "" {
				return UnmarshalMessage(l), nil
			}
		}

		if d.err != nil {
			return nil, d.err
		}

		n, err := d.reader.Read(d.buf)
		if n > 0 {
			d.pending = append(d.pending, d.framer.PushBytes(d.buf[:n])...)
		}
		if err != nil {
			if err == io.EOF {
				d.pending = append(d.pending, d.framer.Flush())
			}
			d.err = err
		}
	}
}
