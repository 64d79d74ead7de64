// Package line implements a line delimited transport layer. It reassembles
// lines out of a stream of chunks whose boundaries have nothing to do with
// the boundaries of the lines.
//
// Lines are terminated by:
//
//	"\r\n", "\n" or a lone "\r"
//
// A line which is not terminated within the maximum line length is split so
// that a peer which never sends a terminator can't make the buffer grow
// without bounds.
package line

import (
	"strings"
	"unicode/utf8"

	"github.com/boreq/ircstream/encode"
	"github.com/boreq/ircstream/utils"
	"github.com/boreq/ircstream/utils/size"
	"github.com/pkg/errors"
)

var log = utils.GetLogger("transport/line")

// DefaultMaxLineLength allows the IRCv3 tag block and the RFC 1459 message
// to be received in full.
const DefaultMaxLineLength = 8191*size.Byte + 512*size.Byte

// ErrUnsupportedInput is returned when a chunk has a type which can not be
// processed.
var ErrUnsupportedInput = errors.New("unsupported input type")

type Option func(*Framer)

// WithCharset sets the charset used to decode byte chunks.
func WithCharset(cs *encode.Charset) Option {
	return func(f *Framer) {
		if cs != nil {
			f.decoder = cs.NewDecoder()
		}
	}
}

// WithMaxLineLength sets the length after which a line is split even if no
// terminator was received.
func WithMaxLineLength(max size.Size) Option {
	return func(f *Framer) {
		if max > 0 {
			f.maxLen = int(max)
		}
	}
}

// New creates a framer. By default bytes are decoded as UTF-8 and lines are
// limited to DefaultMaxLineLength.
func New(options ...Option) *Framer {
	rv := &Framer{
		decoder: encode.UTF8().NewDecoder(),
		maxLen:  int(DefaultMaxLineLength),
	}
	for _, option := range options {
		option(rv)
	}
	return rv
}

// Framer buffers the received data and returns complete lines. It must not
// be used by multiple goroutines at the same time.
type Framer struct {
	decoder *encode.Decoder
	maxLen  int
	buf     string

	// skipLF is set if the buffer ended with "\r". A "\n" starting the
	// next chunk belongs to the same terminator.
	skipLF bool
}

// Push accepts a chunk of data which is either a byte slice or a string and
// returns all lines completed by it with their terminators removed.
func (f *Framer) Push(chunk interface{}) ([]string, error) {
	switch v := chunk.(type) {
	case []byte:
		return f.PushBytes(v), nil
	case string:
		return f.PushString(v), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedInput, "expected a byte slice or a string, received %T", chunk)
	}
}

// PushBytes decodes the chunk using the configured charset and processes it
// like PushString.
func (f *Framer) PushBytes(chunk []byte) []string {
	return f.PushString(f.decoder.Decode(chunk))
}

// PushString appends the text to the buffer and returns all completed lines.
func (f *Framer) PushString(chunk string) []string {
	if f.skipLF && len(chunk) > 0 {
		chunk = strings.TrimPrefix(chunk, "\n")
		f.skipLF = false
	}
	f.buf += chunk

	var lines []string
	for {
		line, ok := f.next()
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

// Remainder returns the buffered partial line.
func (f *Framer) Remainder() string {
	return f.buf
}

// Flush returns the buffered partial line and clears the buffer. It is used
// when the stream ends without a final terminator.
func (f *Framer) Flush() string {
	rv := f.buf
	f.buf = ""
	f.skipLF = false
	return rv
}

func (f *Framer) next() (string, bool) {
	i := strings.IndexAny(f.buf, "\r\n")
	if i >= 0 && i <= f.maxLen {
		line := f.buf[:i]
		n := 1
		if f.buf[i] == '\r' {
			if i+1 == len(f.buf) {
				f.skipLF = true
			} else if f.buf[i+1] == '\n' {
				n = 2
			}
		}
		f.buf = f.buf[i+n:]
		return line, true
	}

	if len(f.buf) > f.maxLen {
		n := f.splitPoint()
		log.Debugf("no line terminator within %s, splitting", size.Size(f.maxLen))
		line := f.buf[:n]
		f.buf = f.buf[n:]
		return line, true
	}

	return "", false
}

// splitPoint returns the position at which an overlong line is split. It
// avoids cutting a UTF-8 encoded character in half when possible.
func (f *Framer) splitPoint() int {
	n := f.maxLen
	for back := 0; back < utf8.UTFMax && n-back > 0; back++ {
		if utf8.RuneStart(f.buf[n-back]) {
			return n - back
		}
	}
	return n
}
