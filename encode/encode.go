// Package encode converts text between Go strings and the named character
// encodings used by IRC networks on the wire. Most networks use UTF-8 but
// older ones still speak legacy single and multi byte charsets.
package encode

import (
	"strings"

	"github.com/boreq/ircstream/utils"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var log = utils.GetLogger("encode")

// DefaultCharset is used when no encoding is configured.
const DefaultCharset = "utf-8"

// Charset is a named text encoding. The zero value is not usable, use Lookup
// or UTF8.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 returns the default charset.
func UTF8() *Charset {
	return &Charset{name: DefaultCharset, enc: unicode.UTF8}
}

// Lookup finds a charset using its WHATWG name or one of its aliases, for
// example "utf-8", "latin1" or "shift_jis". An empty name selects UTF-8.
func Lookup(name string) (*Charset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UTF8(), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown encoding %q", name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(name)
	}
	if canonical == DefaultCharset {
		return UTF8(), nil
	}
	return &Charset{name: canonical, enc: enc}, nil
}

// Name returns the canonical name of the charset.
func (c *Charset) Name() string {
	return c.name
}

func (c *Charset) isUTF8() bool {
	return c.name == DefaultCharset
}

// Encode converts a string into bytes in this charset. Characters which can
// not be represented are replaced instead of causing an error.
func (c *Charset) Encode(s string) []byte {
	if c.isUTF8() {
		return []byte(s)
	}
	encoder := encoding.ReplaceUnsupported(c.enc.NewEncoder())
	b, err := encoder.Bytes([]byte(s))
	if err != nil {
		log.Debugf("encoding to %s failed, sending raw bytes: %s", c.name, err)
		return []byte(s)
	}
	return b
}

// NewDecoder returns a decoder which converts a stream of byte chunks in this
// charset into text. A multi byte sequence split between two chunks is
// carried over to the next call.
func (c *Charset) NewDecoder() *Decoder {
	d := &Decoder{}
	if !c.isUTF8() {
		d.t = c.enc.NewDecoder()
		d.name = c.name
	}
	return d
}

// Decoder is a stateful charset decoder. It must not be used by multiple
// goroutines at the same time.
type Decoder struct {
	t       transform.Transformer
	name    string
	pending []byte
}

// Decode converts the next chunk of the stream into text. Bytes of an
// incomplete trailing sequence are kept until the next call. UTF-8 input is
// passed through untouched.
func (d *Decoder) Decode(chunk []byte) string {
	if d.t == nil {
		return string(chunk)
	}

	src := append(d.pending, chunk...)
	d.pending = nil
	dst := make([]byte, 3*len(src)+utf8Max)
	var out []byte
	for {
		nDst, nSrc, err := d.t.Transform(dst, src, false)
		out = append(out, dst[:nDst]...)
		src = src[nSrc:]
		switch err {
		case nil:
			return string(out)
		case transform.ErrShortDst:
			if nDst == 0 && nSrc == 0 {
				dst = make([]byte, 2*len(dst))
			}
		case transform.ErrShortSrc:
			d.pending = append([]byte(nil), src...)
			return string(out)
		default:
			log.Debugf("decoding from %s failed, passing raw bytes: %s", d.name, err)
			return string(append(out, src...))
		}
	}
}

// Pending returns the number of bytes carried over to the next Decode call.
func (d *Decoder) Pending() int {
	return len(d.pending)
}

const utf8Max = 4
