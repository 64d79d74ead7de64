// Package random generates random IRC messages together with the exact
// values a decoder is expected to recover from them. It is used to check
// that encoding and decoding a message are inverse operations.
package random

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/boreq/ircstream/irc/protocol"
	"github.com/pkg/errors"
)

const (
	maxLineLen = 256
	maxWordLen = 16
	maxTags    = 4
)

const alphaNum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type step int

const (
	addSpace step = iota
	addWord
	addTrailing
	done
)

type choice struct {
	weight int
	step   step
}

// Generator produces a deterministic sequence of messages for a seed.
type Generator struct {
	r *rand.Rand
}

// New creates a generator. The same seed always produces the same messages.
func New(seed int64) *Generator {
	return &Generator{
		r: rand.New(rand.NewSource(seed)),
	}
}

// Message returns a random message. The sender is present in five out of six
// messages and the last parameter is sometimes a trailing parameter which
// contains runs of spaces.
func (g *Generator) Message() *protocol.Message {
	msg := &protocol.Message{}
	length := 0

	if g.r.Intn(6) < maxTags {
		n := g.r.Intn(maxTags) + 1
		for i := 0; i < n; i++ {
			// The index keeps the keys unique.
			key := fmt.Sprintf("%s%d", g.word(), i)
			if g.r.Intn(2) == 0 {
				msg.Tags.SetFlag(key)
			} else {
				msg.Tags.Set(key, g.word())
			}
		}
	}

	if g.r.Intn(6) != 0 {
		msg.Sender = &protocol.Sender{
			Nick: g.word(),
			User: g.word(),
			Host: g.word(),
		}
		length += 4 + len(msg.Sender.Nick) + len(msg.Sender.User) + len(msg.Sender.Host)
	}

	msg.Command = g.word()
	length += len(msg.Command)

	trailing := false
	for length < maxLineLen {
		switch g.choose(trailing) {
		case addSpace:
			if trailing {
				msg.Params[len(msg.Params)-1] += " "
			}
			length++
		case addWord:
			word := g.word()
			if trailing {
				msg.Params[len(msg.Params)-1] += " " + word
			} else {
				msg.Params = append(msg.Params, word)
			}
			length += 1 + len(word)
		case addTrailing:
			trailing = true
			word := g.word()
			msg.Params = append(msg.Params, word)
			length += 2 + len(word)
		case done:
			return msg
		}
	}
	return msg
}

// choose picks the next step. Only one trailing parameter can be added.
func (g *Generator) choose(trailing bool) step {
	trailingWeight := 5
	if trailing {
		trailingWeight = 0
	}
	choices := []choice{
		{1, addSpace},
		{8, addWord},
		{trailingWeight, addTrailing},
		{3, done},
	}
	total := 0
	for _, c := range choices {
		total += c.weight
	}
	n := g.r.Intn(total)
	for _, c := range choices {
		if n < c.weight {
			return c.step
		}
		n -= c.weight
	}
	return done
}

func (g *Generator) word() string {
	b := make([]byte, g.r.Intn(maxWordLen)+1)
	for i := range b {
		b[i] = alphaNum[g.r.Intn(len(alphaNum))]
	}
	return string(b)
}

// Check encodes and decodes n random messages generated from the seed. It
// returns an error describing the first message which was not decoded into
// an identical one.
func Check(seed int64, n int) error {
	g := New(seed)
	for i := 0; i < n; i++ {
		msg := g.Message()
		line := msg.String()
		decoded := protocol.UnmarshalMessage(line)
		if err := compare(msg, decoded); err != nil {
			return errors.Wrapf(err, "seed %d, message %d, line %q", seed, i, line)
		}
	}
	return nil
}

func compare(expected, actual *protocol.Message) error {
	if !reflect.DeepEqual(expected.Sender, actual.Sender) {
		return errors.Errorf("sender: want %+v, got %+v", expected.Sender, actual.Sender)
	}
	if expected.Command != actual.Command {
		return errors.Errorf("command: want %q, got %q", expected.Command, actual.Command)
	}
	if len(expected.Params) != len(actual.Params) {
		return errors.Errorf("params: want %q, got %q", expected.Params, actual.Params)
	}
	for i := range expected.Params {
		if expected.Params[i] != actual.Params[i] {
			return errors.Errorf("param %d: want %q, got %q", i, expected.Params[i], actual.Params[i])
		}
	}
	if !reflect.DeepEqual(expected.Tags.All(), actual.Tags.All()) {
		return errors.Errorf("tags: want %+v, got %+v", expected.Tags.All(), actual.Tags.All())
	}
	return nil
}
