package protocol

import "strings"

type parserState int

const (
	stateTag parserState = iota
	stateSender
	stateCommand
	stateParams
	stateMulti
)

// UnmarshalMessage decodes a single line encoded as specified by the IRC
// protocol. It never fails: malformed lines result in messages with some of
// the fields left empty. One trailing line terminator is removed if present.
func UnmarshalMessage(line string) *Message {
	line = trimTerminator(line)
	rv := &Message{}

	state := stateTag
	sc := scanner{s: line}
	for state != stateMulti {
		tok, ok := sc.next()
		if !ok {
			break
		}
		if tok.space {
			continue
		}

		// A state which doesn't accept the token hands it over to the
		// next state.
		for handled := false; !handled; {
			switch state {
			case stateTag:
				if tok.text[0] == '@' {
					rv.Tags = parseTags(tok.text[1:])
					handled = true
				}
				state = stateSender
			case stateSender:
				if tok.text[0] == ':' {
					rv.Sender = parseSender(tok.text[1:])
					handled = true
				}
				state = stateCommand
			case stateCommand:
				rv.Command = tok.text
				state = stateParams
				handled = true
			case stateParams:
				if tok.text[0] != ':' {
					rv.Params = append(rv.Params, tok.text)
				} else {
					// The trailing parameter takes the rest of the line
					// verbatim, spaces included.
					rv.Params = append(rv.Params, line[tok.start+1:])
					state = stateMulti
				}
				handled = true
			}
		}
	}

	return rv
}

func trimTerminator(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2]
	}
	return strings.TrimSuffix(line, "\n")
}

type token struct {
	text  string
	start int
	space bool
}

// scanner splits a line into alternating runs of spaces and runs of other
// characters in a single pass.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) next() (token, bool) {
	if sc.pos >= len(sc.s) {
		return token{}, false
	}
	start := sc.pos
	space := sc.s[start] == ' '
	for sc.pos < len(sc.s) && (sc.s[sc.pos] == ' ') == space {
		sc.pos++
	}
	return token{text: sc.s[start:sc.pos], start: start, space: space}, true
}
