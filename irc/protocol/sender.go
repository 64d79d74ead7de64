package protocol

import "strings"

// Sender is the origin of a message, sent as the nick!user@host prefix. User
// and Host are empty if they were not present in the prefix.
type Sender struct {
	Nick string
	User string
	Host string
}

// Marshal encodes the sender as a prefix including the leading colon.
func (s *Sender) Marshal() string {
	rv := ":" + s.Nick
	if s.User != "" {
		rv += "!" + s.User
	}
	if s.Host != "" {
		rv += "@" + s.Host
	}
	return rv
}

// parseSender decodes a prefix with the leading colon already removed. The
// user is the part between the first '!' and the first '@' which follows it,
// the host is everything after that '@'.
func parseSender(s string) *Sender {
	rv := &Sender{}

	bang := strings.IndexByte(s, '!')
	from := 0
	if bang >= 0 {
		from = bang + 1
	}
	at := strings.IndexByte(s[from:], '@')
	if at >= 0 {
		at += from
	}

	switch {
	case bang >= 0:
		rv.Nick = s[:bang]
	case at >= 0:
		rv.Nick = s[:at]
	default:
		rv.Nick = s
	}

	if bang >= 0 {
		end := len(s)
		if at >= 0 {
			end = at
		}
		rv.User = s[bang+1 : end]
	}

	if at >= 0 {
		rv.Host = s[at+1:]
	}

	return rv
}
