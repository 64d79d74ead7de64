package protocol

import (
	"reflect"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	text := ":irc.example.com 251 botnet_test :There are 185 users on 25 servers"
	msg := UnmarshalMessage(text)
	if msg.Sender == nil || msg.Sender.Nick != "irc.example.com" {
		t.Fatal(msg)
	}
	if msg.Command != "251" {
		t.Fatal(msg)
	}
	if msg.Params[0] != "botnet_test" {
		t.Fatal(msg)
	}
	if msg.Params[1] != "There are 185 users on 25 servers" {
		t.Fatal(msg)
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	for _, text := range []string{"", "\r\n", "\n", "   "} {
		msg := UnmarshalMessage(text)
		if msg.Command != "" || msg.Sender != nil || msg.Tags.Len() != 0 || len(msg.Params) != 0 {
			t.Fatalf("UnmarshalMessage(%q) = %+v", text, msg)
		}
	}
}

func TestUnmarshalTagsWithoutSender(t *testing.T) {
	msg := UnmarshalMessage("@id=123 PING")
	if !reflect.DeepEqual(msg.Tags.All(), []Tag{{Key: "id", Value: "123"}}) {
		t.Fatalf("wrong tags %+v", msg.Tags.All())
	}
	if msg.Sender != nil {
		t.Fatalf("unexpected sender %+v", msg.Sender)
	}
	if msg.Command != "PING" {
		t.Fatalf("wrong command %q", msg.Command)
	}
	if len(msg.Params) != 0 {
		t.Fatalf("unexpected params %q", msg.Params)
	}
}

func TestUnmarshalFull(t *testing.T) {
	msg := UnmarshalMessage("@time=2021-01-01T00:00:00Z :nick!user@host PRIVMSG #chan :hello world")
	if v, ok := msg.Tags.Value("time"); !ok || v != "2021-01-01T00:00:00Z" {
		t.Fatalf("wrong time tag %q", v)
	}
	if !reflect.DeepEqual(msg.Sender, &Sender{Nick: "nick", User: "user", Host: "host"}) {
		t.Fatalf("wrong sender %+v", msg.Sender)
	}
	if msg.Command != "PRIVMSG" {
		t.Fatalf("wrong command %q", msg.Command)
	}
	if !reflect.DeepEqual(msg.Params, []string{"#chan", "hello world"}) {
		t.Fatalf("wrong params %q", msg.Params)
	}
}

var unmarshalTests = []struct {
	line    string
	sender  *Sender
	command string
	params  []string
}{
	{"PING", nil, "PING", nil},
	{"PING\r\n", nil, "PING", nil},
	{"PING\n", nil, "PING", nil},
	{"PING a\r", nil, "PING", []string{"a\r"}},
	{"  PING   a  b ", nil, "PING", []string{"a", "b"}},
	{"PRIVMSG #chan :  spaced   out  ", nil, "PRIVMSG", []string{"#chan", "  spaced   out  "}},
	{"PRIVMSG #chan ::)", nil, "PRIVMSG", []string{"#chan", ":)"}},
	{"PRIVMSG #chan :", nil, "PRIVMSG", []string{"#chan", ""}},
	{"PRIVMSG #chan :a :b", nil, "PRIVMSG", []string{"#chan", "a :b"}},
	{"PRIVMSG #chan a:b", nil, "PRIVMSG", []string{"#chan", "a:b"}},
	{":server", &Sender{Nick: "server"}, "", nil},
	{":nick!user@host JOIN #chan", &Sender{Nick: "nick", User: "user", Host: "host"}, "JOIN", []string{"#chan"}},
	{":nick@host JOIN", &Sender{Nick: "nick", Host: "host"}, "JOIN", nil},
	{":nick!user JOIN", &Sender{Nick: "nick", User: "user"}, "JOIN", nil},
	{":nick!user@host@more JOIN", &Sender{Nick: "nick", User: "user", Host: "host@more"}, "JOIN", nil},
	{":ni@ck!user@host JOIN", &Sender{Nick: "ni@ck", User: "user", Host: "host"}, "JOIN", nil},
	{": JOIN", &Sender{}, "JOIN", nil},
	{"JOIN :nick!user@host", nil, "JOIN", []string{"nick!user@host"}},
	{"@a :b c", &Sender{Nick: "b"}, "c", nil},
	{"@a @b c", nil, "@b", []string{"c"}},
}

func TestUnmarshalTable(t *testing.T) {
	for _, tt := range unmarshalTests {
		msg := UnmarshalMessage(tt.line)
		if !reflect.DeepEqual(msg.Sender, tt.sender) {
			t.Fatalf(`UnmarshalMessage(%q) sender, want %+v, got %+v`, tt.line, tt.sender, msg.Sender)
		}
		if msg.Command != tt.command {
			t.Fatalf(`UnmarshalMessage(%q) command, want %q, got %q`, tt.line, tt.command, msg.Command)
		}
		if !reflect.DeepEqual(msg.Params, tt.params) {
			t.Fatalf(`UnmarshalMessage(%q) params, want %q, got %q`, tt.line, tt.params, msg.Params)
		}
	}
}

var tagTests = []struct {
	line string
	tags []Tag
}{
	{"@a=1;b;c=3 X", []Tag{{Key: "a", Value: "1"}, {Key: "b", Flag: true}, {Key: "c", Value: "3"}}},
	{"@a=1;a=2;b X", []Tag{{Key: "a", Value: "2"}, {Key: "b", Flag: true}}},
	{"@;;a;; X", []Tag{{Key: "a", Flag: true}}},
	{"@a=;=b X", []Tag{{Key: "a", Flag: true}}},
	{"@a=b=c X", []Tag{{Key: "a", Value: "b=c"}}},
	{"@ X", []Tag{}},
}

func TestUnmarshalTags(t *testing.T) {
	for _, tt := range tagTests {
		msg := UnmarshalMessage(tt.line)
		if !reflect.DeepEqual(msg.Tags.All(), tt.tags) {
			t.Fatalf(`UnmarshalMessage(%q) tags, want %+v, got %+v`, tt.line, tt.tags, msg.Tags.All())
		}
		if msg.Command != "X" {
			t.Fatalf(`UnmarshalMessage(%q) command %q`, tt.line, msg.Command)
		}
	}
}

func TestTagOrderRoundTrip(t *testing.T) {
	msg := &Message{Command: "TAGMSG", Params: []string{"#chan"}}
	keys := []string{"z", "a", "+draft/reply", "m", "example.com/x"}
	for i, key := range keys {
		if i%2 == 0 {
			msg.Tags.SetFlag(key)
		} else {
			msg.Tags.Set(key, key+"-value")
		}
	}

	decoded := UnmarshalMessage(msg.String())
	if !reflect.DeepEqual(decoded.Tags.Keys(), keys) {
		t.Fatalf("want %q, got %q", keys, decoded.Tags.Keys())
	}
	if !reflect.DeepEqual(decoded.Tags.All(), msg.Tags.All()) {
		t.Fatalf("want %+v, got %+v", msg.Tags.All(), decoded.Tags.All())
	}
}

func TestScannerPartitionsInput(t *testing.T) {
	line := "  @a=b  :x!y@z   CMD p  :t  t "
	sc := scanner{s: line}
	rebuilt := ""
	prevSpace := false
	for i := 0; ; i++ {
		tok, ok := sc.next()
		if !ok {
			break
		}
		if i > 0 && tok.space == prevSpace {
			t.Fatalf("two consecutive tokens of the same kind at %d", tok.start)
		}
		if line[tok.start:tok.start+len(tok.text)] != tok.text {
			t.Fatalf("token %q doesn't match its position %d", tok.text, tok.start)
		}
		prevSpace = tok.space
		rebuilt += tok.text
	}
	if rebuilt != line {
		t.Fatalf("want %q, got %q", line, rebuilt)
	}
}
