package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/boreq/ircstream/irc/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lines = "@time=2021-01-01T00:00:00Z;flag; :nick!user@host PRIVMSG #chan :hello world\r\n" +
	"PING irc.example.com\r\n"

func TestDecode(t *testing.T) {
	out := &bytes.Buffer{}
	err := decode(out, protocol.NewDecoder(strings.NewReader(lines)))
	require.NoError(t, err)

	expected := `{"tags":[{"key":"time","value":"2021-01-01T00:00:00Z"},{"key":"flag"}],"sender":{"nick":"nick","user":"user","host":"host"},"command":"PRIVMSG","params":["#chan","hello world"]}
{"command":"PING","params":["irc.example.com"]}
`
	assert.Equal(t, expected, out.String())
}

func TestDecodeEncode(t *testing.T) {
	decoded := &bytes.Buffer{}
	require.NoError(t, decode(decoded, protocol.NewDecoder(strings.NewReader(lines))))

	encoded := &bytes.Buffer{}
	require.NoError(t, encode(decoded, protocol.NewEncoder(encoded, nil)))
	assert.Equal(t, lines, encoded.String())
}

func TestEncodeInvalidInput(t *testing.T) {
	err := encode(strings.NewReader("{"), protocol.NewEncoder(&bytes.Buffer{}, nil))
	assert.Error(t, err)
}

func TestFuzz(t *testing.T) {
	out := &bytes.Buffer{}
	MainCmd.SetOut(out)
	MainCmd.SetArgs([]string{"fuzz", "123", "--count", "1000"})
	require.NoError(t, MainCmd.Execute())
	assert.Equal(t, "PASS: 1000 messages, seed 123\n", out.String())
}

func TestFuzzInvalidSeed(t *testing.T) {
	MainCmd.SetOut(&bytes.Buffer{})
	MainCmd.SetArgs([]string{"fuzz", "abc"})
	assert.Error(t, MainCmd.Execute())
}
