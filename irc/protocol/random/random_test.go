package random

import (
	"testing"
	"time"

	"github.com/boreq/ircstream/irc/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iterations = 100000

func TestRoundTripFixedSeed(t *testing.T) {
	require.NoError(t, Check(1, iterations))
}

func TestRoundTripRandomSeed(t *testing.T) {
	seed := time.Now().UnixNano()
	if err := Check(seed, iterations); err != nil {
		t.Fatalf("seed %d: %s", seed, err)
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Message().String(), b.Message().String())
	}
}

func TestGeneratorProducesTrailingParams(t *testing.T) {
	g := New(7)
	found := false
	for i := 0; i < 1000 && !found; i++ {
		msg := g.Message()
		if n := len(msg.Params); n > 0 {
			last := msg.Params[n-1]
			for j := 0; j < len(last); j++ {
				if last[j] == ' ' {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "no trailing parameter with spaces was generated")
}

func TestCompareReportsMismatch(t *testing.T) {
	a := protocol.UnmarshalMessage(":n!u@h CMD a :b c")
	b := protocol.UnmarshalMessage(":n!u@h CMD a b c")
	assert.Error(t, compare(a, b))
	assert.NoError(t, compare(a, a.Copy()))
}
