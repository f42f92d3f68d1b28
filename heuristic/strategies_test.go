package heuristic_test

import (
	"testing"

	"github.com/lexlath/lexlath/core"
	"github.com/lexlath/lexlath/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var prefix = []core.Token{"There", "is"}

// TestZero verifies the indifferent strategy scores everything 0.
func TestZero(t *testing.T) {
	h := heuristic.Zero()

	assert.Equal(t, 0.0, h.Score(prefix, "cow"))
	assert.Equal(t, 0.0, h.Score(prefix, core.Sentinel))
	assert.Equal(t, 0.0, h.Score(nil, "cow"))
}

// TestFrequency verifies table-backed scoring against the last prefix token,
// with the catch-all default for unseen pairs and 0 for an empty prefix.
func TestFrequency(t *testing.T) {
	f := core.NewFreqTable()
	require.NoError(t, f.Set("is", "no", 100))
	h := heuristic.Frequency(f)

	assert.Equal(t, 100.0, h.Score(prefix, "no"), "recorded pair must score its count")
	assert.Equal(t, float64(core.DefaultFrequency), h.Score(prefix, "a"), "unseen pair must score the default")
	assert.Equal(t, float64(core.DefaultFrequency), h.Score(prefix, core.Sentinel), "Sentinel candidate defaults like any unseen pair")
	assert.Equal(t, 0.0, h.Score(nil, "no"), "empty prefix has no antecedent to look up")
}

// TestLongestWord verifies character-length scoring; Sentinel scores 0.
func TestLongestWord(t *testing.T) {
	h := heuristic.LongestWord()

	assert.Equal(t, 8.0, h.Score(prefix, "elephant"))
	assert.Equal(t, 3.0, h.Score(prefix, "cow"))
	assert.Equal(t, 0.0, h.Score(prefix, core.Sentinel), "Sentinel has no length")
	assert.Equal(t, 5.0, h.Score(prefix, "héllo"), "length counts runes, not bytes")
}

// TestShortestWord verifies reciprocal-length scoring with the explicit
// Sentinel special case (no division by zero).
func TestShortestWord(t *testing.T) {
	h := heuristic.ShortestWord()

	assert.Equal(t, 1.0, h.Score(prefix, "a"))
	assert.InEpsilon(t, 1.0/3.0, h.Score(prefix, "cow"), 1e-12)
	assert.Equal(t, 0.0, h.Score(prefix, core.Sentinel), "Sentinel must score 0, not divide by zero")
}

// TestChainLengthStrategies verifies that the chain-length strategies read
// the whole prefix: a real candidate counts len(prefix)+1, Sentinel counts
// len(prefix).
func TestChainLengthStrategies(t *testing.T) {
	longest := heuristic.LongestChain()
	shortest := heuristic.ShortestChain()

	assert.Equal(t, 3.0, longest.Score(prefix, "no"))
	assert.Equal(t, 2.0, longest.Score(prefix, core.Sentinel))
	assert.Greater(t, longest.Score(prefix, "no"), longest.Score(prefix, core.Sentinel), "longest must prefer extending")

	assert.InEpsilon(t, 1.0/3.0, shortest.Score(prefix, "no"), 1e-12)
	assert.InEpsilon(t, 1.0/2.0, shortest.Score(prefix, core.Sentinel), 1e-12)
	assert.Greater(t, shortest.Score(prefix, core.Sentinel), shortest.Score(prefix, "no"), "shortest must prefer stopping")

	// degenerate: empty prefix + Sentinel would be a zero-length chain
	assert.Equal(t, 0.0, shortest.Score(nil, core.Sentinel))
	assert.Equal(t, 0.0, longest.Score(nil, core.Sentinel))
}

// TestFuncAdapter verifies that a bare function satisfies the interface.
func TestFuncAdapter(t *testing.T) {
	var h heuristic.Heuristic = heuristic.Func(func(p []core.Token, _ core.Token) float64 {
		return float64(len(p))
	})

	assert.Equal(t, 2.0, h.Score(prefix, "anything"))
}
