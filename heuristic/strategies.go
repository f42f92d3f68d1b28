package heuristic

import (
	"unicode/utf8"

	"github.com/lexlath/lexlath/core"
)

// FrequencyTable is the pairwise co-occurrence contract consumed by
// Frequency: how often consequent was observed following antecedent.
// *core.FreqTable satisfies it; so does any trained model or external store
// with the same method.
type FrequencyTable interface {
	Frequency(antecedent, consequent core.Token) int64
}

// Zero returns the indifferent heuristic: every candidate scores 0.
// It produces no discrimination at all, so selection falls entirely to the
// first-wins tie-break and deterministically reproduces "always pick the
// provider's first-listed candidate". This is the generator's default.
func Zero() Heuristic {
	return Func(func(_ []core.Token, _ core.Token) float64 {
		return 0
	})
}

// Frequency scores a candidate by how often it follows the last token of
// the prefix, per table. This recovers classic frequency-weighted n-gram
// selection as one instantiation of the general framework. An empty prefix
// scores 0 (there is no antecedent to look up).
func Frequency(table FrequencyTable) Heuristic {
	return Func(func(prefix []core.Token, candidate core.Token) float64 {
		if len(prefix) == 0 {
			return 0
		}

		return float64(table.Frequency(prefix[len(prefix)-1], candidate))
	})
}

// LongestWord scores a candidate by its character length, favoring longer
// words. Sentinel scores 0, so stopping is chosen only when no live word is
// on offer; the chain keeps extending as long as anything real remains.
func LongestWord() Heuristic {
	return Func(func(_ []core.Token, candidate core.Token) float64 {
		return float64(utf8.RuneCountInString(string(candidate)))
	})
}

// ShortestWord scores a candidate by the reciprocal of its character
// length, favoring shorter words. Sentinel has no length and is explicitly
// special-cased to 0 — never a division by zero.
func ShortestWord() Heuristic {
	return Func(func(_ []core.Token, candidate core.Token) float64 {
		if candidate.IsSentinel() {
			return 0
		}

		return 1 / float64(utf8.RuneCountInString(string(candidate)))
	})
}

// LongestChain scores a candidate by the chain length it would produce:
// len(prefix)+1 for a real token, len(prefix) for Sentinel. Unlike the word
// strategies it inspects the whole prefix rather than the candidate alone,
// always preferring to extend.
func LongestChain() Heuristic {
	return Func(func(prefix []core.Token, candidate core.Token) float64 {
		return float64(resultingLen(prefix, candidate))
	})
}

// ShortestChain scores a candidate by the reciprocal of the chain length it
// would produce, preferring to stop as early as possible. The degenerate
// empty-prefix Sentinel case scores 0 rather than dividing by zero.
func ShortestChain() Heuristic {
	return Func(func(prefix []core.Token, candidate core.Token) float64 {
		n := resultingLen(prefix, candidate)
		if n == 0 {
			return 0
		}

		return 1 / float64(n)
	})
}

// resultingLen is the chain length after appending candidate, with Sentinel
// contributing nothing (it is never rendered).
func resultingLen(prefix []core.Token, candidate core.Token) int {
	if candidate.IsSentinel() {
		return len(prefix)
	}

	return len(prefix) + 1
}
