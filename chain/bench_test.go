package chain_test

import (
	"fmt"
	"testing"

	"github.com/lexlath/lexlath/chain"
	"github.com/lexlath/lexlath/core"
	"github.com/lexlath/lexlath/heuristic"
)

// newLinearGraph builds a chain graph w0→w1→…→wN→Sentinel with branching
// factor K at every step (one true continuation plus K−1 decoys that all
// lead onward, so every run makes N selections over K candidates).
func newLinearGraph(n, k int) *core.TokenGraph {
	g := core.NewTokenGraph()
	for i := 0; i < n; i++ {
		cands := make([]core.Token, 0, k)
		for j := 0; j < k; j++ {
			cands = append(cands, core.Token(fmt.Sprintf("w%d_%d", i+1, j)))
		}
		for j := 0; j < k; j++ {
			_ = g.AddRule(core.Token(fmt.Sprintf("w%d_%d", i, j)), cands...)
		}
	}
	for j := 0; j < k; j++ {
		_ = g.AddRule(core.Token(fmt.Sprintf("w%d_%d", n, j)), core.Sentinel)
	}

	return g
}

// BenchmarkGenerate_Zero measures the bare selection loop: N steps, K
// candidates each, indifferent scoring.
func BenchmarkGenerate_Zero(b *testing.B) {
	const N, K = 1000, 8
	g := newLinearGraph(N, K)

	b.ReportAllocs()
	b.SetBytes(int64(N * K))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = chain.Generate(g, "w0_0")
	}
}

// BenchmarkGenerate_Frequency measures the loop with table-backed scoring.
func BenchmarkGenerate_Frequency(b *testing.B) {
	const N, K = 1000, 8
	g := newLinearGraph(N, K)
	f := core.NewFreqTable()
	for i := 0; i < N; i++ {
		_ = f.Set(
			core.Token(fmt.Sprintf("w%d_0", i)),
			core.Token(fmt.Sprintf("w%d_%d", i+1, i%K)),
			int64(i+2),
		)
	}
	h := heuristic.Frequency(f)

	b.ReportAllocs()
	b.SetBytes(int64(N * K))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = chain.Generate(g, "w0_0", chain.WithHeuristic(h))
	}
}

// BenchmarkGenerate_HeuristicOverhead compares the trivial Zero strategy
// against a whole-prefix strategy at the same graph size.
func BenchmarkGenerate_HeuristicOverhead(b *testing.B) {
	const N, K = 500, 4
	g := newLinearGraph(N, K)

	b.Run("Zero", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = chain.Generate(g, "w0_0")
		}
	})

	b.Run("LongestChain", func(b *testing.B) {
		h := heuristic.LongestChain()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = chain.Generate(g, "w0_0", chain.WithHeuristic(h))
		}
	})
}
