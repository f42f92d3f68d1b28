// Package heuristic provides the scoring strategies that drive greedy chain
// generation: pure functions ranking candidate continuations of a token
// chain, where a larger score means a more desirable candidate.
//
// What
//
//   - Heuristic: the single capability Score(prefix, candidate) float64.
//   - Func: adapter turning any bare scoring function into a Heuristic.
//   - Zero: scores everything 0 — selection degenerates to provider order
//     via the generator's first-wins tie-break (the default strategy).
//   - Frequency: scores a candidate by how often it follows the last prefix
//     token, per a FrequencyTable — classic n-gram frequency selection
//     expressed as just another heuristic.
//   - LongestWord / ShortestWord: score by candidate character length or its
//     reciprocal; Sentinel scores 0 in both (explicitly special-cased in
//     ShortestWord — no division by its zero length).
//   - LongestChain / ShortestChain: score by the resulting chain length or
//     its reciprocal — strategies that read the whole prefix, not just the
//     candidate.
//   - Composite: weighted sum of sub-heuristics; composition needs no change
//     to the generator.
//
// Why
//
//   - One scoring contract unifies frequency-weighted selection and
//     arbitrary heuristic-guided search: swap the strategy, keep the engine.
//
// Purity contract
//
//	A heuristic must not mutate or retain prefix, must be deterministic, and
//	is invoked once per candidate per step. A NaN score, or a step at which
//	every candidate scores negative infinity, is surfaced by the generator
//	as chain.ErrInvalidScore rather than silently mis-selecting.
//
// Usage
//
//	// Frequency-weighted selection:
//	f := core.NewFreqTable()
//	_ = f.Set("no", "dog", 100)
//	h := heuristic.Frequency(f)
//
//	// Ad-hoc strategy from a bare function:
//	vowels := heuristic.Func(func(_ []core.Token, c core.Token) float64 {
//	    return float64(strings.Count(string(c), "e"))
//	})
//
//	// Weighted blend:
//	blend, err := heuristic.Composite(
//	    heuristic.Term{Weight: 0.7, Heuristic: h},
//	    heuristic.Term{Weight: 0.3, Heuristic: vowels},
//	)
//
// Errors
//
//   - ErrNilHeuristic if a Composite term carries a nil sub-heuristic.
//   - ErrBadWeight    if a Composite weight is NaN or infinite.
package heuristic
