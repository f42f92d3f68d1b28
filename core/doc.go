// Package core provides the token data model and the in-memory collaborators
// consumed by chain generation: an insertion-ordered candidate rule table
// (TokenGraph) and a pairwise co-occurrence table (FreqTable).
//
// What
//
//   - Token: a case-sensitive display string; the empty Token is the
//     distinguished Sentinel meaning "end of sequence".
//   - TokenGraph: answers "which tokens may follow this token" as an ordered,
//     non-empty candidate sequence; unknown tokens resolve to [Sentinel].
//   - FreqTable: answers "how often did this consequent follow this
//     antecedent"; unmapped pairs resolve to DefaultFrequency (1).
//
// Why
//
//   - The generator consumes both collaborators through narrow, read-only
//     contracts (chain.Provider, heuristic.FrequencyTable); these are the
//     canonical in-memory backings. A trained model or database-backed store
//     can replace either by satisfying the same method set.
//
// Canonicalization
//
//	Lookups fold tokens to lower case (Token.Canonical), so rules and counts
//	are shared across casings. Canonicalization applies only to lookups:
//	tokens stored in chains and rendered output keep their original casing.
//
// Determinism
//
//	TokenGraph preserves candidate registration order, and CandidatesFor
//	returns a defensive copy of that exact order. Since candidate order is
//	the generator's tie-break order, identical registrations always yield
//	identical generations.
//
// Complexity
//
//   - AddRule / Set / Bump: O(1) amortized per entry.
//   - CandidatesFor: O(k) for k candidates (copy). Frequency: O(1).
//
// Usage
//
//	g := core.NewTokenGraph()
//	_ = g.AddRule("there", "is", "isn't")
//	_ = g.AddRule("is", "no", "a")
//	_ = g.AddRule("no", "cow", "dog", "elephant")
//	_ = g.AddRule("cow", "level")
//	_ = g.AddRule("level", core.Sentinel)
//
//	f := core.NewFreqTable()
//	_ = f.Set("no", "dog", 100)
//	fmt.Println(f.Frequency("no", "dog")) // 100
//	fmt.Println(f.Frequency("no", "cat")) // 1 (DefaultFrequency)
//
// Errors
//
//   - ErrEmptyToken       if a real token is required but empty.
//   - ErrNoRuleCandidates if AddRule receives no candidates.
//   - ErrNegativeCount    if Set receives a negative count.
package core
