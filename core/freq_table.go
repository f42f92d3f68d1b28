package core

// DefaultFrequency is the catch-all count returned for pairs the table has
// never seen. It is deliberately 1 rather than 0 so that unseen pairs stay
// selectable under frequency-weighted scoring.
const DefaultFrequency int64 = 1

// pair identifies a canonical (antecedent, consequent) token pair.
type pair struct {
	antecedent Token
	consequent Token
}

// FreqTable is an in-memory pairwise co-occurrence table: how often a
// consequent token was observed following an antecedent token.
//
// Counts are keyed by the canonical forms of both tokens. Lookups never
// fail: unmapped pairs resolve to DefaultFrequency.
//
// FreqTable is not safe for concurrent mutation; populate it fully, then
// share it freely for reads.
type FreqTable struct {
	counts map[pair]int64
}

// NewFreqTable returns an empty frequency table.
func NewFreqTable() *FreqTable {
	return &FreqTable{counts: make(map[pair]int64)}
}

// Set records count observations of consequent following antecedent,
// replacing any prior count for the pair. Both tokens must be real
// (non-Sentinel) tokens and count must be non-negative.
//
// Returns ErrEmptyToken or ErrNegativeCount on violation.
func (t *FreqTable) Set(antecedent, consequent Token, count int64) error {
	if antecedent.IsSentinel() || consequent.IsSentinel() {
		return ErrEmptyToken
	}
	if count < 0 {
		return ErrNegativeCount
	}
	t.counts[pair{antecedent.Canonical(), consequent.Canonical()}] = count

	return nil
}

// Bump increments the count of consequent following antecedent by one.
// A pair bumped for the first time starts from zero, so a single Bump
// records a count of 1. Token validation matches Set.
func (t *FreqTable) Bump(antecedent, consequent Token) error {
	if antecedent.IsSentinel() || consequent.IsSentinel() {
		return ErrEmptyToken
	}
	t.counts[pair{antecedent.Canonical(), consequent.Canonical()}]++

	return nil
}

// Frequency returns the recorded count of consequent following antecedent,
// or DefaultFrequency for unmapped pairs. Lookup is case-insensitive and
// never fails; in particular a Sentinel consequent (never stored) resolves
// to DefaultFrequency like any other unseen pair.
//
// Complexity: O(1).
func (t *FreqTable) Frequency(antecedent, consequent Token) int64 {
	if c, ok := t.counts[pair{antecedent.Canonical(), consequent.Canonical()}]; ok {
		return c
	}

	return DefaultFrequency
}

// PairCount returns the number of distinct canonical pairs with recorded counts.
func (t *FreqTable) PairCount() int { return len(t.counts) }
