package core

// TokenGraph is an insertion-ordered, in-memory rule table answering
// "which tokens may follow this token".
//
// Rules are keyed by the canonical (lower-cased) form of the antecedent
// token, so "There" and "there" share one entry. Candidate order is
// preserved exactly as registered; that order is significant, since the
// generator breaks score ties in favor of the earliest candidate.
//
// TokenGraph is not safe for concurrent mutation; build it fully, then share
// it freely for reads.
type TokenGraph struct {
	// rules maps a canonical token to its ordered candidate continuations.
	rules map[Token][]Token
}

// NewTokenGraph returns an empty rule table.
func NewTokenGraph() *TokenGraph {
	return &TokenGraph{rules: make(map[Token][]Token)}
}

// AddRule registers candidates as continuations of token, appending to any
// rule already registered for the same canonical token. Candidates may mix
// real tokens with Sentinel (e.g. to allow both stopping and continuing).
//
// Returns ErrEmptyToken if token is empty, ErrNoRuleCandidates if no
// candidates are supplied.
//
// Complexity: O(len(candidates)) amortized.
func (g *TokenGraph) AddRule(token Token, candidates ...Token) error {
	if token.IsSentinel() {
		return ErrEmptyToken
	}
	if len(candidates) == 0 {
		return ErrNoRuleCandidates
	}
	key := token.Canonical()
	g.rules[key] = append(g.rules[key], candidates...)

	return nil
}

// CandidatesFor returns the ordered candidate continuations of token.
// Lookup is case-insensitive. Unregistered tokens resolve to a singleton
// sequence containing only Sentinel, so every unknown token terminates the
// chain by default. The returned slice is a copy; mutating it does not
// affect graph state.
//
// Complexity: O(k), k = number of candidates (defensive copy).
func (g *TokenGraph) CandidatesFor(token Token) []Token {
	cands, ok := g.rules[token.Canonical()]
	if !ok {
		return []Token{Sentinel}
	}
	out := make([]Token, len(cands))
	copy(out, cands)

	return out
}

// RuleCount returns the number of distinct canonical tokens with rules.
func (g *TokenGraph) RuleCount() int { return len(g.rules) }

// HasRule reports whether token has a registered rule (case-insensitive).
func (g *TokenGraph) HasRule(token Token) bool {
	_, ok := g.rules[token.Canonical()]
	return ok
}
