// Package chain provides a deterministic, heuristic-guided greedy chain
// generator over a token graph, rendering the selected token sequence as a
// sentence.
//
// What
//
//   - Generate: extend a chain from an initial token by repeatedly selecting
//     the highest-scoring candidate offered by a Provider, until the terminal
//     Sentinel is selected; render the chain as "tok tok tok."
//   - Run: the same selection loop, returning the raw Result (the full chain
//     including the trailing Sentinel) for callers that want more than the
//     rendered string.
//   - Candidate scoring is delegated to a heuristic.Heuristic; the default
//     heuristic.Zero() reduces selection to pure provider order.
//
// Why
//
//   - One greedy arg-max loop unifies frequency-weighted n-gram generation
//     and arbitrary heuristic-guided search: the strategy is a parameter,
//     the engine never changes.
//
// Selection law
//
//	Each step initializes its running best to negative infinity and scans
//	candidates in provider order; only a strictly greater score replaces the
//	best. Ties therefore resolve to the earliest candidate — the first
//	candidate achieving the maximum score wins, reproducibly.
//
// Determinism
//
//	The generator holds no hidden state and no randomness. For a fixed
//	provider, heuristic, and initial token, Generate returns the identical
//	string on every call.
//
// Termination
//
//	The loop stops only when Sentinel is selected. There is no cycle
//	detection: a provider/heuristic combination that never reaches Sentinel
//	does not terminate. WithMaxSteps is the defensive bound — exceeding it
//	surfaces ErrNonTerminating instead of hanging. It is opt-in, never a
//	hidden default.
//
// Complexity (S = selections, K = candidates per step, H = heuristic cost)
//
//   - Time:   O(S·K·H)
//   - Memory: O(S) for the chain
//
// Usage
//
//	g := core.NewTokenGraph()
//	_ = g.AddRule("there", "is", "isn't")
//	_ = g.AddRule("is", "no", "a")
//	_ = g.AddRule("isn't", "no", "a")
//	_ = g.AddRule("no", "cow", "dog", "elephant")
//	_ = g.AddRule("a", "cow", "dog", "elephant")
//	_ = g.AddRule("cow", "level")
//	_ = g.AddRule("level", core.Sentinel)
//
//	// Provider-order selection (Zero heuristic is the default):
//	s, err := chain.Generate(g, "There")
//	// s == "There is no cow level."
//
//	// Heuristic-guided selection with a defensive step bound:
//	s, err = chain.Generate(g, "There",
//	    chain.WithHeuristic(heuristic.LongestWord()),
//	    chain.WithMaxSteps(1000),
//	)
//
// Errors
//
//   - ErrNilProvider     if the provider is nil.
//   - ErrOptionViolation if an invalid Option is supplied (nil heuristic,
//     negative MaxSteps).
//   - ErrNoCandidates    if the provider returns an empty candidate sequence
//     (provider contract violation).
//   - ErrInvalidScore    if a heuristic returns NaN, or no candidate scores
//     above the negative-infinity floor (heuristic contract violation).
//   - ErrNonTerminating  if WithMaxSteps is exceeded before Sentinel.
package chain
