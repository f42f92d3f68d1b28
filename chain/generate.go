// Package chain implements greedy, heuristic-guided chain generation over a
// token graph.
//
// Starting from an initial token, the generator repeatedly asks the Provider
// for the candidates of the current last token, scores each candidate with
// the active heuristic against the chain built so far, appends the arg-max
// (first-wins on ties), and stops when Sentinel is selected.
package chain

import (
	"fmt"
	"math"

	"github.com/lexlath/lexlath/core"
)

// scoreFloor initializes each step's running best. Negative infinity cannot
// collide with any legitimate heuristic output; a step where nothing beats
// it is detected and surfaced as ErrInvalidScore.
var scoreFloor = math.Inf(-1)

// generator encapsulates mutable selection state for a single run.
type generator struct {
	provider Provider
	opts     Options
	chain    []core.Token
	steps    int
}

// Generate runs greedy selection from initial over p's token graph and
// renders the resulting chain as a sentence.
// Returns ErrNilProvider or ErrOptionViolation for invalid input,
// ErrNoCandidates or ErrInvalidScore for collaborator contract violations,
// or ErrNonTerminating when WithMaxSteps is exceeded.
func Generate(p Provider, initial core.Token, opts ...Option) (string, error) {
	res, err := Run(p, initial, opts...)
	if err != nil {
		return "", err
	}

	return res.Render(), nil
}

// Run is Generate without the rendering step: it returns the full Result,
// whose Chain ends with the Sentinel that stopped the run.
//
// Preconditions and validation (in order):
//  1. p must be non-nil (ErrNilProvider).
//  2. all supplied Options must be well-formed (ErrOptionViolation).
//
// A Sentinel initial token is the degenerate case: the run starts and ends
// immediately with chain = [Sentinel] and no provider call is made.
//
// Termination is not guaranteed without WithMaxSteps: if no path to Sentinel
// is reachable under the heuristic's choices, the loop does not stop. That
// is a documented requirement on the provider/heuristic combination, not a
// condition the generator detects on its own.
//
// Complexity: O(S·K·H) where S = selections made, K = candidates per step,
// H = cost of one heuristic call. Memory: O(S) for the chain.
func Run(p Provider, initial core.Token, opts ...Option) (*Result, error) {
	// 1) Validate provider is non-nil.
	if p == nil {
		return nil, ErrNilProvider
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Seed the chain with the caller's initial token, verbatim.
	g := &generator{provider: p, opts: o, chain: []core.Token{initial}}
	if initial.IsSentinel() {
		// Degenerate chain: started in the done state.
		return &Result{Chain: g.chain}, nil
	}

	// 4) Main loop.
	if err := g.loop(); err != nil {
		return nil, err
	}

	return &Result{Chain: g.chain}, nil
}

// loop performs selections until Sentinel is appended, a contract violation
// surfaces, or the optional step bound runs out.
func (g *generator) loop() error {
	for {
		if g.opts.MaxSteps > 0 && g.steps >= g.opts.MaxSteps {
			return fmt.Errorf("%w: after %d selections", ErrNonTerminating, g.steps)
		}

		next, err := g.step()
		if err != nil {
			return err
		}
		g.chain = append(g.chain, next)
		g.steps++

		if next.IsSentinel() {
			return nil
		}
	}
}

// step fetches the candidates of the current last token and selects the
// arg-max. Guards the provider's non-empty contract with ErrNoCandidates.
func (g *generator) step() (core.Token, error) {
	current := g.chain[len(g.chain)-1]
	candidates := g.provider.CandidatesFor(current)
	if len(candidates) == 0 {
		return core.Sentinel, fmt.Errorf("%w: for token %q", ErrNoCandidates, string(current))
	}

	return g.selectBest(candidates)
}

// selectBest returns the first candidate (in provider order) achieving the
// maximum score. Only a strictly greater score replaces the running best, so
// equal scores resolve to the earliest candidate — the tie-break law.
func (g *generator) selectBest(candidates []core.Token) (core.Token, error) {
	bestIdx := -1
	bestScore := scoreFloor
	for i, cand := range candidates {
		score := g.opts.Heuristic.Score(g.chain, cand)
		if math.IsNaN(score) {
			return core.Sentinel, fmt.Errorf("%w: NaN score for candidate %q", ErrInvalidScore, string(cand))
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		// Every candidate scored -Inf: the comparison never fired.
		return core.Sentinel, fmt.Errorf("%w: no candidate scored above the floor", ErrInvalidScore)
	}

	return candidates[bestIdx], nil
}
