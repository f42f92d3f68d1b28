// Package chain provides tunable options, error definitions, and the result
// type for greedy chain generation over a token graph.
package chain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lexlath/lexlath/core"
	"github.com/lexlath/lexlath/heuristic"
)

// Sentinel errors for chain generation.
var (
	// ErrNilProvider is returned if a nil Provider is passed.
	ErrNilProvider = errors.New("chain: provider is nil")

	// ErrNoCandidates is returned when the provider yields an empty candidate
	// sequence — a contract violation, never tolerated silently.
	ErrNoCandidates = errors.New("chain: provider returned no candidates")

	// ErrNonTerminating is returned when the optional step bound is exceeded
	// before Sentinel was selected.
	ErrNonTerminating = errors.New("chain: step bound exceeded before Sentinel")

	// ErrInvalidScore is returned when a heuristic violates its score
	// contract: a NaN score, or a step at which no candidate scores above
	// the negative-infinity floor.
	ErrInvalidScore = errors.New("chain: heuristic score violates contract")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chain: invalid option supplied")
)

// Provider answers "which tokens may follow this token". It is the sole
// capability the generator requires of a token graph; *core.TokenGraph
// satisfies it, as can any trained model or external store.
//
// Contract: the returned sequence is non-empty, ordered (the order is the
// tie-break order), and may mix real tokens with Sentinel. The provider is
// synchronous, deterministic, and side-effect-free, and depends only on the
// current token — never on chain history.
type Provider interface {
	CandidatesFor(token core.Token) []core.Token
}

// Option configures generation via functional arguments. If an Option is
// invalid (e.g. negative step bound), it is recorded internally and surfaced
// as ErrOptionViolation when generation is invoked.
type Option func(*Options)

// Options holds parameters customizing chain generation.
type Options struct {
	// Heuristic ranks candidate continuations. Defaults to heuristic.Zero(),
	// which reduces selection to provider order.
	Heuristic heuristic.Heuristic

	// MaxSteps, if > 0, bounds the number of selections; exceeding the bound
	// surfaces ErrNonTerminating instead of looping forever.
	// A value of 0 explicitly disables the bound.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Heuristic: heuristic.Zero() (pure provider-order selection)
//   - no step bound (MaxSteps == 0)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.Zero(),
		MaxSteps:  0,
		err:       nil,
	}
}

// WithHeuristic selects the scoring strategy ranking candidates.
// A nil heuristic is an invalid option → ErrOptionViolation.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic must be non-nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxSteps bounds the number of selections.
//
//	n > 0: at most n selections, then ErrNonTerminating
//	n == 0: explicit "no bound"
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no bound"
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}

// Result holds the outcome of a completed generation:
//   - Chain: every token in selection order, starting with the caller's
//     initial token and ending with the Sentinel that stopped the run.
type Result struct {
	Chain []core.Token
}

// Render produces the output sentence: every chain element except the
// trailing Sentinel, joined by single spaces, with a literal period
// appended. A degenerate chain (initial token = Sentinel) renders as ".".
func (r *Result) Render() string {
	words := make([]string, 0, len(r.Chain))
	for _, t := range r.Chain {
		if t.IsSentinel() {
			continue
		}
		words = append(words, string(t))
	}

	return strings.Join(words, " ") + "."
}
