// Package heuristic provides scoring strategies ranking candidate
// continuations of a token chain. Higher score = more desirable.
//
// This file declares the Heuristic capability, the Func adapter, and
// sentinel errors for strategy construction.
package heuristic

import (
	"errors"

	"github.com/lexlath/lexlath/core"
)

// Sentinel errors for heuristic construction.
var (
	// ErrNilHeuristic indicates a nil sub-heuristic was supplied to Composite.
	ErrNilHeuristic = errors.New("heuristic: nil heuristic")

	// ErrBadWeight indicates a NaN or infinite weight was supplied to Composite.
	ErrBadWeight = errors.New("heuristic: weight must be finite")
)

// Heuristic scores a candidate continuation against the chain built so far.
//
// Implementations must be pure: no mutation of prefix, no retained
// references, and identical inputs must yield identical scores. The
// generator treats a NaN score, and a step at which every candidate scores
// negative infinity, as a contract violation (chain.ErrInvalidScore).
type Heuristic interface {
	// Score returns the desirability of appending candidate to prefix.
	// prefix is the chain generated so far (it never contains Sentinel);
	// candidate may be Sentinel.
	Score(prefix []core.Token, candidate core.Token) float64
}

// Func adapts a bare scoring function to the Heuristic interface, so any
// func(prefix, candidate) float64 can drive the generator directly.
type Func func(prefix []core.Token, candidate core.Token) float64

// Score implements Heuristic.
func (f Func) Score(prefix []core.Token, candidate core.Token) float64 {
	return f(prefix, candidate)
}
