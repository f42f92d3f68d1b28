package heuristic

import (
	"fmt"
	"math"

	"github.com/lexlath/lexlath/core"
)

// Term pairs a sub-heuristic with its weight in a Composite sum.
type Term struct {
	// Weight multiplies the sub-heuristic's score; must be finite.
	Weight float64

	// Heuristic is the sub-strategy contributing the score; must be non-nil.
	Heuristic Heuristic
}

// Composite builds a weighted-sum heuristic over terms:
//
//	score(prefix, candidate) = Σ term.Weight · term.Heuristic.Score(prefix, candidate)
//
// Heuristics compose without any change to the generator: the result is an
// ordinary Heuristic. Terms are validated up front — a nil sub-heuristic
// yields ErrNilHeuristic, a NaN or infinite weight yields ErrBadWeight —
// so the hot scoring path carries no checks.
//
// An empty term list is permitted and behaves exactly like Zero.
//
// Complexity: Score is O(Σ cost of sub-heuristic Score calls).
func Composite(terms ...Term) (Heuristic, error) {
	for i, term := range terms {
		if term.Heuristic == nil {
			return nil, fmt.Errorf("%w: term %d", ErrNilHeuristic, i)
		}
		if math.IsNaN(term.Weight) || math.IsInf(term.Weight, 0) {
			return nil, fmt.Errorf("%w: term %d has weight %v", ErrBadWeight, i, term.Weight)
		}
	}
	// own copy, immune to caller mutation of the terms slice
	own := make([]Term, len(terms))
	copy(own, terms)

	return Func(func(prefix []core.Token, candidate core.Token) float64 {
		var sum float64
		for _, term := range own {
			sum += term.Weight * term.Heuristic.Score(prefix, candidate)
		}

		return sum
	}), nil
}
