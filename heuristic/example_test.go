package heuristic_test

import (
	"fmt"

	"github.com/lexlath/lexlath/core"
	"github.com/lexlath/lexlath/heuristic"
)

// ExampleFrequency shows n-gram frequency selection expressed as a heuristic:
// the score of a candidate is its co-occurrence count with the last prefix token.
func ExampleFrequency() {
	f := core.NewFreqTable()
	_ = f.Set("no", "dog", 100)

	h := heuristic.Frequency(f)
	p := []core.Token{"There", "is", "no"}

	fmt.Println(h.Score(p, "dog"))
	fmt.Println(h.Score(p, "cow")) // unseen pair, catch-all default
	// Output:
	// 100
	// 1
}

// ExampleFunc shows that any bare scoring function is a heuristic.
func ExampleFunc() {
	h := heuristic.Func(func(prefix []core.Token, candidate core.Token) float64 {
		return float64(len(prefix) + len(candidate))
	})

	fmt.Println(h.Score([]core.Token{"There"}, "is"))
	// Output:
	// 3
}
