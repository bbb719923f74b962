package draw

import (
	"fmt"
	"math/rand"

	"github.com/momnetk/giftbattle/internal/domain"
)

// Selector performs weighted random selection over a case's draw pool.
// Weights are relative, never normalized. The random source is injectable
// so tests can run deterministically without changing the walk.
type Selector struct {
	rng func() float64 // uniform in [0, 1)
}

// NewSelector creates a selector backed by math/rand's shared source,
// which is safe for concurrent use.
func NewSelector() *Selector {
	return &Selector{rng: rand.Float64} //nolint:gosec // Game fairness, not security critical
}

// NewSelectorWithSource creates a selector with a custom uniform source.
// rng must return values in [0, 1).
func NewSelectorWithSource(rng func() float64) *Selector {
	return &Selector{rng: rng}
}

// Select draws one index from weights, proportional to weight.
// Single O(n) pass: draw uniformly over [0, totalWeight), then walk
// accumulating weight until the running sum exceeds the draw point.
// Returns domain.ErrEmptyPool for an empty pool. Non-positive weights
// are a content-data defect the catalog should have rejected.
func (s *Selector) Select(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, domain.ErrEmptyPool
	}

	var total float64
	for i, w := range weights {
		if w <= 0 {
			return 0, fmt.Errorf("non-positive weight %v at index %d", w, i)
		}
		total += w
	}

	point := s.rng() * total
	var sum float64
	for i, w := range weights {
		sum += w
		if sum > point {
			return i, nil
		}
	}

	// Floating point accumulation can leave point marginally above sum.
	return len(weights) - 1, nil
}
