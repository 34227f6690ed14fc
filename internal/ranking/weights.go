package ranking

import (
	"fmt"
	"math"
)

// Weights are the fusion coefficients for the four sub-scores. They must
// be non-negative and sum to 1.
type Weights struct {
	Semantic float64
	Keyword  float64
	Heading  float64
	Quality  float64
}

// DefaultWeights biases toward meaning over keywords over structure.
func DefaultWeights() Weights {
	return Weights{Semantic: 0.4, Keyword: 0.3, Heading: 0.2, Quality: 0.1}
}

const weightSumTolerance = 0.01

func (w Weights) Validate() error {
	if w.Semantic < 0 || w.Keyword < 0 || w.Heading < 0 || w.Quality < 0 {
		return fmt.Errorf("scoring weights must be non-negative: %+v", w)
	}
	sum := w.Semantic + w.Keyword + w.Heading + w.Quality
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("scoring weights sum to %.4f, want 1", sum)
	}
	return nil
}

// WithoutSemantic redistributes the semantic coefficient across the three
// remaining sub-scores. Used in degraded mode when no embedding provider
// is available.
func (w Weights) WithoutSemantic() Weights {
	rest := w.Keyword + w.Heading + w.Quality
	if rest <= 0 {
		// Nothing left to scale; fall back to an even split.
		return Weights{Keyword: 1.0 / 3, Heading: 1.0 / 3, Quality: 1.0 / 3}
	}
	return Weights{
		Keyword: w.Keyword / rest,
		Heading: w.Heading / rest,
		Quality: w.Quality / rest,
	}
}
