package embedding

import (
	"context"
	"errors"
	"math"
)

// ErrUnavailable indicates the provider cannot be reached or loaded.
// Callers degrade to lexical-only scoring instead of failing the run.
var ErrUnavailable = errors.New("embedding provider unavailable")

// Provider turns texts into fixed-length numeric vectors. Implementations
// must be deterministic for identical text and return vectors of consistent
// dimensionality within one run. Batching is supported directly: one call
// may carry many texts.
type Provider interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// Cosine returns the cosine similarity of two vectors in [-1, 1].
// Mismatched or zero-norm vectors yield 0.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
