package metric

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/clustering"
)

// PairwiseEdges builds the complete edge set over vectors: for every pair
// i<j one Edge{U: i, V: j, Weight: fn(vectors[i], vectors[j])}.
//
// Contract:
//   • All vectors must share one length (else ErrDimensionMismatch).
//   • Fewer than two vectors yield an empty, non-nil slice.
//   • Pair order is lexicographic by (i,j).
//
// Complexity: O(n²·d) time, O(n²) space for the result.
func PairwiseEdges(vectors [][]float64, fn Func) ([]clustering.Edge, error) {
	n := len(vectors)
	if n < 2 {
		return []clustering.Edge{}, nil
	}

	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("PairwiseEdges: vector %d has length %d, want %d: %w", i, len(v), dim, ErrDimensionMismatch)
		}
	}

	edges := make([]clustering.Edge, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, clustering.Edge{U: i, V: j, Weight: fn(vectors[i], vectors[j])})
		}
	}

	return edges, nil
}
