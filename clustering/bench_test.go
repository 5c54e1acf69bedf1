package clustering_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcluster/clustering"
)

// randomPoints returns n deterministic points in [0,1000).
func randomPoints(n int) []float64 {
	r := rand.New(rand.NewSource(42))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.Float64() * 1000
	}

	return xs
}

// BenchmarkAgglomerative clusters 300 points (~45k edges) into 10 groups.
func BenchmarkAgglomerative(b *testing.B) {
	xs := randomPoints(300)
	edges := completeEdges(xs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clustering.Agglomerative(len(xs), edges, 10)
	}
}

// BenchmarkCentroid clusters the same points with the centroid method.
func BenchmarkCentroid(b *testing.B) {
	xs := randomPoints(300)
	edges := symmetricEdges(xs)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = clustering.Centroid(len(xs), edges, 10, 42)
	}
}
