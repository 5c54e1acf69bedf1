package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcluster/dsu"
)

// BenchmarkUnionFind measures random unions followed by a full labelling.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, _ := dsu.New(n)
		for _, p := range pairs {
			_, _ = f.Union(p[0], p[1])
		}
		_ = f.Labelling()
	}
}
