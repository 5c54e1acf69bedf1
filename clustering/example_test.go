package clustering_test

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/clustering"
)

// ExampleAgglomerative cuts a weighted path into two clusters.
//
//	0 ─1─ 1 ─2─ 2 ─3─ 3
//	└────────10───────┘
//
// The two cheapest edges merge {0,1,2}; vertex 3 stays alone.
func ExampleAgglomerative() {
	edges := []clustering.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 2, V: 3, Weight: 3},
		{U: 0, V: 3, Weight: 10},
	}

	labels, err := clustering.Agglomerative(4, edges, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(labels, clustering.Relabel(labels))
	// Output: [0 0 0 3] [0 0 0 1]
}

// ExampleCentroid shows that k == n leaves every vertex in its own cluster.
func ExampleCentroid() {
	edges := []clustering.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
	}

	labels, err := clustering.Centroid(3, edges, 3, 42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(labels)
	// Output: [0 1 2]
}

func ExampleCompute_errInvalidClusterCount() {
	_, err := clustering.Compute(3, nil, 5, clustering.DefaultOptions())
	fmt.Println(err)
	// Output: k=5 not in [1,3]: clustering: cluster count out of range
}
