package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/dsu"
)

// ExampleForest merges two pairs and one singleton into two sets.
func ExampleForest() {
	f, err := dsu.New(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, _ = f.Union(0, 1)
	_, _ = f.Union(3, 4)
	_, _ = f.Union(1, 4)

	fmt.Println(f.Labelling(), f.Sets())
	// Output: [0 0 2 0 0] 2
}
