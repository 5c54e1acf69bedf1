package clustering

import (
	"sort"

	"github.com/katalvlaran/lvcluster/dsu"
)

// Agglomerative clusters nNodes vertices into nClusters groups by running
// Kruskal's algorithm over edges and stopping once nNodes-nClusters merges
// have been made.
//
// Error Conditions:
//   - ErrInvalidVertexCount  : nNodes < 0.
//   - ErrInvalidClusterCount : nClusters outside [1, nNodes].
//   - ErrEdgeOutOfRange      : some edge endpoint outside [0, nNodes).
//
// Steps:
//  1. Validate inputs and create a forest of nNodes singletons.
//  2. Copy and stably sort edges by ascending Weight (the caller's slice is not reordered).
//  3. target = min(nNodes-nClusters, nNodes-1) merges are needed.
//  4. For each edge (u,v) in order, while fewer than target merges were made:
//     if find(u) != find(v), union the two roots and count the merge.
//  5. Return the forest labelling. If the edges ran out first the graph was
//     disconnected and more than nClusters clusters remain; this is not an error.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Agglomerative(nNodes int, edges []Edge, nClusters int) ([]int, error) {
	// 1. Validate and build the forest.
	if err := validate(nNodes, edges, nClusters); err != nil {
		return nil, err
	}
	forest, err := dsu.New(nNodes)
	if err != nil {
		return nil, err
	}

	// 2. Sort a private copy of the edges by ascending weight.
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Number of unions that leaves exactly nClusters components.
	target := min(nNodes-nClusters, nNodes-1)

	// 4. Kruskal, halted at target merges.
	merged := 0
	for _, e := range sorted {
		if merged >= target {
			break
		}
		ru, err := forest.Find(e.U)
		if err != nil {
			return nil, err
		}
		rv, err := forest.Find(e.V)
		if err != nil {
			return nil, err
		}
		if ru == rv {
			// Already connected; self-loops always land here.
			continue
		}
		if _, err = forest.Union(ru, rv); err != nil {
			return nil, err
		}
		merged++
	}

	// 5. Read out the labelling.
	return forest.Labelling(), nil
}
